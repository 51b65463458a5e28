package dashboard

import (
	"sort"

	"eletrigo/models"
	"eletrigo/services/ledger"
	"eletrigo/store"
)

// DefaultService re-derives every projection from the store on each call; no
// view keeps its own copy of the truth.
type DefaultService struct {
	Services     store.ServiceRepo
	Electricians store.ElectricianRepo
	Clients      store.ClientRepo
}

func (s *DefaultService) ClientView(clientID string) (ClientView, error) {
	c, err := s.Clients.Get(clientID)
	if err != nil {
		return ClientView{}, &ledger.NotFoundError{Kind: "client", ID: clientID}
	}

	view := ClientView{Client: c, History: []models.ServiceRecord{}}
	for _, rec := range s.Services.List() {
		if rec.ClientID != clientID {
			continue
		}
		if rec.Status.Active() && view.Current == nil {
			current := rec
			view.Current = &current
		} else if rec.Status.Terminal() {
			view.History = append(view.History, rec)
		}
	}
	sortByDateDesc(view.History)
	return view, nil
}

func (s *DefaultService) ElectricianView(electricianID string) (ElectricianView, error) {
	e, err := s.Electricians.Get(electricianID)
	if err != nil {
		return ElectricianView{}, &ledger.NotFoundError{Kind: "electrician", ID: electricianID}
	}

	view := ElectricianView{
		Electrician: e,
		Available:   []models.ServiceRecord{},
		History:     []models.ServiceRecord{},
	}
	switch e.Status {
	case models.ElectricianPending:
		view.Blocked = true
		view.BlockedReason = "Sua conta está aguardando aprovação do administrador."
		return view, nil
	case models.ElectricianSuspended:
		view.Blocked = true
		view.BlockedReason = "Sua conta está suspensa. Entre em contato com o suporte."
		return view, nil
	}

	for _, rec := range s.Services.List() {
		switch {
		case rec.Status == models.StatusRequested && rec.ElectricianID == "":
			view.Available = append(view.Available, rec)
		case rec.ElectricianID != electricianID:
			// someone else's record
		case rec.Status == models.StatusAccepted || rec.Status == models.StatusInProgress:
			current := rec
			view.Current = &current
		case rec.Status.Terminal():
			view.History = append(view.History, rec)
		}
	}
	sortByDateDesc(view.History)
	return view, nil
}

func (s *DefaultService) AdminView() AdminView {
	services := s.Services.List()
	electricians := s.Electricians.List()
	clients := s.Clients.List()

	stats := AdminStats{
		TotalElectricians: len(electricians),
		TotalClients:      len(clients),
	}
	for _, e := range electricians {
		if e.Status == models.ElectricianPending {
			stats.PendingApprovals++
		}
	}
	for _, rec := range services {
		if rec.Status == models.StatusInProgress {
			stats.ActiveServices++
		}
	}

	return AdminView{
		Services:     services,
		Electricians: electricians,
		Clients:      clients,
		Stats:        stats,
		Report:       buildReport(services),
	}
}

// buildReport computes completed-service revenue, the count-by-status
// histogram and the top three electricians by completed count. Ties keep the
// order electricians were first encountered in the ledger.
func buildReport(services []models.ServiceRecord) models.AdminReport {
	report := models.AdminReport{
		ServicesByStatus: make(map[models.ServiceStatus]int),
		TopElectricians:  []models.ElectricianRanking{},
	}

	counts := make(map[string]int)
	var order []string
	names := make(map[string]string)
	for _, rec := range services {
		report.ServicesByStatus[rec.Status]++
		if rec.Status != models.StatusCompleted {
			continue
		}
		report.TotalEarnings += rec.Value
		if rec.ElectricianID == "" {
			continue
		}
		if _, seen := counts[rec.ElectricianID]; !seen {
			order = append(order, rec.ElectricianID)
			names[rec.ElectricianID] = rec.ElectricianName
		}
		counts[rec.ElectricianID]++
	}

	for _, id := range order {
		report.TopElectricians = append(report.TopElectricians, models.ElectricianRanking{
			ElectricianID:   id,
			ElectricianName: names[id],
			Completed:       counts[id],
		})
	}
	sort.SliceStable(report.TopElectricians, func(i, j int) bool {
		return report.TopElectricians[i].Completed > report.TopElectricians[j].Completed
	})
	if len(report.TopElectricians) > 3 {
		report.TopElectricians = report.TopElectricians[:3]
	}
	return report
}

func sortByDateDesc(recs []models.ServiceRecord) {
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Date.After(recs[j].Date)
	})
}
