package dashboard

import "eletrigo/models"

// ClientView projects the ledger for one client.
type ClientView struct {
	Client  models.Client          `json:"client"`
	Current *models.ServiceRecord  `json:"current,omitempty"`
	History []models.ServiceRecord `json:"history"`
}

// ElectricianView projects the ledger for one electrician. Pending and
// suspended accounts get a blocked view with no pool.
type ElectricianView struct {
	Electrician   models.Electrician     `json:"electrician"`
	Blocked       bool                   `json:"blocked"`
	BlockedReason string                 `json:"blockedReason,omitempty"`
	Available     []models.ServiceRecord `json:"available"`
	Current       *models.ServiceRecord  `json:"current,omitempty"`
	History       []models.ServiceRecord `json:"history"`
}

// AdminStats are the headline counters of the admin dashboard.
type AdminStats struct {
	TotalElectricians int `json:"totalElectricians"`
	TotalClients      int `json:"totalClients"`
	ActiveServices    int `json:"activeServices"` // services currently in progress
	PendingApprovals  int `json:"pendingApprovals"`
}

// AdminView is the full, unfiltered ledger plus aggregate reports.
type AdminView struct {
	Services     []models.ServiceRecord `json:"services"`
	Electricians []models.Electrician   `json:"electricians"`
	Clients      []models.Client        `json:"clients"`
	Stats        AdminStats             `json:"stats"`
	Report       models.AdminReport     `json:"report"`
}

// Service derives role-scoped views from the shared store. Projections are
// read-only; commands go through the ledger.
type Service interface {
	ClientView(clientID string) (ClientView, error)
	ElectricianView(electricianID string) (ElectricianView, error)
	AdminView() AdminView
}
