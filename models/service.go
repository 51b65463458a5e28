package models

import "time"

// ServiceStatus is the lifecycle state of a service record. Display values are
// kept in Portuguese, matching what the dashboards render.
type ServiceStatus string

const (
	StatusRequested  ServiceStatus = "Solicitado"
	StatusAccepted   ServiceStatus = "Aceito"
	StatusInProgress ServiceStatus = "Em Atendimento"
	StatusCompleted  ServiceStatus = "Concluído"
	StatusCancelled  ServiceStatus = "Cancelado"
)

// Active reports whether the status occupies the client's single active slot.
func (s ServiceStatus) Active() bool {
	return s == StatusRequested || s == StatusAccepted || s == StatusInProgress
}

// Terminal reports whether no further transitions are permitted.
func (s ServiceStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// ServiceKind distinguishes emergency call-outs from scheduled visits.
type ServiceKind string

const (
	KindEmergency ServiceKind = "Emergencial"
	KindScheduled ServiceKind = "Agendado"
)

// UnassignedElectrician is the display sentinel a record carries until an
// electrician accepts it.
const UnassignedElectrician = "Aguardando"

// GeoPoint is an optional coordinate pair captured with a request.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// ServiceRecord is a single request-to-completion unit of work between one
// client and at most one electrician.
type ServiceRecord struct {
	ID              string        `json:"id"`
	ClientID        string        `json:"clientId"`
	ClientName      string        `json:"clientName"` // denormalized for display
	ElectricianID   string        `json:"electricianId"`
	ElectricianName string        `json:"electricianName"`
	Kind            ServiceKind   `json:"serviceType"`
	Address         string        `json:"address"`
	CEP             string        `json:"cep,omitempty"`
	ReferencePoint  string        `json:"referencePoint,omitempty"`
	Location        *GeoPoint     `json:"location,omitempty"`
	Status          ServiceStatus `json:"status"`
	Date            time.Time     `json:"date"`
	Value           float64       `json:"value"`
	ETA             int           `json:"eta,omitempty"` // minutes, fixed at acceptance
	Chat            []ChatMessage `json:"chat,omitempty"`

	// Ratings are 1..5; zero means not yet rated.
	ClientRating      int `json:"clientRating,omitempty"`
	ElectricianRating int `json:"electricianRating,omitempty"`

	// Schedule details, set for scheduled services only.
	Description string `json:"serviceDescription,omitempty"`
	Notes       string `json:"serviceNotes,omitempty"`
}

// Clone returns a deep copy so readers never alias the store's slices.
func (s ServiceRecord) Clone() ServiceRecord {
	out := s
	if s.Chat != nil {
		out.Chat = make([]ChatMessage, len(s.Chat))
		copy(out.Chat, s.Chat)
	}
	if s.Location != nil {
		loc := *s.Location
		out.Location = &loc
	}
	return out
}
