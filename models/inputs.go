package models

import "time"

// ServiceRequestInput is the payload for creating a service request.
type ServiceRequestInput struct {
	ClientID       string      `json:"clientId" binding:"required"`
	Kind           ServiceKind `json:"serviceType" binding:"required"`
	Address        string      `json:"address" binding:"required"`
	CEP            string      `json:"cep"`
	ReferencePoint string      `json:"referencePoint"`
	Location       *GeoPoint   `json:"location"`
	Date           time.Time   `json:"date"` // scheduled services carry the visit datetime
	Description    string      `json:"serviceDescription"`
	Notes          string      `json:"serviceNotes"`
}

// AcceptInput is the payload for an electrician claiming a requested service.
// ETA is validated by the ledger so a missing value surfaces as a
// ValidationError rather than a bind failure.
type AcceptInput struct {
	ElectricianID string `json:"electricianId" binding:"required"`
	ETA           int    `json:"eta"`
}

// AdvanceInput moves an accepted service forward (arrived / finished).
type AdvanceInput struct {
	ElectricianID string        `json:"electricianId" binding:"required"`
	Status        ServiceStatus `json:"status" binding:"required"`
}

// CancelInput identifies who asked for the cancellation.
type CancelInput struct {
	ActorID string `json:"actorId" binding:"required"`
}

// MessageInput appends a chat message to a service conversation.
type MessageInput struct {
	Sender  SenderRole `json:"sender" binding:"required"`
	Message string     `json:"message" binding:"required"`
}

// RatingInput records a 1..5 rating for a completed service.
type RatingInput struct {
	Role   SenderRole `json:"role" binding:"required"`
	Rating int        `json:"rating" binding:"required"`
}

// ClientRegistrationInput creates a client account.
type ClientRegistrationInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"required"`
	Address string `json:"address" binding:"required"`
}

// ClientProfileInput is a self-service profile update.
type ClientProfileInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"required"`
	Address string `json:"address" binding:"required"`
}

// ElectricianRegistrationInput creates an electrician account, pending
// admin approval.
type ElectricianRegistrationInput struct {
	Name       string `json:"name" binding:"required"`
	CPF        string `json:"cpf" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Address    string `json:"address" binding:"required"`
	Experience string `json:"experience" binding:"required"`
}

// ApprovalInput is the admin-driven account status change.
type ApprovalInput struct {
	Status ElectricianStatus `json:"status" binding:"required"`
}

// LoginInput looks an account up by email. The portal performs no credential
// check beyond this.
type LoginInput struct {
	Email string `json:"email" binding:"required,email"`
}
