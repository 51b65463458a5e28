package models

import "time"

// ElectricianStatus is the account approval state, admin-driven.
type ElectricianStatus string

const (
	ElectricianPending   ElectricianStatus = "Aguardando Aprovação"
	ElectricianApproved  ElectricianStatus = "Aprovado"
	ElectricianSuspended ElectricianStatus = "Suspenso"
)

// Electrician represents a registered electrician account.
type Electrician struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	CPF               string            `json:"cpf"`
	Phone             string            `json:"phone"`
	Email             string            `json:"email"`
	Address           string            `json:"address"`
	Experience        string            `json:"experience"`
	ProfilePictureURL string            `json:"profilePictureUrl"`
	DocumentURL       string            `json:"documentUrl"`
	Status            ElectricianStatus `json:"status"`
	Rating            float64           `json:"rating"` // derived, recomputed by the ledger
	JoinDate          time.Time         `json:"joinDate"`
}
