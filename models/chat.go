package models

import "time"

// SenderRole identifies which side of a service conversation issued a command.
type SenderRole string

const (
	SenderClient      SenderRole = "client"
	SenderElectrician SenderRole = "electrician"
)

// ChatMessage is one entry in a service's conversation thread.
type ChatMessage struct {
	Sender    SenderRole `json:"sender"`
	Message   string     `json:"message"`
	Timestamp time.Time  `json:"timestamp"`
}
