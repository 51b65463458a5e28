package models

import "time"

// Notification is a transient user-facing message. It self-expires at
// ExpiresAt unless dismissed sooner.
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}
