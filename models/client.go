package models

import "time"

// Client represents a registered client account.
type Client struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone"`
	Address  string    `json:"address"`
	JoinDate time.Time `json:"joinDate"`
}
