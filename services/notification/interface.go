package notification

import "eletrigo/models"

// Emitter appends and time-expires transient user-facing messages.
type Emitter interface {
	// Push appends a message to the user's feed and returns the entry.
	Push(userID, message string) models.Notification
	// Feed returns the user's live (non-expired) notifications, oldest first.
	Feed(userID string) []models.Notification
	// Dismiss removes a pending notification before it expires. Returns
	// false when the entry is gone already.
	Dismiss(userID, id string) bool
	// Sweep drops every expired entry and reports how many were removed.
	Sweep() int
}
