package ledger

import "fmt"

// ValidationError reports a command rejected before touching the ledger:
// a required field is missing or out of range.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %q: %s", e.Field, e.Message)
}

// StateConflictError reports a transition guard failure. The record the
// command named is left exactly as it was.
type StateConflictError struct {
	ServiceID string
	Message   string
}

func (e *StateConflictError) Error() string {
	if e.ServiceID == "" {
		return "state conflict: " + e.Message
	}
	return fmt.Sprintf("state conflict on service %s: %s", e.ServiceID, e.Message)
}

// NotFoundError reports an unknown service or account identifier.
type NotFoundError struct {
	Kind string // "service", "client", "electrician"
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}
