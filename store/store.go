// Package store holds the in-memory repositories backing the service ledger.
// Every read hands out a copy and every write replaces the whole record, so
// projections never observe a half-applied transition.
package store

import "errors"

// ErrNotFound is returned by repositories for unknown identifiers.
var ErrNotFound = errors.New("store: record not found")

// ErrDuplicate is returned when a unique field (id, email) is already taken.
var ErrDuplicate = errors.New("store: duplicate record")

// Memory bundles the repositories behind one handle so the whole store is
// constructed per session and injected, never reached through package state.
// A persistent implementation can replace the individual repos later.
type Memory struct {
	Services     ServiceRepo
	Electricians ElectricianRepo
	Clients      ClientRepo
}

// NewMemory builds an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		Services:     NewMemoryServiceRepo(),
		Electricians: NewMemoryElectricianRepo(),
		Clients:      NewMemoryClientRepo(),
	}
}
