package store

import (
	"sync"

	"eletrigo/models"
)

// ServiceRepo is the authoritative collection of service records.
type ServiceRepo interface {
	Insert(rec models.ServiceRecord) error
	Get(id string) (models.ServiceRecord, error)
	Replace(rec models.ServiceRecord) error
	List() []models.ServiceRecord
	ListByElectrician(electricianID string) []models.ServiceRecord
	ActiveByClient(clientID string) (models.ServiceRecord, bool)
	ActiveByElectrician(electricianID string) (models.ServiceRecord, bool)
}

// MemoryServiceRepo keeps records newest-first, which is also the display
// order the dashboards use.
type MemoryServiceRepo struct {
	mu      sync.RWMutex
	records []models.ServiceRecord
}

func NewMemoryServiceRepo() *MemoryServiceRepo {
	return &MemoryServiceRepo{}
}

func (r *MemoryServiceRepo) Insert(rec models.ServiceRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.records {
		if existing.ID == rec.ID {
			return ErrDuplicate
		}
	}
	r.records = append([]models.ServiceRecord{rec.Clone()}, r.records...)
	return nil
}

func (r *MemoryServiceRepo) Get(id string) (models.ServiceRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rec := range r.records {
		if rec.ID == id {
			return rec.Clone(), nil
		}
	}
	return models.ServiceRecord{}, ErrNotFound
}

// Replace swaps the stored record wholesale. Callers mutate a copy and hand
// it back, keeping transitions atomic from a reader's point of view.
func (r *MemoryServiceRepo) Replace(rec models.ServiceRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.records {
		if existing.ID == rec.ID {
			r.records[i] = rec.Clone()
			return nil
		}
	}
	return ErrNotFound
}

func (r *MemoryServiceRepo) List() []models.ServiceRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.ServiceRecord, 0, len(r.records))
	for _, rec := range r.records {
		out = append(out, rec.Clone())
	}
	return out
}

func (r *MemoryServiceRepo) ListByElectrician(electricianID string) []models.ServiceRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.ServiceRecord
	for _, rec := range r.records {
		if rec.ElectricianID == electricianID {
			out = append(out, rec.Clone())
		}
	}
	return out
}

// ActiveByClient returns the client's single Requested/Accepted/InProgress
// record, if any.
func (r *MemoryServiceRepo) ActiveByClient(clientID string) (models.ServiceRecord, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rec := range r.records {
		if rec.ClientID == clientID && rec.Status.Active() {
			return rec.Clone(), true
		}
	}
	return models.ServiceRecord{}, false
}

// ActiveByElectrician returns the electrician's single Accepted/InProgress
// assignment, if any. Requested records are not yet bound to anyone.
func (r *MemoryServiceRepo) ActiveByElectrician(electricianID string) (models.ServiceRecord, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rec := range r.records {
		if rec.ElectricianID == electricianID &&
			(rec.Status == models.StatusAccepted || rec.Status == models.StatusInProgress) {
			return rec.Clone(), true
		}
	}
	return models.ServiceRecord{}, false
}
