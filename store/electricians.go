package store

import (
	"strings"
	"sync"

	"eletrigo/models"
)

// ElectricianRepo manages electrician accounts.
type ElectricianRepo interface {
	Insert(e models.Electrician) error
	Get(id string) (models.Electrician, error)
	GetByEmail(email string) (models.Electrician, error)
	List() []models.Electrician
	SetStatus(id string, status models.ElectricianStatus) error
	SetRating(id string, rating float64) error
}

type MemoryElectricianRepo struct {
	mu       sync.RWMutex
	accounts []models.Electrician
}

func NewMemoryElectricianRepo() *MemoryElectricianRepo {
	return &MemoryElectricianRepo{}
}

func (r *MemoryElectricianRepo) Insert(e models.Electrician) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.accounts {
		if existing.ID == e.ID || strings.EqualFold(existing.Email, e.Email) {
			return ErrDuplicate
		}
	}
	r.accounts = append(r.accounts, e)
	return nil
}

func (r *MemoryElectricianRepo) Get(id string) (models.Electrician, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.accounts {
		if e.ID == id {
			return e, nil
		}
	}
	return models.Electrician{}, ErrNotFound
}

func (r *MemoryElectricianRepo) GetByEmail(email string) (models.Electrician, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.accounts {
		if strings.EqualFold(e.Email, email) {
			return e, nil
		}
	}
	return models.Electrician{}, ErrNotFound
}

func (r *MemoryElectricianRepo) List() []models.Electrician {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Electrician, len(r.accounts))
	copy(out, r.accounts)
	return out
}

func (r *MemoryElectricianRepo) SetStatus(id string, status models.ElectricianStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.accounts {
		if r.accounts[i].ID == id {
			r.accounts[i].Status = status
			return nil
		}
	}
	return ErrNotFound
}

// SetRating writes the recomputed average. Only the rating aggregator calls
// this; the value is never hand-edited.
func (r *MemoryElectricianRepo) SetRating(id string, rating float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.accounts {
		if r.accounts[i].ID == id {
			r.accounts[i].Rating = rating
			return nil
		}
	}
	return ErrNotFound
}
