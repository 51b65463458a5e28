package store

import (
	"strings"
	"sync"

	"eletrigo/models"
)

// ClientRepo manages client accounts.
type ClientRepo interface {
	Insert(c models.Client) error
	Get(id string) (models.Client, error)
	GetByEmail(email string) (models.Client, error)
	List() []models.Client
	Replace(c models.Client) error
}

type MemoryClientRepo struct {
	mu       sync.RWMutex
	accounts []models.Client
}

func NewMemoryClientRepo() *MemoryClientRepo {
	return &MemoryClientRepo{}
}

func (r *MemoryClientRepo) Insert(c models.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.accounts {
		if existing.ID == c.ID || strings.EqualFold(existing.Email, c.Email) {
			return ErrDuplicate
		}
	}
	r.accounts = append(r.accounts, c)
	return nil
}

func (r *MemoryClientRepo) Get(id string) (models.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.accounts {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Client{}, ErrNotFound
}

func (r *MemoryClientRepo) GetByEmail(email string) (models.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.accounts {
		if strings.EqualFold(c.Email, email) {
			return c, nil
		}
	}
	return models.Client{}, ErrNotFound
}

func (r *MemoryClientRepo) List() []models.Client {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Client, len(r.accounts))
	copy(out, r.accounts)
	return out
}

func (r *MemoryClientRepo) Replace(c models.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.accounts {
		if r.accounts[i].ID == c.ID {
			r.accounts[i] = c
			return nil
		}
	}
	return ErrNotFound
}
