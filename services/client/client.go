package client

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"eletrigo/models"
	"eletrigo/services/ledger"
	"eletrigo/services/notification"
	"eletrigo/store"
)

// DefaultService is the production implementation.
type DefaultService struct {
	Repo     store.ClientRepo
	Notifier notification.Emitter
	Logger   *zap.Logger
	Now      func() time.Time
}

func (s *DefaultService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.L()
}

func (s *DefaultService) Register(input models.ClientRegistrationInput) (models.Client, error) {
	if input.Name == "" || input.Email == "" {
		return models.Client{}, &ledger.ValidationError{Field: "name/email", Message: "required"}
	}

	c := models.Client{
		ID:       uuid.New().String(),
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		Address:  input.Address,
		JoinDate: s.now(),
	}
	if err := s.Repo.Insert(c); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return models.Client{}, &ledger.StateConflictError{Message: "email already registered"}
		}
		return models.Client{}, fmt.Errorf("insert client: %w", err)
	}
	s.logger().Info("client registered", zap.String("clientId", c.ID))
	return c, nil
}

func (s *DefaultService) Login(email string) (models.Client, error) {
	c, err := s.Repo.GetByEmail(email)
	if err != nil {
		return models.Client{}, &ledger.NotFoundError{Kind: "client", ID: email}
	}
	return c, nil
}

func (s *DefaultService) Get(id string) (models.Client, error) {
	c, err := s.Repo.Get(id)
	if err != nil {
		return models.Client{}, &ledger.NotFoundError{Kind: "client", ID: id}
	}
	return c, nil
}

// UpdateProfile overwrites the contact fields; id and join date never change.
func (s *DefaultService) UpdateProfile(id string, input models.ClientProfileInput) (models.Client, error) {
	c, err := s.Repo.Get(id)
	if err != nil {
		return models.Client{}, &ledger.NotFoundError{Kind: "client", ID: id}
	}

	c.Name = input.Name
	c.Email = input.Email
	c.Phone = input.Phone
	c.Address = input.Address
	if err := s.Repo.Replace(c); err != nil {
		return models.Client{}, fmt.Errorf("replace client: %w", err)
	}

	s.Notifier.Push(c.ID, "Seu perfil foi atualizado com sucesso!")
	s.logger().Info("client profile updated", zap.String("clientId", c.ID))
	return c, nil
}
