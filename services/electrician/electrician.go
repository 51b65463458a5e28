package electrician

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
	Repo     store.ElectricianRepo
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

// Register creates the account in Pending status; only an admin approval
// unlocks the working dashboard.
func (s *DefaultService) Register(input models.ElectricianRegistrationInput) (models.Electrician, error) {
	if input.Name == "" || input.Email == "" {
		return models.Electrician{}, &ledger.ValidationError{Field: "name/email", Message: "required"}
	}

	now := s.now()
	e := models.Electrician{
		ID:                uuid.New().String(),
		Name:              input.Name,
		CPF:               input.CPF,
		Phone:             input.Phone,
		Email:             input.Email,
		Address:           input.Address,
		Experience:        input.Experience,
		ProfilePictureURL: fmt.Sprintf("https://picsum.photos/seed/%d/200", now.UnixMilli()),
		DocumentURL:       "https://example.com/doc.pdf",
		Status:            models.ElectricianPending,
		JoinDate:          now,
	}
	if err := s.Repo.Insert(e); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return models.Electrician{}, &ledger.StateConflictError{Message: "email already registered"}
		}
		return models.Electrician{}, fmt.Errorf("insert electrician: %w", err)
	}

	s.Notifier.Push(e.ID, "Cadastro realizado com sucesso! Aguarde a aprovação do administrador.")
	s.logger().Info("electrician registered", zap.String("electricianId", e.ID))
	return e, nil
}

func (s *DefaultService) Login(email string) (models.Electrician, error) {
	e, err := s.Repo.GetByEmail(email)
	if err != nil {
		return models.Electrician{}, &ledger.NotFoundError{Kind: "electrician", ID: email}
	}
	return e, nil
}

func (s *DefaultService) Get(id string) (models.Electrician, error) {
	e, err := s.Repo.Get(id)
	if err != nil {
		return models.Electrician{}, &ledger.NotFoundError{Kind: "electrician", ID: id}
	}
	return e, nil
}

// SetApproval applies the admin status transition (approve / suspend / back
// to pending).
func (s *DefaultService) SetApproval(id string, status models.ElectricianStatus) (models.Electrician, error) {
	switch status {
	case models.ElectricianPending, models.ElectricianApproved, models.ElectricianSuspended:
	default:
		return models.Electrician{}, &ledger.ValidationError{Field: "status", Message: "unknown approval status"}
	}

	if err := s.Repo.SetStatus(id, status); err != nil {
		return models.Electrician{}, &ledger.NotFoundError{Kind: "electrician", ID: id}
	}
	e, err := s.Repo.Get(id)
	if err != nil {
		return models.Electrician{}, &ledger.NotFoundError{Kind: "electrician", ID: id}
	}

	if status == models.ElectricianApproved {
		s.Notifier.Push(e.ID, "Sua conta foi aprovada! Você já pode atender serviços.")
	}
	s.logger().Info("electrician approval changed",
		zap.String("electricianId", e.ID),
		zap.String("status", string(status)),
	)
	return e, nil
}
