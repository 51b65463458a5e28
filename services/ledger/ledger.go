package ledger

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"eletrigo/models"
	"eletrigo/services/notification"
	"eletrigo/store"
)

// DefaultService is the single writer for the service ledger.
type DefaultService struct {
	Services     store.ServiceRepo
	Electricians store.ElectricianRepo
	Clients      store.ClientRepo
	Notifier     notification.Emitter
	Logger       *zap.Logger

	// Latency is the simulated network delay used by the *After variants.
	Latency time.Duration

	// Now and Rng are injectable for tests; nil means wall clock and a
	// time-seeded source.
	Now func() time.Time
	Rng *rand.Rand

	// Commands are applied one at a time so guard checks and the writes
	// they protect cannot interleave.
	mu sync.Mutex
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

// RequestService creates a new record in status Requested, prices it once and
// notifies the requester. A client with an active record is rejected.
func (s *DefaultService) RequestService(input models.ServiceRequestInput) (models.ServiceRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if input.ClientID == "" {
		return models.ServiceRecord{}, &ValidationError{Field: "clientId", Message: "required"}
	}
	if input.Address == "" {
		return models.ServiceRecord{}, &ValidationError{Field: "address", Message: "required"}
	}
	if input.Kind != models.KindEmergency && input.Kind != models.KindScheduled {
		return models.ServiceRecord{}, &ValidationError{Field: "serviceType", Message: "must be Emergencial or Agendado"}
	}

	client, err := s.Clients.Get(input.ClientID)
	if err != nil {
		return models.ServiceRecord{}, &NotFoundError{Kind: "client", ID: input.ClientID}
	}
	if active, ok := s.Services.ActiveByClient(client.ID); ok {
		return models.ServiceRecord{}, &StateConflictError{
			ServiceID: active.ID,
			Message:   "client already has an active service",
		}
	}

	date := input.Date
	if date.IsZero() {
		date = s.now()
	}
	rec := models.ServiceRecord{
		ID:              uuid.New().String(),
		ClientID:        client.ID,
		ClientName:      client.Name,
		ElectricianName: models.UnassignedElectrician,
		Kind:            input.Kind,
		Address:         input.Address,
		CEP:             input.CEP,
		ReferencePoint:  input.ReferencePoint,
		Location:        input.Location,
		Status:          models.StatusRequested,
		Date:            date,
		Value:           s.price(input.Kind),
		Description:     input.Description,
		Notes:           input.Notes,
	}
	if err := s.Services.Insert(rec); err != nil {
		return models.ServiceRecord{}, fmt.Errorf("insert service: %w", err)
	}

	if input.Kind == models.KindEmergency {
		s.Notifier.Push(client.ID, "Sua solicitação foi enviada aos eletricistas próximos!")
	} else {
		s.Notifier.Push(client.ID, "Seu agendamento foi solicitado com sucesso!")
	}
	s.logger().Info("service requested",
		zap.String("serviceId", rec.ID),
		zap.String("clientId", client.ID),
		zap.String("kind", string(rec.Kind)),
		zap.Float64("value", rec.Value),
	)
	return rec, nil
}

// AcceptService binds an approved, free electrician to a Requested record and
// fixes the ETA.
func (s *DefaultService) AcceptService(serviceID, electricianID string, eta int) (models.ServiceRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if eta <= 0 {
		return models.ServiceRecord{}, &ValidationError{Field: "eta", Message: "must be a positive number of minutes"}
	}

	rec, err := s.Services.Get(serviceID)
	if err != nil {
		return models.ServiceRecord{}, &NotFoundError{Kind: "service", ID: serviceID}
	}
	if rec.Status != models.StatusRequested {
		return models.ServiceRecord{}, &StateConflictError{
			ServiceID: serviceID,
			Message:   fmt.Sprintf("cannot accept a service in status %q", rec.Status),
		}
	}

	elec, err := s.Electricians.Get(electricianID)
	if err != nil {
		return models.ServiceRecord{}, &NotFoundError{Kind: "electrician", ID: electricianID}
	}
	if elec.Status != models.ElectricianApproved {
		return models.ServiceRecord{}, &StateConflictError{
			ServiceID: serviceID,
			Message:   "electrician account is not approved",
		}
	}
	if current, ok := s.Services.ActiveByElectrician(elec.ID); ok {
		return models.ServiceRecord{}, &StateConflictError{
			ServiceID: current.ID,
			Message:   "electrician already has an active assignment",
		}
	}

	rec.Status = models.StatusAccepted
	rec.ElectricianID = elec.ID
	rec.ElectricianName = elec.Name
	rec.ETA = eta
	if err := s.Services.Replace(rec); err != nil {
		return models.ServiceRecord{}, fmt.Errorf("replace service: %w", err)
	}

	s.Notifier.Push(rec.ClientID, fmt.Sprintf("Seu serviço foi aceito! %s está a caminho.", elec.Name))
	s.logger().Info("service accepted",
		zap.String("serviceId", rec.ID),
		zap.String("electricianId", elec.ID),
		zap.Int("eta", eta),
	)
	return rec, nil
}

// AdvanceService moves an assignment forward: Accepted -> InProgress when the
// electrician arrives, InProgress -> Completed when the work is done. Only the
// bound electrician may advance.
func (s *DefaultService) AdvanceService(serviceID, electricianID string, next models.ServiceStatus) (models.ServiceRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if next != models.StatusInProgress && next != models.StatusCompleted {
		return models.ServiceRecord{}, &ValidationError{Field: "status", Message: "can only advance to Em Atendimento or Concluído"}
	}

	rec, err := s.Services.Get(serviceID)
	if err != nil {
		return models.ServiceRecord{}, &NotFoundError{Kind: "service", ID: serviceID}
	}
	if rec.ElectricianID == "" || rec.ElectricianID != electricianID {
		return models.ServiceRecord{}, &StateConflictError{
			ServiceID: serviceID,
			Message:   "service is not assigned to this electrician",
		}
	}

	switch {
	case rec.Status == models.StatusAccepted && next == models.StatusInProgress:
		rec.Status = models.StatusInProgress
		if err := s.Services.Replace(rec); err != nil {
			return models.ServiceRecord{}, fmt.Errorf("replace service: %w", err)
		}
		s.Notifier.Push(rec.ClientID, "O eletricista chegou ao local e iniciou o atendimento.")
	case rec.Status == models.StatusInProgress && next == models.StatusCompleted:
		rec.Status = models.StatusCompleted
		if err := s.Services.Replace(rec); err != nil {
			return models.ServiceRecord{}, fmt.Errorf("replace service: %w", err)
		}
		s.Notifier.Push(rec.ClientID, fmt.Sprintf("Serviço com %s concluído. Por favor, avalie o serviço.", rec.ElectricianName))
	default:
		return models.ServiceRecord{}, &StateConflictError{
			ServiceID: serviceID,
			Message:   fmt.Sprintf("cannot advance from %q to %q", rec.Status, next),
		}
	}

	s.logger().Info("service advanced",
		zap.String("serviceId", rec.ID),
		zap.String("status", string(rec.Status)),
	)
	return rec, nil
}

// CancelService cancels a Requested or Accepted record. The owning client or
// the administrator may cancel; nobody else.
func (s *DefaultService) CancelService(serviceID, actorID string) (models.ServiceRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.Services.Get(serviceID)
	if err != nil {
		return models.ServiceRecord{}, &NotFoundError{Kind: "service", ID: serviceID}
	}
	if actorID != rec.ClientID && actorID != AdminActorID {
		return models.ServiceRecord{}, &StateConflictError{
			ServiceID: serviceID,
			Message:   "only the owning client or the administrator may cancel",
		}
	}
	if rec.Status != models.StatusRequested && rec.Status != models.StatusAccepted {
		return models.ServiceRecord{}, &StateConflictError{
			ServiceID: serviceID,
			Message:   fmt.Sprintf("cannot cancel a service in status %q", rec.Status),
		}
	}

	rec.Status = models.StatusCancelled
	if err := s.Services.Replace(rec); err != nil {
		return models.ServiceRecord{}, fmt.Errorf("replace service: %w", err)
	}
	s.logger().Info("service cancelled",
		zap.String("serviceId", rec.ID),
		zap.String("actorId", actorID),
	)
	return rec, nil
}

// IsNotFound reports whether err is any repository or taxonomy not-found error.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf) || errors.Is(err, store.ErrNotFound)
}
