package ledger

import "eletrigo/models"

// AdminActorID is the identifier the administrator acts under. Cancellation
// accepts it alongside the owning client.
const AdminActorID = "admin"

// Service coordinates the service lifecycle state machine over the shared
// store. Every method validates its guards and either applies a full
// transition or returns one of the errors in errors.go without mutating
// anything.
type Service interface {
	RequestService(input models.ServiceRequestInput) (models.ServiceRecord, error)
	AcceptService(serviceID, electricianID string, eta int) (models.ServiceRecord, error)
	AdvanceService(serviceID, electricianID string, next models.ServiceStatus) (models.ServiceRecord, error)
	CancelService(serviceID, actorID string) (models.ServiceRecord, error)
	SendMessage(serviceID string, sender models.SenderRole, text string) (models.ServiceRecord, error)
	RateService(serviceID string, role models.SenderRole, rating int) (models.ServiceRecord, error)

	// Delayed variants model the simulated network latency of the
	// dashboards: the command body runs after the configured delay and
	// re-evaluates every guard at resumption time.
	RequestServiceAfter(input models.ServiceRequestInput, done func(models.ServiceRecord, error))
	AcceptServiceAfter(serviceID, electricianID string, eta int, done func(models.ServiceRecord, error))
}
