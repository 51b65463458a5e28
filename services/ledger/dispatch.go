package ledger

import (
	"time"

	"eletrigo/models"
)

// The *After variants model the dashboards' simulated network latency: the
// command body is scheduled, not run inline, and every guard is re-evaluated
// when it resumes. A record cancelled while the delay was pending is rejected
// instead of overwritten.

func (s *DefaultService) RequestServiceAfter(input models.ServiceRequestInput, done func(models.ServiceRecord, error)) {
	s.after(func() {
		rec, err := s.RequestService(input)
		if done != nil {
			done(rec, err)
		}
	})
}

func (s *DefaultService) AcceptServiceAfter(serviceID, electricianID string, eta int, done func(models.ServiceRecord, error)) {
	s.after(func() {
		rec, err := s.AcceptService(serviceID, electricianID, eta)
		if done != nil {
			done(rec, err)
		}
	})
}

func (s *DefaultService) after(fn func()) {
	if s.Latency <= 0 {
		fn()
		return
	}
	time.AfterFunc(s.Latency, fn)
}
