package ledger

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"eletrigo/models"
)

// RateService records a 1..5 rating for a completed service. Each role may
// rate once; a client rating triggers a full recompute of the electrician's
// average.
func (s *DefaultService) RateService(serviceID string, role models.SenderRole, rating int) (models.ServiceRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rating < 1 || rating > 5 {
		return models.ServiceRecord{}, &ValidationError{Field: "rating", Message: "must be between 1 and 5"}
	}
	if role != models.SenderClient && role != models.SenderElectrician {
		return models.ServiceRecord{}, &ValidationError{Field: "role", Message: "must be client or electrician"}
	}

	rec, err := s.Services.Get(serviceID)
	if err != nil {
		return models.ServiceRecord{}, &NotFoundError{Kind: "service", ID: serviceID}
	}
	if rec.Status != models.StatusCompleted {
		return models.ServiceRecord{}, &StateConflictError{
			ServiceID: serviceID,
			Message:   "only completed services can be rated",
		}
	}

	var raterID string
	switch role {
	case models.SenderClient:
		if rec.ClientRating != 0 {
			return models.ServiceRecord{}, &StateConflictError{ServiceID: serviceID, Message: "client already rated this service"}
		}
		rec.ClientRating = rating
		raterID = rec.ClientID
	case models.SenderElectrician:
		if rec.ElectricianRating != 0 {
			return models.ServiceRecord{}, &StateConflictError{ServiceID: serviceID, Message: "electrician already rated this service"}
		}
		rec.ElectricianRating = rating
		raterID = rec.ElectricianID
	}
	if err := s.Services.Replace(rec); err != nil {
		return models.ServiceRecord{}, fmt.Errorf("replace service: %w", err)
	}

	if role == models.SenderClient {
		if err := s.recomputeElectricianRating(rec.ElectricianID); err != nil {
			return models.ServiceRecord{}, err
		}
	}

	s.Notifier.Push(raterID, "Obrigado pela sua avaliação!")
	s.logger().Info("service rated",
		zap.String("serviceId", rec.ID),
		zap.String("role", string(role)),
		zap.Int("rating", rating),
	)
	return rec, nil
}

// recomputeElectricianRating derives the average from scratch on every new
// rating: the mean of client ratings across the electrician's completed
// services, rounded to one decimal.
func (s *DefaultService) recomputeElectricianRating(electricianID string) error {
	var sum, count int
	for _, rec := range s.Services.ListByElectrician(electricianID) {
		if rec.Status == models.StatusCompleted && rec.ClientRating > 0 {
			sum += rec.ClientRating
			count++
		}
	}
	if count == 0 {
		return nil
	}
	avg := math.Round(float64(sum)/float64(count)*10) / 10
	if err := s.Electricians.SetRating(electricianID, avg); err != nil {
		return fmt.Errorf("set electrician rating: %w", err)
	}
	return nil
}
