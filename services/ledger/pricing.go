package ledger

import (
	"math/rand"
	"time"

	"eletrigo/models"
)

const (
	emergencyBase   = 150
	emergencySpread = 100
	scheduledBase   = 200
	scheduledSpread = 150
)

func (s *DefaultService) rng() *rand.Rand {
	if s.Rng == nil {
		s.Rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return s.Rng
}

// price draws the service value once, at creation. Emergency values fall in
// [150,250), scheduled in [200,350).
func (s *DefaultService) price(kind models.ServiceKind) float64 {
	if kind == models.KindEmergency {
		return float64(emergencyBase + s.rng().Intn(emergencySpread))
	}
	return float64(scheduledBase + s.rng().Intn(scheduledSpread))
}
