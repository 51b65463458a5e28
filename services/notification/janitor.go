package notification

import (
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// StartJanitor schedules a once-a-second sweep of expired notifications and
// returns the running scheduler so the caller can stop it on shutdown.
func StartJanitor(e Emitter, logger *zap.Logger) *cron.Cron {
	c := cron.New(cron.WithSeconds())
	if _, err := c.AddFunc("@every 1s", func() {
		if n := e.Sweep(); n > 0 {
			logger.Debug("notification sweep", zap.Int("removed", n))
		}
	}); err != nil {
		logger.Error("failed to schedule notification janitor", zap.Error(err))
		return c
	}
	c.Start()
	return c
}
