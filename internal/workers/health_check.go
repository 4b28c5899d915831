package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-wallet-admin/internal/logger"
)

// CheckTarget is one upstream checked by HealthChecker.
type CheckTarget struct {
	// Service is the name the status is reported under.
	Service string
	Pinger  Pinger
}

// HealthChecker pings every target once per interval and reports whether it
// answered. A zero interval disables the check.
type HealthChecker struct {
	targets  []CheckTarget
	status   StatusSetter
	interval time.Duration

	logger *logger.Logger
}

func NewHealthChecker(targets []CheckTarget, status StatusSetter, interval time.Duration, logger *logger.Logger) *HealthChecker {
	return &HealthChecker{
		targets:  targets,
		status:   status,
		interval: interval,
		logger:   logger,
	}
}

// Run checks immediately and then on every tick until ctx is done.
func (c *HealthChecker) Run(ctx context.Context) {
	if c.interval <= 0 {
		c.logger.Info().Msg("health check disabled")
		return
	}

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	c.checkAll(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.checkAll(ctx)
		}
	}
}

// checkAll checks each target with a deadline of one interval.
func (c *HealthChecker) checkAll(ctx context.Context) {
	for _, target := range c.targets {
		pingCtx, cancel := context.WithTimeout(ctx, c.interval)
		err := target.Pinger.Ping(pingCtx)
		cancel()

		if ctx.Err() != nil {
			return
		}

		if err != nil {
			c.logger.Err(err).Str("service", target.Service).Msg("upstream health check failed")
		}
		c.status.SetServing(target.Service, err == nil)
	}
}
