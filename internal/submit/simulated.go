package submit

import (
	"context"
	"time"

	"github.com/mark3labs/rigwizard/internal/buildform"
	"github.com/mark3labs/rigwizard/internal/logger"
)

// DefaultDelay is how long the simulated endpoint takes by default.
const DefaultDelay = 2 * time.Second

// Simulated accepts every build after Delay. It stands in for the
// recommendation service during local use.
type Simulated struct {
	Delay time.Duration
}

func (s *Simulated) Submit(ctx context.Context, _ buildform.Build) error {
	logger.Debug("Simulating submission (delay %s)", s.Delay)
	if s.Delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(s.Delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
