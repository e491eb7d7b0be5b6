package jobs

import (
	"context"
	"time"

	"repair_intake/internal/infrastructure/logging"

	"github.com/rs/zerolog"
)

// Periodic runs Task once at start and then on every Interval until the
// context is cancelled. A failed run is logged and retried on the next tick.
type Periodic struct {
	Name     string
	Interval time.Duration
	Timeout  time.Duration
	Task     func(ctx context.Context) (int, error)
	Logger   *zerolog.Logger
}

func (p *Periodic) Run(ctx context.Context) error {
	log := logging.OrNop(p.Logger).With().Str("component", "job").Str("job", p.Name).Logger()
	if p.Interval <= 0 {
		log.Info().Msg("disabled")
		return nil
	}

	t := time.NewTicker(p.Interval)
	defer t.Stop()

	p.tick(ctx, &log)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			p.tick(ctx, &log)
		}
	}
}

func (p *Periodic) tick(ctx context.Context, log *zerolog.Logger) {
	if p.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.Timeout)
		defer cancel()
	}
	n, err := p.Task(ctx)
	if err != nil {
		log.Error().Err(err).Msg("run failed")
		return
	}
	if n > 0 {
		log.Info().Int("affected", n).Msg("run finished")
	}
}

// NewHorizonJob keeps the bookable slot horizon topped up.
func NewHorizonJob(ensure func(ctx context.Context) (int, error), interval time.Duration, logger *zerolog.Logger) *Periodic {
	return &Periodic{Name: "slot_horizon", Interval: interval, Timeout: time.Minute, Task: ensure, Logger: logger}
}

// NewReleaseReconcileJob retries slot releases left pending by cancellations.
func NewReleaseReconcileJob(reconcile func(ctx context.Context) (int, error), interval time.Duration, logger *zerolog.Logger) *Periodic {
	return &Periodic{Name: "release_reconcile", Interval: interval, Timeout: time.Minute, Task: reconcile, Logger: logger}
}
