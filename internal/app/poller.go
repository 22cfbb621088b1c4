package app

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// lister is the part of the controller the poller drives.
type lister interface {
	List(ctx context.Context) error
}

// Poller reloads the saved collection at a fixed cadence. A failed reload is
// logged and the next one happens on schedule; there is no retry.
type Poller struct {
	lister   lister
	interval time.Duration
	log      *zap.Logger
}

// NewPoller returns a poller, or nil when interval disables auto-refresh.
func NewPoller(l lister, interval time.Duration, log *zap.Logger) *Poller {
	if interval <= 0 || l == nil {
		return nil
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Poller{lister: l, interval: interval, log: log.Named("poller")}
}

// Run blocks until ctx is cancelled. The first reload happens one interval
// after start.
func (p *Poller) Run(ctx context.Context) error {
	failures := 0
	timer := time.NewTimer(p.interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
		}

		if err := p.lister.List(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			failures++
			p.log.Warn("auto refresh failed", zap.Int("failures", failures), zap.Error(err))
		} else {
			failures = 0
		}
		timer.Reset(p.interval)
	}
}
