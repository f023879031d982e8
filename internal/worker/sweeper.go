package worker

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type Sweepable interface {
	SweepExpired(ctx context.Context) (int64, error)
}

// Sweeper periodically hard-deletes expired links.
type Sweeper struct {
	target   Sweepable
	logger   *zap.Logger
	interval time.Duration
}

func NewSweeper(logger *zap.Logger, target Sweepable, interval time.Duration) *Sweeper {
	return &Sweeper{
		target:   target,
		logger:   logger,
		interval: interval,
	}
}

// Run sweeps every interval until ctx is cancelled.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sctx, cancel := context.WithTimeout(ctx, 30*time.Second)
			if _, err := s.target.SweepExpired(sctx); err != nil {
				s.logger.Error("expiry sweep failed", zap.Error(err))
			}
			cancel()
		}
	}
}
