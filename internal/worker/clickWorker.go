// Package worker holds the background jobs of the shortener: batched click
// accounting for cache hits and the periodic expiry sweep.
package worker

import (
	"context"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultFlushInterval = 5 * time.Second
	DefaultBatchSize     = 100
	defaultQueueSize     = 1024
)

type ClickRepo interface {
	RecordClicks(ctx context.Context, code string, n int64, at time.Time) error
}

type click struct {
	code string
	at   time.Time
}

type pending struct {
	n    int64
	last time.Time
}

// ClickWorker accumulates clicks per short code and writes them in batches.
// Record never blocks: when the queue is full the click is dropped.
type ClickWorker struct {
	in        chan click
	logger    *zap.Logger
	repo      ClickRepo
	interval  time.Duration
	batchSize int
	done      chan struct{}
}

func NewClickWorker(logger *zap.Logger, repo ClickRepo, interval time.Duration, batchSize int) *ClickWorker {
	if interval <= 0 {
		interval = DefaultFlushInterval
	}
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	return &ClickWorker{
		in:        make(chan click, defaultQueueSize),
		logger:    logger,
		repo:      repo,
		interval:  interval,
		batchSize: batchSize,
		done:      make(chan struct{}),
	}
}

func (w *ClickWorker) Record(code string, at time.Time) {
	select {
	case w.in <- click{code: code, at: at}:
	default:
		w.logger.Warn("click queue full, dropping click", zap.String("short_code", code))
	}
}

// Done is closed once Run has flushed its last batch.
func (w *ClickWorker) Done() <-chan struct{} {
	return w.done
}

// Run consumes clicks until ctx is cancelled, then drains the queue and
// flushes what is left.
func (w *ClickWorker) Run(ctx context.Context) {
	defer close(w.done)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	batch := make(map[string]*pending)
	events := 0

	add := func(c click) {
		p, ok := batch[c.code]
		if !ok {
			p = &pending{}
			batch[c.code] = p
		}
		p.n++
		if c.at.After(p.last) {
			p.last = c.at
		}
		events++
	}

	flush := func() {
		if len(batch) == 0 {
			return
		}
		w.logger.Debug("flushing clicks", zap.Int("codes", len(batch)), zap.Int("events", events))

		fctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()

		for code, p := range batch {
			// ErrNotFound means the link went away; its clicks are moot.
			if err := w.repo.RecordClicks(fctx, code, p.n, p.last); err != nil {
				w.logger.Warn("cannot record clicks", zap.String("short_code", code), zap.Int64("clicks", p.n), zap.Error(err))
			}
		}

		clear(batch)
		events = 0
	}

	for {
		select {
		case c := <-w.in:
			add(c)
			if events >= w.batchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		case <-ctx.Done():
			for {
				select {
				case c := <-w.in:
					add(c)
				default:
					flush()
					return
				}
			}
		}
	}
}
