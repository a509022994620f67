package application

import (
	"context"
	"time"

	"zocker/domain/interfaces"

	log "github.com/sirupsen/logrus"
)

// DrawAnnouncer posts draw results to the chat platform. A nil announcer
// means draws execute silently.
type DrawAnnouncer interface {
	AnnounceDrawResult(ctx context.Context, result *interfaces.LotteryDrawResult) error
}

// DrawWorker ticks the lottery engine's draw check on its own timer,
// independent of command handling.
type DrawWorker struct {
	lottery   interfaces.LotteryService
	announcer DrawAnnouncer
	interval  time.Duration
}

// NewDrawWorker creates a new lottery draw worker.
func NewDrawWorker(lottery interfaces.LotteryService, announcer DrawAnnouncer, interval time.Duration) *DrawWorker {
	if interval <= 0 {
		interval = time.Minute
	}
	return &DrawWorker{
		lottery:   lottery,
		announcer: announcer,
		interval:  interval,
	}
}

// Start begins the worker goroutine and returns a stop function.
func (w *DrawWorker) Start(ctx context.Context) func() {
	stopChan := make(chan struct{})

	go func() {
		log.Info("Lottery draw worker started")

		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			w.tick(ctx)

			select {
			case <-ctx.Done():
				log.Info("Lottery draw worker shutting down (context cancelled)...")
				return
			case <-stopChan:
				log.Info("Lottery draw worker shutting down (stop requested)...")
				return
			case <-ticker.C:
			}
		}
	}()

	return func() {
		close(stopChan)
	}
}

func (w *DrawWorker) tick(ctx context.Context) {
	result, err := w.lottery.CheckAndDraw(ctx)
	if err != nil {
		log.Errorf("Error executing lottery draw check: %v", err)
		return
	}
	if result == nil {
		return
	}

	if w.announcer != nil {
		if err := w.announcer.AnnounceDrawResult(ctx, result); err != nil {
			// The draw itself succeeded; announcement is best-effort.
			log.Errorf("Failed to announce lottery draw result: %v", err)
		}
	}
}
