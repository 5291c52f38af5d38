package accesslog

import (
	"context"
	"sync"

	"review-insights/internal/data/repository"

	"go.uber.org/zap"
)

// Worker drains the queue and inserts one AccessLog row per message.
// Insert failures are logged and the message is acked anyway: the
// contract is fire and forget, a lost line must never wedge the queue.
type Worker struct {
	queue  *Queue
	repo   repository.AccessLogRepository
	log    *zap.Logger
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewWorker(queue *Queue, repo repository.AccessLogRepository, log *zap.Logger) *Worker {
	return &Worker{
		queue: queue,
		repo:  repo,
		log:   log.With(zap.String("component", "accesslog_worker")),
	}
}

// Start subscribes and consumes until Stop is called or the queue
// closes.
func (w *Worker) Start() error {
	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel

	messages, err := w.queue.Subscribe(ctx)
	if err != nil {
		cancel()
		return err
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		for msg := range messages {
			text := string(msg.Payload)
			if err := w.repo.Create(ctx, text); err != nil {
				w.log.Warn("Failed to persist access log line",
					zap.Error(err),
					zap.String("text", text),
				)
			}
			msg.Ack()
		}
	}()

	w.log.Info("Access log worker started")
	return nil
}

// Stop cancels the subscription and waits for the consumer goroutine to
// drain.
func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	w.wg.Wait()
	w.log.Info("Access log worker stopped")
}
