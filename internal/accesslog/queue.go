// Package accesslog records one free-text line per API invocation,
// decoupled from the request path: handlers publish to an in-process
// queue and a worker persists the lines. The HTTP response never waits
// for the write and never sees its failures.
package accesslog

import (
	"context"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"go.uber.org/zap"
)

const topic = "access_log"

// Queue is the in-process pub/sub channel between API handlers and the
// access-log worker.
type Queue struct {
	pubSub *gochannel.GoChannel
	log    *zap.Logger
}

func NewQueue(bufferSize int, log *zap.Logger) *Queue {
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{
			OutputChannelBuffer: int64(bufferSize),
		},
		watermill.NopLogger{},
	)

	return &Queue{
		pubSub: pubSub,
		log:    log.With(zap.String("component", "accesslog_queue")),
	}
}

// Publish enqueues one log line, fire and forget. Publish failures are
// logged and dropped; callers get no error by design.
func (q *Queue) Publish(text string) {
	msg := message.NewMessage(watermill.NewUUID(), []byte(text))
	if err := q.pubSub.Publish(topic, msg); err != nil {
		q.log.Warn("Failed to publish access log line",
			zap.Error(err),
			zap.String("text", text),
		)
	}
}

// Subscribe returns the consumer channel for the worker.
func (q *Queue) Subscribe(ctx context.Context) (<-chan *message.Message, error) {
	return q.pubSub.Subscribe(ctx, topic)
}

// Close shuts the queue down; pending subscribers see their channel
// closed.
func (q *Queue) Close() error {
	return q.pubSub.Close()
}
