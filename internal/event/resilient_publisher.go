package event

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/raptorsgg/orgdash/internal/logger"
)

// ResilientPublisher wraps an event Bus to add retry logic and dead-letter
// queuing. Callers never block on a failing subscriber: the first failure
// hands the event to a background retry loop and returns nil.
type ResilientPublisher struct {
	inner          Bus
	maxRetries     int
	retryDelay     time.Duration
	deadLetterPath string
	mu             sync.Mutex // protects dead-letter file writes
}

// NewResilientPublisher creates a ResilientPublisher and ensures the
// dead-letter directory exists.
func NewResilientPublisher(inner Bus, maxRetries int, retryDelay time.Duration, deadLetterPath string) (*ResilientPublisher, error) {
	if err := os.MkdirAll(filepath.Dir(deadLetterPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create dead-letter directory: %w", err)
	}
	return &ResilientPublisher{
		inner:          inner,
		maxRetries:     maxRetries,
		retryDelay:     retryDelay,
		deadLetterPath: deadLetterPath,
	}, nil
}

// Publish attempts to publish an event. On failure it initiates a background
// retry loop and returns nil; the caller is decoupled from the retries.
func (p *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	err := p.inner.Publish(ctx, event)
	if err == nil {
		return nil
	}

	logger.FromContext(ctx).Warn(LogMsgEventPublishFailed,
		"event_type", event.Type,
		"error", err,
		"retries", p.maxRetries)

	go p.retryLoop(event)

	return nil
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.inner.Subscribe(eventType, handler)
}

func (p *ResilientPublisher) retryLoop(event Event) {
	// Detached context: the originating request may already be gone.
	ctx := context.Background()
	log := logger.FromContext(ctx)

	for attempt := 1; attempt <= p.maxRetries; attempt++ {
		time.Sleep(CalculateRetryDelay(p.retryDelay, attempt))

		if err := p.inner.Publish(ctx, event); err == nil {
			log.Info(LogMsgEventRetrySucceeded, "event_type", event.Type, "attempt", attempt)
			return
		} else {
			log.Warn(LogMsgEventRetryFailed, "event_type", event.Type, "attempt", attempt, "error", err)
		}
	}

	log.Error(LogMsgEventRetryExhausted, "event_type", event.Type)
	p.writeToDeadLetter(event)
}

type deadLetterEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Event     Event     `json:"event"`
}

func (p *ResilientPublisher) writeToDeadLetter(event Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	f, err := os.OpenFile(p.deadLetterPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, DeadLetterFilePermissions)
	if err != nil {
		logger.FromContext(context.Background()).Error(LogMsgDeadLetterWriteFailed, "error", err, "path", p.deadLetterPath)
		return
	}
	defer f.Close()

	entry := deadLetterEntry{
		Timestamp: time.Now(),
		Event:     event,
	}

	log := logger.FromContext(context.Background())
	if err := json.NewEncoder(f).Encode(entry); err != nil {
		log.Error(LogMsgDeadLetterWriteFailed, "error", err)
	} else {
		log.Info(LogMsgDeadLetterWritten, "event_type", event.Type)
	}
}
