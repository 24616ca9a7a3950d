package event

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Event types
const (
	FinanceOutcomeComputed Type = "finance.outcome.computed"
	ApplicationReceived    Type = "recruitment.application.received"
	AttendanceFlagged      Type = "attendance.low_rate.flagged"
)

// Typed event payloads for type safety

// OutcomeComputedPayloadV1 is the typed payload for monthly outcome events
type OutcomeComputedPayloadV1 struct {
	TeamID            string  `json:"team_id"`
	TeamName          string  `json:"team_name"`
	Month             string  `json:"month"`
	WinPercentage     float64 `json:"win_percentage"`
	StatusUpdate      string  `json:"status_update"`
	UpdatedTier       string  `json:"updated_tier"`
	SponsorshipStatus string  `json:"sponsorship_status"`
	Surplus           float64 `json:"surplus"`
	TeamShare         float64 `json:"team_share"`
}

// ApplicationReceivedPayloadV1 is the typed payload for recruitment events
type ApplicationReceivedPayloadV1 struct {
	Reference string `json:"reference"`
	Handle    string `json:"handle"`
	Game      string `json:"game"`
	Role      string `json:"role"`
}

// AttendanceFlaggedPayloadV1 is the typed payload for low-attendance events
type AttendanceFlaggedPayloadV1 struct {
	TeamID         string  `json:"team_id"`
	Month          string  `json:"month"`
	AttendanceRate float64 `json:"attendance_rate"`
}

// Type-safe event constructors

// NewOutcomeComputedEvent creates a new monthly outcome event
func NewOutcomeComputedEvent(payload OutcomeComputedPayloadV1) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    FinanceOutcomeComputed,
		Payload: payload,
	}
}

// NewApplicationReceivedEvent creates a new recruitment application event
func NewApplicationReceivedEvent(payload ApplicationReceivedPayloadV1) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ApplicationReceived,
		Payload: payload,
	}
}

// NewAttendanceFlaggedEvent creates a new low-attendance event
func NewAttendanceFlaggedEvent(payload AttendanceFlaggedPayloadV1) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    AttendanceFlagged,
		Payload: payload,
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers synchronously.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// CalculateRetryDelay calculates the exponential backoff delay for retry
// attempts: initialDelay * 2^(attempt-1).
func CalculateRetryDelay(baseDelay time.Duration, attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	return baseDelay * time.Duration(1<<(attempt-1))
}
