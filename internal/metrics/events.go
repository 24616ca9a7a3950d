package metrics

import (
	"context"

	"github.com/raptorsgg/orgdash/internal/event"
	"github.com/raptorsgg/orgdash/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.FinanceOutcomeComputed,
		event.ApplicationReceived,
		event.AttendanceFlagged,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.FinanceOutcomeComputed:
		payload, err := event.DecodePayload[event.OutcomeComputedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		OutcomesComputed.WithLabelValues(payload.StatusUpdate, payload.UpdatedTier).Inc()
		if payload.TeamShare > 0 {
			SurplusDistributed.Add(payload.TeamShare)
		}

	case event.ApplicationReceived:
		payload, err := event.DecodePayload[event.ApplicationReceivedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		ApplicationsReceived.WithLabelValues(payload.Game).Inc()

	case event.AttendanceFlagged:
		AttendanceFlagged.Inc()
	}

	return nil
}
