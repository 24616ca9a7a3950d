package event

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBus_PublishDeliversToSubscribers(t *testing.T) {
	bus := NewMemoryBus()

	var got []Event
	bus.Subscribe(FinanceOutcomeComputed, func(_ context.Context, e Event) error {
		got = append(got, e)
		return nil
	})

	evt := NewOutcomeComputedEvent(OutcomeComputedPayloadV1{TeamID: "team-1", Month: "2026-07"})
	require.NoError(t, bus.Publish(context.Background(), evt))

	require.Len(t, got, 1)
	assert.Equal(t, FinanceOutcomeComputed, got[0].Type)
	assert.Equal(t, EventSchemaVersion, got[0].Version)
}

func TestMemoryBus_NoSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	err := bus.Publish(context.Background(), NewAttendanceFlaggedEvent(AttendanceFlaggedPayloadV1{}))
	assert.NoError(t, err)
}

func TestMemoryBus_TypeIsolation(t *testing.T) {
	bus := NewMemoryBus()

	calls := 0
	bus.Subscribe(ApplicationReceived, func(_ context.Context, _ Event) error {
		calls++
		return nil
	})

	require.NoError(t, bus.Publish(context.Background(), NewOutcomeComputedEvent(OutcomeComputedPayloadV1{})))
	assert.Zero(t, calls)

	require.NoError(t, bus.Publish(context.Background(), NewApplicationReceivedEvent(ApplicationReceivedPayloadV1{})))
	assert.Equal(t, 1, calls)
}

func TestMemoryBus_CollectsHandlerErrors(t *testing.T) {
	bus := NewMemoryBus()

	handlerErr := errors.New("handler down")
	delivered := 0
	bus.Subscribe(AttendanceFlagged, func(_ context.Context, _ Event) error { return handlerErr })
	bus.Subscribe(AttendanceFlagged, func(_ context.Context, _ Event) error {
		delivered++
		return nil
	})

	err := bus.Publish(context.Background(), NewAttendanceFlaggedEvent(AttendanceFlaggedPayloadV1{}))
	assert.Error(t, err)
	// One failing handler does not stop delivery to the others.
	assert.Equal(t, 1, delivered)
}

func TestCalculateRetryDelay(t *testing.T) {
	base := 100 * time.Millisecond

	cases := []struct {
		attempt int
		want    time.Duration
	}{
		{1, 100 * time.Millisecond},
		{2, 200 * time.Millisecond},
		{3, 400 * time.Millisecond},
		{4, 800 * time.Millisecond},
		{0, 100 * time.Millisecond},  // clamped to attempt 1
		{-5, 100 * time.Millisecond}, // clamped to attempt 1
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, CalculateRetryDelay(base, tc.attempt), "attempt %d", tc.attempt)
	}
}

func TestDecodePayload(t *testing.T) {
	t.Run("in-process struct passes through", func(t *testing.T) {
		original := OutcomeComputedPayloadV1{TeamID: "team-1", Surplus: 1234.5}
		decoded, err := DecodePayload[OutcomeComputedPayloadV1](original)
		require.NoError(t, err)
		assert.Equal(t, original, decoded)
	})

	t.Run("json map round-trips", func(t *testing.T) {
		raw := map[string]interface{}{
			"team_id":         "team-1",
			"month":           "2026-07",
			"attendance_rate": 62.5,
		}
		decoded, err := DecodePayload[AttendanceFlaggedPayloadV1](raw)
		require.NoError(t, err)
		assert.Equal(t, "team-1", decoded.TeamID)
		assert.InDelta(t, 62.5, decoded.AttendanceRate, 1e-9)
	})
}
