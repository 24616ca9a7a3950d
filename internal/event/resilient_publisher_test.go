package event

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flakyBus fails the first failUntil publishes, then succeeds
type flakyBus struct {
	mu        sync.Mutex
	calls     int
	failUntil int
}

func (b *flakyBus) Publish(_ context.Context, _ Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls++
	if b.calls <= b.failUntil {
		return errors.New("subscriber unavailable")
	}
	return nil
}

func (b *flakyBus) Subscribe(_ Type, _ Handler) {}

func (b *flakyBus) callCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls
}

func deadLetterFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "events", "dead_letter.jsonl")
}

func TestResilientPublisher_SuccessPassesThrough(t *testing.T) {
	inner := &flakyBus{}
	pub, err := NewResilientPublisher(inner, 3, time.Millisecond, deadLetterFile(t))
	require.NoError(t, err)

	require.NoError(t, pub.Publish(context.Background(), NewOutcomeComputedEvent(OutcomeComputedPayloadV1{})))
	assert.Equal(t, 1, inner.callCount())
}

func TestResilientPublisher_RetriesInBackground(t *testing.T) {
	inner := &flakyBus{failUntil: 2}
	pub, err := NewResilientPublisher(inner, 5, time.Millisecond, deadLetterFile(t))
	require.NoError(t, err)

	// The caller never sees the failure.
	require.NoError(t, pub.Publish(context.Background(), NewOutcomeComputedEvent(OutcomeComputedPayloadV1{})))

	assert.Eventually(t, func() bool {
		return inner.callCount() >= 3
	}, time.Second, 5*time.Millisecond)
}

func TestResilientPublisher_ExhaustedRetriesGoToDeadLetter(t *testing.T) {
	path := deadLetterFile(t)
	inner := &flakyBus{failUntil: 100} // never recovers
	pub, err := NewResilientPublisher(inner, 2, time.Millisecond, path)
	require.NoError(t, err)

	evt := NewAttendanceFlaggedEvent(AttendanceFlaggedPayloadV1{TeamID: "team-1", Month: "2026-07", AttendanceRate: 40})
	require.NoError(t, pub.Publish(context.Background(), evt))

	require.Eventually(t, func() bool {
		_, err := os.Stat(path)
		return err == nil
	}, time.Second, 5*time.Millisecond)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	scanner := bufio.NewScanner(f)
	require.True(t, scanner.Scan())

	var entry struct {
		Timestamp time.Time `json:"timestamp"`
		Event     Event     `json:"event"`
	}
	require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))

	assert.Equal(t, AttendanceFlagged, entry.Event.Type)
	assert.False(t, entry.Timestamp.IsZero())

	payload, err := DecodePayload[AttendanceFlaggedPayloadV1](entry.Event.Payload)
	require.NoError(t, err)
	assert.Equal(t, "team-1", payload.TeamID)
	assert.InDelta(t, 40.0, payload.AttendanceRate, 1e-9)
}

func TestResilientPublisher_CreatesDeadLetterDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "dead_letter.jsonl")

	_, err := NewResilientPublisher(NewMemoryBus(), 1, time.Millisecond, path)
	require.NoError(t, err)

	info, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
