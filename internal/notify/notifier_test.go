package notify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raptorsgg/orgdash/internal/event"
)

func TestParseWebhookURL(t *testing.T) {
	cases := []struct {
		name      string
		url       string
		wantID    string
		wantToken string
		wantErr   bool
	}{
		{
			name:      "standard url",
			url:       "https://discord.com/api/webhooks/123456789/abcDEF-token_xyz",
			wantID:    "123456789",
			wantToken: "abcDEF-token_xyz",
		},
		{
			name:      "trailing slash",
			url:       "https://discord.com/api/webhooks/123456789/abcDEF/",
			wantID:    "123456789",
			wantToken: "abcDEF",
		},
		{
			name:    "missing token",
			url:     "https://discord.com/api/webhooks/123456789",
			wantErr: true,
		},
		{
			name:    "not a webhook url",
			url:     "https://example.com/some/path",
			wantErr: true,
		},
		{
			name:    "empty segments",
			url:     "https://discord.com/api/webhooks//",
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			id, token, err := parseWebhookURL(tc.url)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantID, id)
			assert.Equal(t, tc.wantToken, token)
		})
	}
}

func TestNewNotifier(t *testing.T) {
	t.Run("empty url disables", func(t *testing.T) {
		notifier, err := NewNotifier("")
		require.NoError(t, err)
		assert.False(t, notifier.enabled)
	})

	t.Run("valid url enables", func(t *testing.T) {
		notifier, err := NewNotifier("https://discord.com/api/webhooks/123/tok")
		require.NoError(t, err)
		assert.True(t, notifier.enabled)
		assert.Equal(t, "123", notifier.webhookID)
		assert.Equal(t, "tok", notifier.token)
	})

	t.Run("bad url errors", func(t *testing.T) {
		_, err := NewNotifier("https://example.com/nope")
		assert.Error(t, err)
	})
}

func TestRegister_DisabledSubscribesNothing(t *testing.T) {
	notifier, err := NewNotifier("")
	require.NoError(t, err)

	bus := event.NewMemoryBus()
	notifier.Register(bus)

	// A disabled notifier must not try to execute a webhook when events fire.
	evt := event.NewOutcomeComputedEvent(event.OutcomeComputedPayloadV1{TeamName: "Raptors Main"})
	assert.NoError(t, bus.Publish(context.Background(), evt))
}

func TestStatusColor(t *testing.T) {
	assert.Equal(t, ColorPromoted, statusColor("promoted"))
	assert.Equal(t, ColorRetained, statusColor("retained"))
	assert.Equal(t, ColorDemoted, statusColor("demoted"))
	assert.Equal(t, ColorExited, statusColor("exited"))
	assert.Equal(t, ColorNeutral, statusColor("unknown"))
}
