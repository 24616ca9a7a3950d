package notify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/raptorsgg/orgdash/internal/event"
	"github.com/raptorsgg/orgdash/internal/logger"
)

// Notifier pushes organization events to a Discord channel through a
// webhook. A nil-configured notifier is a no-op so local development works
// without a webhook.
type Notifier struct {
	session   *discordgo.Session
	webhookID string
	token     string
	enabled   bool
}

// NewNotifier creates a Notifier from a Discord webhook URL. An empty URL
// yields a disabled notifier.
func NewNotifier(webhookURL string) (*Notifier, error) {
	if webhookURL == "" {
		return &Notifier{}, nil
	}

	id, token, err := parseWebhookURL(webhookURL)
	if err != nil {
		return nil, err
	}

	// Webhook execution needs no bot token; the empty-token session is just
	// the HTTP client.
	session, err := discordgo.New("")
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}

	return &Notifier{
		session:   session,
		webhookID: id,
		token:     token,
		enabled:   true,
	}, nil
}

// Register subscribes the notifier to the events it reports on
func (n *Notifier) Register(bus event.Bus) {
	if !n.enabled {
		logger.FromContext(context.Background()).Info(LogMsgNotifierDisabled)
		return
	}

	bus.Subscribe(event.FinanceOutcomeComputed, n.handleOutcome)
	bus.Subscribe(event.ApplicationReceived, n.handleApplication)
	bus.Subscribe(event.AttendanceFlagged, n.handleAttendance)
}

func (n *Notifier) handleOutcome(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	payload, err := event.DecodePayload[event.OutcomeComputedPayloadV1](evt.Payload)
	if err != nil {
		log.Warn(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
		return nil
	}

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("Monthly outcome: %s (%s)", payload.TeamName, payload.Month),
		Color: statusColor(payload.StatusUpdate),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Win rate", Value: fmt.Sprintf("%.1f%%", payload.WinPercentage), Inline: true},
			{Name: "Status", Value: payload.StatusUpdate, Inline: true},
			{Name: "Tier", Value: payload.UpdatedTier, Inline: true},
			{Name: "Sponsorship", Value: payload.SponsorshipStatus, Inline: true},
			{Name: "Surplus", Value: fmt.Sprintf("%.2f", payload.Surplus), Inline: true},
			{Name: "Team share", Value: fmt.Sprintf("%.2f", payload.TeamShare), Inline: true},
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}

	return n.execute(ctx, embed)
}

func (n *Notifier) handleApplication(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	payload, err := event.DecodePayload[event.ApplicationReceivedPayloadV1](evt.Payload)
	if err != nil {
		log.Warn(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
		return nil
	}

	embed := &discordgo.MessageEmbed{
		Title: "New recruitment application",
		Color: ColorNeutral,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Reference", Value: payload.Reference, Inline: true},
			{Name: "Handle", Value: payload.Handle, Inline: true},
			{Name: "Game", Value: payload.Game, Inline: true},
			{Name: "Role", Value: payload.Role, Inline: true},
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}

	return n.execute(ctx, embed)
}

func (n *Notifier) handleAttendance(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	payload, err := event.DecodePayload[event.AttendanceFlaggedPayloadV1](evt.Payload)
	if err != nil {
		log.Warn(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
		return nil
	}

	embed := &discordgo.MessageEmbed{
		Title:       "Low attendance flagged",
		Description: fmt.Sprintf("Team `%s` dropped to **%.1f%%** verified attendance for %s.", payload.TeamID, payload.AttendanceRate, payload.Month),
		Color:       ColorDemoted,
		Timestamp:   time.Now().Format(time.RFC3339),
	}

	return n.execute(ctx, embed)
}

func (n *Notifier) execute(ctx context.Context, embed *discordgo.MessageEmbed) error {
	log := logger.FromContext(ctx)

	_, err := n.session.WebhookExecute(n.webhookID, n.token, false, &discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{embed},
	})
	if err != nil {
		log.Warn(LogMsgNotificationFailed, "title", embed.Title, "error", err)
		return fmt.Errorf("webhook execute failed: %w", err)
	}

	log.Debug(LogMsgNotificationSent, "title", embed.Title)
	return nil
}

func statusColor(status string) int {
	switch status {
	case "promoted":
		return ColorPromoted
	case "retained":
		return ColorRetained
	case "demoted":
		return ColorDemoted
	case "exited":
		return ColorExited
	}
	return ColorNeutral
}

// parseWebhookURL extracts the webhook ID and token from a standard
// discord.com/api/webhooks/{id}/{token} URL.
func parseWebhookURL(url string) (id, token string, err error) {
	const marker = "/webhooks/"
	idx := strings.Index(url, marker)
	if idx < 0 {
		return "", "", fmt.Errorf("%s: %s", ErrMsgInvalidWebhookURL, url)
	}

	parts := strings.Split(strings.TrimSuffix(url[idx+len(marker):], "/"), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("%s: %s", ErrMsgInvalidWebhookURL, url)
	}
	return parts[0], parts[1], nil
}
