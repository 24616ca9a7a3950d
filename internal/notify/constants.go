package notify

// Embed colors (Discord decimal RGB)
const (
	ColorPromoted = 0x2ECC71 // green
	ColorRetained = 0x3498DB // blue
	ColorDemoted  = 0xE67E22 // orange
	ColorExited   = 0xE74C3C // red
	ColorNeutral  = 0x95A5A6 // grey
)

// Error message constants
const (
	ErrMsgInvalidWebhookURL = "invalid discord webhook url"
)

// Log message constants
const (
	LogMsgNotifierDisabled    = "Discord notifier disabled, no webhook configured"
	LogMsgNotificationSent    = "Discord notification sent"
	LogMsgNotificationFailed  = "Failed to send Discord notification"
	LogMsgPayloadDecodeFailed = "Failed to decode event payload for notification"
)
