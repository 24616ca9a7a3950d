package config

import "time"

// Default configuration values
const (
	DefaultPort        = 8080
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultServiceName = "orgdash"
	DefaultVersion     = "dev"
	DefaultEnvironment = "dev"
	DefaultDBName      = "orgdash"

	DefaultDBMaxConns = 10
	DefaultDBMaxIdle  = 5 * time.Minute
	DefaultDBMaxLife  = 30 * time.Minute

	DefaultPolicyPath       = "configs/policy/tier_policy.json"
	DefaultPolicySchemaPath = "configs/policy/tier_policy.schema.json"

	// First day of each month at 03:00; recomputes the previous month.
	DefaultMonthlyCloseSchedule = "0 3 1 * *"

	DefaultAllowedOrigins = "http://localhost:3000"

	DefaultEventMaxRetries     = 3
	DefaultEventRetryDelay     = 2 * time.Second
	DefaultEventDeadLetterPath = "data/deadletter/events.jsonl"
)
