package worker

// Log messages - worker pool
const LogMsgWorkerJobFailed = "Worker job failed"

// Log messages - monthly close worker
const (
	LogMsgMonthlyCloseScheduled = "Monthly close scheduled"
	LogMsgMonthlyCloseTriggered = "Monthly close triggered"
	LogMsgMonthlyCloseCompleted = "Monthly close completed"
	LogMsgMonthlyCloseFailed    = "Monthly close failed"
	LogMsgMonthlyCloseStopped   = "Monthly close worker stopped"
)
