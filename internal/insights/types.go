package insights

// ListProjectsInput holds list filters and pagination.
type ListProjectsInput struct {
	ManagerID string
	Limit     int
	Offset    int
}

// SnoozeInput holds the parameters for snoozing an alert key.
// Days <= 0 falls back to the configured default snooze window.
type SnoozeInput struct {
	Key  string
	Days int
}

// SyncCalendarOutput reports what one calendar sync pass did.
type SyncCalendarOutput struct {
	Created int
	Updated int
	Skipped int // deadlines without a due date
}
