package gcalendar

import "time"

// DeadlineEvent describes one project deadline to mirror into a calendar.
// SourceKey identifies the originating task or subtask and makes the
// upsert idempotent.
type DeadlineEvent struct {
	SourceKey   string
	Summary     string
	Description string
	Due         time.Time
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID        string
	Summary   string
	HtmlLink  string
	SourceKey string
	Due       time.Time
}

// SyncResult reports what one sync pass did.
type SyncResult struct {
	Created int
	Updated int
}
