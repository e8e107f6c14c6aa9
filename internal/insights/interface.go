package insights

import (
	"context"

	"medflow-insights/internal/engine"
	"medflow-insights/internal/model"
)

// UseCase defines the business logic interface for the insights domain.
type UseCase interface {
	// ListProjects returns project summaries the viewer may browse.
	ListProjects(ctx context.Context, sc model.Scope, input ListProjectsInput) ([]model.Project, error)

	// Progress returns the derived completion rollup for one project.
	Progress(ctx context.Context, sc model.Scope, projectID string) (engine.ProgressReport, error)

	// Timeline returns the lane-packed schedule layout for one project.
	Timeline(ctx context.Context, sc model.Scope, projectID string) (engine.Timeline, error)

	// Alerts returns the suppression-filtered alert list for one project.
	Alerts(ctx context.Context, sc model.Scope, projectID string) ([]model.Alert, error)

	// AllAlerts aggregates alerts across every project the viewer can see.
	AllAlerts(ctx context.Context, sc model.Scope) ([]model.Alert, error)

	// Acknowledge hides an alert key permanently until cleared.
	Acknowledge(ctx context.Context, sc model.Scope, key string) error

	// ClearAcknowledgement re-enables a previously acknowledged alert key.
	ClearAcknowledgement(ctx context.Context, sc model.Scope, key string) error

	// Snooze hides an alert key for the given number of days.
	Snooze(ctx context.Context, sc model.Scope, input SnoozeInput) error

	// SyncCalendar mirrors a project's open deadlines into Google Calendar.
	SyncCalendar(ctx context.Context, sc model.Scope, projectID string) (SyncCalendarOutput, error)
}
