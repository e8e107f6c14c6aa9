package usecase

import (
	"context"
	"fmt"

	"medflow-insights/internal/engine"
	"medflow-insights/internal/insights"
	"medflow-insights/internal/model"
	"medflow-insights/pkg/gcalendar"
)

// SyncCalendar mirrors a project's open deadlines into Google Calendar.
// Only project managers and admins may push to the shared calendar.
// Completed work is left out; items without a due date are counted as
// skipped.
func (uc *implUseCase) SyncCalendar(ctx context.Context, sc model.Scope, projectID string) (insights.SyncCalendarOutput, error) {
	if sc.Role != model.RoleProjectManager && sc.Role != model.RoleAdmin {
		uc.l.Warnf(ctx, "insights.usecase.SyncCalendar: role %s denied for user %s", sc.Role, sc.UserID)
		return insights.SyncCalendarOutput{}, insights.ErrForbidden
	}
	if uc.calendar == nil {
		return insights.SyncCalendarOutput{}, insights.ErrCalendarNotEnabled
	}

	p, err := uc.loadProject(ctx, projectID)
	if err != nil {
		return insights.SyncCalendarOutput{}, err
	}

	var out insights.SyncCalendarOutput
	var deadlines []gcalendar.DeadlineEvent

	for _, ph := range p.Phases {
		for _, t := range ph.Tasks {
			if engine.NormalizeStatus(t.Status) == model.StatusCompleted {
				continue
			}
			if t.DueDate == nil {
				out.Skipped++
			} else {
				deadlines = append(deadlines, gcalendar.DeadlineEvent{
					SourceKey:   fmt.Sprintf("task_%s", t.ID),
					Summary:     fmt.Sprintf("[%s] %s due", p.Name, t.Name),
					Description: fmt.Sprintf("Phase: %s", ph.Name),
					Due:         *t.DueDate,
				})
			}

			for _, st := range t.Subtasks {
				if engine.NormalizeStatus(st.Status) == model.StatusCompleted {
					continue
				}
				if st.DueDate == nil {
					out.Skipped++
					continue
				}
				deadlines = append(deadlines, gcalendar.DeadlineEvent{
					SourceKey:   fmt.Sprintf("sub_%s", st.ID),
					Summary:     fmt.Sprintf("[%s] %s due", p.Name, st.Name),
					Description: fmt.Sprintf("Task: %s", t.Name),
					Due:         *st.DueDate,
				})
			}
		}
	}

	result, err := uc.calendar.SyncDeadlines(ctx, deadlines)
	if err != nil {
		uc.l.Errorf(ctx, "insights.usecase.SyncCalendar: %v", err)
		return insights.SyncCalendarOutput{}, err
	}

	out.Created = result.Created
	out.Updated = result.Updated
	uc.l.Infof(ctx, "calendar sync for project %s: %d created, %d updated, %d skipped",
		projectID, out.Created, out.Updated, out.Skipped)
	return out, nil
}
