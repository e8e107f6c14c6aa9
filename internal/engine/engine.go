// Package engine is the progress, scheduling and risk analytics core. It is
// pure and synchronous: each pass takes an immutable project snapshot plus a
// suppression view and derives progress rollups, a conflict-free timeline
// layout and a filtered alert list. The engine performs no I/O; re-running it
// against an unchanged snapshot yields identical output.
package engine

import (
	"sort"
	"time"

	"medflow-insights/internal/model"
	"medflow-insights/internal/suppression"
)

// Compute runs one full pass over a project snapshot for the given viewer.
func Compute(p model.Project, viewer model.Scope, now time.Time, sup suppression.View) Result {
	return Result{
		Progress: progressReport(p),
		Timeline: timeline(p, now),
		Alerts:   ProjectAlerts(p, viewer, now, sup),
	}
}

// ProjectAlerts evaluates every rule for every task reachable by the viewer,
// filters through the suppression view and returns a deterministically
// ordered list.
func ProjectAlerts(p model.Project, viewer model.Scope, now time.Time, sup suppression.View) []model.Alert {
	if viewer.Role == model.RoleViewer {
		return nil
	}

	alerts := make([]model.Alert, 0)
	for _, ph := range p.Phases {
		for _, t := range ph.Tasks {
			alerts = append(alerts, taskAlerts(p, ph, t, viewer, now)...)
		}
	}

	filtered := alerts[:0]
	for _, a := range alerts {
		if !sup.Suppressed(a.Key, now) {
			filtered = append(filtered, a)
		}
	}

	SortAlerts(filtered)
	return filtered
}

// SortAlerts orders by severity, then due instant (absent last), then key,
// so two passes over the same snapshot emit the same sequence.
func SortAlerts(alerts []model.Alert) {
	sort.SliceStable(alerts, func(i, j int) bool {
		a, b := alerts[i], alerts[j]
		if a.Severity.Rank() != b.Severity.Rank() {
			return a.Severity.Rank() < b.Severity.Rank()
		}
		switch {
		case a.DueAt != nil && b.DueAt != nil && !a.DueAt.Equal(*b.DueAt):
			return a.DueAt.Before(*b.DueAt)
		case a.DueAt != nil && b.DueAt == nil:
			return true
		case a.DueAt == nil && b.DueAt != nil:
			return false
		}
		return a.Key < b.Key
	})
}

// timeline resolves phase bounds, normalizes task intervals and packs lanes
// for one project.
func timeline(p model.Project, now time.Time) Timeline {
	tl := Timeline{
		ProjectID: p.ID,
		Phases:    make([]PhaseTimeline, 0, len(p.Phases)),
	}

	var union []time.Time
	for _, ph := range p.Phases {
		start, end := PhaseBounds(ph, now)

		spans := make([]TaskSpan, 0, len(ph.Tasks))
		for _, t := range ph.Tasks {
			s, e, milestone := NormalizeTask(t, start, end)
			spans = append(spans, TaskSpan{
				TaskID:      t.ID,
				Name:        t.Name,
				Start:       s,
				End:         e,
				IsMilestone: milestone,
			})
		}
		placed, laneCount := AssignLanes(spans)

		union = append(union, start, end)
		for _, span := range placed {
			union = append(union, span.Start, span.End)
		}

		tl.Phases = append(tl.Phases, PhaseTimeline{
			PhaseID:   ph.ID,
			Name:      ph.Name,
			Start:     start,
			End:       end,
			LaneCount: laneCount,
			Tasks:     placed,
		})
	}

	tl.Start, tl.End = rangeOf(union, now)
	tl.ShowToday = !now.Before(tl.Start) && !now.After(tl.End)
	return tl
}
