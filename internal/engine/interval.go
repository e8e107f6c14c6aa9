package engine

import (
	"time"

	"medflow-insights/internal/model"
)

const day = 24 * time.Hour

// defaultPhaseSpanDays bounds a phase with no date information anywhere:
// today through today+30.
const defaultPhaseSpanDays = 30

// zeroWidthExtensionDays widens a derived phase whose min equals its max, so
// no phase ever renders with zero width.
const zeroWidthExtensionDays = 7

// rangeOf returns the min/max over a candidate set, applying the last-resort
// default and the zero-width extension.
func rangeOf(dates []time.Time, now time.Time) (time.Time, time.Time) {
	var min, max time.Time
	for _, d := range dates {
		if d.IsZero() {
			continue
		}
		if min.IsZero() || d.Before(min) {
			min = d
		}
		if max.IsZero() || d.After(max) {
			max = d
		}
	}

	if min.IsZero() {
		return now, now.AddDate(0, 0, defaultPhaseSpanDays)
	}
	if min.Equal(max) {
		return min, max.AddDate(0, 0, zeroWidthExtensionDays)
	}
	return min, max
}

// PhaseBounds resolves a phase's [start,end]. Explicit bounds win; otherwise
// the bounds derive from every candidate instant on the phase's own tasks,
// falling back to [now, now+30d] when no candidate exists anywhere.
func PhaseBounds(ph model.Phase, now time.Time) (time.Time, time.Time) {
	if ph.StartDate != nil && ph.EndDate != nil {
		return *ph.StartDate, *ph.EndDate
	}

	var cands []time.Time
	for _, t := range ph.Tasks {
		if s := firstInstant(t.StartDate, t.CreatedAt); !s.IsZero() {
			cands = append(cands, s)
		}
		if e := firstInstant(t.DueDate, t.StartDate); !e.IsZero() {
			cands = append(cands, e)
		}
	}
	min, max := rangeOf(cands, now)

	if ph.StartDate != nil {
		min = *ph.StartDate
	}
	if ph.EndDate != nil {
		max = *ph.EndDate
	}
	return min, max
}

// NormalizeTask resolves a task's effective interval against its phase
// bounds and classifies it as a rendering milestone.
//
// Start: explicit start, else creation instant, else the phase start.
// End: explicit due, else the explicit start, else the phase end. The
// creation instant anchors the start but never the end, so a task known only
// by its creation date spans from there to the end of its phase. A tagged
// milestone collapses to a single representative instant (due, then start,
// then the phase midpoint). Anything whose resolved duration is under one
// day renders as a milestone regardless of tags.
func NormalizeTask(t model.Task, phaseStart, phaseEnd time.Time) (time.Time, time.Time, bool) {
	start := firstInstant(t.StartDate, t.CreatedAt)
	if start.IsZero() {
		start = phaseStart
	}

	var end time.Time
	switch {
	case t.DueDate != nil:
		end = *t.DueDate
	case t.StartDate != nil:
		end = *t.StartDate
	default:
		end = phaseEnd
	}

	if TaggedMilestone(t) {
		at := firstInstant(t.DueDate, t.StartDate)
		if at.IsZero() {
			at = phaseStart.Add(phaseEnd.Sub(phaseStart) / 2)
		}
		start, end = at, at
	}

	width := end.Sub(start)
	if width < 0 {
		width = -width
	}
	return start, end, width < day
}

// firstInstant returns the first non-nil instant, or the zero time.
func firstInstant(candidates ...*time.Time) time.Time {
	for _, c := range candidates {
		if c != nil {
			return *c
		}
	}
	return time.Time{}
}
