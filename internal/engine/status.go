package engine

import (
	"strings"

	"medflow-insights/internal/model"
)

// All default-substitution for loosely structured input lives here and in the
// interval normalizer; no other component re-implements it.

// NormalizeStatus maps a free-form status string to its canonical form.
// Unrecognized or missing values fall back to todo.
func NormalizeStatus(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case model.StatusCompleted, "done", "complete":
		return model.StatusCompleted
	case model.StatusInProgress, "doing", "progress":
		return model.StatusInProgress
	case model.StatusTodo, model.StatusNotStarted:
		return model.StatusTodo
	default:
		return model.StatusTodo
	}
}

// StatusWeight maps a lifecycle status to a completion weight in [0,1].
func StatusWeight(s string) float64 {
	switch NormalizeStatus(s) {
	case model.StatusCompleted:
		return 1
	case model.StatusInProgress:
		return 0.5
	default:
		return 0
	}
}

// NormalizePriority returns the task priority, substituting medium when the
// field is missing or unrecognized.
func NormalizePriority(p string) string {
	switch strings.ToLower(strings.TrimSpace(p)) {
	case model.PriorityHigh:
		return model.PriorityHigh
	case model.PriorityLow:
		return model.PriorityLow
	default:
		return model.PriorityMedium
	}
}

// slaWindowDays is the due-soon window per priority.
func slaWindowDays(priority string) int {
	switch NormalizePriority(priority) {
	case model.PriorityHigh:
		return 3
	case model.PriorityLow:
		return 14
	default:
		return 7
	}
}

// subtaskSLAWindowDays is the fixed due-soon window for subtasks, which carry
// no priority field.
const subtaskSLAWindowDays = 7

// milestoneMarkers are tag values that flag a task as a milestone. "hito" is
// kept for data written by the legacy Spanish-language UI.
var milestoneMarkers = map[string]struct{}{
	"milestone":  {},
	"milestones": {},
	"hito":       {},
}

// TaggedMilestone reports whether a task is explicitly flagged or tagged as a
// milestone. Duration-based classification happens in the interval normalizer.
func TaggedMilestone(t model.Task) bool {
	if t.IsMilestone {
		return true
	}
	for _, tag := range t.Tags {
		if _, ok := milestoneMarkers[strings.ToLower(strings.TrimSpace(tag))]; ok {
			return true
		}
	}
	return false
}
