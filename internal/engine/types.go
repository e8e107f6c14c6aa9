package engine

import (
	"time"

	"medflow-insights/internal/model"
)

// Result is the output of one computation pass over a project snapshot.
type Result struct {
	Progress ProgressReport
	Timeline Timeline
	Alerts   []model.Alert
}

// --- Progress rollup ---

type ProgressReport struct {
	ProjectID string
	Percent   int
	Phases    []PhaseProgressEntry
}

type PhaseProgressEntry struct {
	PhaseID string
	Name    string
	Percent int
	Tasks   []TaskProgressEntry
}

type TaskProgressEntry struct {
	TaskID  string
	Name    string
	Percent int
}

// --- Timeline layout ---

// Timeline is the positioned layout of one project. Start/End is the union
// of all phase bounds and task instants; ShowToday marks whether "now" falls
// inside that union.
type Timeline struct {
	ProjectID string
	Start     time.Time
	End       time.Time
	ShowToday bool
	Phases    []PhaseTimeline
}

// PhaseTimeline carries a phase's resolved bounds and its lane-packed tasks.
// LaneCount sizes the rendering canvas.
type PhaseTimeline struct {
	PhaseID   string
	Name      string
	Start     time.Time
	End       time.Time
	LaneCount int
	Tasks     []TaskSpan
}

// TaskSpan is a task's effective interval plus its assigned lane. A
// milestone renders as a point marker centered on its single instant.
type TaskSpan struct {
	TaskID      string
	Name        string
	Start       time.Time
	End         time.Time
	IsMilestone bool
	Lane        int
}
