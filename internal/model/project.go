package model

import "time"

// Canonical lifecycle status values. Stored statuses are free-form strings;
// the engine normalizes them before computing weights.
const (
	StatusTodo       = "todo"
	StatusNotStarted = "not_started"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// Task priority values. Missing priority defaults to PriorityMedium.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Project is the root of an entity tree loaded from the store.
// Progress is always derived, never stored on the record.
type Project struct {
	ID        string
	Name      string
	ManagerID *string
	Phases    []Phase // display order
}

// Phase groups tasks under a project. If StartDate/EndDate are absent the
// engine derives bounds from the phase's tasks.
type Phase struct {
	ID            string
	Name          string
	Status        string
	StartDate     *time.Time
	EndDate       *time.Time
	ResponsibleID *string
	Tasks         []Task
}

// Task is the unit of scheduling and risk evaluation.
type Task struct {
	ID          string
	Name        string
	Status      string
	AssignedTo  *string
	DueDate     *time.Time
	StartDate   *time.Time
	CreatedAt   *time.Time
	Priority    string
	Tags        []string
	IsMilestone bool
	Subtasks    []Subtask
}

// Subtask is a leaf work item. It has no children and no priority field.
type Subtask struct {
	ID         string
	Name       string
	Status     string
	AssignedTo *string
	DueDate    *time.Time
}
