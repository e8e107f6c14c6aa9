package model

import "time"

// AlertType identifies the risk rule that produced an alert.
type AlertType string

const (
	AlertOverdue       AlertType = "overdue"
	AlertDueSoon       AlertType = "due_soon"
	AlertUnassigned    AlertType = "unassigned"
	AlertInconsistency AlertType = "inconsistency"
)

// String returns the string representation of the alert type.
func (t AlertType) String() string {
	return string(t)
}

// IsValid returns true if the alert type is a known value.
func (t AlertType) IsValid() bool {
	switch t {
	case AlertOverdue, AlertDueSoon, AlertUnassigned, AlertInconsistency:
		return true
	default:
		return false
	}
}

// Severity classifies how urgent an alert is.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

// String returns the string representation of the severity.
func (s Severity) String() string {
	return string(s)
}

// Rank orders severities for sorting, lowest value first.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 0
	case SeverityWarning:
		return 1
	default:
		return 2
	}
}

// Alert is a derived risk record. It is never persisted; re-running the
// engine against an unchanged snapshot yields byte-identical keys.
type Alert struct {
	Key         string    // deterministic: rule type + owning entity id
	Type        AlertType
	Severity    Severity
	ProjectID   string
	ProjectName string
	PhaseID     string
	TaskID      string
	SubtaskID   string // set only for subtask-level alerts
	Title       string
	Message     string
	EntityURL   string // navigable reference to the owning project view
	DueAt       *time.Time
	ComputedAt  time.Time
}
