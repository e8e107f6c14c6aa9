package engine

import (
	"fmt"
	"time"

	"medflow-insights/internal/model"
)

// Every rule is a pure predicate over the snapshot; the only persisted state
// is the suppression store, consulted after evaluation.

// CanSee reports whether the viewer is affected by a task. Project managers
// see every task; anyone else sees a task only when directly assigned to it
// or to at least one of its subtasks. Viewers never see risk output.
func CanSee(sc model.Scope, t model.Task) bool {
	if sc.Role == model.RoleProjectManager {
		return true
	}
	if sc.Role == model.RoleViewer || sc.UserID == "" {
		return false
	}
	if t.AssignedTo != nil && *t.AssignedTo == sc.UserID {
		return true
	}
	for _, st := range t.Subtasks {
		if st.AssignedTo != nil && *st.AssignedTo == sc.UserID {
			return true
		}
	}
	return false
}

func canSeeSubtask(sc model.Scope, st model.Subtask) bool {
	if sc.Role == model.RoleProjectManager {
		return true
	}
	return st.AssignedTo != nil && sc.UserID != "" && *st.AssignedTo == sc.UserID
}

// daysUntil counts whole days from now to due, rounding partial days up.
func daysUntil(now, due time.Time) int {
	d := due.Sub(now)
	days := int(d / day)
	if d%day > 0 {
		days++
	}
	return days
}

func fmtShort(d time.Time) string {
	return d.Format("02 Jan")
}

// taskAlerts evaluates all rules for one task and its subtasks.
func taskAlerts(p model.Project, ph model.Phase, t model.Task, sc model.Scope, now time.Time) []model.Alert {
	if !CanSee(sc, t) {
		return nil
	}

	base := model.Alert{
		ProjectID:   p.ID,
		ProjectName: p.Name,
		PhaseID:     ph.ID,
		TaskID:      t.ID,
		EntityURL:   fmt.Sprintf("/dashboard/projects/%s", p.ID),
		ComputedAt:  now,
	}

	var list []model.Alert
	status := NormalizeStatus(t.Status)
	prio := NormalizePriority(t.Priority)
	milestone := TaggedMilestone(t)

	suffix := ""
	if milestone {
		suffix = " (milestone)"
	}

	// Overdue and due-soon are mutually exclusive by construction: overdue
	// requires due < now, due-soon requires due >= now.
	if status != model.StatusCompleted && t.DueDate != nil {
		due := *t.DueDate
		if due.Before(now) {
			a := base
			a.Key = fmt.Sprintf("overdue_task_%s", t.ID)
			a.Type = model.AlertOverdue
			a.Severity = model.SeverityCritical
			a.Title = "Task overdue" + suffix
			a.Message = fmt.Sprintf("%s — was due %s.", t.Name, fmtShort(due))
			a.DueAt = &due
			list = append(list, a)
		} else if days := daysUntil(now, due); days <= slaWindowDays(prio) {
			sev := model.SeverityWarning
			if prio == model.PriorityHigh && days <= 1 {
				sev = model.SeverityCritical
			}
			a := base
			a.Key = fmt.Sprintf("duesoon_task_%s", t.ID)
			a.Type = model.AlertDueSoon
			a.Severity = sev
			a.Title = "Task due soon" + suffix
			a.Message = fmt.Sprintf("%s — due %s (%d days).", t.Name, fmtShort(due), days)
			a.DueAt = &due
			list = append(list, a)
		}
	}

	if t.AssignedTo == nil || *t.AssignedTo == "" {
		sev := model.SeverityWarning
		if milestone || prio == model.PriorityHigh {
			sev = model.SeverityCritical
		}
		a := base
		a.Key = fmt.Sprintf("unassigned_task_%s", t.ID)
		a.Type = model.AlertUnassigned
		a.Severity = sev
		a.Title = "Task unassigned" + suffix
		a.Message = fmt.Sprintf("%s — assign an owner.", t.Name)
		a.DueAt = t.DueDate
		list = append(list, a)
	}

	// Status inconsistency: the two conditions cannot both hold, so a single
	// key per task suffices.
	if len(t.Subtasks) > 0 {
		open := 0
		for _, st := range t.Subtasks {
			if NormalizeStatus(st.Status) != model.StatusCompleted {
				open++
			}
		}

		var msg string
		switch {
		case status == model.StatusCompleted && open > 0:
			msg = fmt.Sprintf("%s is marked completed but has %d open subtasks.", t.Name, open)
		case status != model.StatusCompleted && open == 0:
			msg = fmt.Sprintf("%s has every subtask completed but is not marked completed.", t.Name)
		}
		if msg != "" {
			a := base
			a.Key = fmt.Sprintf("inconsistency_task_%s", t.ID)
			a.Type = model.AlertInconsistency
			a.Severity = model.SeverityInfo
			a.Title = "Status inconsistency"
			a.Message = msg
			list = append(list, a)
		}
	}

	for _, st := range t.Subtasks {
		list = append(list, subtaskAlerts(base, t, st, sc, now)...)
	}

	return list
}

// subtaskAlerts applies the overdue/due-soon/unassigned rules to one
// subtask. Subtasks have no priority, so the due-soon window is fixed. Date
// rules are skipped while the parent task is completed.
func subtaskAlerts(base model.Alert, t model.Task, st model.Subtask, sc model.Scope, now time.Time) []model.Alert {
	if !canSeeSubtask(sc, st) {
		return nil
	}

	base.SubtaskID = st.ID
	base.Title = fmt.Sprintf("Subtask: %s", st.Name)

	var list []model.Alert
	parentCompleted := NormalizeStatus(t.Status) == model.StatusCompleted

	if st.DueDate != nil && !parentCompleted && NormalizeStatus(st.Status) != model.StatusCompleted {
		due := *st.DueDate
		if due.Before(now) {
			a := base
			a.Key = fmt.Sprintf("overdue_sub_%s", st.ID)
			a.Type = model.AlertOverdue
			a.Severity = model.SeverityCritical
			a.Message = fmt.Sprintf("Subtask overdue — %s.", fmtShort(due))
			a.DueAt = &due
			list = append(list, a)
		} else if days := daysUntil(now, due); days >= 0 && days <= subtaskSLAWindowDays {
			a := base
			a.Key = fmt.Sprintf("duesoon_sub_%s", st.ID)
			a.Type = model.AlertDueSoon
			a.Severity = model.SeverityWarning
			a.Message = fmt.Sprintf("Subtask due %s (%d days).", fmtShort(due), days)
			a.DueAt = &due
			list = append(list, a)
		}
	}

	if st.AssignedTo == nil || *st.AssignedTo == "" {
		a := base
		a.Key = fmt.Sprintf("unassigned_sub_%s", st.ID)
		a.Type = model.AlertUnassigned
		a.Severity = model.SeverityWarning
		a.Message = "Subtask has no owner."
		a.DueAt = st.DueDate
		list = append(list, a)
	}

	return list
}
