package engine

import (
	"testing"
	"time"

	"medflow-insights/internal/model"
	"medflow-insights/internal/suppression"
)

var (
	pm   = model.Scope{UserID: "u-pm", Role: model.RoleProjectManager}
	tech = model.Scope{UserID: "u-tech", Role: model.RoleTechnician}
)

func sp(s string) *string { return &s }

func testProject(tasks ...model.Task) model.Project {
	return model.Project{
		ID:   "p1",
		Name: "Infusion Pump",
		Phases: []model.Phase{{
			ID:        "ph1",
			Name:      "Design",
			StartDate: tp(date(2026, time.May, 1)),
			EndDate:   tp(date(2026, time.May, 31)),
			Tasks:     tasks,
		}},
	}
}

func alertsByType(alerts []model.Alert, typ model.AlertType) []model.Alert {
	var out []model.Alert
	for _, a := range alerts {
		if a.Type == typ {
			out = append(out, a)
		}
	}
	return out
}

func TestRules_OverdueExcludesDueSoon(t *testing.T) {
	now := date(2026, time.May, 10)
	p := testProject(model.Task{
		ID:         "t1",
		Name:       "Risk analysis",
		Status:     "todo",
		Priority:   "high",
		AssignedTo: sp("u-tech"),
		DueDate:    tp(date(2026, time.May, 9)), // yesterday
	})

	alerts := ProjectAlerts(p, pm, now, suppression.EmptyView())

	overdue := alertsByType(alerts, model.AlertOverdue)
	if len(overdue) != 1 {
		t.Fatalf("overdue alerts = %d, want 1", len(overdue))
	}
	if overdue[0].Severity != model.SeverityCritical {
		t.Errorf("severity = %s, want critical", overdue[0].Severity)
	}
	if overdue[0].Key != "overdue_task_t1" {
		t.Errorf("key = %q", overdue[0].Key)
	}
	if got := alertsByType(alerts, model.AlertDueSoon); len(got) != 0 {
		t.Errorf("due_soon fired alongside overdue: %v", got)
	}
}

func TestRules_DueSoonWindows(t *testing.T) {
	now := date(2026, time.May, 10)

	tests := []struct {
		name     string
		priority string
		due      time.Time
		want     bool
		severity model.Severity
	}{
		{"high inside 3 days", "high", now.AddDate(0, 0, 2), true, model.SeverityWarning},
		{"high within a day is critical", "high", now.Add(12 * time.Hour), true, model.SeverityCritical},
		{"high outside window", "high", now.AddDate(0, 0, 4), false, ""},
		{"medium inside 7 days", "medium", now.AddDate(0, 0, 6), true, model.SeverityWarning},
		{"medium outside window", "medium", now.AddDate(0, 0, 8), false, ""},
		{"low inside 14 days", "low", now.AddDate(0, 0, 13), true, model.SeverityWarning},
		{"low outside window", "low", now.AddDate(0, 0, 15), false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testProject(model.Task{
				ID:         "t1",
				Name:       "Verification protocol",
				Status:     "in_progress",
				Priority:   tt.priority,
				AssignedTo: sp("u-tech"),
				DueDate:    tp(tt.due),
			})

			got := alertsByType(ProjectAlerts(p, pm, now, suppression.EmptyView()), model.AlertDueSoon)
			if tt.want && len(got) != 1 {
				t.Fatalf("due_soon alerts = %d, want 1", len(got))
			}
			if !tt.want && len(got) != 0 {
				t.Fatalf("due_soon alerts = %d, want 0", len(got))
			}
			if tt.want && got[0].Severity != tt.severity {
				t.Errorf("severity = %s, want %s", got[0].Severity, tt.severity)
			}
		})
	}
}

func TestRules_CompletedTaskFiresNoDateAlerts(t *testing.T) {
	now := date(2026, time.May, 10)
	p := testProject(model.Task{
		ID:         "t1",
		Status:     "completed",
		AssignedTo: sp("u-tech"),
		DueDate:    tp(date(2026, time.May, 1)),
	})

	alerts := ProjectAlerts(p, pm, now, suppression.EmptyView())
	if len(alertsByType(alerts, model.AlertOverdue)) != 0 {
		t.Error("overdue fired for a completed task")
	}
}

func TestRules_UnassignedSeverity(t *testing.T) {
	now := date(2026, time.May, 10)

	tests := []struct {
		name string
		task model.Task
		want model.Severity
	}{
		{"plain task warns", model.Task{ID: "t1", Status: "todo"}, model.SeverityWarning},
		{"high priority is critical", model.Task{ID: "t1", Status: "todo", Priority: "high"}, model.SeverityCritical},
		{"milestone is critical", model.Task{ID: "t1", Status: "todo", IsMilestone: true}, model.SeverityCritical},
		{"empty assignee string counts as unassigned", model.Task{ID: "t1", Status: "todo", AssignedTo: sp("")}, model.SeverityWarning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := alertsByType(ProjectAlerts(testProject(tt.task), pm, now, suppression.EmptyView()), model.AlertUnassigned)
			if len(got) != 1 {
				t.Fatalf("unassigned alerts = %d, want 1", len(got))
			}
			if got[0].Severity != tt.want {
				t.Errorf("severity = %s, want %s", got[0].Severity, tt.want)
			}
		})
	}
}

func TestRules_StatusInconsistency(t *testing.T) {
	now := date(2026, time.May, 10)

	t.Run("completed task with open subtasks", func(t *testing.T) {
		p := testProject(model.Task{
			ID:         "t1",
			Status:     "completed",
			AssignedTo: sp("u-tech"),
			Subtasks:   []model.Subtask{{ID: "s1", Status: "todo", AssignedTo: sp("u-tech")}},
		})
		got := alertsByType(ProjectAlerts(p, pm, now, suppression.EmptyView()), model.AlertInconsistency)
		if len(got) != 1 {
			t.Fatalf("inconsistency alerts = %d, want 1", len(got))
		}
		if got[0].Key != "inconsistency_task_t1" {
			t.Errorf("key = %q", got[0].Key)
		}
		if got[0].Severity != model.SeverityInfo {
			t.Errorf("severity = %s, want info", got[0].Severity)
		}
	})

	t.Run("open task with all subtasks completed", func(t *testing.T) {
		p := testProject(model.Task{
			ID:         "t1",
			Status:     "in_progress",
			AssignedTo: sp("u-tech"),
			Subtasks: []model.Subtask{
				{ID: "s1", Status: "completed", AssignedTo: sp("u-tech")},
				{ID: "s2", Status: "done", AssignedTo: sp("u-tech")},
			},
		})
		got := alertsByType(ProjectAlerts(p, pm, now, suppression.EmptyView()), model.AlertInconsistency)
		if len(got) != 1 {
			t.Fatalf("inconsistency alerts = %d, want 1", len(got))
		}
	})

	t.Run("consistent states stay quiet", func(t *testing.T) {
		p := testProject(model.Task{
			ID:         "t1",
			Status:     "in_progress",
			AssignedTo: sp("u-tech"),
			Subtasks:   []model.Subtask{{ID: "s1", Status: "todo", AssignedTo: sp("u-tech")}},
		})
		if got := alertsByType(ProjectAlerts(p, pm, now, suppression.EmptyView()), model.AlertInconsistency); len(got) != 0 {
			t.Errorf("inconsistency alerts = %d, want 0", len(got))
		}
	})
}

func TestRules_Visibility(t *testing.T) {
	now := date(2026, time.May, 10)
	task := model.Task{
		ID:      "t1",
		Status:  "todo",
		DueDate: tp(date(2026, time.May, 9)),
	}

	t.Run("project manager sees everything", func(t *testing.T) {
		if got := ProjectAlerts(testProject(task), pm, now, suppression.EmptyView()); len(got) == 0 {
			t.Error("expected alerts for project manager")
		}
	})

	t.Run("technician needs an assignment", func(t *testing.T) {
		if got := ProjectAlerts(testProject(task), tech, now, suppression.EmptyView()); len(got) != 0 {
			t.Errorf("unrelated technician got %d alerts", len(got))
		}

		assigned := task
		assigned.AssignedTo = sp("u-tech")
		if got := ProjectAlerts(testProject(assigned), tech, now, suppression.EmptyView()); len(got) == 0 {
			t.Error("assigned technician got no alerts")
		}
	})

	t.Run("subtask assignment grants task visibility", func(t *testing.T) {
		viaSub := task
		viaSub.Subtasks = []model.Subtask{{ID: "s1", Status: "todo", AssignedTo: sp("u-tech")}}
		if got := ProjectAlerts(testProject(viaSub), tech, now, suppression.EmptyView()); len(got) == 0 {
			t.Error("subtask assignee got no alerts")
		}
	})

	t.Run("admin falls back to assignment matching", func(t *testing.T) {
		admin := model.Scope{UserID: "u-admin", Role: model.RoleAdmin}
		if got := ProjectAlerts(testProject(task), admin, now, suppression.EmptyView()); len(got) != 0 {
			t.Errorf("unassigned admin got %d alerts", len(got))
		}
	})

	t.Run("viewer role gets nothing", func(t *testing.T) {
		viewer := model.Scope{UserID: "u-view", Role: model.RoleViewer}
		assigned := task
		assigned.AssignedTo = sp("u-view")
		if got := ProjectAlerts(testProject(assigned), viewer, now, suppression.EmptyView()); got != nil {
			t.Errorf("viewer got %d alerts", len(got))
		}
	})
}

func TestRules_SubtaskEvaluation(t *testing.T) {
	now := date(2026, time.May, 10)

	t.Run("fixed seven day window", func(t *testing.T) {
		p := testProject(model.Task{
			ID:         "t1",
			Status:     "in_progress",
			AssignedTo: sp("u-tech"),
			Subtasks: []model.Subtask{
				{ID: "s1", Status: "todo", AssignedTo: sp("u-tech"), DueDate: tp(now.AddDate(0, 0, 6))},
				{ID: "s2", Status: "todo", AssignedTo: sp("u-tech"), DueDate: tp(now.AddDate(0, 0, 9))},
			},
		})
		got := alertsByType(ProjectAlerts(p, pm, now, suppression.EmptyView()), model.AlertDueSoon)
		if len(got) != 1 {
			t.Fatalf("due_soon alerts = %d, want 1", len(got))
		}
		if got[0].Key != "duesoon_sub_s1" {
			t.Errorf("key = %q", got[0].Key)
		}
		if got[0].Severity != model.SeverityWarning {
			t.Errorf("severity = %s, want warning", got[0].Severity)
		}
	})

	t.Run("overdue subtask is critical", func(t *testing.T) {
		p := testProject(model.Task{
			ID:         "t1",
			Status:     "in_progress",
			AssignedTo: sp("u-tech"),
			Subtasks:   []model.Subtask{{ID: "s1", Status: "todo", AssignedTo: sp("u-tech"), DueDate: tp(now.AddDate(0, 0, -1))}},
		})
		got := alertsByType(ProjectAlerts(p, pm, now, suppression.EmptyView()), model.AlertOverdue)
		if len(got) != 1 || got[0].Key != "overdue_sub_s1" || got[0].Severity != model.SeverityCritical {
			t.Errorf("got %+v", got)
		}
	})

	t.Run("completed parent silences subtask date rules", func(t *testing.T) {
		p := testProject(model.Task{
			ID:         "t1",
			Status:     "completed",
			AssignedTo: sp("u-tech"),
			Subtasks:   []model.Subtask{{ID: "s1", Status: "completed", AssignedTo: sp("u-tech"), DueDate: tp(now.AddDate(0, 0, -1))}},
		})
		alerts := ProjectAlerts(p, pm, now, suppression.EmptyView())
		if got := alertsByType(alerts, model.AlertOverdue); len(got) != 0 {
			t.Errorf("overdue fired under completed parent: %v", got)
		}
	})

	t.Run("unassigned subtask warns", func(t *testing.T) {
		p := testProject(model.Task{
			ID:         "t1",
			Status:     "in_progress",
			AssignedTo: sp("u-tech"),
			Subtasks:   []model.Subtask{{ID: "s1", Status: "todo"}},
		})
		got := alertsByType(ProjectAlerts(p, pm, now, suppression.EmptyView()), model.AlertUnassigned)
		if len(got) != 1 || got[0].Key != "unassigned_sub_s1" || got[0].Severity != model.SeverityWarning {
			t.Errorf("got %+v", got)
		}
	})
}

func TestRules_KeysStableAndDistinct(t *testing.T) {
	now := date(2026, time.May, 10)
	p := testProject(
		model.Task{ID: "t1", Status: "todo", DueDate: tp(date(2026, time.May, 9))},
		model.Task{ID: "t2", Status: "todo", DueDate: tp(date(2026, time.May, 9))},
	)

	first := ProjectAlerts(p, pm, now, suppression.EmptyView())
	second := ProjectAlerts(p, pm, now, suppression.EmptyView())

	if len(first) != len(second) {
		t.Fatalf("alert counts differ: %d vs %d", len(first), len(second))
	}
	seen := map[string]string{}
	for i := range first {
		if first[i].Key != second[i].Key {
			t.Errorf("key drifted between runs: %q vs %q", first[i].Key, second[i].Key)
		}
		if owner, dup := seen[first[i].Key]; dup {
			t.Errorf("key %q reused across entities (%s)", first[i].Key, owner)
		}
		seen[first[i].Key] = first[i].TaskID
	}
}
