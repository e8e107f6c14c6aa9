package http

import (
	"time"

	"medflow-insights/internal/engine"
	"medflow-insights/internal/insights"
	"medflow-insights/internal/model"
)

// --- Request DTOs ---

type listProjectsReq struct {
	ManagerID string `form:"manager_id"`
	Limit     int    `form:"limit"`
	Offset    int    `form:"offset"`
}

func (r listProjectsReq) toInput() insights.ListProjectsInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if r.Offset < 0 {
		r.Offset = 0
	}
	return insights.ListProjectsInput{
		ManagerID: r.ManagerID,
		Limit:     limit,
		Offset:    r.Offset,
	}
}

type snoozeReq struct {
	Days int `json:"days" binding:"omitempty,min=1,max=365"`
}

// --- Response DTOs ---

type projectResp struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ManagerID string `json:"manager_id,omitempty"`
}

type listProjectsResp struct {
	Projects []projectResp `json:"projects"`
}

func (h *handler) newListProjectsResp(projects []model.Project) listProjectsResp {
	out := make([]projectResp, len(projects))
	for i, p := range projects {
		out[i] = projectResp{ID: p.ID, Name: p.Name}
		if p.ManagerID != nil {
			out[i].ManagerID = *p.ManagerID
		}
	}
	return listProjectsResp{Projects: out}
}

type taskProgressResp struct {
	TaskID  string `json:"task_id"`
	Name    string `json:"name"`
	Percent int    `json:"percent"`
}

type phaseProgressResp struct {
	PhaseID string             `json:"phase_id"`
	Name    string             `json:"name"`
	Percent int                `json:"percent"`
	Tasks   []taskProgressResp `json:"tasks"`
}

type progressResp struct {
	ProjectID string              `json:"project_id"`
	Percent   int                 `json:"percent"`
	Phases    []phaseProgressResp `json:"phases"`
}

func (h *handler) newProgressResp(report engine.ProgressReport) progressResp {
	phases := make([]phaseProgressResp, len(report.Phases))
	for i, ph := range report.Phases {
		tasks := make([]taskProgressResp, len(ph.Tasks))
		for j, t := range ph.Tasks {
			tasks[j] = taskProgressResp{TaskID: t.TaskID, Name: t.Name, Percent: t.Percent}
		}
		phases[i] = phaseProgressResp{
			PhaseID: ph.PhaseID,
			Name:    ph.Name,
			Percent: ph.Percent,
			Tasks:   tasks,
		}
	}
	return progressResp{
		ProjectID: report.ProjectID,
		Percent:   report.Percent,
		Phases:    phases,
	}
}

type taskSpanResp struct {
	TaskID      string    `json:"task_id"`
	Name        string    `json:"name"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	IsMilestone bool      `json:"is_milestone"`
	Lane        int       `json:"lane"`
}

type phaseTimelineResp struct {
	PhaseID   string         `json:"phase_id"`
	Name      string         `json:"name"`
	Start     time.Time      `json:"start"`
	End       time.Time      `json:"end"`
	LaneCount int            `json:"lane_count"`
	Tasks     []taskSpanResp `json:"tasks"`
}

type timelineResp struct {
	ProjectID string              `json:"project_id"`
	Start     time.Time           `json:"start"`
	End       time.Time           `json:"end"`
	ShowToday bool                `json:"show_today"`
	Phases    []phaseTimelineResp `json:"phases"`
}

func (h *handler) newTimelineResp(tl engine.Timeline) timelineResp {
	phases := make([]phaseTimelineResp, len(tl.Phases))
	for i, ph := range tl.Phases {
		tasks := make([]taskSpanResp, len(ph.Tasks))
		for j, t := range ph.Tasks {
			tasks[j] = taskSpanResp{
				TaskID:      t.TaskID,
				Name:        t.Name,
				Start:       t.Start,
				End:         t.End,
				IsMilestone: t.IsMilestone,
				Lane:        t.Lane,
			}
		}
		phases[i] = phaseTimelineResp{
			PhaseID:   ph.PhaseID,
			Name:      ph.Name,
			Start:     ph.Start,
			End:       ph.End,
			LaneCount: ph.LaneCount,
			Tasks:     tasks,
		}
	}
	return timelineResp{
		ProjectID: tl.ProjectID,
		Start:     tl.Start,
		End:       tl.End,
		ShowToday: tl.ShowToday,
		Phases:    phases,
	}
}

type alertResp struct {
	Key         string     `json:"key"`
	Type        string     `json:"type"`
	Severity    string     `json:"severity"`
	ProjectID   string     `json:"project_id"`
	ProjectName string     `json:"project_name"`
	PhaseID     string     `json:"phase_id"`
	TaskID      string     `json:"task_id"`
	SubtaskID   string     `json:"subtask_id,omitempty"`
	Title       string     `json:"title"`
	Message     string     `json:"message"`
	EntityURL   string     `json:"entity_url"`
	DueAt       *time.Time `json:"due_at,omitempty"`
	ComputedAt  time.Time  `json:"computed_at"`
}

type alertsResp struct {
	Alerts []alertResp `json:"alerts"`
}

func (h *handler) newAlertsResp(alerts []model.Alert) alertsResp {
	out := make([]alertResp, len(alerts))
	for i, a := range alerts {
		out[i] = alertResp{
			Key:         a.Key,
			Type:        a.Type.String(),
			Severity:    a.Severity.String(),
			ProjectID:   a.ProjectID,
			ProjectName: a.ProjectName,
			PhaseID:     a.PhaseID,
			TaskID:      a.TaskID,
			SubtaskID:   a.SubtaskID,
			Title:       a.Title,
			Message:     a.Message,
			EntityURL:   a.EntityURL,
			DueAt:       a.DueAt,
			ComputedAt:  a.ComputedAt,
		}
	}
	return alertsResp{Alerts: out}
}

type syncCalendarResp struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
}

func (h *handler) newSyncCalendarResp(out insights.SyncCalendarOutput) syncCalendarResp {
	return syncCalendarResp{
		Created: out.Created,
		Updated: out.Updated,
		Skipped: out.Skipped,
	}
}
