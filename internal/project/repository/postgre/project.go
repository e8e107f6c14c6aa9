package postgre

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"medflow-insights/internal/model"
	"medflow-insights/internal/project/repository"
)

// GetProject loads one project with its full phase/task/subtask tree.
func (r *implRepository) GetProject(ctx context.Context, id string) (model.Project, error) {
	var p model.Project
	err := r.pool.QueryRow(ctx, queryGetProject, id).Scan(&p.ID, &p.Name, &p.ManagerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Project{}, repository.ErrProjectNotFound
		}
		r.l.Errorf(ctx, "project.repository.GetProject: %v", err)
		return model.Project{}, fmt.Errorf("querying project: %w", err)
	}

	phases, phaseIdx, err := r.listPhases(ctx, id)
	if err != nil {
		return model.Project{}, err
	}

	taskIdx, err := r.attachTasks(ctx, id, phases, phaseIdx)
	if err != nil {
		return model.Project{}, err
	}

	if err := r.attachSubtasks(ctx, id, phases, phaseIdx, taskIdx); err != nil {
		return model.Project{}, err
	}

	p.Phases = phases
	return p, nil
}

// ListProjects returns project summaries without their trees.
func (r *implRepository) ListProjects(ctx context.Context, opt repository.ListProjectsOptions) ([]model.Project, error) {
	limit := opt.Limit
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.pool.Query(ctx, queryListProjects, opt.ManagerID, limit, opt.Offset)
	if err != nil {
		r.l.Errorf(ctx, "project.repository.ListProjects: %v", err)
		return nil, fmt.Errorf("querying projects: %w", err)
	}
	defer rows.Close()

	var projects []model.Project
	for rows.Next() {
		var p model.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.ManagerID); err != nil {
			return nil, fmt.Errorf("scanning project: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// taskRef locates a task inside the phase slice by phase index and task index.
type taskRef struct {
	phase int
	task  int
}

func (r *implRepository) listPhases(ctx context.Context, projectID string) ([]model.Phase, map[string]int, error) {
	rows, err := r.pool.Query(ctx, queryListPhases, projectID)
	if err != nil {
		r.l.Errorf(ctx, "project.repository.listPhases: %v", err)
		return nil, nil, fmt.Errorf("querying phases: %w", err)
	}
	defer rows.Close()

	var phases []model.Phase
	idx := make(map[string]int)
	for rows.Next() {
		var ph model.Phase
		if err := rows.Scan(&ph.ID, &ph.Name, &ph.Status, &ph.StartDate, &ph.EndDate, &ph.ResponsibleID); err != nil {
			return nil, nil, fmt.Errorf("scanning phase: %w", err)
		}
		idx[ph.ID] = len(phases)
		phases = append(phases, ph)
	}
	return phases, idx, rows.Err()
}

func (r *implRepository) attachTasks(ctx context.Context, projectID string, phases []model.Phase, phaseIdx map[string]int) (map[string]taskRef, error) {
	rows, err := r.pool.Query(ctx, queryListTasks, projectID)
	if err != nil {
		r.l.Errorf(ctx, "project.repository.attachTasks: %v", err)
		return nil, fmt.Errorf("querying tasks: %w", err)
	}
	defer rows.Close()

	taskIdx := make(map[string]taskRef)
	for rows.Next() {
		var t model.Task
		var phaseID string
		if err := rows.Scan(&t.ID, &phaseID, &t.Name, &t.Status, &t.AssignedTo, &t.DueDate,
			&t.StartDate, &t.CreatedAt, &t.Priority, &t.Tags, &t.IsMilestone); err != nil {
			return nil, fmt.Errorf("scanning task: %w", err)
		}

		pi, ok := phaseIdx[phaseID]
		if !ok {
			continue
		}
		taskIdx[t.ID] = taskRef{phase: pi, task: len(phases[pi].Tasks)}
		phases[pi].Tasks = append(phases[pi].Tasks, t)
	}
	return taskIdx, rows.Err()
}

func (r *implRepository) attachSubtasks(ctx context.Context, projectID string, phases []model.Phase, phaseIdx map[string]int, taskIdx map[string]taskRef) error {
	rows, err := r.pool.Query(ctx, queryListSubtasks, projectID)
	if err != nil {
		r.l.Errorf(ctx, "project.repository.attachSubtasks: %v", err)
		return fmt.Errorf("querying subtasks: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var st model.Subtask
		var taskID string
		if err := rows.Scan(&st.ID, &taskID, &st.Name, &st.Status, &st.AssignedTo, &st.DueDate); err != nil {
			return fmt.Errorf("scanning subtask: %w", err)
		}

		ref, ok := taskIdx[taskID]
		if !ok {
			continue
		}
		t := &phases[ref.phase].Tasks[ref.task]
		t.Subtasks = append(t.Subtasks, st)
	}
	return rows.Err()
}
