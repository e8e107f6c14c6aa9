package engine

import (
	"math"

	"medflow-insights/internal/model"
)

// TaskProgress computes a task's completion percentage (0–100).
//
// Two signals are computed and the maximum wins: the task's own status weight
// and the mean of its subtask weights. A task manually marked completed is
// never shown as less complete than its subtasks, and a task whose subtasks
// are all done is never dragged down by a stale status field.
func TaskProgress(t model.Task) int {
	byStatus := int(math.Round(StatusWeight(t.Status) * 100))
	if len(t.Subtasks) == 0 {
		return byStatus
	}

	sum := 0.0
	for _, st := range t.Subtasks {
		sum += StatusWeight(st.Status)
	}
	bySubtasks := int(math.Round(sum / float64(len(t.Subtasks)) * 100))

	if bySubtasks > byStatus {
		return bySubtasks
	}
	return byStatus
}

// PhaseProgress is the unweighted mean of task progress, rounded. A phase
// with no tasks falls back to its own status weight.
func PhaseProgress(ph model.Phase) int {
	if len(ph.Tasks) == 0 {
		return int(math.Round(StatusWeight(ph.Status) * 100))
	}

	sum := 0
	for _, t := range ph.Tasks {
		sum += TaskProgress(t)
	}
	return int(math.Round(float64(sum) / float64(len(ph.Tasks))))
}

// ProjectProgress is the unweighted mean of phase progress; zero phases
// yields zero.
func ProjectProgress(p model.Project) int {
	if len(p.Phases) == 0 {
		return 0
	}

	sum := 0
	for _, ph := range p.Phases {
		sum += PhaseProgress(ph)
	}
	return int(math.Round(float64(sum) / float64(len(p.Phases))))
}

// progressReport assembles the full rollup for one project.
func progressReport(p model.Project) ProgressReport {
	report := ProgressReport{
		ProjectID: p.ID,
		Percent:   ProjectProgress(p),
		Phases:    make([]PhaseProgressEntry, 0, len(p.Phases)),
	}

	for _, ph := range p.Phases {
		entry := PhaseProgressEntry{
			PhaseID: ph.ID,
			Name:    ph.Name,
			Percent: PhaseProgress(ph),
			Tasks:   make([]TaskProgressEntry, 0, len(ph.Tasks)),
		}
		for _, t := range ph.Tasks {
			entry.Tasks = append(entry.Tasks, TaskProgressEntry{
				TaskID:  t.ID,
				Name:    t.Name,
				Percent: TaskProgress(t),
			})
		}
		report.Phases = append(report.Phases, entry)
	}

	return report
}
