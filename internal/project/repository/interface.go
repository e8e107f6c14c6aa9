package repository

import (
	"context"
	"errors"

	"medflow-insights/internal/model"
)

// ErrProjectNotFound is returned when a project id does not exist.
var ErrProjectNotFound = errors.New("project not found")

// ProjectRepository is the interface for project data access operations.
type ProjectRepository interface {
	// GetProject loads one project with its full phase/task/subtask tree.
	GetProject(ctx context.Context, id string) (model.Project, error)

	// ListProjects returns project summaries without their trees.
	ListProjects(ctx context.Context, opt ListProjectsOptions) ([]model.Project, error)
}
