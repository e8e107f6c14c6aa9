package usecase

import (
	"context"

	"medflow-insights/internal/insights"
	"medflow-insights/internal/model"
	"medflow-insights/internal/project/repository"
)

// ListProjects returns project summaries the viewer may browse.
func (uc *implUseCase) ListProjects(ctx context.Context, sc model.Scope, input insights.ListProjectsInput) ([]model.Project, error) {
	projects, err := uc.repo.ListProjects(ctx, repository.ListProjectsOptions{
		ManagerID: input.ManagerID,
		Limit:     input.Limit,
		Offset:    input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "insights.usecase.ListProjects: %v", err)
		return nil, err
	}
	return projects, nil
}
