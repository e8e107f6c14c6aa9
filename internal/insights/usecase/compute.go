package usecase

import (
	"context"
	"errors"
	"time"

	"medflow-insights/internal/engine"
	"medflow-insights/internal/insights"
	"medflow-insights/internal/model"
	"medflow-insights/internal/project/repository"
	"medflow-insights/internal/suppression"
	"medflow-insights/pkg/metrics"
)

// loadProject fetches a project tree, going through the snapshot cache.
func (uc *implUseCase) loadProject(ctx context.Context, projectID string) (model.Project, error) {
	if p, ok := uc.cache.Get(projectID); ok {
		metrics.RecordCacheHit(true)
		return p, nil
	}
	metrics.RecordCacheHit(false)

	p, err := uc.repo.GetProject(ctx, projectID)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return model.Project{}, insights.ErrProjectNotFound
		}
		uc.l.Errorf(ctx, "insights.usecase.loadProject: %v", err)
		return model.Project{}, err
	}

	uc.cache.Add(projectID, p)
	return p, nil
}

// suppressionView loads the current suppression state. Read failures degrade
// to an empty view so analytics stay available when Redis is down.
func (uc *implUseCase) suppressionView(ctx context.Context) suppression.View {
	view, err := uc.store.View(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "insights.usecase.suppressionView: degrading to empty view: %v", err)
		return suppression.EmptyView()
	}
	return view
}

// compute runs one timed engine pass over a project.
func (uc *implUseCase) compute(ctx context.Context, sc model.Scope, projectID string) (engine.Result, error) {
	p, err := uc.loadProject(ctx, projectID)
	if err != nil {
		return engine.Result{}, err
	}

	view := uc.suppressionView(ctx)

	started := time.Now()
	result := engine.Compute(p, sc, uc.now(), view)
	metrics.RecordCompute(time.Since(started))

	for _, a := range result.Alerts {
		metrics.RecordAlert(a.Type.String(), a.Severity.String())
	}
	return result, nil
}

// Progress returns the derived completion rollup for one project.
func (uc *implUseCase) Progress(ctx context.Context, sc model.Scope, projectID string) (engine.ProgressReport, error) {
	result, err := uc.compute(ctx, sc, projectID)
	if err != nil {
		return engine.ProgressReport{}, err
	}
	return result.Progress, nil
}

// Timeline returns the lane-packed schedule layout for one project.
func (uc *implUseCase) Timeline(ctx context.Context, sc model.Scope, projectID string) (engine.Timeline, error) {
	result, err := uc.compute(ctx, sc, projectID)
	if err != nil {
		return engine.Timeline{}, err
	}
	return result.Timeline, nil
}

// Alerts returns the suppression-filtered alert list for one project.
func (uc *implUseCase) Alerts(ctx context.Context, sc model.Scope, projectID string) ([]model.Alert, error) {
	result, err := uc.compute(ctx, sc, projectID)
	if err != nil {
		return nil, err
	}
	return result.Alerts, nil
}

// AllAlerts aggregates alerts across every project the viewer can see.
func (uc *implUseCase) AllAlerts(ctx context.Context, sc model.Scope) ([]model.Alert, error) {
	summaries, err := uc.repo.ListProjects(ctx, repository.ListProjectsOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "insights.usecase.AllAlerts: %v", err)
		return nil, err
	}

	view := uc.suppressionView(ctx)
	now := uc.now()

	all := make([]model.Alert, 0)
	for _, summary := range summaries {
		p, err := uc.loadProject(ctx, summary.ID)
		if err != nil {
			return nil, err
		}
		all = append(all, engine.ProjectAlerts(p, sc, now, view)...)
	}

	engine.SortAlerts(all)
	return all, nil
}
