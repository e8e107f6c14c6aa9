package usecase

import (
	"medflow-insights/internal/auth/repository"
	pkgLog "medflow-insights/pkg/log"
	"medflow-insights/pkg/scope"
)

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.UserRepository
	jwtManager scope.Manager
}

// New creates a new auth UseCase instance.
func New(l pkgLog.Logger, repo repository.UserRepository, jwtManager scope.Manager) *implUseCase {
	return &implUseCase{
		l:          l,
		repo:       repo,
		jwtManager: jwtManager,
	}
}
