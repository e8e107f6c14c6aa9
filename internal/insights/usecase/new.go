package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"medflow-insights/internal/model"
	"medflow-insights/internal/project/repository"
	"medflow-insights/internal/suppression"
	"medflow-insights/pkg/gcalendar"
	pkgLog "medflow-insights/pkg/log"
)

// Config tunes the usecase behavior.
type Config struct {
	CacheTTL          time.Duration
	CacheSize         int
	DefaultSnoozeDays int
}

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.ProjectRepository
	store    suppression.Store
	calendar *gcalendar.Client // nil when calendar sync is disabled
	cfg      Config

	// snapshot cache: project id → loaded tree
	cache *expirable.LRU[string, model.Project]

	now func() time.Time
}

// New creates a new insights UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.ProjectRepository,
	store suppression.Store,
	calendar *gcalendar.Client,
	cfg Config,
) *implUseCase {
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = 256
	}
	if cfg.DefaultSnoozeDays <= 0 {
		cfg.DefaultSnoozeDays = 7
	}

	return &implUseCase{
		l:        l,
		repo:     repo,
		store:    store,
		calendar: calendar,
		cfg:      cfg,
		cache:    expirable.NewLRU[string, model.Project](cfg.CacheSize, nil, cfg.CacheTTL),
		now:      time.Now,
	}
}
