package postgre

import (
	"github.com/jackc/pgx/v5/pgxpool"

	pkgLog "medflow-insights/pkg/log"
)

type implRepository struct {
	l    pkgLog.Logger
	pool *pgxpool.Pool
}

// New creates a Postgres-backed user repository.
func New(l pkgLog.Logger, pool *pgxpool.Pool) *implRepository {
	return &implRepository{l: l, pool: pool}
}
