package http

import (
	"medflow-insights/internal/insights"
	"medflow-insights/pkg/log"
)

type handler struct {
	l  log.Logger
	uc insights.UseCase
}

// New creates a new HTTP handler for the insights domain.
func New(l log.Logger, uc insights.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
