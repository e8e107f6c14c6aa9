package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	authHTTP "medflow-insights/internal/auth/delivery/http"
	authRepo "medflow-insights/internal/auth/repository/postgre"
	authUC "medflow-insights/internal/auth/usecase"
	insightsHTTP "medflow-insights/internal/insights/delivery/http"
	insightsUC "medflow-insights/internal/insights/usecase"
	"medflow-insights/internal/middleware"
	projectRepo "medflow-insights/internal/project/repository/postgre"
)

// setupAuthDomain initializes the auth domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.l, srv.postgresDB)
//  2. Create UseCase:      uc := mydomainUC.New(srv.l, repo, ...)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv HTTPServer) setupAuthDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	repo := authRepo.New(srv.l, srv.postgresDB)
	uc := authUC.New(srv.l, repo, srv.jwtManager)
	h := authHTTP.New(srv.l, uc)

	authHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Auth domain registered")
	return nil
}

// setupInsightsDomain initializes the analytics domain and registers its
// routes under /api/v1/projects and /api/v1/insights.
func (srv HTTPServer) setupInsightsDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	repo := projectRepo.New(srv.l, srv.postgresDB)
	uc := insightsUC.New(srv.l, repo, srv.suppressionStore, srv.calendarClient, insightsUC.Config{
		CacheTTL:          srv.insightsCfg.CacheTTL,
		CacheSize:         srv.insightsCfg.CacheSize,
		DefaultSnoozeDays: srv.insightsCfg.DefaultSnoozeDays,
	})
	h := insightsHTTP.New(srv.l, uc)

	insightsHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Insights domain registered")
	return nil
}
