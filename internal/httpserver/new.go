package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"medflow-insights/config"
	"medflow-insights/internal/model"
	"medflow-insights/internal/suppression"
	"medflow-insights/pkg/gcalendar"
	"medflow-insights/pkg/log"
	"medflow-insights/pkg/scope"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Shared infrastructure
	postgresDB       *pgxpool.Pool
	suppressionStore suppression.Store
	calendarClient   *gcalendar.Client
	jwtManager       scope.Manager
	insightsCfg      config.InsightsConfig
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	PostgresDB       *pgxpool.Pool
	SuppressionStore suppression.Store
	CalendarClient   *gcalendar.Client
	JWTManager       scope.Manager
	Insights         config.InsightsConfig
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Environment == "" {
		cfg.Environment = string(model.EnvironmentDevelopment)
	}

	mode := cfg.Mode
	if cfg.Environment == string(model.EnvironmentProduction) {
		mode = gin.ReleaseMode
	}
	gin.SetMode(mode)

	srv := &HTTPServer{
		l:                logger,
		gin:              gin.New(),
		port:             cfg.Port,
		mode:             mode,
		environment:      cfg.Environment,
		postgresDB:       cfg.PostgresDB,
		suppressionStore: cfg.SuppressionStore,
		calendarClient:   cfg.CalendarClient,
		jwtManager:       cfg.JWTManager,
		insightsCfg:      cfg.Insights,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres pool is required")
	}
	if srv.suppressionStore == nil {
		return errors.New("suppression store is required")
	}
	return nil
}
