package middleware

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"medflow-insights/config"
	"medflow-insights/pkg/log"
	"medflow-insights/pkg/scope"
)

type Middleware struct {
	l          log.Logger
	jwtManager scope.Manager
	limiters   *expirable.LRU[string, *rate.Limiter]
	rate       rate.Limit
	burst      int
}

func New(l log.Logger, jwtManager scope.Manager, cfg config.InsightsConfig) Middleware {
	perMin := cfg.RateLimitPerMin
	if perMin <= 0 {
		perMin = 120
	}
	burst := perMin / 10
	if burst < 1 {
		burst = 1
	}

	return Middleware{
		l:          l,
		jwtManager: jwtManager,
		limiters:   expirable.NewLRU[string, *rate.Limiter](1000, nil, time.Minute*5),
		rate:       rate.Limit(float64(perMin) / 60.0),
		burst:      burst,
	}
}
