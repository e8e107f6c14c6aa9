package http

import (
	"github.com/gin-gonic/gin"

	"medflow-insights/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routes require authentication; mutating routes are rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	projects := rg.Group("/projects")
	{
		projects.GET("", mw.Auth(), h.ListProjects)
	}

	ins := rg.Group("/insights")
	{
		ins.GET("/projects/:id/progress", mw.Auth(), h.Progress)
		ins.GET("/projects/:id/timeline", mw.Auth(), h.Timeline)
		ins.GET("/projects/:id/alerts", mw.Auth(), h.Alerts)
		ins.POST("/projects/:id/calendar-sync", mw.Auth(), mw.RateLimit(), h.SyncCalendar)

		ins.GET("/alerts", mw.Auth(), h.AllAlerts)
		ins.POST("/alerts/:key/ack", mw.Auth(), mw.RateLimit(), h.Acknowledge)
		ins.DELETE("/alerts/:key/ack", mw.Auth(), mw.RateLimit(), h.ClearAcknowledgement)
		ins.POST("/alerts/:key/snooze", mw.Auth(), mw.RateLimit(), h.Snooze)
	}
}
