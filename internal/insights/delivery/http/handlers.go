package http

import (
	"github.com/gin-gonic/gin"

	"medflow-insights/internal/insights"
	"medflow-insights/internal/middleware"
	"medflow-insights/pkg/response"
)

// ListProjects godoc
// @Summary     List projects
// @Description Returns a paginated list of project summaries.
// @Tags        Insights
// @Produce     json
// @Param       manager_id query string false "Filter by manager id"
// @Param       limit      query int    false "Page size (default: 50)"
// @Param       offset     query int    false "Page offset (default: 0)"
// @Success     200 {object} listProjectsResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/projects [GET]
func (h *handler) ListProjects(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListProjectsReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	projects, err := h.uc.ListProjects(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListProjects: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListProjectsResp(projects))
}

// Progress godoc
// @Summary     Project progress rollup
// @Description Returns derived completion percentages for a project and each of its phases and tasks.
// @Tags        Insights
// @Produce     json
// @Param       id path string true "Project ID"
// @Success     200 {object} progressResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/insights/projects/{id}/progress [GET]
func (h *handler) Progress(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processProjectID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	report, err := h.uc.Progress(ctx, middleware.GetScope(c), id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Progress: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newProgressResp(report))
}

// Timeline godoc
// @Summary     Project timeline layout
// @Description Returns resolved phase bounds and lane-packed task spans for Gantt rendering.
// @Tags        Insights
// @Produce     json
// @Param       id path string true "Project ID"
// @Success     200 {object} timelineResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/insights/projects/{id}/timeline [GET]
func (h *handler) Timeline(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processProjectID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	tl, err := h.uc.Timeline(ctx, middleware.GetScope(c), id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Timeline: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTimelineResp(tl))
}

// Alerts godoc
// @Summary     Project alerts
// @Description Returns the suppression-filtered, deterministically ordered alert list for one project.
// @Tags        Insights
// @Produce     json
// @Param       id path string true "Project ID"
// @Success     200 {object} alertsResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/insights/projects/{id}/alerts [GET]
func (h *handler) Alerts(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processProjectID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	alerts, err := h.uc.Alerts(ctx, middleware.GetScope(c), id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Alerts: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newAlertsResp(alerts))
}

// AllAlerts godoc
// @Summary     Alerts across all projects
// @Description Aggregates alerts over every project visible to the caller.
// @Tags        Insights
// @Produce     json
// @Success     200 {object} alertsResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/insights/alerts [GET]
func (h *handler) AllAlerts(c *gin.Context) {
	ctx := c.Request.Context()

	alerts, err := h.uc.AllAlerts(ctx, middleware.GetScope(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.AllAlerts: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newAlertsResp(alerts))
}

// Acknowledge godoc
// @Summary     Acknowledge an alert
// @Description Permanently hides an alert key until cleared.
// @Tags        Insights
// @Produce     json
// @Param       key path string true "Alert key"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Invalid alert key"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/insights/alerts/{key}/ack [POST]
func (h *handler) Acknowledge(c *gin.Context) {
	ctx := c.Request.Context()

	key, err := h.processAlertKey(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Acknowledge(ctx, middleware.GetScope(c), key); err != nil {
		h.l.Errorf(ctx, "uc.Acknowledge: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// ClearAcknowledgement godoc
// @Summary     Clear an acknowledgement
// @Description Re-enables a previously acknowledged alert key.
// @Tags        Insights
// @Produce     json
// @Param       key path string true "Alert key"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Invalid alert key"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/insights/alerts/{key}/ack [DELETE]
func (h *handler) ClearAcknowledgement(c *gin.Context) {
	ctx := c.Request.Context()

	key, err := h.processAlertKey(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.ClearAcknowledgement(ctx, middleware.GetScope(c), key); err != nil {
		h.l.Errorf(ctx, "uc.ClearAcknowledgement: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Snooze godoc
// @Summary     Snooze an alert
// @Description Hides an alert key for a number of days (default from config).
// @Tags        Insights
// @Accept      json
// @Produce     json
// @Param       key  path string    true  "Alert key"
// @Param       body body snoozeReq false "Snooze window"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Invalid alert key"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/insights/alerts/{key}/snooze [POST]
func (h *handler) Snooze(c *gin.Context) {
	ctx := c.Request.Context()

	key, err := h.processAlertKey(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	req, err := h.processSnoozeReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	input := insights.SnoozeInput{Key: key, Days: req.Days}
	if err := h.uc.Snooze(ctx, middleware.GetScope(c), input); err != nil {
		h.l.Errorf(ctx, "uc.Snooze: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// SyncCalendar godoc
// @Summary     Sync project deadlines to Google Calendar
// @Description Mirrors a project's open task and subtask deadlines into the configured calendar.
// @Tags        Insights
// @Produce     json
// @Param       id path string true "Project ID"
// @Success     200 {object} syncCalendarResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Calendar sync not enabled"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/insights/projects/{id}/calendar-sync [POST]
func (h *handler) SyncCalendar(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processProjectID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.SyncCalendar(ctx, middleware.GetScope(c), id)
	if err != nil {
		h.l.Errorf(ctx, "uc.SyncCalendar: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSyncCalendarResp(out))
}
