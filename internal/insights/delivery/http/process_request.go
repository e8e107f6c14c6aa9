package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "medflow-insights/pkg/errors"
)

// processListProjectsReq binds the list query parameters.
func (h *handler) processListProjectsReq(c *gin.Context) (listProjectsReq, error) {
	var req listProjectsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processProjectID extracts and validates the project id URI param.
func (h *handler) processProjectID(c *gin.Context) (string, error) {
	id := c.Param("id")
	if id == "" {
		return "", pkgErrors.NewHTTPError(400, "project id is required")
	}
	return id, nil
}

// processAlertKey extracts and validates the alert key URI param.
func (h *handler) processAlertKey(c *gin.Context) (string, error) {
	key := c.Param("key")
	if key == "" {
		return "", pkgErrors.NewHTTPError(400, "alert key is required")
	}
	return key, nil
}

// processSnoozeReq binds the optional snooze body. An empty body means the
// default snooze window.
func (h *handler) processSnoozeReq(c *gin.Context) (snoozeReq, error) {
	var req snoozeReq
	if c.Request.ContentLength == 0 {
		return req, nil
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
