package http

import (
	"medflow-insights/internal/insights"
	pkgErrors "medflow-insights/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case insights.ErrProjectNotFound:
		return pkgErrors.NewHTTPError(404, "project not found")
	case insights.ErrInvalidAlertKey:
		return pkgErrors.NewHTTPError(400, "invalid alert key")
	case insights.ErrForbidden:
		return pkgErrors.NewHTTPError(403, "operation not allowed for this role")
	case insights.ErrCalendarNotEnabled:
		return pkgErrors.NewHTTPError(409, "calendar sync is not enabled")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
