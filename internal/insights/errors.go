package insights

import "errors"

// Domain-specific errors for the insights package.
var (
	ErrProjectNotFound    = errors.New("project not found")
	ErrInvalidAlertKey    = errors.New("invalid alert key")
	ErrCalendarNotEnabled = errors.New("calendar sync is not enabled")
	ErrForbidden          = errors.New("operation not allowed for this role")
)
