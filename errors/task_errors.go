// api/errors/task_errors.go
package errors

import "errors"

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrTaskConflict    = errors.New("task conflict")
	ErrInvalidTaskData = errors.New("invalid task data")

	ErrNotificationNotFound    = errors.New("notification not found")
	ErrInvalidNotificationData = errors.New("invalid notification data")

	ErrMaterialNotFound = errors.New("material not found")
	ErrVendorNotFound   = errors.New("vendor not found")
)
