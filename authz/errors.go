// api/authz/errors.go
package authz

import (
	taskhive_errors "github.com/taskhive/taskhive/api/errors"
)

// DenialError is an authorization denial carrying the structured metadata
// the audit trail wants. The external message is deliberately uniform:
// a missing policy, a failed context and a disallowed operation all read
// the same to the caller.
type DenialError struct {
	Resource       Resource
	Operation      Operation
	Role           Role
	ScopeAttempted Scope
	Reason         string
}

func (e *DenialError) Error() string {
	return taskhive_errors.ErrInsufficientPermission.Error()
}

func (e *DenialError) Unwrap() error {
	return taskhive_errors.ErrInsufficientPermission
}

// Internal reasons recorded on denials; for logs and audit only, never
// returned to the caller.
const (
	reasonNoPolicy     = "no policy entry for resource and role"
	reasonNoContext    = "no contextual relationship to target"
	reasonOpNotGranted = "operation not granted in resolved context"
	reasonNoResolver   = "no resolver registered for resource"
)
