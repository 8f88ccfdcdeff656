// api/errors/auth_errors.go
package errors

import "errors"

var (
	// ErrAuthentication means no verified identity is present on the request.
	// Distinct from authorization failure and never conflated with it.
	ErrAuthentication = errors.New("authentication required")

	// ErrInsufficientPermission covers every authorization denial, including
	// the missing-policy and failed-context cases. Both surface identically
	// to the caller so that resource existence never leaks.
	ErrInsufficientPermission = errors.New("insufficient permission")
)
