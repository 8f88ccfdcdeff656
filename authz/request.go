// api/authz/request.go
package authz

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/gin-gonic/gin"
)

// AccessRequest is what context resolution sees of an inbound request:
// the target entity id for operations on a specific entity, and the
// department / collaborator hints supplied on creation and list paths.
type AccessRequest struct {
	// Operation is the operation being attempted; the guard fills it in.
	Operation Operation

	// ResourceID is the id of an existing target entity; empty on
	// creation and listing paths.
	ResourceID string

	// DepartmentID is the target department supplied in a creation
	// payload or as a list filter. Empty means the caller's own
	// department.
	DepartmentID string

	// CollaboratorIDs are user ids supplied in a creation payload
	// (assignees, recipients, mentions). A caller that appears among
	// them owns the request.
	CollaboratorIDs []string

	// IncludeDeleted makes entity lookups see soft-deleted rows;
	// restore flows set it.
	IncludeDeleted bool
}

// RequestOption customizes how the guard middleware builds the
// AccessRequest from the HTTP request.
type RequestOption func(*gin.Context, *AccessRequest)

// payloadHints is the loose projection of a creation payload that context
// resolution cares about.
type payloadHints struct {
	DepartmentID string   `json:"department_id"`
	Assignees    []string `json:"assignees"`
	Watchers     []string `json:"watchers"`
	Mentions     []string `json:"mentions"`
	Recipients   []string `json:"recipients"`
}

// WithBodyHints peeks at the JSON request body for the department and
// collaborator ids a creation payload may carry, then restores the body so
// the controller can bind it again. Malformed bodies contribute no hints;
// payload validation is the controller's job.
func WithBodyHints() RequestOption {
	return func(c *gin.Context, req *AccessRequest) {
		if c.Request == nil || c.Request.Body == nil {
			return
		}
		raw, err := io.ReadAll(c.Request.Body)
		if err != nil {
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(raw))

		var hints payloadHints
		if err := json.Unmarshal(raw, &hints); err != nil {
			return
		}
		if hints.DepartmentID != "" {
			req.DepartmentID = hints.DepartmentID
		}
		req.CollaboratorIDs = append(req.CollaboratorIDs, hints.Assignees...)
		req.CollaboratorIDs = append(req.CollaboratorIDs, hints.Watchers...)
		req.CollaboratorIDs = append(req.CollaboratorIDs, hints.Mentions...)
		req.CollaboratorIDs = append(req.CollaboratorIDs, hints.Recipients...)
	}
}

// WithIncludeDeleted makes the lookup see soft-deleted entities; used on
// restore routes.
func WithIncludeDeleted() RequestOption {
	return func(_ *gin.Context, req *AccessRequest) {
		req.IncludeDeleted = true
	}
}

// requestFrom builds the default AccessRequest: the ":id" path parameter
// identifies an existing target entity, and the departmentId query
// parameter carries the optional list filter.
func requestFrom(c *gin.Context, opts ...RequestOption) AccessRequest {
	req := AccessRequest{
		ResourceID:   c.Param("id"),
		DepartmentID: c.Query("departmentId"),
	}
	for _, opt := range opts {
		opt(c, &req)
	}
	return req
}
