// api/authz/store.go
package authz

import (
	"context"

	"github.com/taskhive/taskhive/api/model"
)

// EntityStore is the read-only data-access collaborator for one resource
// type. FindRef returns the minimal projection of the target entity, or
// (nil, nil) when no such entity is visible: resolvers treat absence as "no
// relationship", never as an internal error. Soft-deleted entities are
// invisible unless includeDeleted is set (restore flows).
//
// Store errors are fatal for the enclosing request; they must never be
// conflated with a permission denial.
type EntityStore interface {
	FindRef(ctx context.Context, id string, includeDeleted bool) (*model.EntityRef, error)
}

// DepartmentStore additionally validates that a department supplied in a
// creation payload or list filter belongs to a given tenant.
type DepartmentStore interface {
	EntityStore
	ExistsInOrganization(ctx context.Context, departmentID, organizationID string) (bool, error)
}

// Stores bundles the per-resource data-access collaborators the resolvers
// consume. All are resolved at composition time, not per request.
type Stores struct {
	Organizations  EntityStore
	Departments    DepartmentStore
	Users          EntityStore
	Tasks          EntityStore
	TaskActivities EntityStore
	TaskComments   EntityStore
	Materials      EntityStore
	Vendors        EntityStore
	Notifications  EntityStore
}
