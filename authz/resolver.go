// api/authz/resolver.go
package authz

import (
	"context"

	"github.com/taskhive/taskhive/api/model"
)

// ContextResolver determines the caller's relationship to the target of a
// request: own, ownDept, crossDept, or ContextNone when no relationship
// exists. Resolvers perform read-only lookups and no writes; a store error
// is fatal for the request and is never folded into ContextNone.
type ContextResolver interface {
	Resolve(ctx context.Context, req AccessRequest, caller model.Identity) (Context, error)
}

// newResolverRegistry wires one resolver per resource type. Dispatch is a
// map lookup, so every resource the policy table can name has exactly one
// resolver bound here.
func newResolverRegistry(stores Stores) map[Resource]ContextResolver {
	return map[Resource]ContextResolver{
		ResourceOrganization: organizationResolver{store: stores.Organizations},
		ResourceDepartment: entityResolver{
			store: stores.Departments,
			depts: stores.Departments,
			// Departments define no per-entity ownership.
			owns: nil,
		},
		ResourceUser: entityResolver{
			store: stores.Users,
			depts: stores.Departments,
			owns: func(ref *model.EntityRef, caller model.Identity) bool {
				return ref.ID == caller.ID
			},
		},
		ResourceTask: entityResolver{
			store: stores.Tasks,
			depts: stores.Departments,
			owns: func(ref *model.EntityRef, caller model.Identity) bool {
				return ref.CreatedBy == caller.ID ||
					containsID(ref.Assignees, caller.ID) ||
					containsID(ref.Watchers, caller.ID)
			},
		},
		ResourceTaskActivity: entityResolver{
			store: stores.TaskActivities,
			depts: stores.Departments,
			owns: func(ref *model.EntityRef, caller model.Identity) bool {
				return ref.CreatedBy == caller.ID
			},
		},
		ResourceTaskComment: entityResolver{
			store: stores.TaskComments,
			depts: stores.Departments,
			owns: func(ref *model.EntityRef, caller model.Identity) bool {
				return ref.CreatedBy == caller.ID || containsID(ref.Mentions, caller.ID)
			},
		},
		ResourceMaterial: entityResolver{
			store: stores.Materials,
			depts: stores.Departments,
			owns: func(ref *model.EntityRef, caller model.Identity) bool {
				return ref.CreatedBy == caller.ID
			},
		},
		ResourceVendor:       vendorResolver{store: stores.Vendors},
		ResourceNotification: notificationResolver{store: stores.Notifications, depts: stores.Departments},
	}
}

// ownFunc reports whether the caller owns the entity, per the resource
// type's collaborator semantics.
type ownFunc func(ref *model.EntityRef, caller model.Identity) bool

// relate classifies an existing entity against the caller. Tenant isolation
// comes first: an entity of a different tenant yields ContextNone no matter
// who created it; same-tenant cross-access is the cross-tenant validator's
// job, never the resolver's.
func relate(ref *model.EntityRef, caller model.Identity, owns ownFunc) Context {
	if ref == nil {
		return ContextNone
	}
	if ref.OrganizationID != caller.OrganizationID {
		return ContextNone
	}
	if owns != nil && owns(ref, caller) {
		return ContextOwn
	}
	if ref.DepartmentID != "" && ref.DepartmentID == caller.DepartmentID {
		return ContextOwnDept
	}
	return ContextCrossDept
}

// departmentScope classifies creation and listing requests that carry no
// target entity. A missing department hint defaults to the caller's own
// department: an implicit default scope, never a tenant-wide one.
func departmentScope(ctx context.Context, req AccessRequest, caller model.Identity, depts DepartmentStore) (Context, error) {
	if containsID(req.CollaboratorIDs, caller.ID) {
		return ContextOwn, nil
	}
	if req.DepartmentID == "" || req.DepartmentID == caller.DepartmentID {
		return ContextOwnDept, nil
	}
	ok, err := depts.ExistsInOrganization(ctx, req.DepartmentID, caller.OrganizationID)
	if err != nil {
		return ContextNone, err
	}
	if !ok {
		return ContextNone, nil
	}
	return ContextCrossDept, nil
}

// entityResolver is the shared resolver shape for department-scoped
// resources: fetch the minimal projection when an id is present, otherwise
// fall back to department scoping for creation and listing paths.
type entityResolver struct {
	store EntityStore
	depts DepartmentStore
	owns  ownFunc
}

func (r entityResolver) Resolve(ctx context.Context, req AccessRequest, caller model.Identity) (Context, error) {
	if req.ResourceID != "" {
		ref, err := r.store.FindRef(ctx, req.ResourceID, req.IncludeDeleted)
		if err != nil {
			return ContextNone, err
		}
		return relate(ref, caller, r.owns), nil
	}
	return departmentScope(ctx, req, caller, r.depts)
}

func containsID(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
