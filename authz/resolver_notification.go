// api/authz/resolver_notification.go
package authz

import (
	"context"

	"github.com/taskhive/taskhive/api/model"
)

// notificationResolver handles notifications. A caller owns a notification
// when they appear in its recipients, created it, or have marked it read.
// Listing defaults to own — a caller's inbox — unlike the ownDept default
// every other department-scoped resource uses.
type notificationResolver struct {
	store EntityStore
	depts DepartmentStore
}

func (r notificationResolver) Resolve(ctx context.Context, req AccessRequest, caller model.Identity) (Context, error) {
	if req.ResourceID != "" {
		ref, err := r.store.FindRef(ctx, req.ResourceID, req.IncludeDeleted)
		if err != nil {
			return ContextNone, err
		}
		return relate(ref, caller, func(ref *model.EntityRef, caller model.Identity) bool {
			return containsID(ref.Recipients, caller.ID) ||
				ref.CreatedBy == caller.ID ||
				containsID(ref.ReadBy, caller.ID)
		}), nil
	}
	if req.Operation == OpList && req.DepartmentID == "" {
		return ContextOwn, nil
	}
	return departmentScope(ctx, req, caller, r.depts)
}
