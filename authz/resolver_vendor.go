// api/authz/resolver_vendor.go
package authz

import (
	"context"

	"github.com/taskhive/taskhive/api/model"
)

// vendorResolver handles vendors, which are tenant-wide rather than
// department-scoped: any member of the owning organization gets the
// ownDept-equivalent context, and the creator gets own.
type vendorResolver struct {
	store EntityStore
}

func (r vendorResolver) Resolve(ctx context.Context, req AccessRequest, caller model.Identity) (Context, error) {
	if req.ResourceID == "" {
		return ContextOwnDept, nil
	}
	ref, err := r.store.FindRef(ctx, req.ResourceID, req.IncludeDeleted)
	if err != nil {
		return ContextNone, err
	}
	if ref == nil || ref.OrganizationID != caller.OrganizationID {
		return ContextNone, nil
	}
	if ref.CreatedBy == caller.ID {
		return ContextOwn, nil
	}
	return ContextOwnDept, nil
}
