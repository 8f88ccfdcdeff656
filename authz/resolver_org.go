// api/authz/resolver_org.go
package authz

import (
	"context"

	"github.com/taskhive/taskhive/api/model"
)

// organizationResolver handles the organization resource, which is
// org-scoped only: the caller relates to exactly one organization, their
// own. Operations on any other tenant go through the cross-tenant
// validator or not at all.
type organizationResolver struct {
	store EntityStore
}

func (r organizationResolver) Resolve(ctx context.Context, req AccessRequest, caller model.Identity) (Context, error) {
	if req.ResourceID == "" {
		// Creation and listing default to the caller's own organization.
		return ContextOwn, nil
	}
	ref, err := r.store.FindRef(ctx, req.ResourceID, req.IncludeDeleted)
	if err != nil {
		return ContextNone, err
	}
	if ref == nil {
		return ContextNone, nil
	}
	if ref.ID == caller.OrganizationID {
		return ContextOwn, nil
	}
	return ContextNone, nil
}
