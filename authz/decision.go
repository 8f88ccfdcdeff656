// api/authz/decision.go
package authz

import (
	"github.com/gin-gonic/gin"

	"github.com/taskhive/taskhive/api/model"
)

const (
	// IdentityKey is the gin context key where the identity middleware
	// stores the verified caller.
	IdentityKey = "taskhive.identity"

	// DecisionKey is the gin context key where the guard attaches the
	// Decision after an allow verdict.
	DecisionKey = "taskhive.authz.decision"
)

// Decision describes why a request was allowed. It is created once per
// allowed request, attached to the request for the rest of its lifecycle
// and discarded at request end; it is never persisted.
type Decision struct {
	Resource         Resource  `json:"resource"`
	Operation        Operation `json:"operation"`
	Role             Role      `json:"role"`
	Scope            Scope     `json:"scope"`
	Context          Context   `json:"context,omitempty"`
	IsPlatformMember bool      `json:"is_platform_member"`
	CrossOrgSource   string    `json:"cross_org_source,omitempty"`
}

// CallerFrom returns the verified identity the middleware attached to the
// request, if any.
func CallerFrom(c *gin.Context) (model.Identity, bool) {
	v, exists := c.Get(IdentityKey)
	if !exists {
		return model.Identity{}, false
	}
	identity, ok := v.(model.Identity)
	return identity, ok
}

// SetCaller attaches a verified identity to the request. Only the identity
// middleware should call this.
func SetCaller(c *gin.Context, identity model.Identity) {
	c.Set(IdentityKey, identity)
}

// DecisionFrom returns the Decision the guard attached on allow. Downstream
// handlers treat it as read-only.
func DecisionFrom(c *gin.Context) (*Decision, bool) {
	v, exists := c.Get(DecisionKey)
	if !exists {
		return nil, false
	}
	decision, ok := v.(*Decision)
	return decision, ok
}
