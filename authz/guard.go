// api/authz/guard.go
package authz

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/taskhive/taskhive/api/audit"
	taskhive_errors "github.com/taskhive/taskhive/api/errors"
	logger "github.com/taskhive/taskhive/api/logging"
	"github.com/taskhive/taskhive/api/model"
	"github.com/taskhive/taskhive/api/util"
)

// EventDecision is the event bus topic every evaluated decision is
// published on; the audit subscriber indexes them asynchronously.
const EventDecision = "authz.decision"

// Guard evaluates authorization for inbound requests: policy lookup, the
// cross-tenant check, context resolution and the final operation check, in
// that order. It holds no mutable state after construction and is safe for
// unbounded concurrent use.
type Guard struct {
	policies      PolicyTable
	resolvers     map[Resource]ContextResolver
	platformOrgID string
	bus           *util.EventBus
}

// NewGuard validates the policy table and wires the resolver registry.
// platformOrgID is the configured platform organization; it is injected
// here rather than read from ambient configuration.
func NewGuard(policies PolicyTable, stores Stores, platformOrgID string, bus *util.EventBus) (*Guard, error) {
	if err := policies.Validate(); err != nil {
		return nil, fmt.Errorf("invalid policy table: %w", err)
	}
	if platformOrgID == "" {
		return nil, fmt.Errorf("platform organization id must not be empty")
	}
	return &Guard{
		policies:      policies,
		resolvers:     newResolverRegistry(stores),
		platformOrgID: platformOrgID,
		bus:           bus,
	}, nil
}

// Evaluate produces the verdict for one request. It returns a Decision on
// allow, a *DenialError on deny, and any other error only for data-store
// failures during context resolution.
//
// Order matters: the policy lookup short-circuits before any store read,
// and the cross-tenant branch wins over same-tenant context resolution.
func (g *Guard) Evaluate(ctx context.Context, caller model.Identity, resource Resource, op Operation, req AccessRequest) (*Decision, error) {
	role := Role(caller.Role)

	rule, ok := g.policies.Lookup(resource, role)
	if !ok {
		return nil, &DenialError{
			Resource:  resource,
			Operation: op,
			Role:      role,
			Reason:    reasonNoPolicy,
		}
	}

	if rule.CrossOrg != nil && crossOrgAllowed(rule.CrossOrg, caller) && rule.CrossOrg.Ops.Contains(op) {
		return &Decision{
			Resource:         resource,
			Operation:        op,
			Role:             role,
			Scope:            ScopeCrossOrg,
			IsPlatformMember: caller.IsPlatformMember,
			CrossOrgSource:   rule.CrossOrg.From,
		}, nil
	}

	if len(rule.Org) > 0 {
		resolver, ok := g.resolvers[resource]
		if !ok {
			return nil, &DenialError{
				Resource:       resource,
				Operation:      op,
				Role:           role,
				ScopeAttempted: ScopeOrg,
				Reason:         reasonNoResolver,
			}
		}

		relation, err := resolver.Resolve(ctx, req, caller)
		if err != nil {
			return nil, fmt.Errorf("context resolution for %s failed: %w", resource, err)
		}

		if relation == ContextNone {
			return nil, &DenialError{
				Resource:       resource,
				Operation:      op,
				Role:           role,
				ScopeAttempted: ScopeOrg,
				Reason:         reasonNoContext,
			}
		}

		if rule.Org[relation].Contains(op) {
			return &Decision{
				Resource:         resource,
				Operation:        op,
				Role:             role,
				Scope:            ScopeOrg,
				Context:          relation,
				IsPlatformMember: caller.IsPlatformMember,
			}, nil
		}
	}

	return nil, &DenialError{
		Resource:       resource,
		Operation:      op,
		Role:           role,
		ScopeAttempted: ScopeOrg,
		Reason:         reasonOpNotGranted,
	}
}

// Authorize returns the per-request checker for (resource, operation). On
// allow it attaches the Decision to the request; on deny it aborts with a
// non-leaking error message.
func (g *Guard) Authorize(resource Resource, op Operation, opts ...RequestOption) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := CallerFrom(c)
		if !ok {
			util.RespondWithError(c, http.StatusUnauthorized, "Authentication required", taskhive_errors.ErrAuthentication)
			c.Abort()
			return
		}

		req := requestFrom(c, opts...)
		req.Operation = op

		decision, err := g.Evaluate(c.Request.Context(), caller, resource, op, req)
		if err != nil {
			var denial *DenialError
			if errors.As(err, &denial) {
				logger.Warn("Authorization denied",
					zap.String("userID", caller.ID),
					zap.String("role", caller.Role),
					zap.String("resource", string(resource)),
					zap.String("operation", string(op)),
					zap.String("scopeAttempted", string(denial.ScopeAttempted)),
					zap.String("reason", denial.Reason))
				g.publishDecision(c, caller, resource, op, nil, denial.Reason)
				util.RespondWithError(c, http.StatusForbidden, "Insufficient permission", taskhive_errors.ErrInsufficientPermission)
			} else {
				logger.Error("Context resolution failed",
					zap.Error(err),
					zap.String("userID", caller.ID),
					zap.String("resource", string(resource)),
					zap.String("operation", string(op)))
				util.RespondWithError(c, http.StatusInternalServerError, "Internal server error", taskhive_errors.ErrInternalServer)
			}
			c.Abort()
			return
		}

		c.Set(DecisionKey, decision)
		g.publishDecision(c, caller, resource, op, decision, "")
		c.Next()
	}
}

// RequireAuthenticated only checks that a verified identity is present.
func (g *Guard) RequireAuthenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CallerFrom(c); !ok {
			util.RespondWithError(c, http.StatusUnauthorized, "Authentication required", taskhive_errors.ErrAuthentication)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequirePlatformMember gates platform-only operations. Membership is
// re-derived from the injected platform organization id, not taken from
// the identity record.
func (g *Guard) RequirePlatformMember() gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := CallerFrom(c)
		if !ok {
			util.RespondWithError(c, http.StatusUnauthorized, "Authentication required", taskhive_errors.ErrAuthentication)
			c.Abort()
			return
		}
		if caller.OrganizationID != g.platformOrgID {
			logger.Warn("Platform membership required",
				zap.String("userID", caller.ID),
				zap.String("organizationID", caller.OrganizationID))
			util.RespondWithError(c, http.StatusForbidden, "Insufficient permission", taskhive_errors.ErrInsufficientPermission)
			c.Abort()
			return
		}
		c.Next()
	}
}

func (g *Guard) publishDecision(c *gin.Context, caller model.Identity, resource Resource, op Operation, decision *Decision, reason string) {
	if g.bus == nil {
		return
	}
	log := audit.DecisionLog{
		Timestamp:      time.Now().UTC(),
		UserID:         caller.ID,
		Role:           caller.Role,
		OrganizationID: caller.OrganizationID,
		Resource:       string(resource),
		Operation:      string(op),
		Granted:        decision != nil,
		Reason:         reason,
	}
	if decision != nil {
		log.Scope = string(decision.Scope)
		log.Context = string(decision.Context)
		log.CrossOrgSource = decision.CrossOrgSource
	}
	// Audit writes outlive the request; its cancellation must not drop them.
	g.bus.Publish(context.WithoutCancel(c.Request.Context()), EventDecision, log)
}
