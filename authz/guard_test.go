// api/authz/guard_test.go
package authz_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	tmock "github.com/stretchr/testify/mock"

	"github.com/taskhive/taskhive/api/authz"
	taskhive_errors "github.com/taskhive/taskhive/api/errors"
	logger "github.com/taskhive/taskhive/api/logging"
	"github.com/taskhive/taskhive/api/model"
	test_mock "github.com/taskhive/taskhive/api/test/mock"
)

const platformOrg = "org-platform"

func newTestGuard(t *testing.T, stores authz.Stores) *authz.Guard {
	t.Helper()
	guard, err := authz.NewGuard(authz.DefaultPolicies(), stores, platformOrg, nil)
	assert.NoError(t, err)
	return guard
}

func taskStores(ref *model.EntityRef, err error) authz.Stores {
	tasks := new(test_mock.MockEntityStore)
	tasks.On("FindRef", tmock.Anything, tmock.Anything, tmock.Anything).Return(ref, err)
	return authz.Stores{Tasks: tasks}
}

func TestNewGuard(t *testing.T) {
	t.Run("RejectsInvalidTable", func(t *testing.T) {
		broken := authz.PolicyTable{"spaceship": {authz.RoleUser: authz.PolicyRule{}}}
		_, err := authz.NewGuard(broken, authz.Stores{}, platformOrg, nil)
		assert.Error(t, err)
	})

	t.Run("RejectsEmptyPlatformOrganization", func(t *testing.T) {
		_, err := authz.NewGuard(authz.DefaultPolicies(), authz.Stores{}, "", nil)
		assert.Error(t, err)
	})
}

func TestEvaluate(t *testing.T) {
	ctx := context.Background()
	alice := model.Identity{ID: "alice", Role: "User", OrganizationID: "org-1", DepartmentID: "dept-1"}

	t.Run("ColleagueTaskInOwnDepartment", func(t *testing.T) {
		guard := newTestGuard(t, taskStores(&model.EntityRef{
			ID:             "t-1",
			OrganizationID: "org-1",
			DepartmentID:   "dept-1",
			CreatedBy:      "bob",
		}, nil))

		decision, err := guard.Evaluate(ctx, alice, authz.ResourceTask, authz.OpRead, authz.AccessRequest{ResourceID: "t-1"})
		assert.NoError(t, err)
		assert.Equal(t, authz.ScopeOrg, decision.Scope)
		assert.Equal(t, authz.ContextOwnDept, decision.Context)
	})

	t.Run("OwnershipWithoutGrantStillDenies", func(t *testing.T) {
		// alice created the task, but the User role grants own only
		// read and update; delete must be denied.
		guard := newTestGuard(t, taskStores(&model.EntityRef{
			ID:             "t-1",
			OrganizationID: "org-1",
			DepartmentID:   "dept-1",
			CreatedBy:      "alice",
		}, nil))

		_, err := guard.Evaluate(ctx, alice, authz.ResourceTask, authz.OpDelete, authz.AccessRequest{ResourceID: "t-1"})
		var denial *authz.DenialError
		assert.ErrorAs(t, err, &denial)
		assert.ErrorIs(t, err, taskhive_errors.ErrInsufficientPermission)
	})

	t.Run("PlatformDeletesForeignOrganization", func(t *testing.T) {
		root := model.Identity{ID: "root", Role: "SuperAdmin", OrganizationID: platformOrg, IsPlatformMember: true}
		orgs := new(test_mock.MockEntityStore)
		guard := newTestGuard(t, authz.Stores{Organizations: orgs})

		decision, err := guard.Evaluate(ctx, root, authz.ResourceOrganization, authz.OpDelete, authz.AccessRequest{ResourceID: "org-2"})
		assert.NoError(t, err)
		assert.Equal(t, authz.ScopeCrossOrg, decision.Scope)
		assert.Equal(t, authz.CrossOrgSourcePlatform, decision.CrossOrgSource)
		// The cross-tenant branch never reads the target entity.
		orgs.AssertNotCalled(t, "FindRef", tmock.Anything, tmock.Anything, tmock.Anything)
	})

	t.Run("MissingEntityIsDenialNotError", func(t *testing.T) {
		guard := newTestGuard(t, taskStores(nil, nil))

		_, err := guard.Evaluate(ctx, alice, authz.ResourceTask, authz.OpRead, authz.AccessRequest{ResourceID: "t-missing"})
		var denial *authz.DenialError
		assert.ErrorAs(t, err, &denial)
	})

	t.Run("DefaultDenyWithoutPolicyEntry", func(t *testing.T) {
		guard := newTestGuard(t, taskStores(&model.EntityRef{ID: "t-1", OrganizationID: "org-1"}, nil))
		intern := model.Identity{ID: "dave", Role: "Intern", OrganizationID: "org-1"}

		_, err := guard.Evaluate(ctx, intern, authz.ResourceTask, authz.OpRead, authz.AccessRequest{ResourceID: "t-1"})
		var denial *authz.DenialError
		assert.ErrorAs(t, err, &denial)
	})

	t.Run("ForeignTenantTaskDenied", func(t *testing.T) {
		guard := newTestGuard(t, taskStores(&model.EntityRef{
			ID:             "t-1",
			OrganizationID: "org-2",
			DepartmentID:   "dept-1",
			Assignees:      []string{"alice"},
		}, nil))

		_, err := guard.Evaluate(ctx, alice, authz.ResourceTask, authz.OpRead, authz.AccessRequest{ResourceID: "t-1"})
		var denial *authz.DenialError
		assert.ErrorAs(t, err, &denial)
	})

	t.Run("CrossTenantGrantWinsOverContextResolution", func(t *testing.T) {
		root := model.Identity{ID: "root", Role: "SuperAdmin", OrganizationID: platformOrg, IsPlatformMember: true}
		users := new(test_mock.MockEntityStore)
		guard := newTestGuard(t, authz.Stores{Users: users})

		// The SuperAdmin user policy carries a platform crossOrg read;
		// evaluation must short-circuit before any store lookup.
		decision, err := guard.Evaluate(ctx, root, authz.ResourceUser, authz.OpRead, authz.AccessRequest{ResourceID: "someone"})
		assert.NoError(t, err)
		assert.Equal(t, authz.ScopeCrossOrg, decision.Scope)
		users.AssertNotCalled(t, "FindRef", tmock.Anything, tmock.Anything, tmock.Anything)
	})

	t.Run("CrossTenantMissFallsBackToSameTenant", func(t *testing.T) {
		// A platform SuperAdmin asks for an operation the crossOrg rule
		// does not carry; the same-tenant branch still applies.
		root := model.Identity{ID: "root", Role: "SuperAdmin", OrganizationID: platformOrg, DepartmentID: "dept-hq", IsPlatformMember: true}
		users := new(test_mock.MockEntityStore)
		users.On("FindRef", tmock.Anything, "colleague", false).Return(&model.EntityRef{
			ID:             "colleague",
			OrganizationID: platformOrg,
			DepartmentID:   "dept-hq",
		}, nil)
		guard := newTestGuard(t, authz.Stores{Users: users})

		decision, err := guard.Evaluate(ctx, root, authz.ResourceUser, authz.OpUpdate, authz.AccessRequest{ResourceID: "colleague"})
		assert.NoError(t, err)
		assert.Equal(t, authz.ScopeOrg, decision.Scope)
		assert.Equal(t, authz.ContextOwnDept, decision.Context)
	})

	t.Run("StoreFailureIsInternalNotDenial", func(t *testing.T) {
		guard := newTestGuard(t, taskStores(nil, errors.New("connection refused")))

		_, err := guard.Evaluate(ctx, alice, authz.ResourceTask, authz.OpRead, authz.AccessRequest{ResourceID: "t-1"})
		assert.Error(t, err)
		var denial *authz.DenialError
		assert.False(t, errors.As(err, &denial))
	})

	t.Run("EvaluationIsIdempotent", func(t *testing.T) {
		guard := newTestGuard(t, taskStores(&model.EntityRef{
			ID:             "t-1",
			OrganizationID: "org-1",
			DepartmentID:   "dept-1",
			CreatedBy:      "bob",
		}, nil))
		req := authz.AccessRequest{ResourceID: "t-1"}

		first, err := guard.Evaluate(ctx, alice, authz.ResourceTask, authz.OpRead, req)
		assert.NoError(t, err)
		second, err := guard.Evaluate(ctx, alice, authz.ResourceTask, authz.OpRead, req)
		assert.NoError(t, err)
		assert.Equal(t, first, second)
	})
}

func withIdentity(identity model.Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		authz.SetCaller(c, identity)
		c.Next()
	}
}

func TestAuthorizeMiddleware(t *testing.T) {
	logger.InitLogger("../logging")
	defer logger.Sync()
	gin.SetMode(gin.TestMode)

	alice := model.Identity{ID: "alice", Role: "User", OrganizationID: "org-1", DepartmentID: "dept-1"}

	serve := func(guard *authz.Guard, identity *model.Identity, handler gin.HandlerFunc) *httptest.ResponseRecorder {
		router := gin.New()
		group := router.Group("/")
		if identity != nil {
			group.Use(withIdentity(*identity))
		}
		group.GET("/tasks/:id", guard.Authorize(authz.ResourceTask, authz.OpRead), handler)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/tasks/t-1", nil)
		router.ServeHTTP(w, req)
		return w
	}

	okHandler := func(c *gin.Context) { c.Status(http.StatusOK) }

	t.Run("AnonymousGets401", func(t *testing.T) {
		guard := newTestGuard(t, taskStores(nil, nil))
		w := serve(guard, nil, okHandler)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("DeniedGets403", func(t *testing.T) {
		guard := newTestGuard(t, taskStores(nil, nil))
		w := serve(guard, &alice, okHandler)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("StoreFailureGets500", func(t *testing.T) {
		guard := newTestGuard(t, taskStores(nil, errors.New("connection refused")))
		w := serve(guard, &alice, okHandler)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("AllowedRequestCarriesDecision", func(t *testing.T) {
		guard := newTestGuard(t, taskStores(&model.EntityRef{
			ID:             "t-1",
			OrganizationID: "org-1",
			DepartmentID:   "dept-1",
			CreatedBy:      "bob",
		}, nil))

		w := serve(guard, &alice, func(c *gin.Context) {
			decision, ok := authz.DecisionFrom(c)
			assert.True(t, ok)
			assert.Equal(t, authz.ContextOwnDept, decision.Context)
			c.Status(http.StatusOK)
		})
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRequirePlatformMember(t *testing.T) {
	logger.InitLogger("../logging")
	defer logger.Sync()
	gin.SetMode(gin.TestMode)

	guard := newTestGuard(t, authz.Stores{})

	serve := func(identity *model.Identity) *httptest.ResponseRecorder {
		router := gin.New()
		group := router.Group("/")
		if identity != nil {
			group.Use(withIdentity(*identity))
		}
		group.GET("/admin", guard.RequirePlatformMember(), func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/admin", nil)
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("AnonymousGets401", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, serve(nil).Code)
	})

	t.Run("TenantMemberGets403", func(t *testing.T) {
		tenant := model.Identity{ID: "carol", Role: "SuperAdmin", OrganizationID: "org-1"}
		assert.Equal(t, http.StatusForbidden, serve(&tenant).Code)
	})

	t.Run("MembershipIsRederivedFromConfiguration", func(t *testing.T) {
		// A forged IsPlatformMember flag on the identity is not enough;
		// the organization id decides.
		forged := model.Identity{ID: "mallory", Role: "SuperAdmin", OrganizationID: "org-1", IsPlatformMember: true}
		assert.Equal(t, http.StatusForbidden, serve(&forged).Code)
	})

	t.Run("PlatformMemberPasses", func(t *testing.T) {
		root := model.Identity{ID: "root", Role: "SuperAdmin", OrganizationID: platformOrg, IsPlatformMember: true}
		assert.Equal(t, http.StatusOK, serve(&root).Code)
	})
}
