// api/authz/resolver_test.go
package authz

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taskhive/taskhive/api/model"
	test_mock "github.com/taskhive/taskhive/api/test/mock"
)

var alice = model.Identity{ID: "alice", Role: "User", OrganizationID: "org-1", DepartmentID: "dept-1"}

func TestRelate(t *testing.T) {
	creatorOwns := func(ref *model.EntityRef, caller model.Identity) bool {
		return ref.CreatedBy == caller.ID
	}

	t.Run("MissingEntity", func(t *testing.T) {
		assert.Equal(t, ContextNone, relate(nil, alice, creatorOwns))
	})

	t.Run("OtherTenantAlwaysNone", func(t *testing.T) {
		// Tenant isolation wins even over ownership: alice created the
		// entity but it lives in another organization.
		ref := &model.EntityRef{ID: "t-1", OrganizationID: "org-2", DepartmentID: "dept-1", CreatedBy: "alice"}
		assert.Equal(t, ContextNone, relate(ref, alice, creatorOwns))
	})

	t.Run("CreatorOwns", func(t *testing.T) {
		ref := &model.EntityRef{ID: "t-1", OrganizationID: "org-1", DepartmentID: "dept-2", CreatedBy: "alice"}
		assert.Equal(t, ContextOwn, relate(ref, alice, creatorOwns))
	})

	t.Run("SameDepartment", func(t *testing.T) {
		ref := &model.EntityRef{ID: "t-1", OrganizationID: "org-1", DepartmentID: "dept-1", CreatedBy: "bob"}
		assert.Equal(t, ContextOwnDept, relate(ref, alice, creatorOwns))
	})

	t.Run("OtherDepartment", func(t *testing.T) {
		ref := &model.EntityRef{ID: "t-1", OrganizationID: "org-1", DepartmentID: "dept-2", CreatedBy: "bob"}
		assert.Equal(t, ContextCrossDept, relate(ref, alice, creatorOwns))
	})

	t.Run("NoOwnershipSemantics", func(t *testing.T) {
		// Departments pass owns == nil; the strongest achievable context
		// is ownDept.
		ref := &model.EntityRef{ID: "d-1", OrganizationID: "org-1", DepartmentID: "dept-1", CreatedBy: "alice"}
		assert.Equal(t, ContextOwnDept, relate(ref, alice, nil))
	})
}

func TestDepartmentScope(t *testing.T) {
	ctx := context.Background()

	t.Run("CallerAmongCollaborators", func(t *testing.T) {
		depts := new(test_mock.MockDepartmentStore)
		req := AccessRequest{DepartmentID: "dept-9", CollaboratorIDs: []string{"carol", "alice"}}

		relation, err := departmentScope(ctx, req, alice, depts)
		assert.NoError(t, err)
		assert.Equal(t, ContextOwn, relation)
	})

	t.Run("NoHintDefaultsToOwnDepartment", func(t *testing.T) {
		depts := new(test_mock.MockDepartmentStore)

		relation, err := departmentScope(ctx, AccessRequest{}, alice, depts)
		assert.NoError(t, err)
		assert.Equal(t, ContextOwnDept, relation)
	})

	t.Run("OwnDepartmentHint", func(t *testing.T) {
		depts := new(test_mock.MockDepartmentStore)

		relation, err := departmentScope(ctx, AccessRequest{DepartmentID: "dept-1"}, alice, depts)
		assert.NoError(t, err)
		assert.Equal(t, ContextOwnDept, relation)
	})

	t.Run("SiblingDepartment", func(t *testing.T) {
		depts := new(test_mock.MockDepartmentStore)
		depts.On("ExistsInOrganization", ctx, "dept-2", "org-1").Return(true, nil)

		relation, err := departmentScope(ctx, AccessRequest{DepartmentID: "dept-2"}, alice, depts)
		assert.NoError(t, err)
		assert.Equal(t, ContextCrossDept, relation)
	})

	t.Run("DepartmentOfAnotherTenant", func(t *testing.T) {
		depts := new(test_mock.MockDepartmentStore)
		depts.On("ExistsInOrganization", ctx, "dept-foreign", "org-1").Return(false, nil)

		relation, err := departmentScope(ctx, AccessRequest{DepartmentID: "dept-foreign"}, alice, depts)
		assert.NoError(t, err)
		assert.Equal(t, ContextNone, relation)
	})

	t.Run("StoreFailureIsFatal", func(t *testing.T) {
		depts := new(test_mock.MockDepartmentStore)
		depts.On("ExistsInOrganization", ctx, "dept-2", "org-1").Return(false, errors.New("connection refused"))

		relation, err := departmentScope(ctx, AccessRequest{DepartmentID: "dept-2"}, alice, depts)
		assert.Error(t, err)
		assert.Equal(t, ContextNone, relation)
	})
}

func TestTaskResolver(t *testing.T) {
	ctx := context.Background()

	resolverFor := func(ref *model.EntityRef) ContextResolver {
		tasks := new(test_mock.MockEntityStore)
		tasks.On("FindRef", ctx, "t-1", false).Return(ref, nil)
		return newResolverRegistry(Stores{Tasks: tasks})[ResourceTask]
	}

	t.Run("AssigneeOwnsAcrossDepartments", func(t *testing.T) {
		ref := &model.EntityRef{
			ID:             "t-1",
			OrganizationID: "org-1",
			DepartmentID:   "dept-2",
			CreatedBy:      "bob",
			Assignees:      []string{"alice"},
		}
		relation, err := resolverFor(ref).Resolve(ctx, AccessRequest{ResourceID: "t-1"}, alice)
		assert.NoError(t, err)
		assert.Equal(t, ContextOwn, relation)
	})

	t.Run("WatcherOwns", func(t *testing.T) {
		ref := &model.EntityRef{
			ID:             "t-1",
			OrganizationID: "org-1",
			DepartmentID:   "dept-2",
			CreatedBy:      "bob",
			Watchers:       []string{"alice"},
		}
		relation, err := resolverFor(ref).Resolve(ctx, AccessRequest{ResourceID: "t-1"}, alice)
		assert.NoError(t, err)
		assert.Equal(t, ContextOwn, relation)
	})

	t.Run("UnrelatedTaskInOtherDepartment", func(t *testing.T) {
		ref := &model.EntityRef{
			ID:             "t-1",
			OrganizationID: "org-1",
			DepartmentID:   "dept-2",
			CreatedBy:      "bob",
		}
		relation, err := resolverFor(ref).Resolve(ctx, AccessRequest{ResourceID: "t-1"}, alice)
		assert.NoError(t, err)
		assert.Equal(t, ContextCrossDept, relation)
	})

	t.Run("TaskOfAnotherTenant", func(t *testing.T) {
		ref := &model.EntityRef{
			ID:             "t-1",
			OrganizationID: "org-2",
			DepartmentID:   "dept-1",
			Assignees:      []string{"alice"},
		}
		relation, err := resolverFor(ref).Resolve(ctx, AccessRequest{ResourceID: "t-1"}, alice)
		assert.NoError(t, err)
		assert.Equal(t, ContextNone, relation)
	})

	t.Run("SoftDeletedInvisibleByDefault", func(t *testing.T) {
		tasks := new(test_mock.MockEntityStore)
		tasks.On("FindRef", ctx, "t-gone", false).Return(nil, nil)
		resolver := newResolverRegistry(Stores{Tasks: tasks})[ResourceTask]

		relation, err := resolver.Resolve(ctx, AccessRequest{ResourceID: "t-gone"}, alice)
		assert.NoError(t, err)
		assert.Equal(t, ContextNone, relation)
	})

	t.Run("IncludeDeletedSeesSoftDeleted", func(t *testing.T) {
		ref := &model.EntityRef{
			ID:             "t-gone",
			OrganizationID: "org-1",
			DepartmentID:   "dept-1",
			CreatedBy:      "alice",
			IsDeleted:      true,
		}
		tasks := new(test_mock.MockEntityStore)
		tasks.On("FindRef", ctx, "t-gone", true).Return(ref, nil)
		resolver := newResolverRegistry(Stores{Tasks: tasks})[ResourceTask]

		relation, err := resolver.Resolve(ctx, AccessRequest{ResourceID: "t-gone", IncludeDeleted: true}, alice)
		assert.NoError(t, err)
		assert.Equal(t, ContextOwn, relation)
	})

	t.Run("StoreFailurePropagates", func(t *testing.T) {
		tasks := new(test_mock.MockEntityStore)
		tasks.On("FindRef", ctx, "t-1", false).Return(nil, errors.New("connection refused"))
		resolver := newResolverRegistry(Stores{Tasks: tasks})[ResourceTask]

		_, err := resolver.Resolve(ctx, AccessRequest{ResourceID: "t-1"}, alice)
		assert.Error(t, err)
	})
}

func TestUserResolver(t *testing.T) {
	ctx := context.Background()

	t.Run("SelfIsOwn", func(t *testing.T) {
		users := new(test_mock.MockEntityStore)
		users.On("FindRef", ctx, "alice", false).Return(&model.EntityRef{
			ID:             "alice",
			OrganizationID: "org-1",
			DepartmentID:   "dept-1",
		}, nil)
		resolver := newResolverRegistry(Stores{Users: users})[ResourceUser]

		relation, err := resolver.Resolve(ctx, AccessRequest{ResourceID: "alice"}, alice)
		assert.NoError(t, err)
		assert.Equal(t, ContextOwn, relation)
	})

	t.Run("ColleagueInOtherDepartment", func(t *testing.T) {
		users := new(test_mock.MockEntityStore)
		users.On("FindRef", ctx, "bob", false).Return(&model.EntityRef{
			ID:             "bob",
			OrganizationID: "org-1",
			DepartmentID:   "dept-2",
		}, nil)
		resolver := newResolverRegistry(Stores{Users: users})[ResourceUser]

		relation, err := resolver.Resolve(ctx, AccessRequest{ResourceID: "bob"}, alice)
		assert.NoError(t, err)
		assert.Equal(t, ContextCrossDept, relation)
	})
}

func TestTaskCommentResolver(t *testing.T) {
	ctx := context.Background()

	t.Run("MentionedCallerOwns", func(t *testing.T) {
		comments := new(test_mock.MockEntityStore)
		comments.On("FindRef", ctx, "c-1", false).Return(&model.EntityRef{
			ID:             "c-1",
			OrganizationID: "org-1",
			DepartmentID:   "dept-2",
			CreatedBy:      "bob",
			Mentions:       []string{"alice"},
		}, nil)
		resolver := newResolverRegistry(Stores{TaskComments: comments})[ResourceTaskComment]

		relation, err := resolver.Resolve(ctx, AccessRequest{ResourceID: "c-1"}, alice)
		assert.NoError(t, err)
		assert.Equal(t, ContextOwn, relation)
	})
}

func TestOrganizationResolver(t *testing.T) {
	ctx := context.Background()

	t.Run("NoTargetDefaultsToOwn", func(t *testing.T) {
		resolver := organizationResolver{store: new(test_mock.MockEntityStore)}

		relation, err := resolver.Resolve(ctx, AccessRequest{}, alice)
		assert.NoError(t, err)
		assert.Equal(t, ContextOwn, relation)
	})

	t.Run("OwnOrganization", func(t *testing.T) {
		orgs := new(test_mock.MockEntityStore)
		orgs.On("FindRef", ctx, "org-1", false).Return(&model.EntityRef{ID: "org-1", OrganizationID: "org-1"}, nil)
		resolver := organizationResolver{store: orgs}

		relation, err := resolver.Resolve(ctx, AccessRequest{ResourceID: "org-1"}, alice)
		assert.NoError(t, err)
		assert.Equal(t, ContextOwn, relation)
	})

	t.Run("ForeignOrganization", func(t *testing.T) {
		orgs := new(test_mock.MockEntityStore)
		orgs.On("FindRef", ctx, "org-2", false).Return(&model.EntityRef{ID: "org-2", OrganizationID: "org-2"}, nil)
		resolver := organizationResolver{store: orgs}

		relation, err := resolver.Resolve(ctx, AccessRequest{ResourceID: "org-2"}, alice)
		assert.NoError(t, err)
		assert.Equal(t, ContextNone, relation)
	})
}

func TestVendorResolver(t *testing.T) {
	ctx := context.Background()

	t.Run("AnyTenantMemberReaches", func(t *testing.T) {
		vendors := new(test_mock.MockEntityStore)
		vendors.On("FindRef", ctx, "v-1", false).Return(&model.EntityRef{
			ID:             "v-1",
			OrganizationID: "org-1",
			CreatedBy:      "bob",
		}, nil)
		resolver := vendorResolver{store: vendors}

		relation, err := resolver.Resolve(ctx, AccessRequest{ResourceID: "v-1"}, alice)
		assert.NoError(t, err)
		assert.Equal(t, ContextOwnDept, relation)
	})

	t.Run("CreatorOwns", func(t *testing.T) {
		vendors := new(test_mock.MockEntityStore)
		vendors.On("FindRef", ctx, "v-1", false).Return(&model.EntityRef{
			ID:             "v-1",
			OrganizationID: "org-1",
			CreatedBy:      "alice",
		}, nil)
		resolver := vendorResolver{store: vendors}

		relation, err := resolver.Resolve(ctx, AccessRequest{ResourceID: "v-1"}, alice)
		assert.NoError(t, err)
		assert.Equal(t, ContextOwn, relation)
	})

	t.Run("OtherTenantVendor", func(t *testing.T) {
		vendors := new(test_mock.MockEntityStore)
		vendors.On("FindRef", ctx, "v-2", false).Return(&model.EntityRef{
			ID:             "v-2",
			OrganizationID: "org-2",
			CreatedBy:      "alice",
		}, nil)
		resolver := vendorResolver{store: vendors}

		relation, err := resolver.Resolve(ctx, AccessRequest{ResourceID: "v-2"}, alice)
		assert.NoError(t, err)
		assert.Equal(t, ContextNone, relation)
	})
}

func TestNotificationResolver(t *testing.T) {
	ctx := context.Background()

	t.Run("RecipientOwns", func(t *testing.T) {
		notifications := new(test_mock.MockEntityStore)
		notifications.On("FindRef", ctx, "n-1", false).Return(&model.EntityRef{
			ID:             "n-1",
			OrganizationID: "org-1",
			DepartmentID:   "dept-2",
			CreatedBy:      "bob",
			Recipients:     []string{"alice"},
		}, nil)
		resolver := notificationResolver{store: notifications}

		relation, err := resolver.Resolve(ctx, AccessRequest{ResourceID: "n-1"}, alice)
		assert.NoError(t, err)
		assert.Equal(t, ContextOwn, relation)
	})

	t.Run("ReaderOwns", func(t *testing.T) {
		notifications := new(test_mock.MockEntityStore)
		notifications.On("FindRef", ctx, "n-1", false).Return(&model.EntityRef{
			ID:             "n-1",
			OrganizationID: "org-1",
			DepartmentID:   "dept-2",
			CreatedBy:      "bob",
			ReadBy:         []string{"alice"},
		}, nil)
		resolver := notificationResolver{store: notifications}

		relation, err := resolver.Resolve(ctx, AccessRequest{ResourceID: "n-1"}, alice)
		assert.NoError(t, err)
		assert.Equal(t, ContextOwn, relation)
	})

	t.Run("UnfilteredListingIsTheCallersInbox", func(t *testing.T) {
		resolver := notificationResolver{store: new(test_mock.MockEntityStore)}

		relation, err := resolver.Resolve(ctx, AccessRequest{Operation: OpList}, alice)
		assert.NoError(t, err)
		assert.Equal(t, ContextOwn, relation)
	})

	t.Run("CreationDefaultsToOwnDepartment", func(t *testing.T) {
		depts := new(test_mock.MockDepartmentStore)
		resolver := notificationResolver{store: new(test_mock.MockEntityStore), depts: depts}

		relation, err := resolver.Resolve(ctx, AccessRequest{Operation: OpCreate}, alice)
		assert.NoError(t, err)
		assert.Equal(t, ContextOwnDept, relation)
	})
}

// Ownership never weakens the verdict: for any entity, adding the caller to
// a collaborator list may only move the context toward own.
func TestOwnershipMonotonicity(t *testing.T) {
	ctx := context.Background()
	rank := map[Context]int{ContextNone: 0, ContextCrossDept: 1, ContextOwnDept: 2, ContextOwn: 3}

	base := model.EntityRef{
		ID:             "t-1",
		OrganizationID: "org-1",
		DepartmentID:   "dept-2",
		CreatedBy:      "bob",
	}

	for _, grant := range []func(*model.EntityRef){
		func(ref *model.EntityRef) { ref.Assignees = append(ref.Assignees, "alice") },
		func(ref *model.EntityRef) { ref.Watchers = append(ref.Watchers, "alice") },
		func(ref *model.EntityRef) { ref.CreatedBy = "alice" },
	} {
		without := base
		with := base
		grant(&with)

		resolve := func(ref model.EntityRef) Context {
			tasks := new(test_mock.MockEntityStore)
			tasks.On("FindRef", ctx, "t-1", false).Return(&ref, nil)
			resolver := newResolverRegistry(Stores{Tasks: tasks})[ResourceTask]
			relation, err := resolver.Resolve(ctx, AccessRequest{ResourceID: "t-1"}, alice)
			assert.NoError(t, err)
			return relation
		}

		assert.GreaterOrEqual(t, rank[resolve(with)], rank[resolve(without)])
	}
}
