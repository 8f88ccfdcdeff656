// api/authz/policy_test.go
package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taskhive/taskhive/api/authz"
)

func TestDefaultPoliciesValidate(t *testing.T) {
	assert.NoError(t, authz.DefaultPolicies().Validate())
}

func TestPolicyTableValidate(t *testing.T) {
	t.Run("UnknownResource", func(t *testing.T) {
		table := authz.PolicyTable{
			"spaceship": {authz.RoleUser: authz.PolicyRule{}},
		}
		assert.Error(t, table.Validate())
	})

	t.Run("UnknownRole", func(t *testing.T) {
		table := authz.PolicyTable{
			authz.ResourceTask: {"Intern": authz.PolicyRule{}},
		}
		assert.Error(t, table.Validate())
	})

	t.Run("UnknownContext", func(t *testing.T) {
		table := authz.PolicyTable{
			authz.ResourceTask: {authz.RoleUser: authz.PolicyRule{
				Org: map[authz.Context]authz.OperationSet{
					"universe": authz.Ops(authz.OpRead),
				},
			}},
		}
		assert.Error(t, table.Validate())
	})

	t.Run("UnknownOperation", func(t *testing.T) {
		table := authz.PolicyTable{
			authz.ResourceTask: {authz.RoleUser: authz.PolicyRule{
				Org: map[authz.Context]authz.OperationSet{
					authz.ContextOwn: authz.Ops("teleport"),
				},
			}},
		}
		assert.Error(t, table.Validate())
	})

	t.Run("EmptyCrossOrgSource", func(t *testing.T) {
		table := authz.PolicyTable{
			authz.ResourceOrganization: {authz.RoleSuperAdmin: authz.PolicyRule{
				CrossOrg: &authz.CrossOrgRule{From: "", Ops: authz.Ops(authz.OpRead)},
			}},
		}
		assert.Error(t, table.Validate())
	})

	t.Run("UnknownCrossOrgOperation", func(t *testing.T) {
		table := authz.PolicyTable{
			authz.ResourceOrganization: {authz.RoleSuperAdmin: authz.PolicyRule{
				CrossOrg: &authz.CrossOrgRule{From: authz.CrossOrgSourcePlatform, Ops: authz.Ops("teleport")},
			}},
		}
		assert.Error(t, table.Validate())
	})
}

func TestPolicyTableLookup(t *testing.T) {
	table := authz.DefaultPolicies()

	t.Run("KnownPair", func(t *testing.T) {
		rule, ok := table.Lookup(authz.ResourceTask, authz.RoleUser)
		assert.True(t, ok)
		assert.True(t, rule.Org[authz.ContextOwnDept].Contains(authz.OpCreate))
	})

	t.Run("MissingRoleEntryMeansNoPermissions", func(t *testing.T) {
		_, ok := table.Lookup(authz.ResourceTask, "Intern")
		assert.False(t, ok)
	})

	t.Run("MissingResourceEntryMeansNoPermissions", func(t *testing.T) {
		sparse := authz.PolicyTable{}
		_, ok := sparse.Lookup(authz.ResourceTask, authz.RoleUser)
		assert.False(t, ok)
	})
}
