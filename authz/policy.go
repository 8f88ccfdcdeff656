// api/authz/policy.go
package authz

import "fmt"

// CrossOrgSourcePlatform grants the crossOrg branch to members of the
// configured platform organization.
const CrossOrgSourcePlatform = "platform"

// CrossOrgRule permits acting on resources of a different tenant when the
// caller matches From: either the distinguished "platform" source or a
// concrete organization id. Any other source kind is denied.
type CrossOrgRule struct {
	From string
	Ops  OperationSet
}

// PolicyRule is the permission declaration for one (resource, role) pair.
// Org maps each same-tenant context to the operations granted in it;
// CrossOrg, when present, is the cross-tenant carve-out.
type PolicyRule struct {
	Org      map[Context]OperationSet
	CrossOrg *CrossOrgRule
}

// PolicyTable is the process-wide, read-only permission table keyed by
// resource and role. A role with no entry for a resource has zero
// permissions on it.
type PolicyTable map[Resource]map[Role]PolicyRule

// Lookup returns the rule for (resource, role). The second return value is
// false when no entry exists; the caller must then deny without attempting
// context resolution.
func (t PolicyTable) Lookup(resource Resource, role Role) (PolicyRule, bool) {
	roles, ok := t[resource]
	if !ok {
		return PolicyRule{}, false
	}
	rule, ok := roles[role]
	return rule, ok
}

// Validate rejects a table that references an unknown resource, role,
// context or operation. Called once at startup; the table is never mutated
// afterwards.
func (t PolicyTable) Validate() error {
	for resource, roles := range t {
		if _, ok := knownResources[resource]; !ok {
			return fmt.Errorf("policy table references unknown resource %q", resource)
		}
		for role, rule := range roles {
			if _, ok := knownRoles[role]; !ok {
				return fmt.Errorf("policy for resource %q references unknown role %q", resource, role)
			}
			for context, ops := range rule.Org {
				if _, ok := knownContexts[context]; !ok {
					return fmt.Errorf("policy (%s, %s) references unknown context %q", resource, role, context)
				}
				for op := range ops {
					if _, ok := knownOperations[op]; !ok {
						return fmt.Errorf("policy (%s, %s, %s) references unknown operation %q", resource, role, context, op)
					}
				}
			}
			if rule.CrossOrg != nil {
				if rule.CrossOrg.From == "" {
					return fmt.Errorf("policy (%s, %s) has a crossOrg rule with an empty source", resource, role)
				}
				for op := range rule.CrossOrg.Ops {
					if _, ok := knownOperations[op]; !ok {
						return fmt.Errorf("policy (%s, %s, crossOrg) references unknown operation %q", resource, role, op)
					}
				}
			}
		}
	}
	return nil
}

// DefaultPolicies is the permission table the platform ships with.
func DefaultPolicies() PolicyTable {
	return PolicyTable{
		ResourceOrganization: {
			RoleSuperAdmin: {
				Org: map[Context]OperationSet{
					ContextOwn: Ops(OpRead, OpUpdate),
				},
				CrossOrg: &CrossOrgRule{
					From: CrossOrgSourcePlatform,
					Ops:  Ops(OpCreate, OpRead, OpUpdate, OpDelete, OpList, OpRestore),
				},
			},
			RoleAdmin: {
				Org: map[Context]OperationSet{
					ContextOwn: Ops(OpRead),
				},
			},
			RoleUser: {
				Org: map[Context]OperationSet{
					ContextOwn: Ops(OpRead),
				},
			},
		},
		ResourceDepartment: {
			RoleSuperAdmin: {
				Org: map[Context]OperationSet{
					ContextOwnDept:   Ops(OpCreate, OpRead, OpUpdate, OpDelete, OpList),
					ContextCrossDept: Ops(OpCreate, OpRead, OpUpdate, OpDelete, OpList),
				},
			},
			RoleAdmin: {
				Org: map[Context]OperationSet{
					ContextOwnDept:   Ops(OpCreate, OpRead, OpUpdate, OpList),
					ContextCrossDept: Ops(OpRead, OpList),
				},
			},
			RoleUser: {
				Org: map[Context]OperationSet{
					ContextOwnDept: Ops(OpRead, OpList),
				},
			},
		},
		ResourceUser: {
			RoleSuperAdmin: {
				Org: map[Context]OperationSet{
					ContextOwn:       Ops(OpRead, OpUpdate),
					ContextOwnDept:   Ops(OpCreate, OpRead, OpUpdate, OpDelete, OpList),
					ContextCrossDept: Ops(OpCreate, OpRead, OpUpdate, OpDelete, OpList),
				},
				CrossOrg: &CrossOrgRule{
					From: CrossOrgSourcePlatform,
					Ops:  Ops(OpRead, OpList),
				},
			},
			RoleAdmin: {
				Org: map[Context]OperationSet{
					ContextOwn:       Ops(OpRead, OpUpdate),
					ContextOwnDept:   Ops(OpCreate, OpRead, OpUpdate, OpList),
					ContextCrossDept: Ops(OpRead, OpList),
				},
			},
			RoleUser: {
				Org: map[Context]OperationSet{
					ContextOwn:     Ops(OpRead, OpUpdate),
					ContextOwnDept: Ops(OpRead, OpList),
				},
			},
		},
		ResourceTask: {
			RoleSuperAdmin: {
				Org: map[Context]OperationSet{
					ContextOwn:       Ops(OpRead, OpUpdate, OpDelete),
					ContextOwnDept:   Ops(OpCreate, OpRead, OpUpdate, OpDelete, OpList, OpRestore),
					ContextCrossDept: Ops(OpCreate, OpRead, OpUpdate, OpDelete, OpList, OpRestore),
				},
			},
			RoleAdmin: {
				Org: map[Context]OperationSet{
					ContextOwn:       Ops(OpRead, OpUpdate, OpDelete),
					ContextOwnDept:   Ops(OpCreate, OpRead, OpUpdate, OpDelete, OpList, OpRestore),
					ContextCrossDept: Ops(OpRead, OpList),
				},
			},
			RoleUser: {
				Org: map[Context]OperationSet{
					ContextOwn:     Ops(OpRead, OpUpdate),
					ContextOwnDept: Ops(OpCreate, OpRead, OpList),
				},
			},
		},
		ResourceTaskActivity: {
			RoleSuperAdmin: {
				Org: map[Context]OperationSet{
					ContextOwn:       Ops(OpRead),
					ContextOwnDept:   Ops(OpCreate, OpRead, OpList),
					ContextCrossDept: Ops(OpRead, OpList),
				},
			},
			RoleAdmin: {
				Org: map[Context]OperationSet{
					ContextOwn:       Ops(OpRead),
					ContextOwnDept:   Ops(OpCreate, OpRead, OpList),
					ContextCrossDept: Ops(OpRead, OpList),
				},
			},
			RoleUser: {
				Org: map[Context]OperationSet{
					ContextOwn:     Ops(OpRead),
					ContextOwnDept: Ops(OpCreate, OpRead, OpList),
				},
			},
		},
		ResourceTaskComment: {
			RoleSuperAdmin: {
				Org: map[Context]OperationSet{
					ContextOwn:       Ops(OpRead, OpUpdate, OpDelete),
					ContextOwnDept:   Ops(OpCreate, OpRead, OpUpdate, OpDelete, OpList),
					ContextCrossDept: Ops(OpRead, OpList),
				},
			},
			RoleAdmin: {
				Org: map[Context]OperationSet{
					ContextOwn:       Ops(OpRead, OpUpdate, OpDelete),
					ContextOwnDept:   Ops(OpCreate, OpRead, OpList),
					ContextCrossDept: Ops(OpRead, OpList),
				},
			},
			RoleUser: {
				Org: map[Context]OperationSet{
					ContextOwn:     Ops(OpRead, OpUpdate, OpDelete),
					ContextOwnDept: Ops(OpCreate, OpRead, OpList),
				},
			},
		},
		ResourceMaterial: {
			RoleSuperAdmin: {
				Org: map[Context]OperationSet{
					ContextOwn:       Ops(OpRead, OpUpdate, OpDelete),
					ContextOwnDept:   Ops(OpCreate, OpRead, OpUpdate, OpDelete, OpList, OpRestore),
					ContextCrossDept: Ops(OpRead, OpList),
				},
			},
			RoleAdmin: {
				Org: map[Context]OperationSet{
					ContextOwn:       Ops(OpRead, OpUpdate, OpDelete),
					ContextOwnDept:   Ops(OpCreate, OpRead, OpUpdate, OpList),
					ContextCrossDept: Ops(OpRead, OpList),
				},
			},
			RoleUser: {
				Org: map[Context]OperationSet{
					ContextOwn:     Ops(OpRead, OpUpdate),
					ContextOwnDept: Ops(OpCreate, OpRead, OpList),
				},
			},
		},
		ResourceVendor: {
			// Vendors are tenant-wide: the resolver maps any same-tenant
			// member to ownDept, so ownDept here means "anyone in the org".
			RoleSuperAdmin: {
				Org: map[Context]OperationSet{
					ContextOwn:     Ops(OpRead, OpUpdate, OpDelete),
					ContextOwnDept: Ops(OpCreate, OpRead, OpUpdate, OpDelete, OpList),
				},
			},
			RoleAdmin: {
				Org: map[Context]OperationSet{
					ContextOwn:     Ops(OpRead, OpUpdate, OpDelete),
					ContextOwnDept: Ops(OpCreate, OpRead, OpList),
				},
			},
			RoleUser: {
				Org: map[Context]OperationSet{
					ContextOwn:     Ops(OpRead),
					ContextOwnDept: Ops(OpRead, OpList),
				},
			},
		},
		ResourceNotification: {
			RoleSuperAdmin: {
				Org: map[Context]OperationSet{
					ContextOwn:     Ops(OpRead, OpUpdate, OpDelete, OpList),
					ContextOwnDept: Ops(OpCreate, OpRead, OpList),
				},
			},
			RoleAdmin: {
				Org: map[Context]OperationSet{
					ContextOwn:     Ops(OpRead, OpUpdate, OpList),
					ContextOwnDept: Ops(OpCreate, OpList),
				},
			},
			RoleUser: {
				Org: map[Context]OperationSet{
					ContextOwn: Ops(OpRead, OpUpdate, OpList),
				},
			},
		},
	}
}
