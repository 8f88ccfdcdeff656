// api/authz/types.go
package authz

// Resource identifies a protected resource type.
type Resource string

const (
	ResourceOrganization Resource = "organization"
	ResourceDepartment   Resource = "department"
	ResourceUser         Resource = "user"
	ResourceTask         Resource = "task"
	ResourceTaskActivity Resource = "taskActivity"
	ResourceTaskComment  Resource = "taskComment"
	ResourceMaterial     Resource = "material"
	ResourceVendor       Resource = "vendor"
	ResourceNotification Resource = "notification"
)

// Role is the closed set of caller roles.
type Role string

const (
	RoleSuperAdmin Role = "SuperAdmin"
	RoleAdmin      Role = "Admin"
	RoleUser       Role = "User"
)

// Operation is the closed set of actions a rule may grant.
type Operation string

const (
	OpCreate  Operation = "create"
	OpRead    Operation = "read"
	OpUpdate  Operation = "update"
	OpDelete  Operation = "delete"
	OpList    Operation = "list"
	OpRestore Operation = "restore"
)

// Context is the fine-grained same-tenant relationship between the caller
// and the target entity. ContextNone means no relationship exists.
type Context string

const (
	ContextNone      Context = ""
	ContextOwn       Context = "own"
	ContextOwnDept   Context = "ownDept"
	ContextCrossDept Context = "crossDept"
)

// Scope records whether a grant was same-tenant or cross-tenant.
type Scope string

const (
	ScopeOrg      Scope = "org"
	ScopeCrossOrg Scope = "crossOrg"
)

// OperationSet is a set of granted operations.
type OperationSet map[Operation]struct{}

// Ops builds an OperationSet.
func Ops(ops ...Operation) OperationSet {
	set := make(OperationSet, len(ops))
	for _, op := range ops {
		set[op] = struct{}{}
	}
	return set
}

// Contains reports whether op is in the set.
func (s OperationSet) Contains(op Operation) bool {
	_, ok := s[op]
	return ok
}

var knownResources = map[Resource]struct{}{
	ResourceOrganization: {},
	ResourceDepartment:   {},
	ResourceUser:         {},
	ResourceTask:         {},
	ResourceTaskActivity: {},
	ResourceTaskComment:  {},
	ResourceMaterial:     {},
	ResourceVendor:       {},
	ResourceNotification: {},
}

var knownRoles = map[Role]struct{}{
	RoleSuperAdmin: {},
	RoleAdmin:      {},
	RoleUser:       {},
}

var knownOperations = map[Operation]struct{}{
	OpCreate:  {},
	OpRead:    {},
	OpUpdate:  {},
	OpDelete:  {},
	OpList:    {},
	OpRestore: {},
}

var knownContexts = map[Context]struct{}{
	ContextOwn:       {},
	ContextOwnDept:   {},
	ContextCrossDept: {},
}
