package model

// EntityRef is the minimal projection of a target entity that context
// resolution needs: ownership, tenancy, department locality, collaborator
// sets and the soft-deletion flag. It is a read-only snapshot for the
// duration of one authorization check and is never persisted.
type EntityRef struct {
	ID             string
	OrganizationID string
	DepartmentID   string
	CreatedBy      string
	Assignees      []string
	Watchers       []string
	Mentions       []string
	Recipients     []string
	ReadBy         []string
	IsDeleted      bool
}
