// api/model/neo4j/nodes.go
package taskhive_neo4j

// Node Labels
const (
	// LabelOrganization represents a tenant in the system
	LabelOrganization = "Organization"

	// LabelDepartment represents a department within an organization
	LabelDepartment = "Department"

	// LabelUser represents a user in the system
	LabelUser = "User"

	// LabelTask represents a unit of work assigned within a department
	LabelTask = "Task"

	// LabelTaskActivity represents an activity entry on a task
	LabelTaskActivity = "TaskActivity"

	// LabelTaskComment represents a comment on a task
	LabelTaskComment = "TaskComment"

	// LabelMaterial represents a material recorded against a task
	LabelMaterial = "Material"

	// LabelVendor represents a vendor registered by a tenant
	LabelVendor = "Vendor"

	// LabelNotification represents an in-app notification
	LabelNotification = "Notification"
)
