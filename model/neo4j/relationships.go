// api/model/neo4j/relationships.go
package taskhive_neo4j

// Relationship Types
const (
	// RelPartOf represents the relationship between a department and its organization
	RelPartOf = "PART_OF"

	// RelWorksFor represents the relationship between a user and their organization
	RelWorksFor = "WORKS_FOR"

	// RelMemberOf represents the relationship between a user and their department
	RelMemberOf = "MEMBER_OF"

	// RelCreatedBy represents the relationship between an entity and its creator
	RelCreatedBy = "CREATED_BY"

	// RelAssignedTo represents the relationship between a task and its assignees
	RelAssignedTo = "ASSIGNED_TO"

	// RelWatches represents the relationship between a user and a task they watch
	RelWatches = "WATCHES"

	// RelMentions represents the relationship between a comment and a mentioned user
	RelMentions = "MENTIONS"

	// RelBelongsTo represents the relationship between a task-scoped entity and its task
	RelBelongsTo = "BELONGS_TO"

	// RelRecipientOf represents the relationship between a user and a notification addressed to them
	RelRecipientOf = "RECIPIENT_OF"

	// RelReadBy represents the relationship between a notification and a user who marked it read
	RelReadBy = "READ_BY"
)
