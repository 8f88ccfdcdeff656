// api/dao/task_comment_dao.go
package dao

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/taskhive/taskhive/api/model"
	taskhive_neo4j "github.com/taskhive/taskhive/api/model/neo4j"
)

type TaskCommentDAO struct {
	Driver neo4j.Driver
}

func NewTaskCommentDAO(driver neo4j.Driver) *TaskCommentDAO {
	return &TaskCommentDAO{Driver: driver}
}

// FindRef projects a comment. Mentioned users share ownership with the
// author; the threading parent is not re-validated here.
func (dao *TaskCommentDAO) FindRef(ctx context.Context, id string, includeDeleted bool) (*model.EntityRef, error) {
	query := `
    MATCH (c:` + taskhive_neo4j.LabelTaskComment + ` {id: $id})
    WHERE $includeDeleted OR coalesce(c.isDeleted, false) = false
    RETURN c.id as id, c.organizationID as organizationID, c.departmentID as departmentID,
           c.createdBy as createdBy, c.mentions as mentions,
           coalesce(c.isDeleted, false) as isDeleted
    `
	return findRef(dao.Driver, query, map[string]interface{}{
		"id":             id,
		"includeDeleted": includeDeleted,
	})
}
