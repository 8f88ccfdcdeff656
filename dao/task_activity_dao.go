// api/dao/task_activity_dao.go
package dao

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/taskhive/taskhive/api/model"
	taskhive_neo4j "github.com/taskhive/taskhive/api/model/neo4j"
)

type TaskActivityDAO struct {
	Driver neo4j.Driver
}

func NewTaskActivityDAO(driver neo4j.Driver) *TaskActivityDAO {
	return &TaskActivityDAO{Driver: driver}
}

func (dao *TaskActivityDAO) FindRef(ctx context.Context, id string, includeDeleted bool) (*model.EntityRef, error) {
	query := `
    MATCH (a:` + taskhive_neo4j.LabelTaskActivity + ` {id: $id})
    WHERE $includeDeleted OR coalesce(a.isDeleted, false) = false
    RETURN a.id as id, a.organizationID as organizationID, a.departmentID as departmentID,
           a.createdBy as createdBy, coalesce(a.isDeleted, false) as isDeleted
    `
	return findRef(dao.Driver, query, map[string]interface{}{
		"id":             id,
		"includeDeleted": includeDeleted,
	})
}
