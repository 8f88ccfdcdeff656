// api/dao/material_dao.go
package dao

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/taskhive/taskhive/api/model"
	taskhive_neo4j "github.com/taskhive/taskhive/api/model/neo4j"
)

type MaterialDAO struct {
	Driver neo4j.Driver
}

func NewMaterialDAO(driver neo4j.Driver) *MaterialDAO {
	return &MaterialDAO{Driver: driver}
}

// FindRef projects a material. The user who added it is its owner.
func (dao *MaterialDAO) FindRef(ctx context.Context, id string, includeDeleted bool) (*model.EntityRef, error) {
	query := `
    MATCH (m:` + taskhive_neo4j.LabelMaterial + ` {id: $id})
    WHERE $includeDeleted OR coalesce(m.isDeleted, false) = false
    RETURN m.id as id, m.organizationID as organizationID, m.departmentID as departmentID,
           m.addedBy as createdBy, coalesce(m.isDeleted, false) as isDeleted
    `
	return findRef(dao.Driver, query, map[string]interface{}{
		"id":             id,
		"includeDeleted": includeDeleted,
	})
}
