// api/dao/department_dao.go
package dao

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	taskhive_errors "github.com/taskhive/taskhive/api/errors"
	"github.com/taskhive/taskhive/api/model"
	taskhive_neo4j "github.com/taskhive/taskhive/api/model/neo4j"
)

type DepartmentDAO struct {
	Driver neo4j.Driver
}

func NewDepartmentDAO(driver neo4j.Driver) *DepartmentDAO {
	return &DepartmentDAO{Driver: driver}
}

// FindRef projects a department for context resolution. A department's own
// id doubles as its departmentID so locality checks compare against it.
func (dao *DepartmentDAO) FindRef(ctx context.Context, id string, includeDeleted bool) (*model.EntityRef, error) {
	query := `
    MATCH (d:` + taskhive_neo4j.LabelDepartment + ` {id: $id})
    WHERE $includeDeleted OR coalesce(d.isDeleted, false) = false
    RETURN d.id as id, d.organizationID as organizationID, d.id as departmentID,
           coalesce(d.isDeleted, false) as isDeleted
    `
	return findRef(dao.Driver, query, map[string]interface{}{
		"id":             id,
		"includeDeleted": includeDeleted,
	})
}

// ExistsInOrganization validates that a department supplied in a creation
// payload or list filter belongs to the given tenant.
func (dao *DepartmentDAO) ExistsInOrganization(ctx context.Context, departmentID, organizationID string) (bool, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	result, err := session.ReadTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (d:` + taskhive_neo4j.LabelDepartment + ` {id: $id, organizationID: $organizationID})
        WHERE coalesce(d.isDeleted, false) = false
        RETURN count(d) > 0 as exists
        `
		result, err := transaction.Run(query, map[string]interface{}{
			"id":             departmentID,
			"organizationID": organizationID,
		})
		if err != nil {
			return nil, taskhive_errors.ErrDatabaseOperation
		}
		if result.Next() {
			return result.Record().Values[0], nil
		}
		return false, result.Err()
	})

	if err != nil {
		return false, fmt.Errorf("failed to check department tenancy: %w", err)
	}

	exists, _ := result.(bool)
	return exists, nil
}
