// api/dao/vendor_dao.go
package dao

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/taskhive/taskhive/api/model"
	taskhive_neo4j "github.com/taskhive/taskhive/api/model/neo4j"
)

type VendorDAO struct {
	Driver neo4j.Driver
}

func NewVendorDAO(driver neo4j.Driver) *VendorDAO {
	return &VendorDAO{Driver: driver}
}

// FindRef projects a vendor. Vendors carry no department: they are
// tenant-wide.
func (dao *VendorDAO) FindRef(ctx context.Context, id string, includeDeleted bool) (*model.EntityRef, error) {
	query := `
    MATCH (v:` + taskhive_neo4j.LabelVendor + ` {id: $id})
    WHERE $includeDeleted OR coalesce(v.isDeleted, false) = false
    RETURN v.id as id, v.organizationID as organizationID, v.createdBy as createdBy,
           coalesce(v.isDeleted, false) as isDeleted
    `
	return findRef(dao.Driver, query, map[string]interface{}{
		"id":             id,
		"includeDeleted": includeDeleted,
	})
}
