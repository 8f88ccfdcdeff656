// api/dao/organization_dao.go
package dao

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	taskhive_errors "github.com/taskhive/taskhive/api/errors"
	logger "github.com/taskhive/taskhive/api/logging"
	"github.com/taskhive/taskhive/api/model"
	taskhive_neo4j "github.com/taskhive/taskhive/api/model/neo4j"
)

type OrganizationDAO struct {
	Driver neo4j.Driver
}

func NewOrganizationDAO(driver neo4j.Driver) *OrganizationDAO {
	dao := &OrganizationDAO{Driver: driver}
	ctx := context.Background()
	if err := dao.EnsureUniqueConstraint(ctx); err != nil {
		logger.Fatal("Failed to ensure unique constraint for Organization", zap.Error(err))
	}
	return dao
}

func (dao *OrganizationDAO) EnsureUniqueConstraint(ctx context.Context) error {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	_, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        CREATE CONSTRAINT unique_organization_id IF NOT EXISTS
        FOR (o:` + taskhive_neo4j.LabelOrganization + `) REQUIRE o.id IS UNIQUE
        `
		_, err := transaction.Run(query, nil)
		return nil, err
	})
	return err
}

func (dao *OrganizationDAO) CreateOrganization(ctx context.Context, org model.Organization) (string, error) {
	start := time.Now()
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	if org.ID == "" {
		org.ID = uuid.New().String()
	}

	result, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MERGE (o:` + taskhive_neo4j.LabelOrganization + ` {id: $id})
        ON CREATE SET o += $props
        ON MATCH SET o += $props
        RETURN o.id as id
        `
		params := map[string]interface{}{
			"id": org.ID,
			"props": map[string]interface{}{
				"name":      org.Name,
				"isDeleted": false,
				"createdAt": time.Now().Format(time.RFC3339),
				"updatedAt": time.Now().Format(time.RFC3339),
			},
		}

		result, err := transaction.Run(query, params)
		if err != nil {
			return nil, taskhive_errors.ErrDatabaseOperation
		}
		if result.Next() {
			return result.Record().Values[0], nil
		}
		return nil, taskhive_errors.ErrInternalServer
	})

	if err != nil {
		logger.Error("Failed to create organization",
			zap.Error(err),
			zap.String("name", org.Name),
			zap.Duration("duration", time.Since(start)))
		return "", err
	}

	orgID := fmt.Sprintf("%v", result)
	logger.Info("Organization created successfully",
		zap.String("organizationID", orgID),
		zap.Duration("duration", time.Since(start)))
	return orgID, nil
}

func (dao *OrganizationDAO) GetOrganization(ctx context.Context, orgID string) (*model.Organization, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	result, err := session.ReadTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (o:` + taskhive_neo4j.LabelOrganization + ` {id: $id})
        WHERE coalesce(o.isDeleted, false) = false
        RETURN o
        `
		result, err := transaction.Run(query, map[string]interface{}{"id": orgID})
		if err != nil {
			return nil, taskhive_errors.ErrDatabaseOperation
		}
		if result.Next() {
			node := result.Record().Values[0].(neo4j.Node)
			return organizationFromNode(node), nil
		}
		return nil, taskhive_errors.ErrOrganizationNotFound
	})

	if err != nil {
		return nil, err
	}
	return result.(*model.Organization), nil
}

func (dao *OrganizationDAO) UpdateOrganization(ctx context.Context, org model.Organization) (*model.Organization, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	_, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (o:` + taskhive_neo4j.LabelOrganization + ` {id: $id})
        WHERE coalesce(o.isDeleted, false) = false
        SET o.name = $name, o.updatedAt = $now
        RETURN o.id as id
        `
		result, err := transaction.Run(query, map[string]interface{}{
			"id":   org.ID,
			"name": org.Name,
			"now":  time.Now().Format(time.RFC3339),
		})
		if err != nil {
			return nil, taskhive_errors.ErrDatabaseOperation
		}
		if !result.Next() {
			return nil, taskhive_errors.ErrOrganizationNotFound
		}
		return nil, nil
	})

	if err != nil {
		logger.Error("Failed to update organization", zap.Error(err), zap.String("organizationID", org.ID))
		return nil, err
	}
	return dao.GetOrganization(ctx, org.ID)
}

// DeleteOrganization soft-deletes an entire tenant. Platform-only.
func (dao *OrganizationDAO) DeleteOrganization(ctx context.Context, orgID string) error {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	_, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (o:` + taskhive_neo4j.LabelOrganization + ` {id: $id})
        WHERE coalesce(o.isDeleted, false) = false
        SET o.isDeleted = true, o.updatedAt = $now
        RETURN o.id as id
        `
		result, err := transaction.Run(query, map[string]interface{}{
			"id":  orgID,
			"now": time.Now().Format(time.RFC3339),
		})
		if err != nil {
			return nil, taskhive_errors.ErrDatabaseOperation
		}
		if !result.Next() {
			return nil, taskhive_errors.ErrOrganizationNotFound
		}
		return nil, nil
	})

	if err != nil {
		logger.Error("Failed to delete organization", zap.Error(err), zap.String("organizationID", orgID))
		return err
	}

	logger.Info("Organization deleted successfully", zap.String("organizationID", orgID))
	return nil
}

func (dao *OrganizationDAO) ListOrganizations(ctx context.Context, limit, offset int) ([]*model.Organization, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	result, err := session.ReadTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (o:` + taskhive_neo4j.LabelOrganization + `)
        WHERE coalesce(o.isDeleted, false) = false
        RETURN o
        ORDER BY o.createdAt DESC
        SKIP $offset LIMIT $limit
        `
		result, err := transaction.Run(query, map[string]interface{}{
			"offset": offset,
			"limit":  limit,
		})
		if err != nil {
			return nil, taskhive_errors.ErrDatabaseOperation
		}

		var orgs []*model.Organization
		for result.Next() {
			node := result.Record().Values[0].(neo4j.Node)
			orgs = append(orgs, organizationFromNode(node))
		}
		return orgs, result.Err()
	})

	if err != nil {
		return nil, err
	}
	return result.([]*model.Organization), nil
}

func (dao *OrganizationDAO) FindRef(ctx context.Context, id string, includeDeleted bool) (*model.EntityRef, error) {
	query := `
    MATCH (o:` + taskhive_neo4j.LabelOrganization + ` {id: $id})
    WHERE $includeDeleted OR coalesce(o.isDeleted, false) = false
    RETURN o.id as id, o.id as organizationID, coalesce(o.isDeleted, false) as isDeleted
    `
	return findRef(dao.Driver, query, map[string]interface{}{
		"id":             id,
		"includeDeleted": includeDeleted,
	})
}

func organizationFromNode(node neo4j.Node) *model.Organization {
	org := &model.Organization{
		ID:        stringProp(node, "id"),
		Name:      stringProp(node, "name"),
		IsDeleted: boolProp(node, "isDeleted"),
	}
	org.CreatedAt, _ = time.Parse(time.RFC3339, stringProp(node, "createdAt"))
	org.UpdatedAt, _ = time.Parse(time.RFC3339, stringProp(node, "updatedAt"))
	return org
}
