// api/dao/user_dao.go
package dao

import (
	"context"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	taskhive_errors "github.com/taskhive/taskhive/api/errors"
	"github.com/taskhive/taskhive/api/model"
	taskhive_neo4j "github.com/taskhive/taskhive/api/model/neo4j"
)

type UserDAO struct {
	Driver neo4j.Driver
}

func NewUserDAO(driver neo4j.Driver) *UserDAO {
	return &UserDAO{Driver: driver}
}

func (dao *UserDAO) GetUser(ctx context.Context, userID string) (*model.User, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	result, err := session.ReadTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (u:` + taskhive_neo4j.LabelUser + ` {id: $id})
        WHERE coalesce(u.isDeleted, false) = false
        RETURN u
        `
		result, err := transaction.Run(query, map[string]interface{}{"id": userID})
		if err != nil {
			return nil, taskhive_errors.ErrDatabaseOperation
		}
		if result.Next() {
			node := result.Record().Values[0].(neo4j.Node)
			return userFromNode(node), nil
		}
		return nil, taskhive_errors.ErrUserNotFound
	})

	if err != nil {
		return nil, err
	}
	return result.(*model.User), nil
}

func (dao *UserDAO) FindRef(ctx context.Context, id string, includeDeleted bool) (*model.EntityRef, error) {
	query := `
    MATCH (u:` + taskhive_neo4j.LabelUser + ` {id: $id})
    WHERE $includeDeleted OR coalesce(u.isDeleted, false) = false
    RETURN u.id as id, u.organizationID as organizationID, u.departmentID as departmentID,
           coalesce(u.isDeleted, false) as isDeleted
    `
	return findRef(dao.Driver, query, map[string]interface{}{
		"id":             id,
		"includeDeleted": includeDeleted,
	})
}

func userFromNode(node neo4j.Node) *model.User {
	user := &model.User{
		ID:             stringProp(node, "id"),
		Name:           stringProp(node, "name"),
		Username:       stringProp(node, "username"),
		Email:          stringProp(node, "email"),
		Role:           stringProp(node, "role"),
		OrganizationID: stringProp(node, "organizationID"),
		DepartmentID:   stringProp(node, "departmentID"),
		IsDeleted:      boolProp(node, "isDeleted"),
	}
	user.CreatedAt, _ = time.Parse(time.RFC3339, stringProp(node, "createdAt"))
	user.UpdatedAt, _ = time.Parse(time.RFC3339, stringProp(node, "updatedAt"))
	return user
}
