// api/dao/notification_dao.go
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

type NotificationDAO struct {
	Driver neo4j.Driver
}

func NewNotificationDAO(driver neo4j.Driver) *NotificationDAO {
	return &NotificationDAO{Driver: driver}
}

func (dao *NotificationDAO) CreateNotification(ctx context.Context, notification model.Notification) (string, error) {
	start := time.Now()
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	if notification.ID == "" {
		notification.ID = uuid.New().String()
	}

	result, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MERGE (n:` + taskhive_neo4j.LabelNotification + ` {id: $id})
        ON CREATE SET n += $props
        RETURN n.id as id
        `
		params := map[string]interface{}{
			"id": notification.ID,
			"props": map[string]interface{}{
				"subject":        notification.Subject,
				"body":           notification.Body,
				"organizationID": notification.OrganizationID,
				"departmentID":   notification.DepartmentID,
				"createdBy":      notification.CreatedBy,
				"recipients":     notification.Recipients,
				"readBy":         []string{},
				"isDeleted":      false,
				"createdAt":      time.Now().Format(time.RFC3339),
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
		logger.Error("Failed to create notification",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)))
		return "", err
	}

	return fmt.Sprintf("%v", result), nil
}

func (dao *NotificationDAO) GetNotification(ctx context.Context, notificationID string) (*model.Notification, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	result, err := session.ReadTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (n:` + taskhive_neo4j.LabelNotification + ` {id: $id})
        WHERE coalesce(n.isDeleted, false) = false
        RETURN n
        `
		result, err := transaction.Run(query, map[string]interface{}{"id": notificationID})
		if err != nil {
			return nil, taskhive_errors.ErrDatabaseOperation
		}
		if result.Next() {
			node := result.Record().Values[0].(neo4j.Node)
			return notificationFromNode(node), nil
		}
		return nil, taskhive_errors.ErrNotificationNotFound
	})

	if err != nil {
		return nil, err
	}
	return result.(*model.Notification), nil
}

// ListNotificationsForUser returns the caller's inbox: notifications they
// received, sent, or already read.
func (dao *NotificationDAO) ListNotificationsForUser(ctx context.Context, userID string, limit, offset int) ([]*model.Notification, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	result, err := session.ReadTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (n:` + taskhive_neo4j.LabelNotification + `)
        WHERE coalesce(n.isDeleted, false) = false
          AND ($userID IN n.recipients OR n.createdBy = $userID OR $userID IN n.readBy)
        RETURN n
        ORDER BY n.createdAt DESC
        SKIP $offset LIMIT $limit
        `
		result, err := transaction.Run(query, map[string]interface{}{
			"userID": userID,
			"offset": offset,
			"limit":  limit,
		})
		if err != nil {
			return nil, taskhive_errors.ErrDatabaseOperation
		}

		var notifications []*model.Notification
		for result.Next() {
			node := result.Record().Values[0].(neo4j.Node)
			notifications = append(notifications, notificationFromNode(node))
		}
		return notifications, result.Err()
	})

	if err != nil {
		return nil, err
	}
	return result.([]*model.Notification), nil
}

func (dao *NotificationDAO) MarkRead(ctx context.Context, notificationID, userID string) (*model.Notification, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	_, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (n:` + taskhive_neo4j.LabelNotification + ` {id: $id})
        WHERE coalesce(n.isDeleted, false) = false
        SET n.readBy = [x IN coalesce(n.readBy, []) WHERE x <> $userID] + $userID
        RETURN n.id as id
        `
		result, err := transaction.Run(query, map[string]interface{}{
			"id":     notificationID,
			"userID": userID,
		})
		if err != nil {
			return nil, taskhive_errors.ErrDatabaseOperation
		}
		if !result.Next() {
			return nil, taskhive_errors.ErrNotificationNotFound
		}
		return nil, nil
	})

	if err != nil {
		logger.Error("Failed to mark notification read",
			zap.Error(err),
			zap.String("notificationID", notificationID),
			zap.String("userID", userID))
		return nil, err
	}
	return dao.GetNotification(ctx, notificationID)
}

func (dao *NotificationDAO) FindRef(ctx context.Context, id string, includeDeleted bool) (*model.EntityRef, error) {
	query := `
    MATCH (n:` + taskhive_neo4j.LabelNotification + ` {id: $id})
    WHERE $includeDeleted OR coalesce(n.isDeleted, false) = false
    RETURN n.id as id, n.organizationID as organizationID, n.departmentID as departmentID,
           n.createdBy as createdBy, n.recipients as recipients, n.readBy as readBy,
           coalesce(n.isDeleted, false) as isDeleted
    `
	return findRef(dao.Driver, query, map[string]interface{}{
		"id":             id,
		"includeDeleted": includeDeleted,
	})
}

func notificationFromNode(node neo4j.Node) *model.Notification {
	notification := &model.Notification{
		ID:             stringProp(node, "id"),
		Subject:        stringProp(node, "subject"),
		Body:           stringProp(node, "body"),
		OrganizationID: stringProp(node, "organizationID"),
		DepartmentID:   stringProp(node, "departmentID"),
		CreatedBy:      stringProp(node, "createdBy"),
		Recipients:     stringSliceProp(node, "recipients"),
		ReadBy:         stringSliceProp(node, "readBy"),
		IsDeleted:      boolProp(node, "isDeleted"),
	}
	notification.CreatedAt, _ = time.Parse(time.RFC3339, stringProp(node, "createdAt"))
	return notification
}
