// api/dao/task_dao.go
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

type TaskDAO struct {
	Driver neo4j.Driver
}

func NewTaskDAO(driver neo4j.Driver) *TaskDAO {
	dao := &TaskDAO{Driver: driver}
	ctx := context.Background()
	if err := dao.EnsureUniqueConstraint(ctx); err != nil {
		logger.Fatal("Failed to ensure unique constraint for Task", zap.Error(err))
	}
	return dao
}

func (dao *TaskDAO) EnsureUniqueConstraint(ctx context.Context) error {
	logger.Info("Ensuring unique constraint on Task ID")
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	_, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        CREATE CONSTRAINT unique_task_id IF NOT EXISTS
        FOR (t:` + taskhive_neo4j.LabelTask + `) REQUIRE t.id IS UNIQUE
        `
		_, err := transaction.Run(query, nil)
		return nil, err
	})

	if err != nil {
		logger.Error("Failed to ensure unique constraint on Task ID", zap.Error(err))
		return err
	}

	return nil
}

func (dao *TaskDAO) CreateTask(ctx context.Context, task model.Task) (string, error) {
	start := time.Now()
	logger.Info("Creating new task", zap.String("title", task.Title))
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	if task.ID == "" {
		task.ID = uuid.New().String()
	}

	result, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MERGE (t:` + taskhive_neo4j.LabelTask + ` {id: $id})
        ON CREATE SET t += $props
        ON MATCH SET t += $props
        RETURN t.id as id
        `

		params := map[string]interface{}{
			"id": task.ID,
			"props": map[string]interface{}{
				"title":          task.Title,
				"description":    task.Description,
				"status":         task.Status,
				"organizationID": task.OrganizationID,
				"departmentID":   task.DepartmentID,
				"createdBy":      task.CreatedBy,
				"assignees":      task.Assignees,
				"watchers":       task.Watchers,
				"isDeleted":      false,
				"createdAt":      time.Now().Format(time.RFC3339),
				"updatedAt":      time.Now().Format(time.RFC3339),
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

	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to create task",
			zap.Error(err),
			zap.String("title", task.Title),
			zap.Duration("duration", duration))
		return "", err
	}

	taskID := fmt.Sprintf("%v", result)
	logger.Info("Task created successfully",
		zap.String("taskID", taskID),
		zap.Duration("duration", duration))
	return taskID, nil
}

func (dao *TaskDAO) GetTask(ctx context.Context, taskID string) (*model.Task, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	result, err := session.ReadTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (t:` + taskhive_neo4j.LabelTask + ` {id: $id})
        WHERE coalesce(t.isDeleted, false) = false
        RETURN t
        `
		result, err := transaction.Run(query, map[string]interface{}{"id": taskID})
		if err != nil {
			return nil, taskhive_errors.ErrDatabaseOperation
		}

		if result.Next() {
			node := result.Record().Values[0].(neo4j.Node)
			return taskFromNode(node), nil
		}

		return nil, taskhive_errors.ErrTaskNotFound
	})

	if err != nil {
		return nil, err
	}
	return result.(*model.Task), nil
}

func (dao *TaskDAO) UpdateTask(ctx context.Context, task model.Task) (*model.Task, error) {
	start := time.Now()
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	_, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (t:` + taskhive_neo4j.LabelTask + ` {id: $id})
        WHERE coalesce(t.isDeleted, false) = false
        SET t += $props
        RETURN t.id as id
        `
		params := map[string]interface{}{
			"id": task.ID,
			"props": map[string]interface{}{
				"title":       task.Title,
				"description": task.Description,
				"status":      task.Status,
				"assignees":   task.Assignees,
				"watchers":    task.Watchers,
				"updatedAt":   time.Now().Format(time.RFC3339),
			},
		}

		result, err := transaction.Run(query, params)
		if err != nil {
			return nil, taskhive_errors.ErrDatabaseOperation
		}
		if !result.Next() {
			return nil, taskhive_errors.ErrTaskNotFound
		}
		return nil, nil
	})

	if err != nil {
		logger.Error("Failed to update task",
			zap.Error(err),
			zap.String("taskID", task.ID),
			zap.Duration("duration", time.Since(start)))
		return nil, err
	}

	logger.Info("Task updated successfully",
		zap.String("taskID", task.ID),
		zap.Duration("duration", time.Since(start)))
	return dao.GetTask(ctx, task.ID)
}

// DeleteTask soft-deletes: the node stays for restore flows and history.
func (dao *TaskDAO) DeleteTask(ctx context.Context, taskID string) error {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	_, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (t:` + taskhive_neo4j.LabelTask + ` {id: $id})
        WHERE coalesce(t.isDeleted, false) = false
        SET t.isDeleted = true, t.updatedAt = $now
        RETURN t.id as id
        `
		result, err := transaction.Run(query, map[string]interface{}{
			"id":  taskID,
			"now": time.Now().Format(time.RFC3339),
		})
		if err != nil {
			return nil, taskhive_errors.ErrDatabaseOperation
		}
		if !result.Next() {
			return nil, taskhive_errors.ErrTaskNotFound
		}
		return nil, nil
	})

	if err != nil {
		logger.Error("Failed to delete task", zap.Error(err), zap.String("taskID", taskID))
		return err
	}

	logger.Info("Task deleted successfully", zap.String("taskID", taskID))
	return nil
}

func (dao *TaskDAO) RestoreTask(ctx context.Context, taskID string) (*model.Task, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	_, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (t:` + taskhive_neo4j.LabelTask + ` {id: $id})
        WHERE t.isDeleted = true
        SET t.isDeleted = false, t.updatedAt = $now
        RETURN t.id as id
        `
		result, err := transaction.Run(query, map[string]interface{}{
			"id":  taskID,
			"now": time.Now().Format(time.RFC3339),
		})
		if err != nil {
			return nil, taskhive_errors.ErrDatabaseOperation
		}
		if !result.Next() {
			return nil, taskhive_errors.ErrTaskNotFound
		}
		return nil, nil
	})

	if err != nil {
		logger.Error("Failed to restore task", zap.Error(err), zap.String("taskID", taskID))
		return nil, err
	}

	logger.Info("Task restored successfully", zap.String("taskID", taskID))
	return dao.GetTask(ctx, taskID)
}

// ListTasks returns the tasks of one department within one organization.
// Tenant and department filters always come from the authorization
// decision, never straight from the caller.
func (dao *TaskDAO) ListTasks(ctx context.Context, organizationID, departmentID string, limit, offset int) ([]*model.Task, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	result, err := session.ReadTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (t:` + taskhive_neo4j.LabelTask + ` {organizationID: $organizationID})
        WHERE coalesce(t.isDeleted, false) = false
          AND ($departmentID = '' OR t.departmentID = $departmentID)
        RETURN t
        ORDER BY t.createdAt DESC
        SKIP $offset LIMIT $limit
        `
		params := map[string]interface{}{
			"organizationID": organizationID,
			"departmentID":   departmentID,
			"offset":         offset,
			"limit":          limit,
		}

		result, err := transaction.Run(query, params)
		if err != nil {
			return nil, taskhive_errors.ErrDatabaseOperation
		}

		var tasks []*model.Task
		for result.Next() {
			node := result.Record().Values[0].(neo4j.Node)
			tasks = append(tasks, taskFromNode(node))
		}
		return tasks, result.Err()
	})

	if err != nil {
		return nil, err
	}
	return result.([]*model.Task), nil
}

// FindRef projects the minimal ownership snapshot the authorization engine
// reads. Soft-deleted tasks are invisible unless includeDeleted is set.
func (dao *TaskDAO) FindRef(ctx context.Context, id string, includeDeleted bool) (*model.EntityRef, error) {
	query := `
    MATCH (t:` + taskhive_neo4j.LabelTask + ` {id: $id})
    WHERE $includeDeleted OR coalesce(t.isDeleted, false) = false
    RETURN t.id as id, t.organizationID as organizationID, t.departmentID as departmentID,
           t.createdBy as createdBy, t.assignees as assignees, t.watchers as watchers,
           coalesce(t.isDeleted, false) as isDeleted
    `
	return findRef(dao.Driver, query, map[string]interface{}{
		"id":             id,
		"includeDeleted": includeDeleted,
	})
}

func taskFromNode(node neo4j.Node) *model.Task {
	task := &model.Task{
		ID:             stringProp(node, "id"),
		Title:          stringProp(node, "title"),
		Description:    stringProp(node, "description"),
		Status:         stringProp(node, "status"),
		OrganizationID: stringProp(node, "organizationID"),
		DepartmentID:   stringProp(node, "departmentID"),
		CreatedBy:      stringProp(node, "createdBy"),
		Assignees:      stringSliceProp(node, "assignees"),
		Watchers:       stringSliceProp(node, "watchers"),
		IsDeleted:      boolProp(node, "isDeleted"),
	}
	task.CreatedAt, _ = time.Parse(time.RFC3339, stringProp(node, "createdAt"))
	task.UpdatedAt, _ = time.Parse(time.RFC3339, stringProp(node, "updatedAt"))
	return task
}
