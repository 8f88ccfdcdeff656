// api/service/task_service.go
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/taskhive/taskhive/api/dao"
	taskhive_errors "github.com/taskhive/taskhive/api/errors"
	logger "github.com/taskhive/taskhive/api/logging"
	"github.com/taskhive/taskhive/api/model"
	"github.com/taskhive/taskhive/api/util"
)

// ITaskService defines the interface for task operations
type ITaskService interface {
	CreateTask(ctx context.Context, task model.Task, creatorID string) (*model.Task, error)
	UpdateTask(ctx context.Context, task model.Task, updaterID string) (*model.Task, error)
	DeleteTask(ctx context.Context, taskID string, deleterID string) error
	RestoreTask(ctx context.Context, taskID string, restorerID string) (*model.Task, error)
	GetTask(ctx context.Context, taskID string) (*model.Task, error)
	ListTasks(ctx context.Context, organizationID, departmentID string, limit, offset int) ([]*model.Task, error)
}

// TaskService handles business logic for task operations
type TaskService struct {
	taskDAO         *dao.TaskDAO
	validationUtil  *util.ValidationUtil
	cacheService    *util.CacheService
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus
}

var _ ITaskService = &TaskService{}

// NewTaskService creates a new instance of TaskService
func NewTaskService(taskDAO *dao.TaskDAO, validationUtil *util.ValidationUtil, cacheService *util.CacheService, notificationSvc *util.NotificationService, eventBus *util.EventBus) *TaskService {
	service := &TaskService{
		taskDAO:         taskDAO,
		validationUtil:  validationUtil,
		cacheService:    cacheService,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
	}

	// Set up event subscriptions
	eventBus.Subscribe("task.created", service.handleTaskChanged)
	eventBus.Subscribe("task.updated", service.handleTaskChanged)
	eventBus.Subscribe("task.deleted", service.handleTaskDeleted)

	return service
}

func (s *TaskService) handleTaskChanged(ctx context.Context, event util.Event) error {
	task := event.Payload.(model.Task)

	changeType := "created"
	if event.Type == "task.updated" {
		changeType = "updated"
	}

	if err := s.notificationSvc.NotifyTaskChange(ctx, changeType, task); err != nil {
		logger.Warn("Failed to send task change notification",
			zap.Error(err),
			zap.String("taskID", task.ID))
	}

	if err := s.cacheService.SetTask(ctx, task); err != nil {
		logger.Warn("Failed to refresh task cache",
			zap.Error(err),
			zap.String("taskID", task.ID))
	}

	return nil
}

func (s *TaskService) handleTaskDeleted(ctx context.Context, event util.Event) error {
	taskID := event.Payload.(string)

	if err := s.cacheService.DeleteTask(ctx, taskID); err != nil {
		logger.Warn("Failed to evict deleted task from cache",
			zap.Error(err),
			zap.String("taskID", taskID))
	}
	return nil
}

func (s *TaskService) CreateTask(ctx context.Context, task model.Task, creatorID string) (*model.Task, error) {
	task.CreatedBy = creatorID
	if err := s.validationUtil.ValidateTask(task); err != nil {
		return nil, taskhive_errors.ErrInvalidTaskData
	}

	taskID, err := s.taskDAO.CreateTask(ctx, task)
	if err != nil {
		return nil, err
	}

	created, err := s.taskDAO.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	s.eventBus.Publish(ctx, "task.created", *created)
	return created, nil
}

func (s *TaskService) UpdateTask(ctx context.Context, task model.Task, updaterID string) (*model.Task, error) {
	if task.ID == "" {
		return nil, taskhive_errors.ErrInvalidTaskData
	}

	updated, err := s.taskDAO.UpdateTask(ctx, task)
	if err != nil {
		return nil, err
	}

	s.eventBus.Publish(ctx, "task.updated", *updated)
	return updated, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, taskID string, deleterID string) error {
	if err := s.taskDAO.DeleteTask(ctx, taskID); err != nil {
		return err
	}

	s.eventBus.Publish(ctx, "task.deleted", taskID)
	return nil
}

func (s *TaskService) RestoreTask(ctx context.Context, taskID string, restorerID string) (*model.Task, error) {
	restored, err := s.taskDAO.RestoreTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if err := s.notificationSvc.NotifyTaskChange(ctx, "restored", *restored); err != nil {
		logger.Warn("Failed to send task restore notification",
			zap.Error(err),
			zap.String("taskID", taskID))
	}
	return restored, nil
}

func (s *TaskService) GetTask(ctx context.Context, taskID string) (*model.Task, error) {
	if cached, err := s.cacheService.GetTask(ctx, taskID); err == nil && cached != nil {
		return cached, nil
	}

	task, err := s.taskDAO.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if err := s.cacheService.SetTask(ctx, *task); err != nil {
		logger.Warn("Failed to cache task", zap.Error(err), zap.String("taskID", taskID))
	}
	return task, nil
}

func (s *TaskService) ListTasks(ctx context.Context, organizationID, departmentID string, limit, offset int) ([]*model.Task, error) {
	return s.taskDAO.ListTasks(ctx, organizationID, departmentID, limit, offset)
}
