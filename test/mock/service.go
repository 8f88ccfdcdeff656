// test/mock/service.go
package mock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/taskhive/taskhive/api/model"
)

// MockTaskService is a mock implementation of service.ITaskService
type MockTaskService struct {
	mock.Mock
}

func (m *MockTaskService) CreateTask(ctx context.Context, task model.Task, creatorID string) (*model.Task, error) {
	args := m.Called(ctx, task, creatorID)
	created, _ := args.Get(0).(*model.Task)
	return created, args.Error(1)
}

func (m *MockTaskService) UpdateTask(ctx context.Context, task model.Task, updaterID string) (*model.Task, error) {
	args := m.Called(ctx, task, updaterID)
	updated, _ := args.Get(0).(*model.Task)
	return updated, args.Error(1)
}

func (m *MockTaskService) DeleteTask(ctx context.Context, taskID string, deleterID string) error {
	args := m.Called(ctx, taskID, deleterID)
	return args.Error(0)
}

func (m *MockTaskService) RestoreTask(ctx context.Context, taskID string, restorerID string) (*model.Task, error) {
	args := m.Called(ctx, taskID, restorerID)
	restored, _ := args.Get(0).(*model.Task)
	return restored, args.Error(1)
}

func (m *MockTaskService) GetTask(ctx context.Context, taskID string) (*model.Task, error) {
	args := m.Called(ctx, taskID)
	task, _ := args.Get(0).(*model.Task)
	return task, args.Error(1)
}

func (m *MockTaskService) ListTasks(ctx context.Context, organizationID, departmentID string, limit, offset int) ([]*model.Task, error) {
	args := m.Called(ctx, organizationID, departmentID, limit, offset)
	tasks, _ := args.Get(0).([]*model.Task)
	return tasks, args.Error(1)
}
