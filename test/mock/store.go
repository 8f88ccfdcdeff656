// test/mock/store.go
package mock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/taskhive/taskhive/api/model"
)

// MockEntityStore is a mock implementation of authz.EntityStore
type MockEntityStore struct {
	mock.Mock
}

func (m *MockEntityStore) FindRef(ctx context.Context, id string, includeDeleted bool) (*model.EntityRef, error) {
	args := m.Called(ctx, id, includeDeleted)
	ref, _ := args.Get(0).(*model.EntityRef)
	return ref, args.Error(1)
}

// MockDepartmentStore is a mock implementation of authz.DepartmentStore
type MockDepartmentStore struct {
	MockEntityStore
}

func (m *MockDepartmentStore) ExistsInOrganization(ctx context.Context, departmentID, organizationID string) (bool, error) {
	args := m.Called(ctx, departmentID, organizationID)
	return args.Bool(0), args.Error(1)
}
