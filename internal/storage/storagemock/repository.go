package storagemock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/slok/tasker/internal/model"
	"github.com/slok/tasker/internal/storage"
)

var _ storage.Repository = &MockRepository{}

// MockRepository is a mock of storage.Repository.
type MockRepository struct {
	mock.Mock
}

// LoadTasks satisfies storage.Repository.
func (m *MockRepository) LoadTasks(ctx context.Context) ([]model.Task, error) {
	args := m.Called(ctx)

	var tasks []model.Task
	if v := args.Get(0); v != nil {
		tasks = v.([]model.Task)
	}

	return tasks, args.Error(1)
}

// SaveTasks satisfies storage.Repository.
func (m *MockRepository) SaveTasks(ctx context.Context, tasks []model.Task) error {
	args := m.Called(ctx, tasks)
	return args.Error(0)
}
