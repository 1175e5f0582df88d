package storage

import (
	"context"

	"github.com/slok/tasker/internal/model"
)

// Repository is the interface for task persistence.
//
// Tasks are always loaded and saved as a whole sequence, the order of the
// sequence must be kept.
type Repository interface {
	LoadTasks(ctx context.Context) ([]model.Task, error)
	SaveTasks(ctx context.Context, tasks []model.Task) error
}
