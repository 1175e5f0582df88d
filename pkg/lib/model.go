package lib

import (
	"errors"
	"time"

	"github.com/slok/tasker/internal/model"
)

// Sentinel errors, check them with [errors.Is].
var (
	// ErrNotFound is returned when a task does not exist.
	ErrNotFound = errors.New("not found")
	// ErrNotValid is returned on invalid input or invalid persisted tasks.
	ErrNotValid = errors.New("not valid")
)

// TaskStatus represents the lifecycle stage of a task.
//
// The typical lifecycle is:
//
//	todo -> in-progress -> done
//
// Any status can be set at any time.
type TaskStatus string

const (
	// TaskStatusTodo is the status of a new task.
	TaskStatusTodo TaskStatus = "todo"
	// TaskStatusInProgress indicates someone is working on the task.
	TaskStatusInProgress TaskStatus = "in-progress"
	// TaskStatusDone indicates the task has been completed.
	TaskStatusDone TaskStatus = "done"
)

// Task represents a task returned by the SDK.
type Task struct {
	// ID is the task identifier, unique and assigned on creation.
	ID uint64
	// Description is the free text of the task.
	Description string
	// Status is the current lifecycle stage.
	Status TaskStatus
	// CreatedAt is when the task was added (UTC, second precision).
	CreatedAt time.Time
	// UpdatedAt is when the task was last changed (UTC, second precision).
	UpdatedAt time.Time
}

// ListTasksOpts are the options to list tasks.
type ListTasksOpts struct {
	// Status filters by status. Nil returns all the tasks.
	Status *TaskStatus
}

// --- Conversion helpers ---

func fromInternalTask(t model.Task) Task {
	return Task{
		ID:          t.ID,
		Description: t.Description,
		Status:      TaskStatus(t.Status.String()),
		CreatedAt:   t.CreatedAt.Time(),
		UpdatedAt:   t.UpdatedAt.Time(),
	}
}

func fromInternalTaskList(ts []model.Task) []Task {
	result := make([]Task, len(ts))
	for i, t := range ts {
		result[i] = fromInternalTask(t)
	}
	return result
}

func toInternalStatus(s TaskStatus) (model.Status, error) {
	return model.ParseStatus(string(s))
}

func toInternalStatusFilter(opts *ListTasksOpts) (*model.Status, error) {
	if opts == nil || opts.Status == nil {
		return nil, nil
	}
	s, err := toInternalStatus(*opts.Status)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func mapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, model.ErrNotFound):
		return joinErrors(err, ErrNotFound)
	case errors.Is(err, model.ErrNotValid):
		return joinErrors(err, ErrNotValid)
	default:
		return err
	}
}

func joinErrors(original, sentinel error) error {
	return &mappedError{original: original, sentinel: sentinel}
}

type mappedError struct {
	original error
	sentinel error
}

func (e *mappedError) Error() string { return e.original.Error() }

func (e *mappedError) Is(target error) bool {
	return target == e.sentinel
}

func (e *mappedError) Unwrap() error { return e.original }
