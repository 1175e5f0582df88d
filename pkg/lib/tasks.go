package lib

import (
	"context"
	"fmt"

	"github.com/slok/tasker/internal/model"
)

// AddTask adds a new task with todo status.
func (c *Client) AddTask(ctx context.Context, description string) (*Task, error) {
	return c.mutate(ctx, model.NewAddCommand(description))
}

// UpdateTask replaces the description of a task.
func (c *Client) UpdateTask(ctx context.Context, id uint64, description string) (*Task, error) {
	return c.mutate(ctx, model.NewUpdateCommand(id, description))
}

// DeleteTask removes a task.
func (c *Client) DeleteTask(ctx context.Context, id uint64) error {
	_, err := c.mutate(ctx, model.NewDeleteCommand(id))
	return err
}

// MarkTask sets the status of a task.
func (c *Client) MarkTask(ctx context.Context, id uint64, status TaskStatus) (*Task, error) {
	s, err := toInternalStatus(status)
	if err != nil {
		return nil, mapError(err)
	}

	return c.mutate(ctx, model.NewMarkCommand(s, id))
}

// ListTasks returns the tasks in insertion order.
// Pass nil opts to list all the tasks.
func (c *Client) ListTasks(ctx context.Context, opts *ListTasksOpts) ([]Task, error) {
	filter, err := toInternalStatusFilter(opts)
	if err != nil {
		return nil, mapError(err)
	}

	out, err := c.svc.Run(ctx, model.NewListCommand(filter))
	if err != nil {
		return nil, mapError(err)
	}

	return fromInternalTaskList(out.Tasks), nil
}

// Export returns all the tasks in the tasks file format.
func (c *Client) Export(ctx context.Context) (string, error) {
	text, err := c.svc.Export(ctx)
	if err != nil {
		return "", mapError(err)
	}
	return text, nil
}

// Import replaces all the tasks with the ones in the tasks file format text.
func (c *Client) Import(ctx context.Context, text string) ([]Task, error) {
	tasks, err := c.svc.Import(ctx, text)
	if err != nil {
		return nil, mapError(err)
	}
	return fromInternalTaskList(tasks), nil
}

// mutate runs a command and returns the affected task, a missing task is
// returned as an ErrNotFound error.
func (c *Client) mutate(ctx context.Context, cmd model.Command) (*Task, error) {
	out, err := c.svc.Run(ctx, cmd)
	if err != nil {
		return nil, mapError(err)
	}

	if out.Kind == model.OutcomeNotFound {
		return nil, mapError(fmt.Errorf("task %d: %w", out.ID, model.ErrNotFound))
	}

	task := fromInternalTask(out.Task)
	return &task, nil
}
