// Package store owns the in-memory task sequence and the operations over it.
//
// A store is loaded fully from its persisted text, mutated in memory and
// saved fully again, it doesn't persist incrementally.
package store

import (
	"fmt"
	"math"
	"slices"

	"github.com/slok/tasker/internal/clock"
	"github.com/slok/tasker/internal/codec"
	"github.com/slok/tasker/internal/log"
	"github.com/slok/tasker/internal/model"
)

// Config is the configuration for the store.
type Config struct {
	Clock  clock.Clock
	Logger log.Logger
}

func (c *Config) defaults() error {
	if c.Clock == nil {
		c.Clock = clock.System
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "store.Store"})

	return nil
}

// Store is an ordered sequence of tasks, the order is the insertion order.
type Store struct {
	tasks  []model.Task
	clock  clock.Clock
	logger log.Logger
}

// New returns a store with the received tasks. Tasks can't share ids.
func New(cfg Config, tasks []model.Task) (*Store, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	seen := make(map[uint64]struct{}, len(tasks))
	for _, t := range tasks {
		if _, ok := seen[t.ID]; ok {
			return nil, fmt.Errorf("duplicated task id %d: %w", t.ID, model.ErrNotValid)
		}
		seen[t.ID] = struct{}{}
	}

	return &Store{
		tasks:  slices.Clone(tasks),
		clock:  cfg.Clock,
		logger: cfg.Logger,
	}, nil
}

// Load returns a store with the tasks decoded from their persisted text.
func Load(cfg Config, text string) (*Store, error) {
	tasks, err := codec.Decode(text)
	if err != nil {
		return nil, fmt.Errorf("could not decode tasks: %w", err)
	}

	return New(cfg, tasks)
}

// Save returns the persisted text of all the tasks.
func (s *Store) Save() string {
	return codec.Encode(s.tasks)
}

// Tasks returns a copy of the tasks in store order.
func (s *Store) Tasks() []model.Task {
	return slices.Clone(s.tasks)
}

// Add appends a new task in todo status. The id is the one of the last task plus one,
// gaps left by deleted tasks are not reused. If the last task has the maximum id
// the command is rejected.
func (s *Store) Add(description string) model.Outcome {
	var lastID uint64
	if len(s.tasks) > 0 {
		lastID = s.tasks[len(s.tasks)-1].ID
	}
	if lastID == math.MaxUint64 {
		return model.Outcome{
			Kind:    model.OutcomeRejected,
			Command: model.CommandAdd,
			Err:     fmt.Errorf("no task id available after %d: %w", lastID, model.ErrNotValid),
		}
	}

	now := s.clock.Now()
	t := model.Task{
		ID:          lastID + 1,
		Description: description,
		Status:      model.StatusTodo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.tasks = append(s.tasks, t)
	s.logger.Debugf("task %d added", t.ID)

	return model.Outcome{Kind: model.OutcomeAdded, Command: model.CommandAdd, ID: t.ID, Task: t}
}

// Update replaces the description of a task.
func (s *Store) Update(id uint64, description string) model.Outcome {
	i := s.index(id)
	if i < 0 {
		return notFound(model.CommandUpdate, id)
	}

	s.tasks[i].Description = description
	s.touch(i)
	s.logger.Debugf("task %d updated", id)

	return model.Outcome{Kind: model.OutcomeUpdated, Command: model.CommandUpdate, ID: id, Task: s.tasks[i]}
}

// Delete removes a task keeping the order of the rest.
func (s *Store) Delete(id uint64) model.Outcome {
	i := s.index(id)
	if i < 0 {
		return notFound(model.CommandDelete, id)
	}

	t := s.tasks[i]
	s.tasks = slices.Delete(s.tasks, i, i+1)
	s.logger.Debugf("task %d deleted", id)

	return model.Outcome{Kind: model.OutcomeDeleted, Command: model.CommandDelete, ID: id, Task: t}
}

// Mark sets the status of a task.
func (s *Store) Mark(status model.Status, id uint64) model.Outcome {
	i := s.index(id)
	if i < 0 {
		return notFound(model.CommandMark, id)
	}

	s.tasks[i].Status = status
	s.touch(i)
	s.logger.Debugf("task %d marked as %s", id, status)

	return model.Outcome{Kind: model.OutcomeMarked, Command: model.CommandMark, ID: id, Task: s.tasks[i]}
}

// List returns the tasks in store order. If a filter is set only the tasks with
// that status are returned.
func (s *Store) List(filter *model.Status) model.Outcome {
	tasks := make([]model.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if filter != nil && t.Status != *filter {
			continue
		}
		tasks = append(tasks, t)
	}

	return model.Outcome{Kind: model.OutcomeListed, Command: model.CommandList, Tasks: tasks}
}

// Process applies a command to the store.
func (s *Store) Process(cmd model.Command) model.Outcome {
	switch cmd.Kind {
	case model.CommandAdd:
		return s.Add(cmd.Description)
	case model.CommandUpdate:
		return s.Update(cmd.ID, cmd.Description)
	case model.CommandDelete:
		return s.Delete(cmd.ID)
	case model.CommandMark:
		return s.Mark(cmd.Status, cmd.ID)
	case model.CommandList:
		return s.List(cmd.StatusFilter)
	}

	return model.Outcome{Kind: model.OutcomeNoop, Command: cmd.Kind}
}

// index returns the position of the first task with the id, -1 if missing.
func (s *Store) index(id uint64) int {
	return slices.IndexFunc(s.tasks, func(t model.Task) bool { return t.ID == id })
}

// touch refreshes the update time, it never goes before the creation time.
func (s *Store) touch(i int) {
	now := s.clock.Now()
	if now.Before(s.tasks[i].CreatedAt) {
		now = s.tasks[i].CreatedAt
	}
	s.tasks[i].UpdatedAt = now
}

func notFound(cmd model.CommandKind, id uint64) model.Outcome {
	return model.Outcome{Kind: model.OutcomeNotFound, Command: cmd, ID: id}
}
