package model

import (
	"fmt"

	"github.com/slok/tasker/internal/clock"
)

// Status represents the lifecycle stage of a task.
type Status int

const (
	// StatusTodo is the default status of a new task.
	StatusTodo Status = iota
	// StatusInProgress indicates someone is working on the task.
	StatusInProgress
	// StatusDone indicates the task has been completed.
	StatusDone
)

var statusText = map[Status]string{
	StatusTodo:       "todo",
	StatusInProgress: "in-progress",
	StatusDone:       "done",
}

// Statuses returns all the statuses in their natural order.
func Statuses() []Status {
	return []Status{StatusTodo, StatusInProgress, StatusDone}
}

// StatusTokens returns the text tokens of all the statuses in order.
func StatusTokens() []string {
	tokens := make([]string, 0, len(statusText))
	for _, s := range Statuses() {
		tokens = append(tokens, s.String())
	}
	return tokens
}

func (s Status) String() string {
	if t, ok := statusText[s]; ok {
		return t
	}
	return fmt.Sprintf("unknown(%d)", int(s))
}

// ParseStatus converts a status token into a Status.
func ParseStatus(token string) (Status, error) {
	for s, t := range statusText {
		if t == token {
			return s, nil
		}
	}
	return StatusTodo, fmt.Errorf("unknown status %q: %w", token, ErrNotValid)
}

// Task is a unit of tracked work.
type Task struct {
	ID          uint64
	Description string
	Status      Status
	CreatedAt   clock.Timestamp
	UpdatedAt   clock.Timestamp
}
