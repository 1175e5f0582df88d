package printer

import (
	"fmt"

	"github.com/slok/tasker/internal/model"
)

// Printer knows how to print task command results in different formats.
type Printer interface {
	PrintOutcome(out model.Outcome) error
	PrintTasks(tasks []model.Task) error
	PrintMessage(msg string) error
}

// OutcomeMessage returns the human readable one line message of a mutation
// outcome. Outcomes without message (noop and listed) return an empty string.
func OutcomeMessage(out model.Outcome) string {
	switch out.Kind {
	case model.OutcomeAdded:
		return fmt.Sprintf("Task(ID: %d) added successfully", out.ID)
	case model.OutcomeUpdated:
		return fmt.Sprintf("Task(ID: %d) updated to: %s", out.ID, out.Task.Description)
	case model.OutcomeDeleted:
		return fmt.Sprintf("Task(ID: %d) deleted successfully", out.ID)
	case model.OutcomeMarked:
		return fmt.Sprintf("Task(ID: %d) marked as: %s", out.ID, out.Task.Status)
	case model.OutcomeNotFound:
		return fmt.Sprintf("Task(ID: %d) does not exist", out.ID)
	}
	return ""
}
