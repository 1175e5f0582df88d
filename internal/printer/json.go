package printer

import (
	"encoding/json"
	"io"

	"github.com/slok/tasker/internal/model"
)

// JSONPrinter prints task information in JSON format.
type JSONPrinter struct {
	writer io.Writer
}

// NewJSONPrinter creates a new JSON printer.
func NewJSONPrinter(w io.Writer) *JSONPrinter {
	return &JSONPrinter{writer: w}
}

// taskOutput represents a task in the JSON output.
type taskOutput struct {
	ID          uint64 `json:"id"`
	Description string `json:"description"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// outcomeOutput represents a mutation outcome.
type outcomeOutput struct {
	Result  string      `json:"result"`
	ID      uint64      `json:"id"`
	Task    *taskOutput `json:"task,omitempty"`
	Message string      `json:"message"`
}

// messageOutput represents a simple message output.
type messageOutput struct {
	Message string `json:"message"`
}

var outcomeResults = map[model.OutcomeKind]string{
	model.OutcomeAdded:    "added",
	model.OutcomeUpdated:  "updated",
	model.OutcomeDeleted:  "deleted",
	model.OutcomeMarked:   "marked",
	model.OutcomeNotFound: "not_found",
}

// PrintOutcome prints the outcome in JSON format, list outcomes are printed as a task array.
func (j *JSONPrinter) PrintOutcome(out model.Outcome) error {
	if out.Kind == model.OutcomeListed {
		return j.PrintTasks(out.Tasks)
	}

	result, ok := outcomeResults[out.Kind]
	if !ok {
		return nil
	}

	output := outcomeOutput{
		Result:  result,
		ID:      out.ID,
		Message: OutcomeMessage(out),
	}
	if out.Kind != model.OutcomeNotFound {
		t := toTaskOutput(out.Task)
		output.Task = &t
	}

	return j.encode(output)
}

// PrintTasks prints tasks in JSON format.
func (j *JSONPrinter) PrintTasks(tasks []model.Task) error {
	items := make([]taskOutput, len(tasks))
	for i, t := range tasks {
		items[i] = toTaskOutput(t)
	}

	return j.encode(items)
}

// PrintMessage prints a simple message in JSON format.
func (j *JSONPrinter) PrintMessage(msg string) error {
	return j.encode(messageOutput{Message: msg})
}

func (j *JSONPrinter) encode(v any) error {
	enc := json.NewEncoder(j.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func toTaskOutput(t model.Task) taskOutput {
	return taskOutput{
		ID:          t.ID,
		Description: t.Description,
		Status:      t.Status.String(),
		CreatedAt:   t.CreatedAt.String(),
		UpdatedAt:   t.UpdatedAt.String(),
	}
}
