package printer

import (
	"fmt"
	"io"

	"github.com/slok/tasker/internal/model"
)

// PlainPrinter prints one line per message or task.
type PlainPrinter struct {
	writer io.Writer
}

// NewPlainPrinter creates a new plain printer.
func NewPlainPrinter(w io.Writer) *PlainPrinter {
	return &PlainPrinter{writer: w}
}

// PrintOutcome prints the outcome message, or the tasks if it's a list outcome.
func (p *PlainPrinter) PrintOutcome(out model.Outcome) error {
	if out.Kind == model.OutcomeListed {
		return p.PrintTasks(out.Tasks)
	}

	msg := OutcomeMessage(out)
	if msg == "" {
		return nil
	}
	return p.PrintMessage(msg)
}

// PrintTasks prints a line per task.
func (p *PlainPrinter) PrintTasks(tasks []model.Task) error {
	for _, t := range tasks {
		_, err := fmt.Fprintf(p.writer, "ID: %d\tdescription: %s\tstatus: %s\tcreated at: %s\tupdated at: %s\n",
			t.ID, t.Description, t.Status, t.CreatedAt, t.UpdatedAt)
		if err != nil {
			return err
		}
	}
	return nil
}

// PrintMessage prints a simple text message.
func (p *PlainPrinter) PrintMessage(msg string) error {
	_, err := fmt.Fprintln(p.writer, msg)
	return err
}
