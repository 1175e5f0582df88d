package printer

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/slok/tasker/internal/clock"
	"github.com/slok/tasker/internal/model"
)

// TablePrinter prints tasks in a table format.
type TablePrinter struct {
	writer io.Writer
	clock  clock.Clock
}

// NewTablePrinter creates a new table printer, the clock is used to print relative times.
func NewTablePrinter(w io.Writer, c clock.Clock) *TablePrinter {
	if c == nil {
		c = clock.System
	}
	return &TablePrinter{writer: w, clock: c}
}

// PrintOutcome prints the outcome message, or the tasks table if it's a list outcome.
func (t *TablePrinter) PrintOutcome(out model.Outcome) error {
	if out.Kind == model.OutcomeListed {
		return t.PrintTasks(out.Tasks)
	}

	msg := OutcomeMessage(out)
	if msg == "" {
		return nil
	}
	return t.PrintMessage(msg)
}

// PrintTasks prints tasks in a table format.
func (t *TablePrinter) PrintTasks(tasks []model.Task) error {
	if len(tasks) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(t.writer, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	// Print header.
	fmt.Fprintln(tw, "ID\tDESCRIPTION\tSTATUS\tCREATED\tUPDATED")

	// Print rows.
	now := t.clock.Now()
	for _, task := range tasks {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			task.ID,
			task.Description,
			task.Status,
			FormatTimestamp(task.CreatedAt),
			TimeAgo(now, task.UpdatedAt),
		)
	}

	return nil
}

// PrintMessage prints a simple text message.
func (t *TablePrinter) PrintMessage(msg string) error {
	fmt.Fprintln(t.writer, msg)
	return nil
}
