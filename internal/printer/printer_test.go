package printer_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slok/tasker/internal/clock"
	"github.com/slok/tasker/internal/model"
	"github.com/slok/tasker/internal/printer"
)

var (
	t0 = clock.Timestamp{Year: 2024, Month: 2, Day: 29, Hour: 10}
	t1 = clock.Timestamp{Year: 2024, Month: 2, Day: 29, Hour: 12}
)

func tasksFixture() []model.Task {
	return []model.Task{
		{ID: 1, Description: "buy milk", Status: model.StatusDone, CreatedAt: t0, UpdatedAt: t1},
		{ID: 2, Description: "call mom", Status: model.StatusTodo, CreatedAt: t0, UpdatedAt: t0},
	}
}

func TestOutcomeMessage(t *testing.T) {
	task := model.Task{ID: 3, Description: "new desc", Status: model.StatusInProgress}

	tests := map[string]struct {
		out    model.Outcome
		expMsg string
	}{
		"Added": {
			out:    model.Outcome{Kind: model.OutcomeAdded, ID: 3, Task: task},
			expMsg: "Task(ID: 3) added successfully",
		},
		"Updated": {
			out:    model.Outcome{Kind: model.OutcomeUpdated, ID: 3, Task: task},
			expMsg: "Task(ID: 3) updated to: new desc",
		},
		"Deleted": {
			out:    model.Outcome{Kind: model.OutcomeDeleted, ID: 3, Task: task},
			expMsg: "Task(ID: 3) deleted successfully",
		},
		"Marked": {
			out:    model.Outcome{Kind: model.OutcomeMarked, ID: 3, Task: task},
			expMsg: "Task(ID: 3) marked as: in-progress",
		},
		"Not found": {
			out:    model.Outcome{Kind: model.OutcomeNotFound, ID: 9},
			expMsg: "Task(ID: 9) does not exist",
		},
		"Noop": {
			out:    model.Outcome{Kind: model.OutcomeNoop},
			expMsg: "",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.expMsg, printer.OutcomeMessage(test.out))
		})
	}
}

func TestPlainPrinterPrintOutcome(t *testing.T) {
	tests := map[string]struct {
		out    model.Outcome
		expOut string
	}{
		"A mutation should print its message": {
			out:    model.Outcome{Kind: model.OutcomeAdded, ID: 1},
			expOut: "Task(ID: 1) added successfully\n",
		},
		"A list should print a line per task": {
			out: model.Outcome{Kind: model.OutcomeListed, Tasks: tasksFixture()},
			expOut: "ID: 1\tdescription: buy milk\tstatus: done\tcreated at: 2024-02-29T10:00:00Z\tupdated at: 2024-02-29T12:00:00Z\n" +
				"ID: 2\tdescription: call mom\tstatus: todo\tcreated at: 2024-02-29T10:00:00Z\tupdated at: 2024-02-29T10:00:00Z\n",
		},
		"An empty list should print nothing": {
			out:    model.Outcome{Kind: model.OutcomeListed},
			expOut: "",
		},
		"A noop should print nothing": {
			out:    model.Outcome{Kind: model.OutcomeNoop},
			expOut: "",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			p := printer.NewPlainPrinter(&buf)

			err := p.PrintOutcome(test.out)
			require.NoError(t, err)
			assert.Equal(t, test.expOut, buf.String())
		})
	}
}

func TestTablePrinterPrintTasks(t *testing.T) {
	var buf bytes.Buffer
	p := printer.NewTablePrinter(&buf, clock.Fixed(clock.Timestamp{Year: 2024, Month: 2, Day: 29, Hour: 14}))

	err := p.PrintOutcome(model.Outcome{Kind: model.OutcomeListed, Tasks: tasksFixture()})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"ID", "DESCRIPTION", "STATUS", "CREATED", "UPDATED"}, strings.Fields(lines[0]))
	assert.Contains(t, lines[1], "buy milk")
	assert.Contains(t, lines[1], "2024-02-29 10:00:00 UTC")
	assert.Contains(t, lines[1], "2 hours ago (UTC)")
	assert.Contains(t, lines[2], "4 hours ago (UTC)")
}

func TestTablePrinterPrintMessage(t *testing.T) {
	var buf bytes.Buffer
	p := printer.NewTablePrinter(&buf, nil)

	err := p.PrintOutcome(model.Outcome{Kind: model.OutcomeNotFound, ID: 4})
	require.NoError(t, err)
	assert.Equal(t, "Task(ID: 4) does not exist", strings.TrimSpace(buf.String()))
}

func TestJSONPrinterPrintOutcome(t *testing.T) {
	tests := map[string]struct {
		out         model.Outcome
		expContains []string
		expOut      string
	}{
		"A list should print a task array": {
			out: model.Outcome{Kind: model.OutcomeListed, Tasks: tasksFixture()[:1]},
			expOut: `[
  {
    "id": 1,
    "description": "buy milk",
    "status": "done",
    "created_at": "2024-02-29T10:00:00Z",
    "updated_at": "2024-02-29T12:00:00Z"
  }
]
`,
		},
		"An empty list should print an empty array": {
			out:    model.Outcome{Kind: model.OutcomeListed},
			expOut: "[]\n",
		},
		"A mutation should print the result and the task": {
			out: model.Outcome{Kind: model.OutcomeMarked, ID: 1, Task: tasksFixture()[0]},
			expContains: []string{
				`"result": "marked"`,
				`"message": "Task(ID: 1) marked as: done"`,
				`"description": "buy milk"`,
			},
		},
		"A not found should print the result without task": {
			out: model.Outcome{Kind: model.OutcomeNotFound, ID: 7},
			expOut: `{
  "result": "not_found",
  "id": 7,
  "message": "Task(ID: 7) does not exist"
}
`,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			p := printer.NewJSONPrinter(&buf)

			err := p.PrintOutcome(test.out)
			require.NoError(t, err)

			if test.expOut != "" {
				assert.Equal(t, test.expOut, buf.String())
			}
			for _, c := range test.expContains {
				assert.Contains(t, buf.String(), c)
			}
		})
	}
}

func TestJSONPrinterPrintMessage(t *testing.T) {
	var buf bytes.Buffer
	p := printer.NewJSONPrinter(&buf)

	require.NoError(t, p.PrintMessage("ok"))
	assert.Equal(t, "{\n  \"message\": \"ok\"\n}\n", buf.String())
}
