package model_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slok/tasker/internal/model"
)

func TestParseStatus(t *testing.T) {
	tests := map[string]struct {
		token     string
		expStatus model.Status
		expErr    bool
	}{
		"todo should parse": {
			token:     "todo",
			expStatus: model.StatusTodo,
		},
		"in-progress should parse": {
			token:     "in-progress",
			expStatus: model.StatusInProgress,
		},
		"done should parse": {
			token:     "done",
			expStatus: model.StatusDone,
		},
		"Unknown tokens should fail": {
			token:  "finished",
			expErr: true,
		},
		"Tokens are case sensitive": {
			token:  "Done",
			expErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			status, err := model.ParseStatus(test.token)

			if test.expErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, model.ErrNotValid))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, test.expStatus, status)
			assert.Equal(t, test.token, status.String())
		})
	}
}

func TestStatusDefaults(t *testing.T) {
	var task model.Task
	assert.Equal(t, model.StatusTodo, task.Status)
	assert.Equal(t, []string{"todo", "in-progress", "done"}, model.StatusTokens())
}

func TestOutcomeMutated(t *testing.T) {
	tests := map[string]struct {
		kind       model.OutcomeKind
		expMutated bool
	}{
		"Added should mutate":   {kind: model.OutcomeAdded, expMutated: true},
		"Updated should mutate": {kind: model.OutcomeUpdated, expMutated: true},
		"Deleted should mutate": {kind: model.OutcomeDeleted, expMutated: true},
		"Marked should mutate":  {kind: model.OutcomeMarked, expMutated: true},
		"Listed should not":     {kind: model.OutcomeListed, expMutated: false},
		"Not found should not":  {kind: model.OutcomeNotFound, expMutated: false},
		"Noop should not":       {kind: model.OutcomeNoop, expMutated: false},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.expMutated, model.Outcome{Kind: test.kind}.Mutated())
		})
	}
}
