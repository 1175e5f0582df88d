package model

// OutcomeKind is the result kind of a processed command.
type OutcomeKind int

const (
	OutcomeNoop OutcomeKind = iota
	OutcomeAdded
	OutcomeUpdated
	OutcomeDeleted
	OutcomeMarked
	OutcomeListed
	// OutcomeNotFound is returned when the command targeted a missing task id.
	OutcomeNotFound
	// OutcomeRejected is returned when the command can't be applied, Err has the reason.
	OutcomeRejected
)

// Outcome is the structured result of a command applied to the tasks, it's
// up to the caller how to present it.
type Outcome struct {
	Kind    OutcomeKind
	Command CommandKind
	// ID is the id targeted by the command.
	ID uint64
	// Task is the affected task snapshot (added, updated, deleted or marked).
	Task Task
	// Tasks are the listed tasks.
	Tasks []Task
	// Err is the rejection reason.
	Err error
}

// Mutated returns true if the outcome changed the tasks and these need to be persisted.
func (o Outcome) Mutated() bool {
	switch o.Kind {
	case OutcomeAdded, OutcomeUpdated, OutcomeDeleted, OutcomeMarked:
		return true
	}
	return false
}
