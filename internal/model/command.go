package model

// CommandKind is the kind of operation a command requests.
type CommandKind int

const (
	// CommandNone is an unrecognized or incomplete command, it does nothing.
	CommandNone CommandKind = iota
	CommandAdd
	CommandUpdate
	CommandDelete
	CommandMark
	CommandList
)

func (k CommandKind) String() string {
	switch k {
	case CommandAdd:
		return "add"
	case CommandUpdate:
		return "update"
	case CommandDelete:
		return "delete"
	case CommandMark:
		return "mark"
	case CommandList:
		return "list"
	}
	return "none"
}

// Command is an operation request over the tasks.
// Only the fields used by Kind are meaningful.
type Command struct {
	Kind        CommandKind
	ID          uint64
	Description string
	Status      Status
	// StatusFilter is only used by list, nil means all the tasks.
	StatusFilter *Status
}

// NewAddCommand returns a command that adds a new task.
func NewAddCommand(description string) Command {
	return Command{Kind: CommandAdd, Description: description}
}

// NewUpdateCommand returns a command that replaces a task description.
func NewUpdateCommand(id uint64, description string) Command {
	return Command{Kind: CommandUpdate, ID: id, Description: description}
}

// NewDeleteCommand returns a command that deletes a task.
func NewDeleteCommand(id uint64) Command {
	return Command{Kind: CommandDelete, ID: id}
}

// NewMarkCommand returns a command that sets a task status.
func NewMarkCommand(status Status, id uint64) Command {
	return Command{Kind: CommandMark, ID: id, Status: status}
}

// NewListCommand returns a command that lists tasks, optionally filtered by status.
func NewListCommand(filter *Status) Command {
	return Command{Kind: CommandList, StatusFilter: filter}
}
