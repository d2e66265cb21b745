package message

// Command is the closed set of side-effect directives an Update can return.
// The marker method prevents external implementations; a nil Command means
// the same thing as NoCommand.
type Command interface {
	command() // sealed marker
}

// NoCommand directs the runtime to do nothing.
type NoCommand struct{}

func (NoCommand) command() {}

// ExitCommand directs the runtime to stop. Draining finishes for the
// current tick; the driver observes the stopped state afterwards.
type ExitCommand struct{}

func (ExitCommand) command() {}

// BatchCommand directs the runtime to re-enqueue Messages, in order, for a
// future tick.
type BatchCommand struct {
	Messages []Message
}

func (BatchCommand) command() {}

// ReloadCommand is informational: the runtime takes no action, but a driver
// or watcher layer may react to it. It exists so application Update logic
// can signal reload intent without reaching outside the update cycle.
type ReloadCommand struct{}

func (ReloadCommand) command() {}

// ResizeCommand is informational, carrying dimensions a driver may apply.
type ResizeCommand struct {
	Width  int
	Height int
}

func (ResizeCommand) command() {}
