// Package message defines the immutable event and side-effect values that
// flow through the weft runtime.
//
// Messages are inputs: a producer (keyboard reader, file watcher, a Batch
// re-enqueue) appends them to the runtime queue, and the root model's Update
// consumes them. Commands are outputs: Update returns one to describe the
// side effect the runtime should execute. Both are plain value types created
// and discarded per use; two values with the same tag and payload are equal.
package message

import "time"

// Message is an input event consumed by a model's Update. The runtime
// accepts any value as a message; the types below are the built-in set, and
// applications define their own by declaring further value types.
type Message interface{}

// None is the explicit no-op message. A tick that drains only None messages
// does not schedule a render.
type None struct{}

// Exit requests application shutdown. Application Update logic typically
// answers it (or a quit key) with an ExitCommand.
type Exit struct{}

// Reload announces that watched source or configuration files changed.
// The runtime itself ignores it; application Update logic decides what
// reloading means.
type Reload struct{}

// Tick carries the wall-clock time of a periodic timer fire.
type Tick struct {
	Time time.Time
}

// Resize announces new terminal dimensions in cells.
type Resize struct {
	Width  int
	Height int
}

// KeyPress is a single decoded keyboard event.
//
// Key is the symbolic name ("a", "enter", "up", "ctrl+c"); Value is the
// literal text the key produces, empty for non-printing keys.
type KeyPress struct {
	Key   string
	Value string
	Ctrl  bool
	Alt   bool
	Shift bool
}

// Batch groups several messages into one value. The runtime re-enqueues the
// contained messages in order; they become visible on a later tick, never
// the one that observed the Batch.
type Batch struct {
	Messages []Message
}

// Equal reports whether two messages are structurally equal. Most built-in
// messages are comparable structs and can be compared with ==; Batch cannot
// (it holds a slice), so comparisons that may involve a Batch go through
// here.
func Equal(a, b Message) bool {
	ba, aIsBatch := a.(Batch)
	bb, bIsBatch := b.(Batch)
	if aIsBatch != bIsBatch {
		return false
	}
	if aIsBatch {
		if len(ba.Messages) != len(bb.Messages) {
			return false
		}
		for i := range ba.Messages {
			if !Equal(ba.Messages[i], bb.Messages[i]) {
				return false
			}
		}
		return true
	}
	return a == b
}
