// Package runtime implements the message-draining execution engine that
// drives a weft component tree.
//
// A single driver goroutine owns the tick cycle: it calls Tick on a fixed
// period, receives the successor root model, and renders when ShouldRender
// reports true. Any number of producer goroutines (keyboard reader, file
// watcher, timers) may call Enqueue concurrently; the queue is the only
// shared mutable resource in the system.
package runtime

import (
	"sync"

	"gitlab.com/tinyland/lab/weft/pkg/message"
	"gitlab.com/tinyland/lab/weft/pkg/model"
)

// Runtime owns the FIFO message queue and the two flags of the engine's
// state machine: running (flipped by Start/Stop or an ExitCommand) and
// shouldRender (recomputed by every Tick).
type Runtime struct {
	mu           sync.Mutex
	queue        []message.Message
	running      bool
	shouldRender bool
}

// New returns a stopped Runtime with an empty queue.
func New() *Runtime {
	return &Runtime{}
}

// Enqueue appends msg to the tail of the queue. Safe for concurrent
// producers; messages enqueued while a Tick is draining become visible on
// the next tick, never the current one.
func (r *Runtime) Enqueue(msg message.Message) {
	r.mu.Lock()
	r.queue = append(r.queue, msg)
	r.mu.Unlock()
}

// Start flips the engine into the running state.
func (r *Runtime) Start() {
	r.mu.Lock()
	r.running = true
	r.mu.Unlock()
}

// Stop flips the engine into the stopped state.
func (r *Runtime) Stop() {
	r.mu.Lock()
	r.running = false
	r.mu.Unlock()
}

// Running reports whether the engine is between Start and Stop.
func (r *Runtime) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.running
}

// ShouldRender reports whether the most recent Tick drained at least one
// message other than message.None.
func (r *Runtime) ShouldRender() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.shouldRender
}

// Tick drains the entire queue as of the moment of the call, folds every
// message through m.Update in FIFO order, and executes each returned
// command immediately. It returns the successor model; with an empty queue
// the input model comes back unchanged and no render is scheduled.
//
// Update errors propagate to the caller untouched. Incorrect update logic
// is a programming error, and masking it here would only move the failure
// somewhere harder to see.
func (r *Runtime) Tick(m *model.Model) (*model.Model, error) {
	r.mu.Lock()
	drained := r.queue
	r.queue = nil
	r.mu.Unlock()

	render := false
	for _, msg := range drained {
		if _, isNone := msg.(message.None); !isNone {
			render = true
		}

		next, cmd, err := m.Update(msg)
		if err != nil {
			return nil, err
		}
		m = next
		r.exec(cmd)
	}

	r.mu.Lock()
	r.shouldRender = render
	r.mu.Unlock()
	return m, nil
}

// exec performs the runtime-level effect of a command. Reload and Resize
// are informational at this layer; application update logic gives them
// meaning.
func (r *Runtime) exec(cmd message.Command) {
	switch c := cmd.(type) {
	case message.ExitCommand:
		r.Stop()
	case message.BatchCommand:
		for _, msg := range c.Messages {
			r.Enqueue(msg)
		}
	}
}
