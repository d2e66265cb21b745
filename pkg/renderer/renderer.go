// Package renderer writes rendered frames to the terminal. It is a narrow
// adapter: the core hands it a single string per frame and this package
// owns every escape sequence needed to put that string on screen.
package renderer

import (
	"io"
	"sync"

	"github.com/muesli/termenv"
)

// Renderer owns the output surface for the lifetime of a program run.
// It is not safe for concurrent writers; the driver goroutine is the only
// caller, matching the single-consumer contract of the runtime.
type Renderer struct {
	mu        sync.Mutex
	out       *termenv.Output
	altScreen bool
	active    bool
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithAltScreen controls whether Start switches to the terminal's alternate
// screen buffer. Defaults to true.
func WithAltScreen(enabled bool) Option {
	return func(r *Renderer) {
		r.altScreen = enabled
	}
}

// New creates a Renderer writing to w.
func New(w io.Writer, opts ...Option) *Renderer {
	r := &Renderer{
		out:       termenv.NewOutput(w),
		altScreen: true,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Start takes over the output surface: enters the alt screen (when
// enabled), hides the cursor, and clears. Idempotent.
func (r *Renderer) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.active {
		return
	}
	if r.altScreen {
		r.out.AltScreen()
	}
	r.out.HideCursor()
	r.out.ClearScreen()
	r.active = true
}

// Frame writes one rendered view string, homing the cursor first so each
// frame overwrites the previous one. Lines the new frame does not cover
// are cleared.
func (r *Renderer) Frame(view string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.active {
		return
	}
	r.out.MoveCursor(1, 1)
	r.out.ClearScreen()
	io.WriteString(r.out, view)
}

// Stop restores the terminal: shows the cursor and leaves the alt screen.
// Safe to call multiple times and on a never-started Renderer, so it can
// sit in a defer next to signal handling.
func (r *Renderer) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.active {
		return
	}
	r.out.ShowCursor()
	if r.altScreen {
		r.out.ExitAltScreen()
	}
	r.active = false
}
