package model

import (
	"fmt"
	"sync"
)

// ScreenSizeFunc supplies ambient terminal dimensions for containers built
// without explicit geometry in their state.
type ScreenSizeFunc func() (width, height int)

// Registry maps component names to definitions and carries the ambient
// screen-size provider. It is an explicit context object: a program builds
// one at startup and threads it through, so there is no process-wide
// mutable component table and tests need no global fixtures.
//
// Registration is guarded by a lock because hot reload re-registers
// definitions from a watcher goroutine while the driver keeps ticking.
// Models store their definition name and look it up fresh on every
// construction, so a swapped definition takes effect on the next With.
type Registry struct {
	mu         sync.RWMutex
	defs       map[string]*Definition
	screenSize ScreenSizeFunc
}

// NewRegistry returns an empty registry whose ambient screen size defaults
// to 80x24. Install a real provider with SetScreenSize.
func NewRegistry() *Registry {
	return &Registry{
		defs:       make(map[string]*Definition),
		screenSize: func() (int, int) { return 80, 24 },
	}
}

// SetScreenSize installs the ambient screen-size provider. A nil fn is
// ignored.
func (r *Registry) SetScreenSize(fn ScreenSizeFunc) {
	if fn == nil {
		return
	}
	r.mu.Lock()
	r.screenSize = fn
	r.mu.Unlock()
}

// Register adds or replaces a definition under its name. Replacing is the
// hot-swap path and is deliberately allowed.
func (r *Registry) Register(def *Definition) error {
	if def == nil || def.Name == "" {
		return fmt.Errorf("register: definition must have a name")
	}
	r.mu.Lock()
	r.defs[def.Name] = def
	r.mu.Unlock()
	return nil
}

// Lookup returns the definition registered under name.
func (r *Registry) Lookup(name string) (*Definition, bool) {
	r.mu.RLock()
	def, ok := r.defs[name]
	r.mu.RUnlock()
	return def, ok
}

func (r *Registry) ambientSize() (int, int) {
	r.mu.RLock()
	fn := r.screenSize
	r.mu.RUnlock()
	return fn()
}
