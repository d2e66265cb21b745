package model

import (
	"gitlab.com/tinyland/lab/weft/pkg/layout"
	"gitlab.com/tinyland/lab/weft/pkg/message"
)

// Mapper derives a partial child state from the parent's state. A nil
// Mapper means the child starts from an empty mapping (fully isolated
// state). Mappers must be pure: no I/O, no mutation of the input.
type Mapper func(parent State) State

// Resolver picks a component name from the current state. It backs the
// Dynamic selector variant and runs once, at construction time.
type Resolver func(s State) string

// ViewFunc renders a model to a single string as a pure function of its
// state and children.
type ViewFunc func(m *Model) (string, error)

// UpdateFunc is a pure state transition: it returns the successor model
// (possibly the receiver) and a command describing the side effect to run.
type UpdateFunc func(m *Model, msg message.Message) (*Model, message.Command, error)

// Selector names the component a child slot is built from. The marker
// method seals the set to the two variants below.
type Selector interface {
	selector() // sealed marker
}

// Use selects a registered component directly by name.
type Use struct {
	Name string
}

func (Use) selector() {}

// Dynamic selects a component by running the named resolver from the
// definition's Resolvers table against the parent state at construction
// time. A missing resolver fails with ErrNoResolver; a resolver result that
// is not a registered component fails with ErrInvalidChild.
type Dynamic struct {
	Resolver string
}

func (Dynamic) selector() {}

// ChildSpec is one entry in a definition's declarative child list.
type ChildSpec struct {
	Select Selector
	Map    Mapper // nil => isolated child state
	Weight int    // <= 0 => 1; only meaningful inside a container
}

// Definition is the type-level description of a component: its default
// state, declared children, behavior, and (for containers) the layout axis.
// Definitions are registered by name in a Registry; Model instances hold the
// name, not the Definition, so re-registering a name hot-swaps behavior for
// every model built afterwards.
type Definition struct {
	Name     string
	Defaults State
	Children []ChildSpec

	// Resolvers backs Dynamic child selectors.
	Resolvers map[string]Resolver

	// View renders the component. Leave nil on a container to get the
	// transparent default (concatenated child views); leaving it nil on a
	// leaf makes View fail with ErrNotImplemented.
	View ViewFunc

	// Update transitions state. Nil means Update fails with
	// ErrNotImplemented; only the tree root needs one in practice.
	Update UpdateFunc

	// Container marks the definition as geometry-owning: construction
	// consumes the reserved width/height/x/y keys into a Bounds and
	// distributes it among children along Direction by weight.
	Container bool
	Direction layout.Direction
}

func (d *Definition) weights() []int {
	w := make([]int, len(d.Children))
	for i, c := range d.Children {
		if c.Weight <= 0 {
			w[i] = 1
		} else {
			w[i] = c.Weight
		}
	}
	return w
}
