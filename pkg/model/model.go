// Package model implements the immutable component tree at the core of
// weft: named definitions registered in a Registry, and Model instances
// built from them.
//
// A Model is a value: its state is merged and fixed at construction, its
// child sequence is resolved in full at the same moment, and every state
// transition produces a brand-new instance via With. There is no partial
// child diffing; a rebuilt parent rebuilds the whole subtree. Terminal-scale
// trees make that trade cheap, and it keeps identity semantics trivial.
package model

import (
	"fmt"
	"strings"

	"gitlab.com/tinyland/lab/weft/pkg/layout"
	"gitlab.com/tinyland/lab/weft/pkg/message"
)

// Model is one immutable instance in the component tree. Instances are
// created on each state transition and discarded when superseded; nothing
// here is safe to mutate after construction.
type Model struct {
	reg       *Registry
	name      string
	state     State
	children  []*Model
	container bool
	bounds    layout.Bounds
}

// New constructs a model of the named component, shallow-merging overrides
// on top of the definition's defaults. Containers additionally consume the
// reserved width/height/x/y keys (falling back to the ambient screen size)
// and hand each declared child its share of the resulting bounds.
//
// Child resolution failures abort construction: an unregistered component
// name wraps ErrInvalidChild, a missing Dynamic resolver wraps
// ErrNoResolver.
func (r *Registry) New(name string, overrides State) (*Model, error) {
	def, ok := r.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("component %q is not registered: %w", name, ErrInvalidChild)
	}

	merged := def.Defaults.Merge(overrides)

	m := &Model{
		reg:       r,
		name:      name,
		container: def.Container,
	}

	if def.Container {
		m.bounds = r.extractBounds(merged)
		delete(merged, KeyWidth)
		delete(merged, KeyHeight)
		delete(merged, KeyX)
		delete(merged, KeyY)
	}
	m.state = merged

	if err := m.buildChildren(def); err != nil {
		return nil, err
	}
	return m, nil
}

// extractBounds reads the reserved geometry keys from s, substituting the
// ambient screen size for missing dimensions and origin zero for missing
// offsets.
func (r *Registry) extractBounds(s State) layout.Bounds {
	screenW, screenH := r.ambientSize()

	b := layout.Bounds{Width: screenW, Height: screenH}
	if w, ok := s.Int(KeyWidth); ok {
		b.Width = w
	}
	if h, ok := s.Int(KeyHeight); ok {
		b.Height = h
	}
	if x, ok := s.Int(KeyX); ok {
		b.X = x
	}
	if y, ok := s.Int(KeyY); ok {
		b.Y = y
	}
	return b
}

// buildChildren resolves every declared child spec into a concrete
// instance. Containers inject per-child geometry over the mapper output;
// geometry keys win on collision.
func (m *Model) buildChildren(def *Definition) error {
	if len(def.Children) == 0 {
		m.children = nil
		return nil
	}

	var geo []layout.Bounds
	if def.Container {
		geo = layout.SplitWeighted(m.bounds, def.Direction, def.weights())
	}

	m.children = make([]*Model, 0, len(def.Children))
	for i, spec := range def.Children {
		childName, err := m.resolveSelector(def, i, spec.Select)
		if err != nil {
			return err
		}

		childState := State{}
		if spec.Map != nil {
			childState = spec.Map(m.state).Clone()
		}
		if def.Container {
			b := geo[i]
			childState[KeyWidth] = b.Width
			childState[KeyHeight] = b.Height
			childState[KeyX] = b.X
			childState[KeyY] = b.Y
		}

		child, err := m.reg.New(childName, childState)
		if err != nil {
			return fmt.Errorf("%s: child %d: %w", m.name, i, err)
		}
		m.children = append(m.children, child)
	}
	return nil
}

// resolveSelector turns a child selector into a registered component name.
// The two failure kinds stay distinct: a Dynamic selector naming an unknown
// resolver is ErrNoResolver, while a name (direct or resolved) that is not
// a registered component is ErrInvalidChild.
func (m *Model) resolveSelector(def *Definition, idx int, sel Selector) (string, error) {
	var name string
	switch s := sel.(type) {
	case Use:
		name = s.Name
	case Dynamic:
		fn, ok := def.Resolvers[s.Resolver]
		if !ok {
			return "", fmt.Errorf("%s: child %d: resolver %q: %w", m.name, idx, s.Resolver, ErrNoResolver)
		}
		name = fn(m.state)
	default:
		return "", fmt.Errorf("%s: child %d has no selector: %w", m.name, idx, ErrInvalidChild)
	}

	if _, ok := m.reg.Lookup(name); !ok {
		return "", fmt.Errorf("%s: child %d resolved to %q, which is not a registered component: %w", m.name, idx, name, ErrInvalidChild)
	}
	return name, nil
}

// definition re-reads the registry on every call so that a hot-swapped
// definition takes effect without rebuilding existing instances.
func (m *Model) definition() (*Definition, error) {
	def, ok := m.reg.Lookup(m.name)
	if !ok {
		return nil, fmt.Errorf("component %q is no longer registered: %w", m.name, ErrInvalidChild)
	}
	return def, nil
}

// View renders the model to a single string. Containers without an explicit
// View are transparent layout shells and render their concatenated child
// views; a leaf without a View fails with ErrNotImplemented.
func (m *Model) View() (string, error) {
	def, err := m.definition()
	if err != nil {
		return "", err
	}
	if def.View != nil {
		return def.View(m)
	}
	if def.Container {
		return m.ChildrenViews()
	}
	return "", fmt.Errorf("%s: view: %w", m.name, ErrNotImplemented)
}

// Update applies one message and returns the successor model plus the
// side-effect command to execute. Errors from application update logic
// propagate verbatim; the tree never masks them.
func (m *Model) Update(msg message.Message) (*Model, message.Command, error) {
	def, err := m.definition()
	if err != nil {
		return nil, nil, err
	}
	if def.Update == nil {
		return nil, nil, fmt.Errorf("%s: update: %w", m.name, ErrNotImplemented)
	}
	return def.Update(m, msg)
}

// With returns a new model of the same component with partial shallow-merged
// over the current state and the child tree rebuilt in full. The receiver
// is never returned, and its state is untouched. Containers re-inject their
// geometry first, so partial can also resize or move the container.
func (m *Model) With(partial State) (*Model, error) {
	base := m.state.Clone()
	if m.container {
		base[KeyWidth] = m.bounds.Width
		base[KeyHeight] = m.bounds.Height
		base[KeyX] = m.bounds.X
		base[KeyY] = m.bounds.Y
	}
	return m.reg.New(m.name, base.Merge(partial))
}

// ChildrenViews concatenates each child's View output in declaration order
// with no separator.
func (m *Model) ChildrenViews() (string, error) {
	var sb strings.Builder
	for _, c := range m.children {
		v, err := c.View()
		if err != nil {
			return "", err
		}
		sb.WriteString(v)
	}
	return sb.String(), nil
}

// Name returns the component name this model was built from.
func (m *Model) Name() string {
	return m.name
}

// State returns a copy of the model's state mapping.
func (m *Model) State() State {
	return m.state.Clone()
}

// Get reads one state key.
func (m *Model) Get(key string) (any, bool) {
	v, ok := m.state[key]
	return v, ok
}

// Children returns the ordered child sequence. The returned slice is a
// copy; the children themselves are shared immutable instances.
func (m *Model) Children() []*Model {
	out := make([]*Model, len(m.children))
	copy(out, m.children)
	return out
}

// Container reports whether this model owns geometry.
func (m *Model) Container() bool {
	return m.container
}

// Bounds returns the model's geometry. Zero for non-containers.
func (m *Model) Bounds() layout.Bounds {
	return m.bounds
}
