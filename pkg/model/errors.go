package model

import "errors"

// The three failure kinds of the component tree. All of them indicate a
// programming defect in a component definition, so they are surfaced
// immediately and never recovered internally. Callers distinguish them with
// errors.Is.
var (
	// ErrNotImplemented is returned when View or Update is invoked on a
	// definition that does not supply one. Every concrete component must
	// provide its own.
	ErrNotImplemented = errors.New("not implemented")

	// ErrInvalidChild is returned at construction when a child selector
	// resolves to something that is not a registered component. The
	// wrapping message names the offending value.
	ErrInvalidChild = errors.New("invalid child component")

	// ErrNoResolver is returned at construction when a Dynamic selector
	// names a resolver the definition does not declare. Distinct from
	// ErrInvalidChild so the two failure modes are debuggable separately.
	ErrNoResolver = errors.New("child resolver not found")
)
