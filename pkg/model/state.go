package model

// State is the mapping of symbolic keys to values owned by a single Model
// instance. A State is set once at construction and never mutated in place;
// every derivation goes through Merge, which produces a fresh map. Code that
// receives a State from a Model accessor gets a defensive copy.
type State map[string]any

// Reserved geometry keys. On container components these four keys are
// consumed at construction to form the Bounds and stripped from the state
// mapping; on leaf components they are ordinary state.
const (
	KeyWidth  = "width"
	KeyHeight = "height"
	KeyX      = "x"
	KeyY      = "y"
)

// Clone returns a shallow copy of s. A nil State clones to an empty one.
func (s State) Clone() State {
	out := make(State, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Merge returns a new State with over shallow-merged on top of s. Neither
// input is modified.
func (s State) Merge(over State) State {
	out := s.Clone()
	for k, v := range over {
		out[k] = v
	}
	return out
}

// Int reads an integer-valued key. The second return is false when the key
// is absent or not an int.
func (s State) Int(key string) (int, bool) {
	v, ok := s[key]
	if !ok {
		return 0, false
	}
	n, ok := v.(int)
	return n, ok
}

// String reads a string-valued key, returning fallback when the key is
// absent or holds a non-string.
func (s State) String(key, fallback string) string {
	if v, ok := s[key]; ok {
		if str, ok := v.(string); ok {
			return str
		}
	}
	return fallback
}

// Bool reads a boolean-valued key, returning fallback when the key is
// absent or holds a non-bool.
func (s State) Bool(key string, fallback bool) bool {
	if v, ok := s[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return fallback
}
