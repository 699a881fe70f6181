package runtime

import "sort"

// Environment is the flat variable table of one interpreter session.
// Bindings are created or overwritten, never removed.
type Environment struct {
	values map[string]Value
}

// NewEnvironment creates an empty environment.
func NewEnvironment() *Environment {
	return &Environment{values: make(map[string]Value)}
}

// Define inserts or overwrites a binding.
func (e *Environment) Define(name string, value Value) {
	e.values[name] = value
}

// Lookup retrieves a binding, reporting whether it exists.
func (e *Environment) Lookup(name string) (Value, bool) {
	v, ok := e.values[name]
	return v, ok
}

// Len returns the number of bindings.
func (e *Environment) Len() int {
	return len(e.values)
}

// Snapshot returns a copy of the current bindings.
func (e *Environment) Snapshot() map[string]Value {
	out := make(map[string]Value, len(e.values))
	for k, v := range e.values {
		out[k] = v
	}
	return out
}

// Keys returns the binding names in sorted order (useful for determinism in tests).
func (e *Environment) Keys() []string {
	keys := make([]string, 0, len(e.values))
	for k := range e.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
