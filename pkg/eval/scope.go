package eval

import (
	"github.com/asdfish/empl/pkg/value"
)

// Scope is a stack of binding frames. Lookups walk from the innermost
// frame outward and Define always writes the innermost frame, so
// scoping is dynamic: a function body sees whatever is bound at the
// call site.
type Scope struct {
	parent  *Scope
	symbols map[string]value.Value
}

// NewScope returns a scope whose root frame holds the prelude.
func NewScope() *Scope {
	return &Scope{symbols: prelude()}
}

// WithSymbols returns a scope with the given bindings layered into the
// root frame next to the prelude.
func WithSymbols(symbols map[string]value.Value) *Scope {
	s := NewScope()
	for name, v := range symbols {
		s.symbols[name] = v
	}
	return s
}

// Push adds an empty frame. Bindings made there shadow outer frames.
func (s *Scope) Push() *Scope {
	return &Scope{parent: s, symbols: map[string]value.Value{}}
}

// Define binds name in the innermost frame, replacing any previous
// binding there.
func (s *Scope) Define(name string, v value.Value) {
	s.symbols[name] = v
}

// Get resolves name against the innermost frame that binds it.
func (s *Scope) Get(name string) (value.Value, bool) {
	for f := s; f != nil; f = f.parent {
		if v, ok := f.symbols[name]; ok {
			return v, true
		}
	}
	return nil, false
}
