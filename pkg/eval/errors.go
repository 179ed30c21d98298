package eval

import (
	"errors"
	"fmt"

	"github.com/asdfish/empl/pkg/token"
	"github.com/asdfish/empl/pkg/value"
)

var (
	// ErrEmptyApply is returned when an empty list is evaluated.
	ErrEmptyApply = errors.New("cannot evaluate an empty list")
	// ErrOverflow is returned when integer arithmetic leaves the 32 bit
	// range. Division by zero reports the same way.
	ErrOverflow = errors.New("integer overflow")

	ErrNoBindings    = errors.New("missing bindings list")
	ErrEmptyBindings = errors.New("empty bindings list")
	ErrNoBody        = errors.New("missing body")
)

// Error decorates an evaluation failure with a source position. The
// innermost position wins: an Error is never wrapped in another one.
type Error struct {
	Pos token.Position
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Pos, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ErrNotFound is returned when an identifier has no binding in scope.
type ErrNotFound struct {
	Name string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("unbound identifier %q", e.Name)
}

// ErrNotFunction is returned when a value that is not callable sits at
// the head of an applied list or is passed where a function is needed.
type ErrNotFunction struct {
	Kind value.Kind
}

func (e *ErrNotFunction) Error() string {
	return fmt.Sprintf("%s is not callable", e.Kind)
}

type ErrArity struct {
	Fn   string
	Want Arity
	Got  int
}

func (e *ErrArity) Error() string {
	return fmt.Sprintf("%s expects %s arguments, got %d", e.Fn, e.Want, e.Got)
}

// ErrBadBinding is returned for a let binding that is not a
// (name value) pair.
type ErrBadBinding struct {
	Expr string
}

func (e *ErrBadBinding) Error() string {
	return fmt.Sprintf("invalid binding %s, expected (name value)", e.Expr)
}

// ErrBadParam is returned for a lambda parameter that is not an
// identifier.
type ErrBadParam struct {
	Expr string
}

func (e *ErrBadParam) Error() string {
	return fmt.Sprintf("invalid parameter %s, expected an identifier", e.Expr)
}

type ErrDuplicateBinding struct {
	Name string
}

func (e *ErrDuplicateBinding) Error() string {
	return fmt.Sprintf("parameter %q is bound more than once", e.Name)
}

type ErrEnvVar struct {
	Name string
}

func (e *ErrEnvVar) Error() string {
	return fmt.Sprintf("environment variable %q is not set", e.Name)
}

type ErrReadPath struct {
	Path string
	Err  error
}

func (e *ErrReadPath) Error() string {
	return fmt.Sprintf("cannot read %q: %v", e.Path, e.Err)
}

func (e *ErrReadPath) Unwrap() error {
	return e.Err
}
