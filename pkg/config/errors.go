package config

import (
	"fmt"
	"strings"
)

// ErrUnknown reports a name outside the configuration vocabulary,
// such as a field, key action, or color.
type ErrUnknown struct {
	What string
	Name string
}

func (e *ErrUnknown) Error() string {
	return fmt.Sprintf("unknown %s %q", e.What, e.Name)
}

// ErrListArity reports a configuration list with the wrong shape.
type ErrListArity struct {
	What string
	Want int
	Got  int
}

func (e *ErrListArity) Error() string {
	return fmt.Sprintf("%s expects %d elements, got %d", e.What, e.Want, e.Got)
}

// ErrEmpty reports a section that must hold at least one entry.
type ErrEmpty struct {
	What string
}

func (e *ErrEmpty) Error() string {
	return fmt.Sprintf("%s cannot be empty", e.What)
}

// ErrChannel reports a color channel outside the 8 bit range.
type ErrChannel struct {
	Value int32
}

func (e *ErrChannel) Error() string {
	return fmt.Sprintf("color channel %d does not fit in 8 bits", e.Value)
}

// ErrRead reports an unreadable configuration file.
type ErrRead struct {
	Path string
	Err  error
}

func (e *ErrRead) Error() string {
	return fmt.Sprintf("failed to read configuration at %q: %v", e.Path, e.Err)
}

func (e *ErrRead) Unwrap() error { return e.Err }

// ErrNotFound reports that no configuration file exists at any of the
// candidate paths.
type ErrNotFound struct {
	Tried []string
}

func (e *ErrNotFound) Error() string {
	if len(e.Tried) == 0 {
		return "no configuration directory for this platform"
	}
	return "no configuration found, tried " + strings.Join(e.Tried, ", ")
}
