package value

import "strings"

// Nil is the empty list, the value of the nil literal.
var Nil = &List{}

// List is an immutable singly-linked list. Nil and the zero value are the
// empty list.
type List struct {
	head Value
	tail *List
}

// Cons returns a list with head prepended to tail. head must be non-nil.
func Cons(head Value, tail *List) *List {
	if tail == nil {
		tail = Nil
	}
	return &List{head: head, tail: tail}
}

// NewList builds a list of elems.
func NewList(elems ...Value) *List {
	l := Nil
	for i := len(elems) - 1; i >= 0; i-- {
		l = Cons(elems[i], l)
	}
	return l
}

func (l *List) Kind() Kind { return ListKind }

func (l *List) NativeValue() any {
	vals := make([]any, 0, l.Len())
	for it := l; !it.Empty(); it = it.Tail() {
		vals = append(vals, it.Head().NativeValue())
	}
	return vals
}

func (l *List) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for it := l; !it.Empty(); it = it.Tail() {
		if it != l {
			b.WriteByte(' ')
		}
		b.WriteString(it.Head().String())
	}
	b.WriteByte(')')
	return b.String()
}

// Empty reports whether the list has no elements.
func (l *List) Empty() bool { return l == nil || l.head == nil }

// Head returns the first element. It panics on the empty list.
func (l *List) Head() Value {
	if l.Empty() {
		panic("value: Head of empty list")
	}
	return l.head
}

// Tail returns the list without its first element. It panics on the empty
// list.
func (l *List) Tail() *List {
	if l.Empty() {
		panic("value: Tail of empty list")
	}
	if l.tail == nil {
		return Nil
	}
	return l.tail
}

func (l *List) Len() int {
	n := 0
	for it := l; !it.Empty(); it = it.Tail() {
		n++
	}
	return n
}

// Slice returns the elements as a Go slice.
func (l *List) Slice() []Value {
	elems := make([]Value, 0, l.Len())
	for it := l; !it.Empty(); it = it.Tail() {
		elems = append(elems, it.Head())
	}
	return elems
}
