package value

// Equals reports deep structural equality. Functions compare equal to
// nothing, including themselves.
func Equals(left, right Value) bool {
	if left == nil || right == nil {
		return false
	}
	if left.Kind() != right.Kind() {
		return false
	}
	switch left.Kind() {
	case UnitKind:
		return true
	case BoolKind, IntKind, StringKind, PathKind:
		return left == right
	case ListKind:
		l, lok := left.(*List)
		r, rok := right.(*List)
		if !lok || !rok {
			return false
		}
		for ; !l.Empty() && !r.Empty(); l, r = l.Tail(), r.Tail() {
			if !Equals(l.Head(), r.Head()) {
				return false
			}
		}
		return l.Empty() && r.Empty()
	}
	return false
}
