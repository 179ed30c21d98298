package value

import "fmt"

// ErrWrongType reports a value of an unexpected kind.
type ErrWrongType struct {
	Want, Got Kind
}

func (e *ErrWrongType) Error() string {
	return fmt.Sprintf("expected %s, got %s", e.Want, e.Got)
}

func ToBool(v Value) (bool, error) {
	b, ok := v.(Boolean)
	if !ok {
		return false, &ErrWrongType{Want: BoolKind, Got: v.Kind()}
	}
	return bool(b), nil
}

func ToInt(v Value) (int32, error) {
	n, ok := v.(Int)
	if !ok {
		return 0, &ErrWrongType{Want: IntKind, Got: v.Kind()}
	}
	return int32(n), nil
}

func ToString(v Value) (string, error) {
	s, ok := v.(String)
	if !ok {
		return "", &ErrWrongType{Want: StringKind, Got: v.Kind()}
	}
	return string(s), nil
}

func ToPath(v Value) (string, error) {
	p, ok := v.(Path)
	if !ok {
		return "", &ErrWrongType{Want: PathKind, Got: v.Kind()}
	}
	return string(p), nil
}

func ToList(v Value) (*List, error) {
	l, ok := v.(*List)
	if !ok {
		return nil, &ErrWrongType{Want: ListKind, Got: v.Kind()}
	}
	return l, nil
}
