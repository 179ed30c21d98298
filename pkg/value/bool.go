package value

var (
	True  = Boolean(true)
	False = Boolean(false)
)

// Boolean is the value of the #t and #f literals.
type Boolean bool

func (b Boolean) Kind() Kind       { return BoolKind }
func (b Boolean) NativeValue() any { return bool(b) }

func (b Boolean) String() string {
	if b {
		return "#t"
	}
	return "#f"
}

// FromBool returns the shared boolean for b.
func FromBool(b bool) Value {
	if b {
		return True
	}
	return False
}
