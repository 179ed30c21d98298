package value

// String is an immutable string value.
type String string

func (s String) Kind() Kind       { return StringKind }
func (s String) NativeValue() any { return string(s) }
func (s String) String() string   { return Quote(string(s)) }
