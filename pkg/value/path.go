package value

// Path is a filesystem path as a first-class value, created by the path
// prelude function.
type Path string

func (p Path) Kind() Kind       { return PathKind }
func (p Path) NativeValue() any { return string(p) }
func (p Path) String() string   { return "(path " + Quote(string(p)) + ")" }
