package value

// Unit is the result of expressions evaluated for effect, such as set-cfg!
// or an if without an else branch.
var Unit Value = unit{}

type unit struct{}

func (unit) Kind() Kind       { return UnitKind }
func (unit) NativeValue() any { return nil }
func (unit) String() string   { return "unit" }
