package interp

// Undef returns the Undefined sentinel. It is the accessor form of the
// same value, for call sites that pass the lookup around as a function.
func Undef() Value {
	return Undefined
}
