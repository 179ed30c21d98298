package value

import "strconv"

// Int is a 32-bit integer, the dialect's only numeric type.
type Int int32

func (n Int) Kind() Kind       { return IntKind }
func (n Int) NativeValue() any { return int32(n) }
func (n Int) String() string   { return strconv.FormatInt(int64(n), 10) }
