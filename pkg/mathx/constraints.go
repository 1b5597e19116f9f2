package mathx

// Type set constraints shared by the generic helpers. Declared locally
// so callers of the toolkit never pick up a constraint dependency.

// Signed is satisfied by all signed integer types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is satisfied by all unsigned integer types.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is satisfied by all integer types.
type Integer interface {
	Signed | Unsigned
}

// Float is satisfied by both floating point types.
type Float interface {
	~float32 | ~float64
}

// Number is satisfied by every integer and floating point type.
type Number interface {
	Integer | Float
}

// Ordered is satisfied by every type that supports the < operator.
type Ordered interface {
	Integer | Float | ~string
}
