package bitmask

import "golang.org/x/exp/constraints"

// RawIntegral is the storage contract for a mask family. Any signed or unsigned
// integer type qualifies, including int, uint and uintptr and named types over them.
//
// The built-in operators supply everything a mask needs: | & ^ for OR/AND/XOR,
// unary ^ for NOT, == and < for equality and ordering, the zero value as the all-zero
// identity, and conversion to and from int.
type RawIntegral interface {
	constraints.Integer
}

// narrow converts v to R and reports whether the conversion preserved both the value
// and its sign.
func narrow[R, S RawIntegral](v S) (R, bool) {
	r := R(v)
	if S(r) != v {
		return r, false
	}
	if (r < 0) != (v < 0) {
		return r, false
	}
	return r, true
}
