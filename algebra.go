package bitmask

// Pure bitwise operations. Methods cover a mask on the left; the functions cover an
// option on the left. None of them modify their operands.

// Union returns m | n.
func (m BitMask[R, O]) Union(n BitMask[R, O]) BitMask[R, O] {
	return BitMask[R, O]{value: m.value | n.value}
}

// UnionOption returns m | o.
func (m BitMask[R, O]) UnionOption(o O) BitMask[R, O] {
	return BitMask[R, O]{value: m.value | o.BitmaskValue()}
}

// Intersect returns m & n.
func (m BitMask[R, O]) Intersect(n BitMask[R, O]) BitMask[R, O] {
	return BitMask[R, O]{value: m.value & n.value}
}

// IntersectOption returns m & o.
func (m BitMask[R, O]) IntersectOption(o O) BitMask[R, O] {
	return BitMask[R, O]{value: m.value & o.BitmaskValue()}
}

// Xor returns m ^ n.
func (m BitMask[R, O]) Xor(n BitMask[R, O]) BitMask[R, O] {
	return BitMask[R, O]{value: m.value ^ n.value}
}

// XorOption returns m ^ o.
func (m BitMask[R, O]) XorOption(o O) BitMask[R, O] {
	return BitMask[R, O]{value: m.value ^ o.BitmaskValue()}
}

// Complement returns ^m. Every bit of R is flipped, including bits that no option
// declares.
func (m BitMask[R, O]) Complement() BitMask[R, O] {
	return BitMask[R, O]{value: ^m.value}
}

// Or returns a | b as a mask.
func Or[R RawIntegral, O Option[R]](a, b O) BitMask[R, O] {
	return BitMask[R, O]{value: a.BitmaskValue() | b.BitmaskValue()}
}

// OrMask returns o | m.
func OrMask[R RawIntegral, O Option[R]](o O, m BitMask[R, O]) BitMask[R, O] {
	return BitMask[R, O]{value: o.BitmaskValue() | m.value}
}

// And returns a & b as a mask.
func And[R RawIntegral, O Option[R]](a, b O) BitMask[R, O] {
	return BitMask[R, O]{value: a.BitmaskValue() & b.BitmaskValue()}
}

// AndMask returns o & m.
func AndMask[R RawIntegral, O Option[R]](o O, m BitMask[R, O]) BitMask[R, O] {
	return BitMask[R, O]{value: o.BitmaskValue() & m.value}
}

// Xor returns a ^ b as a mask.
func Xor[R RawIntegral, O Option[R]](a, b O) BitMask[R, O] {
	return BitMask[R, O]{value: a.BitmaskValue() ^ b.BitmaskValue()}
}

// XorMask returns o ^ m.
func XorMask[R RawIntegral, O Option[R]](o O, m BitMask[R, O]) BitMask[R, O] {
	return BitMask[R, O]{value: o.BitmaskValue() ^ m.value}
}

// Not returns the full-width complement of o as a mask.
func Not[R RawIntegral, O Option[R]](o O) BitMask[R, O] {
	return BitMask[R, O]{value: ^o.BitmaskValue()}
}

// Matches reports whether value's bits all lie within pattern, i.e.
// pattern & value == value. It is the predicate used to dispatch on which flags a
// mask carries:
//
//	switch {
//	case bitmask.Matches(m, Write):
//		...
//	}
func Matches[R RawIntegral, O Option[R]](pattern BitMask[R, O], value O) bool {
	v := value.BitmaskValue()
	return pattern.value&v == v
}

// MatchesOption is Matches with the option as the pattern: it reports whether every
// bit of value is part of pattern.
func MatchesOption[R RawIntegral, O Option[R]](pattern O, value BitMask[R, O]) bool {
	return pattern.BitmaskValue()&value.value == value.value
}
