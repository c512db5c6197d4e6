package bitmask

import (
	"cmp"
	"fmt"
	"iter"
)

// BitMask is a set of flags of type O stored in a raw integer of type R.
//
// The zero value is the empty mask. A BitMask records only the union of the patterns
// folded into it, not which options produced them. BitMask is a plain value: copies
// are independent and == compares the stored pattern.
type BitMask[R RawIntegral, O Option[R]] struct {
	value R
}

// New returns the empty mask.
func New[R RawIntegral, O Option[R]]() BitMask[R, O] {
	return BitMask[R, O]{}
}

// FromRaw returns a mask holding v as-is.
func FromRaw[R RawIntegral, O Option[R]](v R) BitMask[R, O] {
	return BitMask[R, O]{value: v}
}

// FromInt returns a mask holding R(i). Out-of-range values follow Go's integer
// conversion rules.
func FromInt[R RawIntegral, O Option[R]](i int) BitMask[R, O] {
	return BitMask[R, O]{value: R(i)}
}

// FromRaws returns the OR of vs.
func FromRaws[R RawIntegral, O Option[R]](vs ...R) BitMask[R, O] {
	var v R
	for _, r := range vs {
		v |= r
	}
	return BitMask[R, O]{value: v}
}

// Of returns a mask with every option in opts set. Of() is the empty mask and Of(o)
// is the mask of a single option.
func Of[R RawIntegral, O Option[R]](opts ...O) BitMask[R, O] {
	return BitMask[R, O]{value: fold[R](opts)}
}

// Collect returns a mask with every option yielded by seq set.
func Collect[R RawIntegral, O Option[R]](seq iter.Seq[O]) BitMask[R, O] {
	var v R
	for o := range seq {
		v |= o.BitmaskValue()
	}
	return BitMask[R, O]{value: v}
}

// Join returns the union of masks.
func Join[R RawIntegral, O Option[R]](masks ...BitMask[R, O]) BitMask[R, O] {
	var v R
	for _, m := range masks {
		v |= m.value
	}
	return BitMask[R, O]{value: v}
}

// Value returns the raw bit pattern.
func (m BitMask[R, O]) Value() R {
	return m.value
}

// Int returns the raw pattern converted to int.
func (m BitMask[R, O]) Int() int {
	return int(m.value)
}

// Assign replaces the stored pattern with o's pattern. Bits previously set are
// discarded; use MergeOption to add to them.
func (m *BitMask[R, O]) Assign(o O) {
	m.value = o.BitmaskValue()
}

// AssignRaw replaces the stored pattern with v.
func (m *BitMask[R, O]) AssignRaw(v R) {
	m.value = v
}

// Merge sets every bit that is set in n.
func (m *BitMask[R, O]) Merge(n BitMask[R, O]) {
	m.value |= n.value
}

// MergeOption sets every bit of o.
func (m *BitMask[R, O]) MergeOption(o O) {
	m.value |= o.BitmaskValue()
}

// Restrict clears every bit that is not set in n.
func (m *BitMask[R, O]) Restrict(n BitMask[R, O]) {
	m.value &= n.value
}

// RestrictOption clears every bit that is not part of o.
func (m *BitMask[R, O]) RestrictOption(o O) {
	m.value &= o.BitmaskValue()
}

// Toggle flips every bit that is set in n.
func (m *BitMask[R, O]) Toggle(n BitMask[R, O]) {
	m.value ^= n.value
}

// ToggleOption flips every bit of o.
func (m *BitMask[R, O]) ToggleOption(o O) {
	m.value ^= o.BitmaskValue()
}

// IsSet reports whether every bit of o is set. For a composite option all of its bits
// must be present, not just one.
func (m BitMask[R, O]) IsSet(o O) bool {
	p := o.BitmaskValue()
	return m.value&p == p
}

// AreSet reports whether every bit of every option in opts is set. AreSet() is true.
func (m BitMask[R, O]) AreSet(opts ...O) bool {
	p := fold[R](opts)
	return m.value&p == p
}

// Contains reports whether every bit set in n is also set in m.
func (m BitMask[R, O]) Contains(n BitMask[R, O]) bool {
	return m.value&n.value == n.value
}

// IsAllZeros reports whether no bit is set.
func (m BitMask[R, O]) IsAllZeros() bool {
	var zero R
	return m.value == zero
}

// Bool reports whether any bit is set. It is the negation of IsAllZeros.
func (m BitMask[R, O]) Bool() bool {
	return !m.IsAllZeros()
}

// Bits yields each set bit of m as a single-bit pattern, lowest bit first.
func (m BitMask[R, O]) Bits() iter.Seq[R] {
	return func(yield func(R) bool) {
		v := m.value
		for v != 0 {
			low := v & -v
			if !yield(low) {
				return
			}
			v &^= low
		}
	}
}

// Equal reports whether m and n hold the same pattern.
func (m BitMask[R, O]) Equal(n BitMask[R, O]) bool {
	return m.value == n.value
}

// EqualOption reports whether m holds exactly o's pattern.
func (m BitMask[R, O]) EqualOption(o O) bool {
	return m.value == o.BitmaskValue()
}

// EqualRaw reports whether m holds exactly v.
func (m BitMask[R, O]) EqualRaw(v R) bool {
	return m.value == v
}

// Compare orders masks by their raw values using R's native ordering. It returns -1,
// 0 or +1. The order is numeric; a mask that contains another is not necessarily
// greater than it (consider signed raw types).
func (m BitMask[R, O]) Compare(n BitMask[R, O]) int {
	return cmp.Compare(m.value, n.value)
}

// Less reports whether m's raw value is below n's.
func (m BitMask[R, O]) Less(n BitMask[R, O]) bool {
	return m.value < n.value
}

func (m BitMask[R, O]) String() string {
	return fmt.Sprintf("BitMask(%#b)", m.value)
}
