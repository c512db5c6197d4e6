package bitmask

// Option is the contract a flag type implements to be combined into a BitMask over R.
//
// BitmaskValue returns the option's bit pattern. The pattern usually has exactly one
// bit set but is not required to. Options are comparable so they can be used as map
// keys and compared directly.
type Option[R RawIntegral] interface {
	comparable
	BitmaskValue() R
}

// fold ORs the patterns of opts together, starting from zero.
func fold[R RawIntegral, O Option[R]](opts []O) R {
	var v R
	for _, o := range opts {
		v |= o.BitmaskValue()
	}
	return v
}
