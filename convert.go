package bitmask

import "fmt"

// Convert builds a mask of family (R, O) from options of another family (S, P).
//
// Each pattern is converted from S to R and must survive the conversion unchanged:
// same value and same sign. The first pattern that does not fit fails the whole call
// with an error wrapping ErrIncompatibleRepresentation and the zero mask is returned.
func Convert[R RawIntegral, O Option[R], S RawIntegral, P Option[S]](vals ...P) (BitMask[R, O], error) {
	var v R
	for i, p := range vals {
		r, err := convertRaw[R](p.BitmaskValue())
		if err != nil {
			return BitMask[R, O]{}, fmt.Errorf("option %d (%v): %w", i, p, err)
		}
		v |= r
	}
	return BitMask[R, O]{value: v}, nil
}

// ConvertMask moves a whole mask into family (R, O) under the same rules as Convert.
func ConvertMask[R RawIntegral, O Option[R], S RawIntegral, P Option[S]](m BitMask[S, P]) (BitMask[R, O], error) {
	r, err := convertRaw[R](m.value)
	if err != nil {
		return BitMask[R, O]{}, err
	}
	return BitMask[R, O]{value: r}, nil
}

func convertRaw[R, S RawIntegral](v S) (R, error) {
	r, ok := narrow[R](v)
	if !ok {
		var zero R
		return zero, fmt.Errorf("%w: %#x (%T) does not fit %T", ErrIncompatibleRepresentation, v, v, zero)
	}
	return r, nil
}
