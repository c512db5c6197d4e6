package bitmask

import "errors"

// ErrIncompatibleRepresentation is returned by Convert and ConvertMask when a bit
// pattern from another mask family cannot be represented in the target raw type
// without losing bits or changing sign.
var ErrIncompatibleRepresentation = errors.New("bitmask: incompatible raw representation")
