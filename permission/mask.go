package permission

import (
	"strconv"

	"github.com/MrEthical07/bitmask"
)

// Permission is a bit position assigned by a Registry.
type Permission uint8

// BitmaskValue implements bitmask.Option. A position of 64 or more has no bit and
// yields 0, which every mask contains; Registry.Allows rejects such positions.
func (p Permission) BitmaskValue() uint64 {
	return 1 << p
}

func (p Permission) String() string {
	return "bit " + strconv.Itoa(int(p))
}

// Mask is a set of permissions.
type Mask = bitmask.BitMask[uint64, Permission]
