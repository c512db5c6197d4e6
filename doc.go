// Package bitmask provides BitMask, a strongly typed bit-flag set that is generic over
// its raw integer storage and the option type whose values it combines.
//
// A flag family is declared once by client code:
//
//	type Access uint8
//
//	const (
//		Read Access = 1 << iota
//		Write
//		Execute
//	)
//
//	func (a Access) BitmaskValue() uint8 { return uint8(a) }
//
//	type AccessMask = bitmask.BitMask[uint8, Access]
//
// after which masks are built and queried without touching raw integers:
//
//	m := bitmask.Of[uint8](Read, Write)
//	m.IsSet(Read)              // true
//	m.UnionOption(Execute)     // BitMask(0b111)
//
// # Contracts
//
// Two interfaces are the only extension points. [RawIntegral] is satisfied by every
// built-in integer type (and named types over them). [Option] is satisfied by any
// comparable type that reports its bit pattern through BitmaskValue. An option may
// carry more than one bit; the algebra treats composite options the same as single
// flags.
//
// # Semantics worth knowing
//
//   - [BitMask.Assign] replaces the stored value. [BitMask.Merge] and friends fold into it.
//   - [BitMask.Complement] and [Not] flip every bit of the raw width, including bits no
//     option names.
//   - [BitMask.Compare] orders by raw value. It is not a subset relation.
//   - A mask may hold bits that no option declares; nothing here rejects them.
//
// # Architecture boundaries
//
// This package is a pure value type with no I/O and no shared state. Masks of
// different raw types or option types are different Go types and cannot be mixed;
// [Convert] and [ConvertMask] are the only bridges and they fail with
// [ErrIncompatibleRepresentation] instead of truncating.
//
// # What this package must NOT do
//
//   - Serialize, persist, or parse masks.
//   - Validate that set bits belong to a known option.
//   - Synchronize access; a shared mutable mask needs the caller's own locking.
package bitmask
