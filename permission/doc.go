// Package permission provides a named-permission registry and role composition on top
// of bitmask.BitMask.
//
// # Mask widths
//
// Every permission mask is a [Mask], a bitmask.BitMask over uint64. A [Registry] caps
// the number of assignable bits at 8, 16, 32, or 64 so a role set can later be moved
// into a narrower bitmask family with bitmask.ConvertMask. Bit positions are assigned
// by [Registry.Register] in registration order and are stable for the lifetime of
// the process.
//
// # Root bit
//
// A registry may reserve its highest bit as a root permission. A mask with the root
// bit set is allowed every registered permission by [Registry.Allows].
//
// # Architecture boundaries
//
// This package is a pure in-memory data structure with no I/O. Registry and
// RoleManager are safe for concurrent use; a Mask is a value and follows the rules of
// bitmask.BitMask.
//
// # What this package must NOT do
//
//   - Access databases or the network, or encode masks for storage.
//   - Reassign or resize bits after registration.
package permission
