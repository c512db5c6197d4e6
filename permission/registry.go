package permission

import (
	"fmt"
	"math/bits"
	"sync"

	"github.com/MrEthical07/bitmask"
)

// Registry maps permission names to bit positions within a Mask.
// Supports widths of 8, 16, 32, or 64 bits.
type Registry struct {
	maxBits      int
	rootReserved bool
	root         Permission

	mu         sync.RWMutex
	nameToPerm map[string]Permission
	permToName map[Permission]string
	frozen     bool
}

// NewRegistry creates a permission [Registry]. maxBits selects the mask width
// (8/16/32/64); rootReserved reserves the highest bit of that width as the root
// permission.
func NewRegistry(maxBits int, rootReserved bool) (*Registry, error) {
	if maxBits != 8 && maxBits != 16 && maxBits != 32 && maxBits != 64 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWidth, maxBits)
	}

	r := &Registry{
		maxBits:      maxBits,
		rootReserved: rootReserved,
		nameToPerm:   make(map[string]Permission),
		permToName:   make(map[Permission]string),
	}

	if rootReserved {
		r.root = Permission(maxBits - 1)
	}

	return r, nil
}

// Register assigns the next available bit to the named permission.
// Must be called before [Registry.Freeze].
func (r *Registry) Register(name string) (Permission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return 0, ErrRegistryFrozen
	}

	if name == "" {
		return 0, ErrEmptyName
	}

	if r.rootReserved && name == RootName {
		return 0, fmt.Errorf("%w: %q", ErrReservedName, name)
	}

	if _, exists := r.nameToPerm[name]; exists {
		return 0, fmt.Errorf("%w: %q", ErrDuplicate, name)
	}

	next := len(r.nameToPerm)

	limit := r.maxBits
	if r.rootReserved {
		// root bit = highest bit
		limit--
	}
	if next >= limit {
		return 0, fmt.Errorf("%w: %d bits", ErrLimitExceeded, limit)
	}

	p := Permission(next)
	r.nameToPerm[name] = p
	r.permToName[p] = name

	return p, nil
}

// Lookup returns the permission registered under name.
func (r *Registry) Lookup(name string) (Permission, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.nameToPerm[name]
	return p, ok
}

// Name returns the name registered for p, or false if p is unassigned.
func (r *Registry) Name(p Permission) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	name, ok := r.permToName[p]
	return name, ok
}

// MaskOf returns the mask of the named permissions. Every name must be registered.
func (r *Registry) MaskOf(names ...string) (Mask, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var m Mask
	for _, name := range names {
		p, ok := r.nameToPerm[name]
		if !ok {
			return Mask{}, fmt.Errorf("%w: %q", ErrUnknownPermission, name)
		}
		m.MergeOption(p)
	}
	return m, nil
}

// RootName is the label Names reports for the reserved root bit. A registry with a
// reserved root bit refuses to register a permission under this name.
const RootName = "root"

// Names returns the registered names of the bits set in m, lowest bit first.
// Bits without a registered name are skipped; the root bit is reported as RootName.
func (r *Registry) Names(m Mask) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var names []string
	for bit := range m.Bits() {
		p := permissionOf(bit)
		if r.rootReserved && p == r.root {
			names = append(names, RootName)
			continue
		}
		if name, ok := r.permToName[p]; ok {
			names = append(names, name)
		}
	}
	return names
}

// Allows reports whether m grants every permission in perms. A mask holding the
// reserved root bit grants every registered permission. A permission outside the
// registry width or without a registered name is never granted.
func (r *Registry) Allows(m Mask, perms ...Permission) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range perms {
		if int(p) >= r.maxBits {
			return false
		}
		if _, ok := r.permToName[p]; !ok && !(r.rootReserved && p == r.root) {
			return false
		}
	}

	if r.rootReserved && m.IsSet(r.root) {
		return true
	}
	return m.AreSet(perms...)
}

// RootMask returns the mask holding only the root bit, or false if root-bit
// reservation is disabled.
func (r *Registry) RootMask() (Mask, bool) {
	if !r.rootReserved {
		return Mask{}, false
	}
	return bitmask.Of[uint64](r.root), true
}

// Freeze prevents further registrations.
func (r *Registry) Freeze() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frozen = true
}

// Count returns the number of registered permissions.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.nameToPerm)
}

// Width returns the mask width selected at construction.
func (r *Registry) Width() int {
	return r.maxBits
}

// Root returns the reserved root permission, or false if root-bit reservation is
// disabled.
func (r *Registry) Root() (Permission, bool) {
	if !r.rootReserved {
		return 0, false
	}
	return r.root, true
}

// permissionOf returns the bit index of a single-bit pattern.
func permissionOf(bit uint64) Permission {
	return Permission(bits.TrailingZeros64(bit))
}
