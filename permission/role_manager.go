package permission

import (
	"fmt"
	"sync"
)

// RoleManager composes role masks from permissions registered in a Registry.
//
// RoleManager instances are intended to be configured during initialization and then
// frozen; lookups are safe for concurrent use.
type RoleManager struct {
	registry *Registry

	mu     sync.RWMutex
	roles  map[string]Mask
	frozen bool
}

// NewRoleManager returns an empty RoleManager resolving names against registry.
func NewRoleManager(registry *Registry) *RoleManager {
	return &RoleManager{
		registry: registry,
		roles:    make(map[string]Mask),
	}
}

// RegisterRole records roleName as the union of the named permissions. Every
// permission must already be registered.
func (rm *RoleManager) RegisterRole(roleName string, permissionNames []string) error {
	rm.mu.Lock()
	defer rm.mu.Unlock()

	if rm.frozen {
		return ErrRoleManagerFrozen
	}

	if roleName == "" {
		return ErrEmptyRole
	}

	if _, exists := rm.roles[roleName]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateRole, roleName)
	}

	mask, err := rm.registry.MaskOf(permissionNames...)
	if err != nil {
		return fmt.Errorf("role %q: %w", roleName, err)
	}

	rm.roles[roleName] = mask
	return nil
}

// RegisterRoot records roleName as holding the registry's root bit.
func (rm *RoleManager) RegisterRoot(roleName string) error {
	root, ok := rm.registry.RootMask()
	if !ok {
		return fmt.Errorf("role %q: root bit not reserved", roleName)
	}

	rm.mu.Lock()
	defer rm.mu.Unlock()

	if rm.frozen {
		return ErrRoleManagerFrozen
	}
	if roleName == "" {
		return ErrEmptyRole
	}
	if _, exists := rm.roles[roleName]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateRole, roleName)
	}

	rm.roles[roleName] = root
	return nil
}

// GetMask returns the mask registered for roleName.
func (rm *RoleManager) GetMask(roleName string) (Mask, bool) {
	rm.mu.RLock()
	defer rm.mu.RUnlock()

	mask, ok := rm.roles[roleName]
	return mask, ok
}

// Combined returns the union of the masks of roleNames. Unknown roles contribute
// nothing.
func (rm *RoleManager) Combined(roleNames ...string) Mask {
	rm.mu.RLock()
	defer rm.mu.RUnlock()

	var m Mask
	for _, name := range roleNames {
		m.Merge(rm.roles[name])
	}
	return m
}

// Authorize reports whether roleName exists and grants every named permission.
// Unknown permission names are denied.
func (rm *RoleManager) Authorize(roleName string, permissionNames ...string) bool {
	mask, ok := rm.GetMask(roleName)
	if !ok {
		return false
	}

	perms := make([]Permission, 0, len(permissionNames))
	for _, name := range permissionNames {
		p, ok := rm.registry.Lookup(name)
		if !ok {
			return false
		}
		perms = append(perms, p)
	}

	return rm.registry.Allows(mask, perms...)
}

// Freeze prevents further role registrations.
func (rm *RoleManager) Freeze() {
	rm.mu.Lock()
	defer rm.mu.Unlock()
	rm.frozen = true
}

// Count returns the number of registered roles.
func (rm *RoleManager) Count() int {
	rm.mu.RLock()
	defer rm.mu.RUnlock()
	return len(rm.roles)
}
