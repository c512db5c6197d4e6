package permission

import "errors"

var (
	// ErrInvalidWidth is returned by NewRegistry for a width other than 8, 16, 32 or 64.
	ErrInvalidWidth = errors.New("permission: invalid mask width")
	// ErrRegistryFrozen is returned by Register after Freeze.
	ErrRegistryFrozen = errors.New("permission: registry frozen")
	// ErrEmptyName is returned by Register for an empty permission name.
	ErrEmptyName = errors.New("permission: name cannot be empty")
	// ErrDuplicate is returned by Register for a name that is already registered.
	ErrDuplicate = errors.New("permission: already registered")
	// ErrReservedName is returned by Register for RootName when the root bit is reserved.
	ErrReservedName = errors.New("permission: name reserved")
	// ErrLimitExceeded is returned by Register when every assignable bit is taken.
	ErrLimitExceeded = errors.New("permission: limit exceeded")
	// ErrUnknownPermission is returned when a name has not been registered.
	ErrUnknownPermission = errors.New("permission: not registered")

	// ErrRoleManagerFrozen is returned by RegisterRole after Freeze.
	ErrRoleManagerFrozen = errors.New("permission: role manager frozen")
	// ErrEmptyRole is returned by RegisterRole for an empty role name.
	ErrEmptyRole = errors.New("permission: role name empty")
	// ErrDuplicateRole is returned by RegisterRole for a role that already exists.
	ErrDuplicateRole = errors.New("permission: role already registered")
)
