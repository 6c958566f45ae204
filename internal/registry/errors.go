package registry

import "errors"

// Domain errors for the registry package.
//
// These errors can be checked using errors.Is() for error handling:
//
//	if errors.Is(err, registry.ErrTargetNotFound) {
//	    // handle not found case
//	}
var (
	// ErrTargetNotFound is returned when a target string matches no alias,
	// hardware id, or group.
	ErrTargetNotFound = errors.New("registry: target not found")

	// ErrAmbiguousTarget is returned by ResolveOne when a target resolves
	// to zero or more than one device.
	ErrAmbiguousTarget = errors.New("registry: ambiguous target")

	// ErrIntegrity is returned when the persisted registry file exists but
	// cannot be parsed as a valid registry document.
	ErrIntegrity = errors.New("registry: corrupt registry file")

	// ErrGroupNotFound is returned when a named group does not exist.
	ErrGroupNotFound = errors.New("registry: group not found")

	// ErrGroupExists is returned when creating a group whose name is taken.
	ErrGroupExists = errors.New("registry: group already exists")
)
