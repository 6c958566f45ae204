package registry

import (
	"fmt"
	"slices"
)

// CreateGroup creates an empty group. Fails with ErrGroupExists if the
// name is already taken.
func (reg *Registry) CreateGroup(name string) error {
	if _, ok := reg.Groups.Get(name); ok {
		return fmt.Errorf("%w: %q", ErrGroupExists, name)
	}
	reg.Groups.Set(name, []string{})
	return nil
}

// DeleteGroup removes a group entirely. Member devices are unaffected.
func (reg *Registry) DeleteGroup(name string) error {
	if _, ok := reg.Groups.Get(name); !ok {
		return fmt.Errorf("%w: %q", ErrGroupNotFound, name)
	}
	reg.Groups.Delete(name)
	return nil
}

// AddGroupMembers resolves target and appends a member reference for each
// resolved device: the device's alias when it has one, its hardware id
// otherwise. References already present are left alone, so adding the
// same target twice is a no-op for the second call.
//
// Because target goes through full resolution, it may itself be "all" or
// another group name. Returns the references actually appended, in
// resolution order.
func (reg *Registry) AddGroupMembers(res *Resolver, name, target string) ([]string, error) {
	members, ok := reg.Groups.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrGroupNotFound, name)
	}

	devices, err := res.Resolve(reg, target)
	if err != nil {
		return nil, err
	}

	added := []string{}
	for _, dev := range devices {
		ref := dev.Alias
		if ref == "" {
			ref = dev.HardwareID
		}
		if slices.Contains(members, ref) {
			continue
		}
		members = append(members, ref)
		added = append(added, ref)
	}

	reg.Groups.Set(name, members)
	return added, nil
}

// RemoveGroupMembers resolves target and removes, for each resolved
// device, every member reference matching its alias or its hardware id.
// Both forms are checked because historical entries may use either.
// Returns every string actually removed.
func (reg *Registry) RemoveGroupMembers(res *Resolver, name, target string) ([]string, error) {
	members, ok := reg.Groups.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrGroupNotFound, name)
	}

	devices, err := res.Resolve(reg, target)
	if err != nil {
		return nil, err
	}

	removed := []string{}
	for _, dev := range devices {
		for _, ref := range []string{dev.Alias, dev.HardwareID} {
			if ref == "" {
				continue
			}
			kept := make([]string, 0, len(members))
			for _, member := range members {
				if member == ref {
					removed = append(removed, member)
					continue
				}
				kept = append(kept, member)
			}
			members = kept
		}
	}

	reg.Groups.Set(name, members)
	return removed, nil
}
