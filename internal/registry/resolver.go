package registry

import (
	"fmt"
)

// TargetAll is the wildcard target matching every registered device.
const TargetAll = "all"

// Resolver turns a target string into the devices it denotes.
//
// Resolution is a pure function over an in-memory registry snapshot; the
// resolver itself only carries a logger for the warning emitted when a
// group member no longer matches anything.
type Resolver struct {
	logger Logger
}

// NewResolver creates a resolver.
func NewResolver() *Resolver {
	return &Resolver{logger: noopLogger{}}
}

// SetLogger sets the logger for the resolver.
func (r *Resolver) SetLogger(logger Logger) {
	r.logger = logger
}

// Resolve expands target into a list of devices.
//
// Exactly one interpretation is tried, in fixed precedence, first match
// wins:
//
//  1. "all" — every device, in registration order.
//  2. A group name — each member is resolved as a single identifier;
//     members that no longer resolve are skipped with a warning and the
//     remaining subset is returned.
//  3. A device alias — the first device in registration order whose
//     alias equals target.
//  4. A hardware id.
//
// When none apply the error wraps ErrTargetNotFound. The result preserves
// resolution order and is not deduplicated beyond what group membership
// already guarantees.
func (r *Resolver) Resolve(reg *Registry, target string) ([]Device, error) {
	if target == TargetAll {
		devices := make([]Device, 0, reg.Devices.Len())
		for pair := reg.Devices.Oldest(); pair != nil; pair = pair.Next() {
			devices = append(devices, Device{
				HardwareID: pair.Key,
				IP:         pair.Value.IP,
				Alias:      pair.Value.Alias,
			})
		}
		return devices, nil
	}

	if members, ok := reg.Groups.Get(target); ok {
		devices := make([]Device, 0, len(members))
		for _, member := range members {
			dev, ok := resolveSingle(reg, member)
			if !ok {
				r.logger.Warn("skipping unresolvable group member",
					"group", target,
					"member", member,
				)
				continue
			}
			devices = append(devices, dev)
		}
		return devices, nil
	}

	if dev, ok := resolveSingle(reg, target); ok {
		return []Device{dev}, nil
	}

	return nil, fmt.Errorf("%w: %q matches no alias, hardware id, or group", ErrTargetNotFound, target)
}

// ResolveOne resolves target to exactly one device.
//
// Any other result count fails with an error wrapping ErrAmbiguousTarget
// and reporting the observed count.
func (r *Resolver) ResolveOne(reg *Registry, target string) (Device, error) {
	devices, err := r.Resolve(reg, target)
	if err != nil {
		return Device{}, err
	}
	if len(devices) != 1 {
		return Device{}, fmt.Errorf("%w: expected exactly one device for %q, got %d",
			ErrAmbiguousTarget, target, len(devices))
	}
	return devices[0], nil
}

// resolveSingle applies the single-identifier rule shared by top-level
// targets and group members: alias first (first match in registration
// order), then hardware id. An empty alias never matches; it means the
// device has no alias.
func resolveSingle(reg *Registry, identifier string) (Device, bool) {
	for pair := reg.Devices.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value.Alias != "" && pair.Value.Alias == identifier {
			return Device{HardwareID: pair.Key, IP: pair.Value.IP, Alias: pair.Value.Alias}, true
		}
	}
	if info, ok := reg.Devices.Get(identifier); ok {
		return Device{HardwareID: identifier, IP: info.IP, Alias: info.Alias}, true
	}
	return Device{}, false
}
