package registry

// Register records a device under its hardware id.
//
// An existing record for the same id is overwritten unconditionally: the
// operation is an idempotent upsert and the prior alias is not merged.
func (reg *Registry) Register(hwID, ip, alias string) Device {
	reg.Devices.Set(hwID, Info{IP: ip, Alias: alias})
	return Device{HardwareID: hwID, IP: ip, Alias: alias}
}

// RemoveDevice resolves target to exactly one device, deletes it, and
// purges every group member referencing it by hardware id or by the alias
// it carried at removal time. Returns the removed hardware id.
//
// Group members holding an older alias of the device are not found by
// this scan; they stay behind as dangling references.
func (reg *Registry) RemoveDevice(res *Resolver, target string) (string, error) {
	dev, err := res.ResolveOne(reg, target)
	if err != nil {
		return "", err
	}

	reg.Devices.Delete(dev.HardwareID)

	for pair := reg.Groups.Oldest(); pair != nil; pair = pair.Next() {
		members := pair.Value
		kept := make([]string, 0, len(members))
		for _, member := range members {
			if member == dev.HardwareID {
				continue
			}
			if dev.Alias != "" && member == dev.Alias {
				continue
			}
			kept = append(kept, member)
		}
		reg.Groups.Set(pair.Key, kept)
	}

	return dev.HardwareID, nil
}

// RenameDevice resolves target to exactly one device and overwrites its
// alias.
//
// Group members that captured the old alias string are left untouched:
// they become dangling soft references, falling back to a hardware-id
// match only if that string happens to be one.
func (reg *Registry) RenameDevice(res *Resolver, target, newAlias string) (Device, error) {
	dev, err := res.ResolveOne(reg, target)
	if err != nil {
		return Device{}, err
	}

	info, _ := reg.Devices.Get(dev.HardwareID)
	info.Alias = newAlias
	reg.Devices.Set(dev.HardwareID, info)

	dev.Alias = newAlias
	return dev, nil
}
