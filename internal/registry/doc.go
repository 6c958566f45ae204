// Package registry owns the persistent device/group registry and the
// target resolution engine for plugctl.
//
// The registry is a single JSON document mapping hardware ids to device
// records and group names to lists of member references. Hardware ids are
// the only strong identity: aliases and group members are loose strings
// that may stop matching anything when a device is renamed or removed.
//
// # Key Types
//
//   - Registry: in-memory aggregate of devices and groups, insertion-ordered
//   - Info: persisted per-device record (IP address and alias)
//   - Device: a resolved device, carrying its hardware id
//   - Store: whole-document load/save of the registry file
//   - Resolver: turns a target string into a list of devices
//
// # Target Resolution
//
// A target string is tried against exactly one interpretation, in fixed
// order: the literal "all", a group name, a device alias (first match in
// insertion order), a hardware id. Group members that no longer resolve
// are skipped with a warning rather than failing the whole group.
//
// # Usage
//
//	store := registry.NewStore(path)
//	reg, err := store.Load()
//	if err != nil {
//	    return err
//	}
//
//	res := registry.NewResolver()
//	devices, err := res.Resolve(reg, "livingroom")
//
//	removed, err := reg.RemoveDevice(res, "lamp")
//	if err != nil {
//	    return err
//	}
//	return store.Save(reg)
//
// # Concurrency
//
// The package is single-invocation by design: a command loads the whole
// registry, mutates it in memory, and saves it back. Nothing guards two
// concurrent invocations against losing an update; the last save wins.
package registry
