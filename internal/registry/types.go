package registry

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Logger defines the logging interface used by the registry package.
// This allows different logging implementations to be used.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// Info is the persisted record for one device, keyed by hardware id in
// the registry document. An empty Alias means the device has no alias.
type Info struct {
	IP    string `json:"ip"`
	Alias string `json:"alias"`
}

// Device is a resolved device: the persisted record joined with the
// hardware id it is stored under.
type Device struct {
	HardwareID string `json:"hw_id"`
	IP         string `json:"ip"`
	Alias      string `json:"alias"`
}

// Registry is the top-level aggregate of devices and groups.
//
// Both maps are insertion-ordered: resolution of "all" and first-match
// alias lookup are defined in terms of the order devices were registered,
// and the JSON codec preserves key order across load/save round trips.
//
// Group values are ordered lists of member references, each either an
// alias or a hardware id captured when the member was added. They are
// plain strings, not live links: a rename or removal can leave them
// dangling.
type Registry struct {
	Devices *orderedmap.OrderedMap[string, Info]     `json:"devices"`
	Groups  *orderedmap.OrderedMap[string, []string] `json:"groups"`
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{
		Devices: orderedmap.New[string, Info](),
		Groups:  orderedmap.New[string, []string](),
	}
}

// Device returns the resolved record for a hardware id present in the
// registry. The second return is false when the id is unknown.
func (reg *Registry) Device(hwID string) (Device, bool) {
	info, ok := reg.Devices.Get(hwID)
	if !ok {
		return Device{}, false
	}
	return Device{HardwareID: hwID, IP: info.IP, Alias: info.Alias}, true
}
