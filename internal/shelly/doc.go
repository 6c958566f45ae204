// Package shelly is the device gateway: a thin HTTP client for the local
// RPC API of Shelly Plug S (Gen 2/3) devices.
//
// Devices are addressed by IP; every call is one blocking request with a
// fixed deadline. A failure is reported per device and never aborts
// processing of other devices — callers check errors with
//
//	if errors.Is(err, shelly.ErrUnreachable) { ... }
//
// and carry on with the rest of the resolved set.
//
// The raw Get/Post surface works on arbitrary RPC paths; the typed
// helpers (DeviceID, SwitchSet, SwitchStatus, SetLEDMode, ...) cover the
// calls plugctl issues.
package shelly
