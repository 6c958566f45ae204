// Package influxdb provides optional energy telemetry storage for plugctl.
//
// It wraps the official influxdb-client-go v2 library with connection
// management, batched metric writing, and health monitoring.
//
// # Purpose
//
// When telemetry is enabled in the configuration, status reads push the
// plug's instantaneous power draw and lifetime energy counter to
// InfluxDB, and switch commands record the resulting relay state.
//
// # Usage
//
//	cfg := config.InfluxDBConfig{
//	    Enabled: true,
//	    URL:     "http://localhost:8086",
//	    Token:   "your-token",
//	    Org:     "home",
//	    Bucket:  "plugctl",
//	}
//
//	client, err := influxdb.Connect(cfg)
//	if err != nil {
//	    // errors.Is(err, influxdb.ErrDisabled) when telemetry is off
//	}
//	defer client.Close()
//
//	client.WriteEnergyMetric("shellyplugsg3-abc123", "heater", 42.5, 1.2)
//
// # Thread Safety
//
// All methods are safe for concurrent use from multiple goroutines.
// The underlying write API uses non-blocking batched writes.
//
// # Error Handling
//
// Write operations are non-blocking; batch errors are delivered via the
// SetOnError callback. Connection and health check errors are returned
// directly.
package influxdb
