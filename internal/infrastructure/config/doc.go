// Package config handles loading and validating plugctl configuration.
//
// This package manages:
//   - Loading configuration from YAML files
//   - Overriding with environment variables
//   - Validation of required fields
//   - Default value handling
//
// plugctl runs fine with no configuration at all: a missing file at the
// default path simply yields the defaults. An explicitly requested file
// that does not exist is an error.
//
// Security Considerations:
//   - Sensitive values (the InfluxDB token) should be set via environment
//     variables rather than the config file
//   - The config file should have restricted permissions (0600)
//
// Usage:
//
//	cfg, err := config.Load("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Registry.Path)
package config
