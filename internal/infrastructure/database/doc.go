// Package database provides SQLite database connectivity for plugctl.
//
// The only consumer is the command history (internal/history); the
// device/group registry itself is a JSON file owned by internal/registry
// and never touches SQLite.
//
// This package manages:
//   - Database connection with WAL mode for concurrent access
//   - Connection lifecycle and health checks
//
// Security Considerations:
//   - All queries use parameterised statements (no SQL injection)
//   - Database file permissions are set to 0600 (owner read/write only)
//
// Usage:
//
//	db, err := database.Open(database.Config{Path: cfg.History.Path})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer db.Close()
package database
