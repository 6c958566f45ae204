package registry

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// File and directory permission modes for the registry file.
const (
	dirPermissions  = 0750
	filePermissions = 0600
)

// Store loads and saves the registry document as a single unit.
//
// There is no partial update: Load reads the whole file, Save rewrites it.
// Save goes through a temporary file in the same directory followed by a
// rename, so a crash mid-write cannot leave a truncated registry behind.
// Concurrent invocations are not guarded against each other.
type Store struct {
	path   string
	logger Logger
}

// NewStore creates a store for the registry file at path.
func NewStore(path string) *Store {
	return &Store{
		path:   path,
		logger: noopLogger{},
	}
}

// SetLogger sets the logger for the store.
func (s *Store) SetLogger(logger Logger) {
	s.logger = logger
}

// Path returns the filesystem path of the registry file.
func (s *Store) Path() string {
	return s.path
}

// Load reads the persisted registry.
//
// A missing file is not an error: it yields an empty registry, so every
// command works on a fresh installation. Content that cannot be parsed,
// or that carries unexpected top-level keys, fails with an error wrapping
// ErrIntegrity.
func (s *Store) Load() (*Registry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Debug("registry file absent, starting empty", "path", s.path)
			return New(), nil
		}
		return nil, fmt.Errorf("reading registry %s: %w", s.path, err)
	}

	reg := New()
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(reg); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %w", ErrIntegrity, s.path, err)
	}

	// A document like {} decodes with nil maps; normalise so callers can
	// iterate without nil checks.
	if reg.Devices == nil || reg.Groups == nil {
		normalised := New()
		if reg.Devices != nil {
			normalised.Devices = reg.Devices
		}
		if reg.Groups != nil {
			normalised.Groups = reg.Groups
		}
		reg = normalised
	}

	return reg, nil
}

// Save writes the complete registry, replacing any prior content.
func (s *Store) Save(reg *Registry) error {
	data, err := json.MarshalIndent(reg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding registry: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return fmt.Errorf("creating registry directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".registry-*.json")
	if err != nil {
		return fmt.Errorf("creating temp registry file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing registry: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp registry file: %w", err)
	}
	if err := os.Chmod(tmpPath, filePermissions); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("setting registry permissions: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing registry %s: %w", s.path, err)
	}

	s.logger.Debug("registry saved",
		"path", s.path,
		"devices", reg.Devices.Len(),
		"groups", reg.Groups.Len(),
	)
	return nil
}
