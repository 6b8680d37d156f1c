// Package storage persists the application state as two independent JSON
// blobs under a data directory: the per-device snapshot and the global
// registered-user registry. Loads are validated and fail closed; malformed
// data is rejected rather than silently accepted.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dhanflow/dhanflow/internal/common"
	"github.com/dhanflow/dhanflow/internal/model"
	"github.com/dhanflow/dhanflow/internal/store"
)

// SchemaVersion tags every persisted blob. Loading any other version fails.
const SchemaVersion = 1

const (
	stateFile = "state.json"
	usersFile = "users.json"
)

// JSONStore reads and writes the two durable state files.
type JSONStore struct {
	dir string
}

// New creates a JSONStore rooted at dir, creating the directory if needed.
func New(dir string) (*JSONStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: data directory", common.ErrMissingConfig)
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &JSONStore{dir: dir}, nil
}

// Dir returns the data directory this store writes under.
func (j *JSONStore) Dir() string {
	return j.dir
}

type persistedState struct {
	SchemaVersion int `json:"schemaVersion"`
	store.Snapshot
}

type persistedUsers struct {
	SchemaVersion int          `json:"schemaVersion"`
	Users         []model.User `json:"users"`
}

// SaveState writes the per-device snapshot atomically.
func (j *JSONStore) SaveState(snap store.Snapshot) error {
	return j.write(stateFile, persistedState{SchemaVersion: SchemaVersion, Snapshot: snap})
}

// SaveUsers writes the registered-user registry atomically, preserving order.
func (j *JSONStore) SaveUsers(users []model.User) error {
	return j.write(usersFile, persistedUsers{SchemaVersion: SchemaVersion, Users: users})
}

// LoadState reads and validates the per-device snapshot. A missing file
// yields a pristine snapshot; malformed or mismatched data is an error.
func (j *JSONStore) LoadState() (store.Snapshot, error) {
	var ps persistedState
	ok, err := j.read(stateFile, &ps)
	if err != nil {
		return store.Snapshot{}, err
	}
	if !ok {
		return store.NewSnapshot(), nil
	}
	if ps.SchemaVersion != SchemaVersion {
		return store.Snapshot{}, fmt.Errorf("%w: got %d, want %d",
			common.ErrSchemaVersion, ps.SchemaVersion, SchemaVersion)
	}
	if err := validateSnapshot(ps.Snapshot); err != nil {
		return store.Snapshot{}, fmt.Errorf("%w: %v", common.ErrInvalidSnapshot, err)
	}
	if ps.Currency == "" {
		ps.Currency = store.DefaultCurrency
	}
	return ps.Snapshot, nil
}

// LoadUsers reads and validates the registry. A missing file yields an
// empty registry.
func (j *JSONStore) LoadUsers() ([]model.User, error) {
	var pu persistedUsers
	ok, err := j.read(usersFile, &pu)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	if pu.SchemaVersion != SchemaVersion {
		return nil, fmt.Errorf("%w: got %d, want %d",
			common.ErrSchemaVersion, pu.SchemaVersion, SchemaVersion)
	}
	seen := make(map[string]bool, len(pu.Users))
	for i, u := range pu.Users {
		if err := u.Validate(); err != nil {
			return nil, fmt.Errorf("%w: user at index %d: %v", common.ErrInvalidSnapshot, i, err)
		}
		if seen[u.Email] {
			return nil, fmt.Errorf("%w: duplicate registered email %s", common.ErrInvalidSnapshot, u.Email)
		}
		seen[u.Email] = true
	}
	return pu.Users, nil
}

func (j *JSONStore) write(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}

	// Write to a temp file in the same directory and rename, so a crash
	// mid-write never leaves a truncated blob behind.
	path := filepath.Join(j.dir, name)
	tmp, err := os.CreateTemp(j.dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", name, err)
	}
	return nil
}

func (j *JSONStore) read(name string, v any) (bool, error) {
	data, err := os.ReadFile(filepath.Join(j.dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("%w: %s: %v", common.ErrInvalidSnapshot, name, err)
	}
	return true, nil
}
