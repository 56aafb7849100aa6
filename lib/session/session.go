// Copyright 2026 The TicketHub Authors
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tickethub/tickethub/lib/api"
)

// Session holds the authenticated user's state between runs. Stored
// at the well-known path returned by FilePath and loaded automatically
// at startup so a restart restores the signed-in state. Cleared in
// full on logout.
type Session struct {
	// User is the profile returned by the backend on login or
	// registration. Cached so the UI can show the username and role
	// (and pre-fill booking contact fields) without a network call.
	User api.User `json:"user"`

	// Token is the opaque bearer credential attached to every request
	// once obtained. There is no refresh mechanism; an expired token
	// surfaces as a 401 from the backend.
	Token string `json:"token"`
}

// Store persists at most one session. The file-backed implementation
// below is the default; anything with get/set/clear semantics (OS
// keychain, test fake) can stand in behind the same interface.
type Store interface {
	// Load returns the persisted session, or (nil, nil) when no
	// session is stored.
	Load() (*Session, error)

	// Save replaces the persisted session.
	Save(*Session) error

	// Clear removes the persisted session. Clearing an empty store
	// is not an error.
	Clear() error
}

// FilePath returns the path to the session file. Checks the
// TICKETHUB_SESSION_FILE environment variable first, then falls back
// to ~/.config/tickethub/session.json.
func FilePath() string {
	if envPath := os.Getenv("TICKETHUB_SESSION_FILE"); envPath != "" {
		return envPath
	}

	configDirectory := os.Getenv("XDG_CONFIG_HOME")
	if configDirectory == "" {
		homeDirectory, err := os.UserHomeDir()
		if err != nil {
			// Fallback — this should rarely happen.
			return filepath.Join("/tmp", "tickethub-session.json")
		}
		configDirectory = filepath.Join(homeDirectory, ".config")
	}
	return filepath.Join(configDirectory, "tickethub", "session.json")
}

// FileStore is the JSON-file Store implementation.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore at the given path. An empty path
// uses the well-known location from FilePath.
func NewFileStore(path string) *FileStore {
	if path == "" {
		path = FilePath()
	}
	return &FileStore{path: path}
}

// Path returns the file path this store reads and writes.
func (store *FileStore) Path() string {
	return store.path
}

// Load reads the session file. A missing file means no session and
// returns (nil, nil); a present but unparseable file is an error.
func (store *FileStore) Load() (*Session, error) {
	data, err := os.ReadFile(store.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading session file %s: %w", store.path, err)
	}

	var stored Session
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, fmt.Errorf("parsing session file %s: %w", store.path, err)
	}

	if stored.User.ID == "" || stored.Token == "" {
		return nil, fmt.Errorf("session file %s is missing user or token", store.path)
	}

	return &stored, nil
}

// Save writes the session file. Creates the parent directory with
// mode 0700 if it doesn't exist. The file is written with mode 0600
// (owner-only read/write) since it contains a bearer token.
func (store *FileStore) Save(current *Session) error {
	data, err := json.MarshalIndent(current, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling session: %w", err)
	}
	data = append(data, '\n')

	directory := filepath.Dir(store.path)
	if err := os.MkdirAll(directory, 0700); err != nil {
		return fmt.Errorf("creating session directory %s: %w", directory, err)
	}

	if err := os.WriteFile(store.path, data, 0600); err != nil {
		return fmt.Errorf("writing session file %s: %w", store.path, err)
	}

	return nil
}

// Clear removes the session file. No trace of the user or token
// remains afterward.
func (store *FileStore) Clear() error {
	err := os.Remove(store.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing session file %s: %w", store.path, err)
	}
	return nil
}
