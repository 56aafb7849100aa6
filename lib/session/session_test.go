// Copyright 2026 The TicketHub Authors
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tickethub/tickethub/lib/api"
)

func testSession() *Session {
	return &Session{
		User: api.User{
			ID:       "user-1",
			Username: "johndoe",
			Email:    "john@example.com",
			Role:     "user",
		},
		Token: "tok-abc123",
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewFileStore(path)

	if err := store.Save(testSession()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.User.Username != "johndoe" {
		t.Errorf("unexpected username: %s", loaded.User.Username)
	}
	if loaded.Token != "tok-abc123" {
		t.Errorf("unexpected token: %s", loaded.Token)
	}

	// The file must be owner-only: it contains a bearer token.
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("session file mode should be 0600, got %o", info.Mode().Perm())
	}
}

func TestFileStoreLoadMissing(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "nope", "session.json"))

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load of missing file should not error: %v", err)
	}
	if loaded != nil {
		t.Errorf("Load of missing file should return nil session, got %+v", loaded)
	}
}

func TestFileStoreLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if _, err := NewFileStore(path).Load(); err == nil {
		t.Error("Load of corrupt file should error")
	}
}

func TestFileStoreLoadIncomplete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte(`{"user":{"id":""},"token":""}`), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if _, err := NewFileStore(path).Load(); err == nil {
		t.Error("Load of session without user/token should error")
	}
}

func TestFileStoreClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewFileStore(path)

	if err := store.Save(testSession()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	// No trace of the session may remain on disk.
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("session file should be gone after Clear")
	}

	// Clearing an already-empty store is fine.
	if err := store.Clear(); err != nil {
		t.Errorf("Clear of empty store should not error: %v", err)
	}
}

func TestFilePathEnvOverride(t *testing.T) {
	t.Setenv("TICKETHUB_SESSION_FILE", "/tmp/custom-session.json")
	if got := FilePath(); got != "/tmp/custom-session.json" {
		t.Errorf("FilePath should honor TICKETHUB_SESSION_FILE, got %s", got)
	}
}
