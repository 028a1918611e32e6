package session

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const sessionFile = "session.json"

// FileBackend persists the session as a single JSON document under a
// directory the caller owns, typically os.UserConfigDir()/benchctl.
// Writes go through a temp file and rename so a crash mid-write leaves
// either the old document or the new one, never a torn file.
type FileBackend struct {
	dir string
}

// NewFileBackend creates dir if needed and returns a backend rooted there.
func NewFileBackend(dir string) (*FileBackend, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create session dir: %w", err)
	}
	return &FileBackend{dir: dir}, nil
}

func (b *FileBackend) path() string {
	return filepath.Join(b.dir, sessionFile)
}

// load reads the session document. Missing or corrupt files yield an
// empty map: the caller sees an absent session, not an error.
func (b *FileBackend) load() map[string]string {
	data, err := os.ReadFile(b.path())
	if err != nil {
		return map[string]string{}
	}

	values := map[string]string{}
	if err := json.Unmarshal(data, &values); err != nil {
		return map[string]string{}
	}
	return values
}

func (b *FileBackend) save(values map[string]string) error {
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	tmp, err := os.CreateTemp(b.dir, sessionFile+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp session file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write session: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to chmod session file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close session file: %w", err)
	}

	if err := os.Rename(tmp.Name(), b.path()); err != nil {
		return fmt.Errorf("failed to replace session file: %w", err)
	}
	return nil
}

func (b *FileBackend) Get(_ context.Context, key string) (string, bool, error) {
	value, ok := b.load()[key]
	return value, ok, nil
}

func (b *FileBackend) Set(_ context.Context, key, value string) error {
	values := b.load()
	values[key] = value
	return b.save(values)
}

func (b *FileBackend) Delete(_ context.Context, keys ...string) error {
	values := b.load()
	for _, key := range keys {
		delete(values, key)
	}
	if len(values) == 0 {
		// Removing the file entirely keeps "cleared" and "never set"
		// indistinguishable, which is what callers expect.
		if err := os.Remove(b.path()); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove session file: %w", err)
		}
		return nil
	}
	return b.save(values)
}
