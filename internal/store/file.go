package store

import (
	"bytes"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"sync"

	"github.com/apex/log"
	"github.com/natefinch/atomic"
	"gopkg.in/yaml.v3"
)

// FileStore is a Store persisted as a YAML map. Every mutation rewrites the
// whole file atomically.
type FileStore struct {
	mu     sync.RWMutex
	path   string
	values map[string]string
}

// Path returns the default storage file path.
func Path() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".minicex", "storage")
}

// OpenDefault opens the store at Path.
func OpenDefault() (*FileStore, error) {
	return Open(Path())
}

// Open loads the store at path. A missing file yields an empty store.
func Open(path string) (*FileStore, error) {
	fs := &FileStore{path: path, values: map[string]string{}}

	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		log.WithField("path", path).Debug("storage not found, starting empty")
		return fs, nil
	}
	if err != nil {
		return nil, fmt.Errorf("stat storage: %w", err)
	}

	perm := info.Mode().Perm()
	if perm != 0600 {
		return nil, fmt.Errorf("storage permissions too open: %04o (want 0600)", perm)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read storage: %w", err)
	}

	if err := yaml.Unmarshal(data, &fs.values); err != nil {
		return nil, fmt.Errorf("parse storage: %w", err)
	}
	if fs.values == nil {
		fs.values = map[string]string{}
	}
	return fs, nil
}

// Location returns the file backing the store.
func (f *FileStore) Location() string {
	return f.path
}

func (f *FileStore) Get(key string) (string, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	v, ok := f.values[key]
	return v, ok
}

func (f *FileStore) Set(key, value string) error {
	return f.Update(map[string]string{key: value})
}

func (f *FileStore) Update(values map[string]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	next := maps.Clone(f.values)
	maps.Copy(next, values)
	if err := f.write(next); err != nil {
		return err
	}
	f.values = next
	return nil
}

func (f *FileStore) Delete(keys ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	next := maps.Clone(f.values)
	for _, k := range keys {
		delete(next, k)
	}
	if err := f.write(next); err != nil {
		return err
	}
	f.values = next
	return nil
}

// write must be called with mu held.
func (f *FileStore) write(values map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0700); err != nil {
		return fmt.Errorf("create storage dir: %w", err)
	}

	data, err := yaml.Marshal(values)
	if err != nil {
		return fmt.Errorf("marshal storage: %w", err)
	}

	if err := atomic.WriteFile(f.path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write storage: %w", err)
	}
	if err := os.Chmod(f.path, 0600); err != nil {
		return fmt.Errorf("chmod storage: %w", err)
	}
	log.WithField("path", f.path).WithField("keys", len(values)).Debug("storage written")
	return nil
}
