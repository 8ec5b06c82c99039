package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// JSONFileStore persists each collection as a JSON document in its own file
// under a data directory. It is the default driver.
type JSONFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewJSONFileStore creates the data directory if needed and returns a store
// rooted there.
func NewJSONFileStore(dir string) (*JSONFileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	return &JSONFileStore{dir: dir}, nil
}

func (s *JSONFileStore) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

// Read decodes the collection file into v. A missing or malformed file is
// treated as an empty collection.
func (s *JSONFileStore) Read(ctx context.Context, collection string, v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(collection))
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("store: reading %s: %v", collection, err)
		}
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("store: parsing %s: %v", collection, err)
		return nil
	}
	return nil
}

// Write replaces the collection file. The document is written to a temp file
// first and renamed into place so a crash never leaves a half-written
// collection behind.
func (s *JSONFileStore) Write(ctx context.Context, collection string, v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", collection, err)
	}

	tmp, err := os.CreateTemp(s.dir, collection+"-*.tmp")
	if err != nil {
		return fmt.Errorf("writing %s: %w", collection, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing %s: %w", collection, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("writing %s: %w", collection, err)
	}
	if err := os.Rename(tmp.Name(), s.path(collection)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("writing %s: %w", collection, err)
	}
	return nil
}
