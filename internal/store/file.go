package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"workshop-service/internal/model"
)

// FileStore persists the collection as a single JSON file. Saves go
// through a temp file in the same directory followed by a rename, so a
// crash mid-write leaves the previous file intact.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load(_ context.Context) ([]model.Order, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []model.Order{}, nil
		}
		return nil, fmt.Errorf("read order store: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err == nil && env.SchemaVersion > 0 {
		if env.SchemaVersion > SchemaVersion {
			return nil, fmt.Errorf("%w: schema version %d is newer than supported %d",
				ErrCorruptStore, env.SchemaVersion, SchemaVersion)
		}
		if env.Orders == nil {
			return []model.Order{}, nil
		}
		return env.Orders, nil
	}

	// Pre-envelope data was a bare JSON array of orders.
	var legacy []model.Order
	if err := json.Unmarshal(data, &legacy); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptStore, err)
	}
	return legacy, nil
}

func (s *FileStore) Save(_ context.Context, orders []model.Order) error {
	if orders == nil {
		orders = []model.Order{}
	}
	data, err := json.Marshal(envelope{SchemaVersion: SchemaVersion, Orders: orders})
	if err != nil {
		return fmt.Errorf("encode orders: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create store directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".orders-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp store file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp store file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp store file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp store file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace order store: %w", err)
	}
	return nil
}
