package client

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Storage persists the cart snapshot between runs, the way the browser app
// kept it in localStorage. Writes are fire-and-forget on every mutation.
type Storage interface {
	Save(items []CartItem) error
	Load() ([]CartItem, error)
}

// FileStorage keeps the snapshot as a JSON file.
type FileStorage struct {
	Path string
}

func NewFileStorage(path string) *FileStorage {
	return &FileStorage{Path: path}
}

func (s *FileStorage) Save(items []CartItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return err
	}
	tmp := s.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.Path)
}

func (s *FileStorage) Load() ([]CartItem, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var items []CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		// a corrupt snapshot just means an empty cart
		return nil, nil
	}
	return items, nil
}
