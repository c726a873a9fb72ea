package store

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// FileStore writes one JSON file per key under a directory. It is the local
// storage of a session that outlives the process.
type FileStore struct {
	dir string
}

// NewFileStore creates dir if needed and returns a store over it.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStore) Load(key string, into any) error {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return ErrNoSnapshot
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(data, into)
}

func (s *FileStore) Save(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(key), data, 0o644)
}

func (s *FileStore) Delete(key string) error {
	err := os.Remove(s.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
