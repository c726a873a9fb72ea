package store

import "encoding/json"

// MemStore keeps snapshots in memory. Used by tests and by sessions that do
// not need to survive a restart.
type MemStore struct {
	snapshots map[string][]byte
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{snapshots: make(map[string][]byte)}
}

func (s *MemStore) Load(key string, into any) error {
	data, ok := s.snapshots[key]
	if !ok {
		return ErrNoSnapshot
	}
	return json.Unmarshal(data, into)
}

func (s *MemStore) Save(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.snapshots[key] = data
	return nil
}

func (s *MemStore) Delete(key string) error {
	delete(s.snapshots, key)
	return nil
}
