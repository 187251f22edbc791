package kvstore

import (
	"context"
	"sync"
)

// TestStore is an in-memory Store used by the unit tests of the packages
// built on top of kvstore. Errors can be injected per operation.
type TestStore struct {
	mu   sync.Mutex
	data map[string][]byte

	GetErr    error
	SetErr    error
	DeleteErr error
}

func NewTestStore() *TestStore {
	return &TestStore{
		data: make(map[string][]byte),
	}
}

func (s *TestStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.GetErr != nil {
		return nil, s.GetErr
	}
	value, ok := s.data[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return value, nil
}

func (s *TestStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SetErr != nil {
		return s.SetErr
	}
	s.data[key] = value
	return nil
}

func (s *TestStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.DeleteErr != nil {
		return s.DeleteErr
	}
	delete(s.data, key)
	return nil
}

// Value returns the raw stored bytes for key, or nil.
func (s *TestStore) Value(key string) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data[key]
}
