// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// fileKeyValueStorage keeps every key in a single flat JSON object
// ({"key": "value", ...}). This is the shape of a browser local storage dump,
// so the same type reads dumps for import and writes them for tests.
type fileKeyValueStorage struct {
	path     string
	inMemory bool

	mu    sync.RWMutex
	items map[string]string
}

// NewFileKeyValueStorage opens the JSON dump at path. A missing file is an
// empty storage; ":memory:" keeps everything in memory only.
func NewFileKeyValueStorage(path string) (KeyValueStorage, error) {
	if path == "" {
		path = ":memory:"
	}

	s := &fileKeyValueStorage{
		path:     path,
		inMemory: path == ":memory:",
		items:    make(map[string]string),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *fileKeyValueStorage) load() error {
	if s.inMemory {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("%w: read key-value file: %w", ErrStorageUnavailable, err)
	}

	var items map[string]string
	if err = json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("decode key-value file: %w", err)
	}
	if items != nil {
		s.items = items
	}
	return nil
}

func (s *fileKeyValueStorage) persist() error {
	if s.inMemory {
		return nil
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: create key-value dir: %w", ErrStorageUnavailable, err)
		}
	}

	payload, err := json.MarshalIndent(s.items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode key-value file: %w", err)
	}

	tmp := s.path + ".tmp"
	if err = os.WriteFile(tmp, payload, 0o600); err != nil {
		return fmt.Errorf("%w: write key-value file: %w", ErrStorageUnavailable, err)
	}
	if err = os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("%w: replace key-value file: %w", ErrStorageUnavailable, err)
	}
	return nil
}

func (s *fileKeyValueStorage) GetItem(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.items[key]
	if !ok {
		return "", ErrItemNotFound
	}
	return value, nil
}

func (s *fileKeyValueStorage) SetItem(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, existed := s.items[key]
	s.items[key] = value
	if err := s.persist(); err != nil {
		if existed {
			s.items[key] = prev
		} else {
			delete(s.items, key)
		}
		return err
	}
	return nil
}

func (s *fileKeyValueStorage) RemoveItem(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, existed := s.items[key]
	if !existed {
		return nil
	}
	delete(s.items, key)
	if err := s.persist(); err != nil {
		s.items[key] = prev
		return err
	}
	return nil
}

func (s *fileKeyValueStorage) Keys(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.items))
	for key := range s.items {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, nil
}
