// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/internal/store"
	"github.com/MKhiriev/go-diary/internal/validators"
	"github.com/MKhiriev/go-diary/models"
)

type entryStore struct {
	storage   store.KeyValueStorage
	validator validators.Validator
	now       func() time.Time

	mu      sync.RWMutex
	entries []models.DiaryEntry
}

// NewEntryStore returns an empty [EntryStore]. Call Load to read the
// persisted collection. A nil clock means [time.Now].
func NewEntryStore(storage store.KeyValueStorage, validator validators.Validator, clock func() time.Time) EntryStore {
	if clock == nil {
		clock = time.Now
	}
	return &entryStore{
		storage:   storage,
		validator: validator,
		now:       clock,
		entries:   make([]models.DiaryEntry, 0),
	}
}

func (s *entryStore) Load(ctx context.Context) error {
	log := logger.FromContext(ctx)

	entries, err := readEntries(ctx, s.storage)
	if err != nil {
		log.Err(err).Str("func", "*entryStore.Load").Msg("error loading entries")
		return err
	}

	s.mu.Lock()
	s.entries = entries
	s.mu.Unlock()

	log.Debug().Str("func", "*entryStore.Load").Int("count", len(entries)).Msg("entries loaded")
	return nil
}

func (s *entryStore) List() []models.DiaryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.entries)
}

func (s *entryStore) Get(id int64) (models.DiaryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return models.DiaryEntry{}, ErrEntryNotFound
	}
	return s.entries[idx], nil
}

func (s *entryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (s *entryStore) Create(ctx context.Context, draft models.EntryDraft) (models.DiaryEntry, error) {
	log := logger.FromContext(ctx)

	draft = normalizeDraft(draft)
	if err := s.validator.Validate(ctx, draft); err != nil {
		return models.DiaryEntry{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.timestamp()
	entry := models.DiaryEntry{
		ID:        s.nextID(now),
		Title:     draft.Title,
		Content:   draft.Content,
		Mood:      draft.Mood,
		Image:     draft.Image,
		CreatedAt: now,
		UpdatedAt: now,
	}

	next := make([]models.DiaryEntry, 0, len(s.entries)+1)
	next = append(next, entry)
	next = append(next, s.entries...)

	if err := s.commit(ctx, next); err != nil {
		log.Err(err).Str("func", "*entryStore.Create").Msg("error persisting new entry")
		return models.DiaryEntry{}, err
	}

	log.Info().Str("func", "*entryStore.Create").Int64("id", entry.ID).Msg("entry created")
	return entry, nil
}

func (s *entryStore) Update(ctx context.Context, id int64, draft models.EntryDraft) (models.DiaryEntry, error) {
	log := logger.FromContext(ctx)

	draft = normalizeDraft(draft)
	if err := s.validator.Validate(ctx, draft); err != nil {
		return models.DiaryEntry{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return models.DiaryEntry{}, ErrEntryNotFound
	}

	entry := s.entries[idx]
	entry.Title = draft.Title
	entry.Content = draft.Content
	entry.Mood = draft.Mood
	entry.Image = draft.Image
	if now := s.timestamp(); now.After(entry.UpdatedAt) {
		entry.UpdatedAt = now
	}

	next := slices.Clone(s.entries)
	next[idx] = entry

	if err := s.commit(ctx, next); err != nil {
		log.Err(err).Str("func", "*entryStore.Update").Int64("id", id).Msg("error persisting updated entry")
		return models.DiaryEntry{}, err
	}

	log.Info().Str("func", "*entryStore.Update").Int64("id", id).Msg("entry updated")
	return entry, nil
}

func (s *entryStore) Delete(ctx context.Context, id int64) (bool, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return false, nil
	}

	next := slices.Delete(slices.Clone(s.entries), idx, idx+1)
	if err := s.commit(ctx, next); err != nil {
		log.Err(err).Str("func", "*entryStore.Delete").Int64("id", id).Msg("error persisting deletion")
		return false, err
	}

	log.Info().Str("func", "*entryStore.Delete").Int64("id", id).Msg("entry deleted")
	return true, nil
}

// commit persists next and, only if that succeeds, makes it the current
// collection. Callers hold s.mu.
func (s *entryStore) commit(ctx context.Context, next []models.DiaryEntry) error {
	if err := writeEntries(ctx, s.storage, next); err != nil {
		return err
	}
	s.entries = next
	return nil
}

func (s *entryStore) indexOf(id int64) int {
	return slices.IndexFunc(s.entries, func(e models.DiaryEntry) bool { return e.ID == id })
}

// nextID derives the id from the creation time and bumps it past every
// existing id so that ids stay unique when two entries share a millisecond.
func (s *entryStore) nextID(now time.Time) int64 {
	id := now.UnixMilli()
	for _, e := range s.entries {
		if e.ID >= id {
			id = e.ID + 1
		}
	}
	return id
}

func (s *entryStore) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Millisecond)
}

func normalizeDraft(draft models.EntryDraft) models.EntryDraft {
	draft.Title = strings.TrimSpace(draft.Title)
	if draft.Title == "" {
		draft.Title = models.UntitledEntry
	}
	draft.Content = strings.TrimSpace(draft.Content)
	draft.Mood = draft.Mood.OrDefault()
	if draft.Image != nil && *draft.Image == "" {
		draft.Image = nil
	}
	return draft
}

func readEntries(ctx context.Context, storage store.KeyValueStorage) ([]models.DiaryEntry, error) {
	raw, err := storage.GetItem(ctx, models.EntriesKey)
	if errors.Is(err, store.ErrItemNotFound) {
		return make([]models.DiaryEntry, 0), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read entries: %w", ErrStorageUnavailable, err)
	}

	entries, err := decodeEntries(raw)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func decodeEntries(raw string) ([]models.DiaryEntry, error) {
	var entries []models.DiaryEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptEntries, err)
	}
	if entries == nil {
		entries = make([]models.DiaryEntry, 0)
	}
	for i := range entries {
		entries[i].Mood = entries[i].Mood.OrDefault()
	}
	return entries, nil
}

func writeEntries(ctx context.Context, storage store.KeyValueStorage, entries []models.DiaryEntry) error {
	if entries == nil {
		entries = make([]models.DiaryEntry, 0)
	}

	payload, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode entries: %w", err)
	}

	if err = storage.SetItem(ctx, models.EntriesKey, string(payload)); err != nil {
		return fmt.Errorf("%w: write entries: %w", ErrStorageUnavailable, err)
	}
	return nil
}
