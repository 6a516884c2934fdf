// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-diary/internal/mock"
	"github.com/MKhiriev/go-diary/internal/store"
	"github.com/MKhiriev/go-diary/internal/validators"
	"github.com/MKhiriev/go-diary/models"
)

var t0 = time.Date(2026, 3, 14, 9, 26, 53, 589_793_238, time.UTC)

func newTestEntryStore(t *testing.T, storage store.KeyValueStorage, clock *fakeClock) EntryStore {
	t.Helper()

	s := NewEntryStore(storage, validators.NewEntryValidator(), clock.Now)
	require.NoError(t, s.Load(context.Background()))
	return s
}

func persistedEntries(t *testing.T, storage store.KeyValueStorage) []models.DiaryEntry {
	t.Helper()

	var entries []models.DiaryEntry
	require.NoError(t, json.Unmarshal([]byte(storedValue(t, storage, models.EntriesKey)), &entries))
	return entries
}

func TestEntryStore_Create(t *testing.T) {
	storage := newMemoryStorage(t)
	clock := newFakeClock(t0)
	s := newTestEntryStore(t, storage, clock)

	img := "data:image/png;base64,iVBORw0KGgo="
	entry, err := s.Create(context.Background(), models.EntryDraft{
		Title:   "  ",
		Content: "  first day  ",
		Image:   &img,
	})
	require.NoError(t, err)

	wantAt := t0.Truncate(time.Millisecond)
	assert.Equal(t, t0.UnixMilli(), entry.ID)
	assert.Equal(t, models.UntitledEntry, entry.Title)
	assert.Equal(t, "first day", entry.Content)
	assert.Equal(t, models.DefaultMood, entry.Mood)
	require.NotNil(t, entry.Image)
	assert.Equal(t, img, *entry.Image)
	assert.Equal(t, wantAt, entry.CreatedAt)
	assert.Equal(t, wantAt, entry.UpdatedAt)

	assert.Equal(t, 1, s.Count())
	assert.Equal(t, []models.DiaryEntry{entry}, persistedEntries(t, storage))
}

func TestEntryStore_Create_NewestFirstAndUniqueIDs(t *testing.T) {
	storage := newMemoryStorage(t)
	clock := newFakeClock(t0)
	s := newTestEntryStore(t, storage, clock)

	first, err := s.Create(context.Background(), draft("one"))
	require.NoError(t, err)
	second, err := s.Create(context.Background(), draft("two"))
	require.NoError(t, err)
	clock.Set(t0.Add(time.Second))
	third, err := s.Create(context.Background(), draft("three"))
	require.NoError(t, err)

	assert.Equal(t, first.ID+1, second.ID)
	assert.Greater(t, third.ID, second.ID)

	list := s.List()
	require.Len(t, list, 3)
	assert.Equal(t, []int64{third.ID, second.ID, first.ID}, []int64{list[0].ID, list[1].ID, list[2].ID})
}

func TestEntryStore_Create_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mock.NewMockKeyValueStorage(ctrl)
	storage.EXPECT().GetItem(gomock.Any(), models.EntriesKey).Return("", store.ErrItemNotFound)
	s := newTestEntryStore(t, storage, newFakeClock(t0))

	_, err := s.Create(context.Background(), draft(" \n "))
	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, err, validators.ErrEmptyContent)

	_, err = s.Create(context.Background(), models.EntryDraft{Content: "x", Mood: "🦄"})
	assert.ErrorIs(t, err, validators.ErrUnknownMood)

	assert.Zero(t, s.Count())
}

func TestEntryStore_Update(t *testing.T) {
	storage := newMemoryStorage(t)
	clock := newFakeClock(t0)
	s := newTestEntryStore(t, storage, clock)

	older, err := s.Create(context.Background(), draft("older"))
	require.NoError(t, err)
	clock.Set(t0.Add(time.Minute))
	newer, err := s.Create(context.Background(), draft("newer"))
	require.NoError(t, err)

	clock.Set(t0.Add(time.Hour))
	updated, err := s.Update(context.Background(), older.ID, models.EntryDraft{
		Title:   "Renamed",
		Content: "edited",
		Mood:    models.MoodThoughtful,
	})
	require.NoError(t, err)

	assert.Equal(t, older.ID, updated.ID)
	assert.Equal(t, older.CreatedAt, updated.CreatedAt)
	assert.Equal(t, t0.Add(time.Hour).Truncate(time.Millisecond), updated.UpdatedAt)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, models.MoodThoughtful, updated.Mood)

	list := s.List()
	require.Len(t, list, 2)
	assert.Equal(t, newer.ID, list[0].ID)
	assert.Equal(t, updated, list[1])
	assert.Equal(t, list, persistedEntries(t, storage))
}

func TestEntryStore_Update_ClockGoesBackwards(t *testing.T) {
	clock := newFakeClock(t0)
	s := newTestEntryStore(t, newMemoryStorage(t), clock)

	created, err := s.Create(context.Background(), draft("x"))
	require.NoError(t, err)

	clock.Set(t0.Add(-time.Hour))
	updated, err := s.Update(context.Background(), created.ID, draft("y"))
	require.NoError(t, err)
	assert.False(t, updated.UpdatedAt.Before(updated.CreatedAt))
	assert.Equal(t, created.UpdatedAt, updated.UpdatedAt)
}

func TestEntryStore_Update_RemovesImageAndKeepsNoImage(t *testing.T) {
	s := newTestEntryStore(t, newMemoryStorage(t), newFakeClock(t0))

	created, err := s.Create(context.Background(), models.EntryDraft{Content: "x", Image: ptr("data:image/gif;base64,R0lGOD")})
	require.NoError(t, err)
	require.True(t, created.HasImage())

	updated, err := s.Update(context.Background(), created.ID, models.EntryDraft{Content: "x", Image: ptr("")})
	require.NoError(t, err)
	assert.Nil(t, updated.Image)
}

func TestEntryStore_Update_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mock.NewMockKeyValueStorage(ctrl)
	storage.EXPECT().GetItem(gomock.Any(), models.EntriesKey).Return(`[]`, nil)
	s := newTestEntryStore(t, storage, newFakeClock(t0))

	_, err := s.Update(context.Background(), 42, draft("x"))
	assert.ErrorIs(t, err, ErrEntryNotFound)

	_, err = s.Get(42)
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestEntryStore_Delete(t *testing.T) {
	storage := newMemoryStorage(t)
	clock := newFakeClock(t0)
	s := newTestEntryStore(t, storage, clock)

	keep, err := s.Create(context.Background(), draft("keep"))
	require.NoError(t, err)
	drop, err := s.Create(context.Background(), draft("drop"))
	require.NoError(t, err)

	removed, err := s.Delete(context.Background(), drop.ID)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, []models.DiaryEntry{keep}, s.List())
	assert.Equal(t, []models.DiaryEntry{keep}, persistedEntries(t, storage))

	removed, err = s.Delete(context.Background(), drop.ID)
	require.NoError(t, err)
	assert.False(t, removed)

	removed, err = s.Delete(context.Background(), keep.ID)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, "[]", storedValue(t, storage, models.EntriesKey))
}

func TestEntryStore_Delete_MissingDoesNotWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mock.NewMockKeyValueStorage(ctrl)
	storage.EXPECT().GetItem(gomock.Any(), models.EntriesKey).Return("", store.ErrItemNotFound)
	s := newTestEntryStore(t, storage, newFakeClock(t0))

	removed, err := s.Delete(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestEntryStore_StorageFailureRollsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mock.NewMockKeyValueStorage(ctrl)
	ctx := context.Background()

	existing := `[{"id":1,"title":"Untitled Entry","content":"kept","mood":"😊","image":null,` +
		`"createdAt":"2026-01-01T00:00:00.000Z","updatedAt":"2026-01-01T00:00:00.000Z"}]`
	storage.EXPECT().GetItem(gomock.Any(), models.EntriesKey).Return(existing, nil)
	storage.EXPECT().SetItem(gomock.Any(), models.EntriesKey, gomock.Any()).Return(errors.New("quota exceeded")).Times(3)

	s := newTestEntryStore(t, storage, newFakeClock(t0))
	before := s.List()

	_, err := s.Create(ctx, draft("new"))
	assert.ErrorIs(t, err, ErrStorageUnavailable)
	assert.Equal(t, before, s.List())

	_, err = s.Update(ctx, 1, draft("changed"))
	assert.ErrorIs(t, err, ErrStorageUnavailable)
	assert.Equal(t, before, s.List())

	removed, err := s.Delete(ctx, 1)
	assert.ErrorIs(t, err, ErrStorageUnavailable)
	assert.False(t, removed)
	assert.Equal(t, before, s.List())
}

func TestEntryStore_Load(t *testing.T) {
	t.Run("browser format", func(t *testing.T) {
		storage := newMemoryStorage(t)
		seed(t, storage, models.EntriesKey,
			`[{"id":1710408413589,"title":"Pi day","content":"pie","mood":"😍","image":null,`+
				`"createdAt":"2024-03-14T09:26:53.589Z","updatedAt":"2024-03-14T10:00:00.000Z"},`+
				`{"id":1710322013000,"title":"Untitled Entry","content":"older","mood":"","image":"data:image/png;base64,AAAA",`+
				`"createdAt":"2024-03-13T09:26:53.000Z","updatedAt":"2024-03-13T09:26:53.000Z"}]`)

		s := newTestEntryStore(t, storage, newFakeClock(t0))
		list := s.List()
		require.Len(t, list, 2)

		assert.Equal(t, int64(1710408413589), list[0].ID)
		assert.Nil(t, list[0].Image)
		assert.Equal(t, time.Date(2024, 3, 14, 9, 26, 53, 589_000_000, time.UTC), list[0].CreatedAt.UTC())
		assert.Equal(t, models.DefaultMood, list[1].Mood)
		assert.True(t, list[1].HasImage())
	})

	t.Run("corrupt", func(t *testing.T) {
		storage := newMemoryStorage(t)
		seed(t, storage, models.EntriesKey, `{not json`)

		err := NewEntryStore(storage, validators.NewEntryValidator(), nil).Load(context.Background())
		assert.ErrorIs(t, err, ErrCorruptEntries)
	})

	t.Run("null", func(t *testing.T) {
		storage := newMemoryStorage(t)
		seed(t, storage, models.EntriesKey, `null`)

		s := newTestEntryStore(t, storage, newFakeClock(t0))
		assert.NotNil(t, s.List())
		assert.Zero(t, s.Count())
	})
}

func TestEntryStore_ReloadRoundTrip(t *testing.T) {
	storage := newMemoryStorage(t)
	clock := newFakeClock(t0)
	s := newTestEntryStore(t, storage, clock)

	for _, c := range []string{"a", "b", "c"} {
		clock.Set(clock.Now().Add(1500 * time.Microsecond))
		_, err := s.Create(context.Background(), models.EntryDraft{Title: c, Content: c, Mood: models.MoodCool})
		require.NoError(t, err)
	}

	reloaded := newTestEntryStore(t, storage, clock)
	assert.Equal(t, s.List(), reloaded.List())
}

func TestEntryStore_ListReturnsCopy(t *testing.T) {
	s := newTestEntryStore(t, newMemoryStorage(t), newFakeClock(t0))
	_, err := s.Create(context.Background(), draft("x"))
	require.NoError(t, err)

	list := s.List()
	list[0].Content = "mutated"

	got := s.List()
	assert.Equal(t, "x", got[0].Content)
}

func TestEntryStore_Lifecycle(t *testing.T) {
	ctx := context.Background()
	storage := newMemoryStorage(t)
	clock := newFakeClock(t0)
	s := newTestEntryStore(t, storage, clock)

	created, err := s.Create(ctx, models.EntryDraft{Title: "", Content: "Hello", Mood: models.MoodHappy})
	require.NoError(t, err)
	assert.Equal(t, models.UntitledEntry, created.Title)
	assert.Equal(t, models.MoodHappy, created.Mood)
	require.Len(t, s.List(), 1)

	clock.Set(t0.Add(time.Minute))
	updated, err := s.Update(ctx, created.ID, models.EntryDraft{Title: "My Day", Content: "Hello world", Mood: models.MoodSad})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "My Day", updated.Title)
	assert.Equal(t, "Hello world", updated.Content)
	assert.Equal(t, models.MoodSad, updated.Mood)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
	assert.Equal(t, []models.DiaryEntry{updated}, s.List())

	removed, err := s.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Empty(t, s.List())
	assert.Zero(t, s.Count())
	assert.Empty(t, persistedEntries(t, storage))
}
