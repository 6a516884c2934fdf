// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// UntitledEntry is the title stored for entries saved with a blank title.
const UntitledEntry = "Untitled Entry"

// TimestampLayout is the ISO-8601 form of entry timestamps: UTC with
// millisecond precision, e.g. "2024-03-14T09:26:53.589Z".
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// FormatTimestamp renders t in [TimestampLayout].
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// DiaryEntry represents a single journal record.
// It is the primary persistence model of the diary: the whole collection of
// entries is serialized to JSON and stored under a single storage key.
//
// The JSON field names match the browser edition of the diary so that a
// dump of its local storage can be imported unchanged.
type DiaryEntry struct {
	// ID uniquely identifies the entry within the collection.
	// It is derived from the creation time in milliseconds and is
	// monotonic, but not necessarily gap-free.
	ID int64 `json:"id"`

	// Title is the display name of the entry.
	// Blank titles are stored as [UntitledEntry].
	Title string `json:"title"`

	// Content is the entry text. It is never persisted empty.
	Content string `json:"content"`

	// Mood is one of the symbols from [Moods].
	Mood Mood `json:"mood"`

	// Image is an optional embedded image encoded as a data URI
	// ("data:image/png;base64,..."). nil means no image is attached.
	Image *string `json:"image"`

	// CreatedAt is set once at creation and never changes.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is set at creation and refreshed on every update.
	UpdatedAt time.Time `json:"updatedAt"`
}

// MarshalJSON encodes the entry with both timestamps in [TimestampLayout].
func (e DiaryEntry) MarshalJSON() ([]byte, error) {
	type plain DiaryEntry

	return json.Marshal(struct {
		plain
		CreatedAt string `json:"createdAt"`
		UpdatedAt string `json:"updatedAt"`
	}{
		plain:     plain(e),
		CreatedAt: FormatTimestamp(e.CreatedAt),
		UpdatedAt: FormatTimestamp(e.UpdatedAt),
	})
}

// HasImage reports whether an image is attached to the entry.
func (e DiaryEntry) HasImage() bool {
	return e.Image != nil && *e.Image != ""
}

// EntryDraft carries the user-editable fields of an entry.
// It is the input of create and update operations.
type EntryDraft struct {
	Title   string
	Content string
	Mood    Mood
	Image   *string
}

// Draft returns the editable fields of e as an [EntryDraft].
// A placeholder title is returned blank so the form starts empty.
func (e DiaryEntry) Draft() EntryDraft {
	title := e.Title
	if title == UntitledEntry {
		title = ""
	}

	return EntryDraft{
		Title:   title,
		Content: e.Content,
		Mood:    e.Mood,
		Image:   e.Image,
	}
}
