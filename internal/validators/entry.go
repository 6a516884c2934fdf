// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-diary/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldContent targets the entry text, which must not be blank.
	FieldContent = "content"

	// FieldMood targets the mood symbol. An empty mood is accepted and
	// later replaced with [models.DefaultMood].
	FieldMood = "mood"

	// FieldImage targets the optional data URI image.
	FieldImage = "image"

	// FieldID targets the identifier of a stored entry.
	FieldID = "id"

	// FieldTimestamps targets CreatedAt/UpdatedAt ordering of a stored entry.
	FieldTimestamps = "timestamps"
)

// EntryValidator implements [Validator] for [models.EntryDraft] and
// [models.DiaryEntry], in value and pointer form.
type EntryValidator struct{}

// NewEntryValidator constructs a new EntryValidator.
func NewEntryValidator() Validator {
	return &EntryValidator{}
}

// Validate dispatches on the dynamic type of obj. Drafts default to the
// content, mood and image checks; stored entries additionally check id and
// timestamps. Returns ErrUnsupportedType for any other type.
func (v *EntryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.EntryDraft:
		return v.validateDraft(ctx, value, fields...)
	case *models.EntryDraft:
		return v.validateDraft(ctx, *value, fields...)

	case models.DiaryEntry:
		return v.validateEntry(ctx, value, fields...)
	case *models.DiaryEntry:
		return v.validateEntry(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *EntryValidator) validateDraft(_ context.Context, draft models.EntryDraft, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldContent, FieldMood, FieldImage}
	}

	for _, f := range fields {
		switch f {
		case FieldContent:
			if strings.TrimSpace(draft.Content) == "" {
				return ErrEmptyContent
			}
		case FieldMood:
			if !draft.Mood.OrDefault().IsValid() {
				return ErrUnknownMood
			}
		case FieldImage:
			if draft.Image != nil && !isDataURI(*draft.Image) {
				return ErrInvalidImage
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *EntryValidator) validateEntry(ctx context.Context, entry models.DiaryEntry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldContent, FieldMood, FieldImage, FieldTimestamps}
	}

	draftFields := make([]string, 0, len(fields))
	for _, f := range fields {
		switch f {
		case FieldID:
			if entry.ID <= 0 {
				return ErrInvalidEntryID
			}
		case FieldTimestamps:
			if entry.UpdatedAt.Before(entry.CreatedAt) {
				return ErrInvalidTimestamp
			}
		default:
			draftFields = append(draftFields, f)
		}
	}
	if len(draftFields) == 0 {
		return nil
	}

	return v.validateDraft(ctx, models.EntryDraft{
		Title:   entry.Title,
		Content: entry.Content,
		Mood:    entry.Mood,
		Image:   entry.Image,
	}, draftFields...)
}

// isDataURI reports whether s looks like "data:<mime>;base64,<payload>".
// An empty string counts as no image.
func isDataURI(s string) bool {
	if s == "" {
		return true
	}
	header, _, ok := strings.Cut(s, ",")
	return ok && strings.HasPrefix(header, "data:")
}
