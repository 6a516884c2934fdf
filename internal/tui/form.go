// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-diary/internal/attachment"
	"github.com/MKhiriev/go-diary/models"
)

type formField int

const (
	fieldTitle formField = iota
	fieldContent
	fieldMood
	fieldImage
	fieldCount
)

// entryForm is the editor beside the entry list.
//
// It is in one of two states: composing a new entry (editID == nil) or
// editing the stored entry *editID. Saving, cancelling and locking all
// return it to the first state.
type entryForm struct {
	title     textinput.Model
	content   textarea.Model
	imagePath textinput.Model
	moodIdx   int
	focus     formField

	editID *int64
	images *attachment.Stager
}

func newEntryForm() *entryForm {
	title := textinput.New()
	title.Placeholder = "Give your entry a title..."
	title.CharLimit = 200
	title.Width = 50

	content := textarea.New()
	content.Placeholder = "Dear Diary, today I..."
	content.CharLimit = 0
	content.SetWidth(60)
	content.SetHeight(6)

	imagePath := textinput.New()
	imagePath.Placeholder = "path to an image (optional)"
	imagePath.Width = 50

	f := &entryForm{
		title:     title,
		content:   content,
		imagePath: imagePath,
		images:    &attachment.Stager{},
	}
	f.reset()
	return f
}

// isEditing reports whether the form edits a stored entry.
func (f *entryForm) isEditing() bool {
	return f.editID != nil
}

// startEdit loads entry into the form and switches saving to update.
// The placeholder title shows as an empty field.
func (f *entryForm) startEdit(entry models.DiaryEntry) {
	draft := entry.Draft()

	f.reset()
	id := entry.ID
	f.editID = &id
	f.title.SetValue(draft.Title)
	f.content.SetValue(draft.Content)
	f.moodIdx = moodIndex(draft.Mood)
	f.images.Set(draft.Image)
}

// reset clears every field and the staged image and leaves edit mode.
func (f *entryForm) reset() {
	f.editID = nil
	f.title.Reset()
	f.content.Reset()
	f.imagePath.Reset()
	f.moodIdx = 0
	f.images.Clear()
	f.setFocus(fieldTitle)
}

// draft collects the current field values.
func (f *entryForm) draft() models.EntryDraft {
	return models.EntryDraft{
		Title:   f.title.Value(),
		Content: f.content.Value(),
		Mood:    models.Moods[f.moodIdx],
		Image:   f.images.Staged(),
	}
}

func (f *entryForm) mood() models.Mood {
	return models.Moods[f.moodIdx]
}

func (f *entryForm) nextMood(step int) {
	n := len(models.Moods)
	f.moodIdx = ((f.moodIdx+step)%n + n) % n
}

func (f *entryForm) setFocus(field formField) {
	f.focus = field
	f.title.Blur()
	f.content.Blur()
	f.imagePath.Blur()

	switch field {
	case fieldTitle:
		f.title.Focus()
	case fieldContent:
		f.content.Focus()
	case fieldImage:
		f.imagePath.Focus()
	}
}

func (f *entryForm) focusNext(step int) {
	n := int(fieldCount)
	f.setFocus(formField(((int(f.focus)+step)%n + n) % n))
}

// update forwards msg to the focused widget.
func (f *entryForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.focus {
	case fieldTitle:
		f.title, cmd = f.title.Update(msg)
	case fieldContent:
		f.content, cmd = f.content.Update(msg)
	case fieldImage:
		f.imagePath, cmd = f.imagePath.Update(msg)
	}
	return cmd
}

func (f *entryForm) view(loadingImage bool) string {
	var b strings.Builder

	heading := "✏️ New entry"
	if f.isEditing() {
		heading = "✏️ Editing entry"
	}
	b.WriteString(titleStyle.Render(heading))
	b.WriteString("\n\n")

	b.WriteString(f.label(fieldTitle, "Title  "))
	b.WriteString(f.title.View())
	b.WriteString("\n")

	b.WriteString(f.label(fieldContent, "Entry"))
	b.WriteString("\n")
	b.WriteString(f.content.View())
	b.WriteString("\n")

	b.WriteString(f.label(fieldMood, "Mood   "))
	b.WriteString("◀ ")
	b.WriteString(string(f.mood()))
	b.WriteString(" ")
	b.WriteString(f.mood().Label())
	b.WriteString(" ▶\n")

	b.WriteString(f.label(fieldImage, "Image  "))
	b.WriteString(f.imagePath.View())
	b.WriteString("\n")
	switch {
	case loadingImage:
		b.WriteString("         loading image...\n")
	case f.images.Staged() != nil:
		b.WriteString("         📷 image attached (ctrl+x to remove)\n")
	}

	save := "💾 Save Entry"
	if f.isEditing() {
		save = "💾 Update Entry"
	}
	b.WriteString("\n[")
	b.WriteString(save)
	b.WriteString("]")

	return b.String()
}

func (f *entryForm) label(field formField, text string) string {
	if f.focus == field {
		return focusedStyle.Render("> " + text + " ")
	}
	return "  " + text + " "
}

func moodIndex(mood models.Mood) int {
	for i, m := range models.Moods {
		if m == mood {
			return i
		}
	}
	return 0
}
