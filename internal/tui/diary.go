// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-diary/internal/app"
	"github.com/MKhiriev/go-diary/internal/attachment"
	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/internal/service"
	"github.com/MKhiriev/go-diary/models"
)

const listWindow = 5

var writeClipboard = clipboard.WriteAll

// diaryModel is the unlocked screen: the entry list on the left and the
// entry form on the right. It is bound to one session at a time.
type diaryModel struct {
	gate service.ClientGateService
	opts Options

	session *session
	form    *entryForm
	idx     int
	// focusList is true while keys drive the list, false while they drive the form.
	focusList bool
	confirm   confirmModel

	notice      string
	noticeIsErr bool
	noticeSeq   int

	saving       bool
	loadingImage bool
	spinner      spinner.Model
}

func newDiaryModel(gate service.ClientGateService, opts Options) *diaryModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &diaryModel{
		gate:      gate,
		opts:      opts.withDefaults(),
		form:      newEntryForm(),
		focusList: true,
		spinner:   s,
	}
}

func (m *diaryModel) Init() tea.Cmd {
	return nil
}

func (m *diaryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionStartedMsg:
		m.start(msg.session)
		if msg.outcome == service.Enrolled {
			return m, m.notify(app.MsgPassphraseSet)
		}
		return m, m.notify(app.MsgWelcome)

	case entrySavedMsg:
		if !m.owns(msg.session) {
			return m, nil
		}
		m.saving = false
		if msg.err != nil {
			if errors.Is(msg.err, service.ErrEntryNotFound) {
				m.resetForm()
				m.focusList = true
			}
			return m, m.notifyError(msg.err)
		}
		m.resetForm()
		m.focusList = true
		if msg.updated {
			m.selectEntry(msg.entry.ID)
		} else {
			m.idx = 0
		}
		return m, m.notify(app.MsgEntrySaved)

	case entryDeletedMsg:
		if !m.owns(msg.session) {
			return m, nil
		}
		if msg.err != nil {
			return m, m.notifyError(msg.err)
		}
		if !msg.removed {
			return m, nil
		}
		if m.form.editID != nil && *m.form.editID == msg.id {
			m.resetForm()
		}
		m.clampIndex()
		return m, m.notify(app.MsgEntryDeleted)

	case imageLoadedMsg:
		if !m.owns(msg.session) {
			return m, nil
		}
		if !m.form.images.Complete(msg.ticket, msg.result) {
			return m, nil
		}
		m.loadingImage = false
		if msg.result.Err != nil {
			m.form.imagePath.Reset()
			return m, m.notifyError(msg.result.Err)
		}
		return m, m.notify(app.MsgImageAttached)

	case clearNotificationMsg:
		if msg.seq == m.noticeSeq {
			m.notice = ""
			m.noticeIsErr = false
		}
		return m, nil

	case spinner.TickMsg:
		if !m.saving && !m.loadingImage {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.session == nil {
			return m, nil
		}
		if m.confirm.active() {
			return m.updateConfirm(msg)
		}
		if m.focusList {
			return m.updateList(msg)
		}
		return m.updateForm(msg)
	}

	if !m.focusList {
		return m, m.form.update(msg)
	}
	return m, nil
}

func (m *diaryModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < m.session.entries.Count()-1 {
			m.idx++
		}
	case key.Matches(msg, keys.newEntry):
		m.resetForm()
		m.focusList = false
	case key.Matches(msg, keys.tab):
		m.focusList = false
		m.form.setFocus(m.form.focus)
	case key.Matches(msg, keys.edit):
		entry, ok := m.current()
		if !ok {
			return m, nil
		}
		m.loadingImage = false
		m.form.startEdit(entry)
		m.focusList = false
	case key.Matches(msg, keys.delete):
		entry, ok := m.current()
		if !ok {
			return m, nil
		}
		m.confirm = confirmModel{action: confirmDelete, message: app.MsgConfirmDelete, entryID: entry.ID}
	case key.Matches(msg, keys.copy):
		entry, ok := m.current()
		if !ok {
			return m, nil
		}
		if err := writeClipboard(clipboardText(entry)); err != nil {
			logger.FromContext(m.session.ctx).Err(err).Str("func", "*diaryModel.updateList").Msg("clipboard unavailable")
			return m, m.notifyText(app.MsgClipboardFailed, true)
		}
		return m, m.notify(app.MsgEntryCopied)
	case key.Matches(msg, keys.lock):
		m.confirm = confirmModel{action: confirmLock, message: app.MsgConfirmLock}
	}
	return m, nil
}

func (m *diaryModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.resetForm()
		m.focusList = true
		return m, nil
	case key.Matches(msg, keys.save):
		if m.saving {
			return m, nil
		}
		m.saving = true
		return m, tea.Batch(m.cmdSave(), m.spinner.Tick)
	case key.Matches(msg, keys.tab):
		m.form.focusNext(1)
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.form.focusNext(-1)
		return m, nil
	case key.Matches(msg, keys.noImage):
		hadImage := m.form.images.Staged() != nil || m.loadingImage
		m.form.images.Clear()
		m.form.imagePath.Reset()
		m.loadingImage = false
		if hadImage {
			return m, m.notify(app.MsgImageRemoved)
		}
		return m, nil
	}

	switch m.form.focus {
	case fieldMood:
		switch {
		case key.Matches(msg, keys.left):
			m.form.nextMood(-1)
		case key.Matches(msg, keys.right), msg.String() == " ":
			m.form.nextMood(1)
		}
		return m, nil
	case fieldTitle:
		if key.Matches(msg, keys.enter) {
			m.form.focusNext(1)
			return m, nil
		}
	case fieldImage:
		if key.Matches(msg, keys.enter) {
			path := cleanPath(m.form.imagePath.Value())
			if path == "" {
				return m, nil
			}
			ticket := m.form.images.Begin()
			m.loadingImage = true
			return m, tea.Batch(m.cmdLoadImage(ticket, path), m.spinner.Tick)
		}
	}

	return m, m.form.update(msg)
}

func (m *diaryModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		c := m.confirm
		m.confirm = confirmModel{}
		switch c.action {
		case confirmDelete:
			return m, m.cmdDelete(c.entryID)
		case confirmLock:
			return m, m.lock()
		}
	case key.Matches(msg, keys.no):
		m.confirm = confirmModel{}
	}
	return m, nil
}

func (m *diaryModel) View() string {
	if m.session == nil {
		return renderPage(titleStyle.Render("📔 MY DIARY"), "🔒 locked", "")
	}

	var b strings.Builder
	if m.notice != "" {
		style := noticeStyle
		if m.noticeIsErr {
			style = errorStyle
		}
		b.WriteString(style.Render(m.notice))
		b.WriteString("\n\n")
	}

	if m.confirm.active() {
		b.WriteString(m.confirm.View())
		return renderPage(titleStyle.Render("📔 MY DIARY"), b.String(), "y: yes │ n: no")
	}

	form := m.form.view(m.loadingImage)
	if m.saving || m.loadingImage {
		form += " " + m.spinner.View()
	}

	columns := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(58).MarginRight(2).Render(m.listView()),
		form,
	)
	b.WriteString(columns)

	hotKeys := "n: new │ e/enter: edit │ d: delete │ c: copy │ l: lock │ ↑/↓: nav │ tab: form"
	if !m.focusList {
		hotKeys = "ctrl+s: save │ esc: cancel │ tab: next field │ ←/→: mood │ enter on image: attach │ ctrl+x: remove image"
	}
	return renderPage(titleStyle.Render("📔 MY DIARY"), b.String(), hotKeys)
}

func (m *diaryModel) listView() string {
	entries := m.session.entries.List()

	var b strings.Builder
	b.WriteString(titleStyle.Render("📚 My Entries"))
	b.WriteString("  ")
	b.WriteString(helpStyle.Render(entryCountLabel(len(entries))))
	b.WriteString("\n\n")

	if len(entries) == 0 {
		b.WriteString(app.MsgNoEntries)
		return b.String()
	}

	start := 0
	if m.idx >= listWindow {
		start = m.idx - listWindow + 1
	}
	end := min(start+listWindow, len(entries))

	for i := start; i < end; i++ {
		e := entries[i]
		cursor := "  "
		header := string(e.Mood) + " " + formatEntryDate(e.CreatedAt)
		if i == m.idx && m.focusList {
			cursor = "> "
			header = selectedStyle.Render(header)
		}

		b.WriteString(cursor)
		b.WriteString(header)
		b.WriteString("\n  ")
		title := fitText(e.Title, 44)
		if e.HasImage() {
			title += " 📷"
		}
		b.WriteString(titleStyle.Render(title))
		b.WriteString("\n  ")
		b.WriteString(fitText(e.Content, 52))
		b.WriteString("\n\n")
	}
	if end < len(entries) {
		b.WriteString(helpStyle.Render("  ↓ more"))
	}

	return b.String()
}

// start binds the page to a freshly unlocked session.
func (m *diaryModel) start(s *session) {
	m.session = s
	m.idx = 0
	m.focusList = true
	m.confirm = confirmModel{}
	m.saving = false
	m.resetForm()
}

// owns reports whether s is the session the page is currently bound to.
func (m *diaryModel) owns(s *session) bool {
	return s != nil && s == m.session
}

// lock discards the session and returns to the login page.
func (m *diaryModel) lock() tea.Cmd {
	if m.session != nil {
		logger.FromContext(m.session.ctx).Info().Str("func", "*diaryModel.lock").Msg("diary locked")
	}
	m.gate.Lock()
	m.session = nil
	m.saving = false
	m.resetForm()
	m.confirm = confirmModel{}
	m.notice = ""
	m.idx = 0

	return func() tea.Msg { return NavigateTo{Page: pageLogin, Payload: lockedMsg{}} }
}

func (m *diaryModel) resetForm() {
	m.form.reset()
	m.loadingImage = false
}

func (m *diaryModel) current() (models.DiaryEntry, bool) {
	entries := m.session.entries.List()
	if m.idx < 0 || m.idx >= len(entries) {
		return models.DiaryEntry{}, false
	}
	return entries[m.idx], true
}

func (m *diaryModel) selectEntry(id int64) {
	for i, e := range m.session.entries.List() {
		if e.ID == id {
			m.idx = i
			return
		}
	}
}

func (m *diaryModel) clampIndex() {
	if n := m.session.entries.Count(); m.idx >= n {
		m.idx = n - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

// notify shows text until the notification TTL elapses or a newer
// notification replaces it.
func (m *diaryModel) notify(text string) tea.Cmd {
	return m.notifyText(text, false)
}

func (m *diaryModel) notifyError(err error) tea.Cmd {
	if m.session != nil {
		logger.FromContext(m.session.ctx).Err(err).Str("func", "*diaryModel.notifyError").Msg("operation failed")
	}
	return m.notifyText(humanizeError(err), true)
}

func (m *diaryModel) notifyText(text string, isErr bool) tea.Cmd {
	m.noticeSeq++
	m.notice = text
	m.noticeIsErr = isErr

	seq := m.noticeSeq
	return tea.Tick(m.opts.NotificationTTL, func(time.Time) tea.Msg {
		return clearNotificationMsg{seq: seq}
	})
}

func (m *diaryModel) cmdSave() tea.Cmd {
	s := m.session
	draft := m.form.draft()
	editID := m.form.editID

	return func() tea.Msg {
		if editID != nil {
			entry, err := s.entries.Update(s.ctx, *editID, draft)
			return entrySavedMsg{session: s, entry: entry, updated: true, err: err}
		}
		entry, err := s.entries.Create(s.ctx, draft)
		return entrySavedMsg{session: s, entry: entry, err: err}
	}
}

func (m *diaryModel) cmdDelete(id int64) tea.Cmd {
	s := m.session

	return func() tea.Msg {
		removed, err := s.entries.Delete(s.ctx, id)
		return entryDeletedMsg{session: s, id: id, removed: removed, err: err}
	}
}

func (m *diaryModel) cmdLoadImage(ticket attachment.Ticket, path string) tea.Cmd {
	s := m.session
	limit := m.opts.MaxImageSize

	return func() tea.Msg {
		uri, err := attachment.Load(s.ctx, path, limit)
		return imageLoadedMsg{session: s, ticket: ticket, result: attachment.Result{DataURI: uri, Err: err}}
	}
}

// clipboardText renders an entry the way it is copied to the clipboard.
func clipboardText(e models.DiaryEntry) string {
	var b strings.Builder
	b.WriteString(string(e.Mood))
	b.WriteString(" ")
	b.WriteString(e.Title)
	b.WriteString("\n")
	b.WriteString(formatEntryDate(e.CreatedAt))
	b.WriteString("\n\n")
	b.WriteString(e.Content)
	return b.String()
}

// cleanPath strips the quotes terminals add around dropped file paths.
func cleanPath(p string) string {
	return strings.Trim(strings.TrimSpace(p), `"'`)
}
