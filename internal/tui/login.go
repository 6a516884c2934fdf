// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/internal/service"
	"github.com/MKhiriev/go-diary/internal/utils"
	"github.com/MKhiriev/go-diary/models"
)

// entryStoreOpener creates the entry store of a new unlocked session.
type entryStoreOpener interface {
	OpenEntryStore(ctx context.Context) (service.EntryStore, error)
}

// LoginModel is the Bubble Tea model for the login screen. It renders one
// masked passphrase input and dispatches an async unlock on enter. On success
// it navigates to the diary page with the new session as payload.
type LoginModel struct {
	ctx       context.Context
	gate      service.ClientGateService
	opener    entryStoreOpener
	logger    *logger.Logger
	buildInfo models.AppBuildInfo

	input      textinput.Model
	revealed   bool
	submitting bool
	errMsg     string
	firstRun   bool
}

// NewLoginModel creates a [LoginModel] with a focused, masked passphrase input.
func NewLoginModel(ctx context.Context, gate service.ClientGateService, opener entryStoreOpener, logger *logger.Logger, buildInfo models.AppBuildInfo) *LoginModel {
	input := textinput.New()
	input.Placeholder = "password"
	input.CharLimit = 256
	input.Width = 40
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '•'
	input.Focus()

	m := &LoginModel{
		ctx:       ctx,
		gate:      gate,
		opener:    opener,
		logger:    logger,
		buildInfo: buildInfo,
		input:     input,
	}
	if enrolled, err := gate.IsEnrolled(ctx); err == nil {
		m.firstRun = !enrolled
	}
	return m
}

func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [unlockDoneMsg]     on error shows the message, on success opens the diary.
//   - [lockedMsg]         resets the screen after the diary was locked.
//   - ctrl+r              toggles passphrase visibility.
//   - enter               dispatches the async unlock command.
//
// All other key events are forwarded to the input widget.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case unlockDoneMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			m.input.Reset()
			return m, nil
		}
		m.reset()
		return m, func() tea.Msg {
			return NavigateTo{Page: pageDiary, Payload: sessionStartedMsg{outcome: msg.outcome, session: msg.session}}
		}

	case lockedMsg:
		m.reset()
		if enrolled, err := m.gate.IsEnrolled(m.ctx); err == nil {
			m.firstRun = !enrolled
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.reveal):
			m.toggleReveal()
			return m, nil
		case key.Matches(msg, keys.enter):
			if m.submitting {
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			return m, m.cmdUnlock(m.input.Value())
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *LoginModel) View() string {
	var b strings.Builder

	if m.firstRun {
		b.WriteString("Choose a password to protect your diary.\n\n")
	} else {
		b.WriteString("Enter your password to open your diary.\n\n")
	}

	eye := "👁️"
	if m.revealed {
		eye = "🙈"
	}
	b.WriteString("🔑 [")
	b.WriteString(m.input.View())
	b.WriteString("] ")
	b.WriteString(eye)
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\n[Unlocking...]\n")
	} else {
		b.WriteString("\n[Unlock]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("go-diary " + m.buildInfo.BuildVersion()))

	return renderPage(titleStyle.Render("📔 MY DIARY"), b.String(), "enter: unlock │ ctrl+r: show/hide │ f1: about")
}

func (m *LoginModel) cmdUnlock(passphrase string) tea.Cmd {
	ctx := m.ctx
	gate := m.gate
	opener := m.opener
	log := m.logger

	return func() tea.Msg {
		sessionID := utils.NewSessionID()
		sessionLog := log.WithSession(sessionID)
		sessionCtx := sessionLog.WithContext(utils.WithSessionID(ctx, sessionID))

		outcome, err := gate.Unlock(sessionCtx, passphrase)
		if err != nil {
			return unlockDoneMsg{err: err}
		}

		entries, err := opener.OpenEntryStore(sessionCtx)
		if err != nil {
			sessionLog.Err(err).Str("func", "*LoginModel.cmdUnlock").Msg("error opening entry store")
			gate.Lock()
			return unlockDoneMsg{err: err}
		}

		return unlockDoneMsg{
			outcome: outcome,
			session: &session{ctx: sessionCtx, id: sessionID, entries: entries},
		}
	}
}

func (m *LoginModel) toggleReveal() {
	m.revealed = !m.revealed
	if m.revealed {
		m.input.EchoMode = textinput.EchoNormal
		return
	}
	m.input.EchoMode = textinput.EchoPassword
}

func (m *LoginModel) reset() {
	m.input.Reset()
	m.revealed = false
	m.input.EchoMode = textinput.EchoPassword
	m.submitting = false
	m.errMsg = ""
}
