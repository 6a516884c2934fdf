// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/go-diary/internal/attachment"
	"github.com/MKhiriev/go-diary/internal/service"
	"github.com/MKhiriev/go-diary/models"
)

// NavigateTo switches the active page. Payload, when set, is delivered to
// the new page as the next message.
type NavigateTo struct {
	Page    string
	Payload any
}

// unlockDoneMsg carries the result of the login attempt.
type unlockDoneMsg struct {
	outcome service.UnlockOutcome
	session *session
	err     error
}

// sessionStartedMsg opens the diary page on a freshly unlocked session.
type sessionStartedMsg struct {
	outcome service.UnlockOutcome
	session *session
}

// lockedMsg returns the login page to its initial state.
type lockedMsg struct{}

// entrySavedMsg, entryDeletedMsg and imageLoadedMsg carry the session that
// started the command. Results of a session that has since been locked are
// dropped.
type entrySavedMsg struct {
	session *session
	entry   models.DiaryEntry
	updated bool
	err     error
}

type entryDeletedMsg struct {
	session *session
	id      int64
	removed bool
	err     error
}

type imageLoadedMsg struct {
	session *session
	ticket  attachment.Ticket
	result  attachment.Result
}

type clearNotificationMsg struct {
	seq int
}

// session is the state that lives exactly as long as the diary is unlocked.
type session struct {
	ctx     context.Context
	id      string
	entries service.EntryStore
}
