// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

// confirmAction is what a confirmed dialog does.
type confirmAction int

const (
	confirmNone confirmAction = iota
	confirmDelete
	confirmLock
)

type confirmModel struct {
	action  confirmAction
	message string
	entryID int64
}

func (m confirmModel) active() bool {
	return m.action != confirmNone
}

func (m confirmModel) View() string {
	content := m.message + "\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
