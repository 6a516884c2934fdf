// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#e74c3c"))
	noticeStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#764ba2"))
	selectedStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#667eea"))
	focusedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#667eea"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)
