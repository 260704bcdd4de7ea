// Copyright (c) 2026 Keymaster Team
// kvbrowse - read-only key-value database browser
// This source code is licensed under the MIT license found in the LICENSE file.

// Package keyhelp renders the key binding help line shown in the footer.
package keyhelp

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type Model struct {
	KeyMap help.KeyMap
	help   help.Model
}

func New(keyMap help.KeyMap) *Model {
	return &Model{
		KeyMap: keyMap,
		help:   help.New(),
	}
}

func (m *Model) Update(msg tea.Msg) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.help.Width = msg.Width
	}
}

func (m Model) View() string {
	if m.KeyMap == nil {
		return ""
	}
	content := m.help.ShortHelpView(m.KeyMap.ShortHelp())
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		PaddingLeft(1).
		Render(content)
}
