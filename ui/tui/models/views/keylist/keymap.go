// Copyright (c) 2026 Keymaster Team
// kvbrowse - read-only key-value database browser
// This source code is licensed under the MIT license found in the LICENSE file.
package keylist

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/kvbrowse/internal/browser"
	"github.com/toeirei/kvbrowse/internal/i18n"
)

type KeyMap struct {
	Prev key.Binding
	Next key.Binding
	Quit key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Prev, km.Next, km.Quit}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{km.Prev, km.Next}, {km.Quit}}
}

// *KeyMap implements help.KeyMap
var _ help.KeyMap = (*KeyMap)(nil)

// NewKeyMap builds the bindings with help text in the active language.
func NewKeyMap() KeyMap {
	return KeyMap{
		Prev: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("←/h", i18n.T("browser.help_prev")),
		),
		Next: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("→/l", i18n.T("browser.help_next")),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", i18n.T("browser.help_quit")),
		),
	}
}

// Event maps a key press onto a browser event. Unbound keys are Ignored.
func (km KeyMap) Event(msg tea.KeyMsg) browser.Event {
	switch {
	case key.Matches(msg, km.Prev):
		return browser.PrevPage
	case key.Matches(msg, km.Next):
		return browser.NextPage
	case key.Matches(msg, km.Quit):
		return browser.Quit
	}
	return browser.Ignored
}
