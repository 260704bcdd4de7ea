// Copyright (c) 2026 Keymaster Team
// kvbrowse - read-only key-value database browser
// This source code is licensed under the MIT license found in the LICENSE file.

// Package keylist is the Bubble Tea view over the paging controller. It
// translates key presses into browser events and draws the latest frame.
package keylist

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/kvbrowse/internal/browser"
	"github.com/toeirei/kvbrowse/ui/tui/models/components/keyhelp"
)

const title string = "kvbrowse"

type Model struct {
	ctrl   *browser.Controller
	frame  browser.Frame
	keys   KeyMap
	help   *keyhelp.Model
	dbName string
	width  int
	height int
}

// New creates the model and loads the first page, so the initial frame is
// ready before the program draws anything.
func New(src browser.PageSource, pageSize int, dbName string) (*Model, error) {
	m := &Model{
		keys:   NewKeyMap(),
		dbName: dbName,
	}
	m.help = keyhelp.New(m.keys)

	ctrl, err := browser.New(src, pageSize, func(fr browser.Frame) {
		m.frame = fr
	})
	if err != nil {
		return nil, err
	}
	m.ctrl = ctrl
	m.ctrl.Start()
	return m, nil
}

func (m *Model) Init() tea.Cmd {
	return tea.SetWindowTitle(title + " | " + m.dbName)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Update(msg)
	case tea.KeyMsg:
		if m.ctrl.Handle(m.keys.Event(msg)) {
			return m, tea.Quit
		}
	}
	return m, nil
}

// Frame returns the frame currently on screen.
func (m *Model) Frame() browser.Frame { return m.frame }

// Done reports whether the user quit.
func (m *Model) Done() bool { return m.ctrl.Done() }

// Close releases the store if the program ended without Quit.
func (m *Model) Close() { m.ctrl.Close() }

// *Model implements tea.Model
var _ tea.Model = (*Model)(nil)
