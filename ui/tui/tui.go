// Copyright (c) 2026 Keymaster Team
// kvbrowse - read-only key-value database browser
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/kvbrowse/internal/browser"
	"github.com/toeirei/kvbrowse/ui/tui/models/views/keylist"
)

// Run browses src until the user quits. The store is closed on every exit
// path, including a failing terminal.
func Run(src browser.PageSource, pageSize int, dbName string) error {
	m, err := keylist.New(src, pageSize, dbName)
	if err != nil {
		src.Close()
		return err
	}
	defer m.Close()

	_, err = tea.NewProgram(
		m,
		tea.WithAltScreen(),
	).Run()
	return err
}
