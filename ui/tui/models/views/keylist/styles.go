// Copyright (c) 2026 Keymaster Team
// kvbrowse - read-only key-value database browser
// This source code is licensed under the MIT license found in the LICENSE file.
package keylist

import "github.com/charmbracelet/lipgloss"

const (
	colorSubtle    = lipgloss.Color("240")
	colorHighlight = lipgloss.Color("81")
	colorError     = lipgloss.Color("196")
	colorWhite     = lipgloss.Color("231")
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(colorHighlight).
			Bold(true).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(colorSubtle).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorHighlight)

	ordinalStyle = lipgloss.NewStyle().Foreground(colorSubtle)

	// Value labels
	strStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("40"))
	intStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	bytesStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("141"))

	emptyStyle = lipgloss.NewStyle().Foreground(colorSubtle).Italic(true)
	errorStyle = lipgloss.NewStyle().Foreground(colorError).Bold(true)

	bodyStyle = lipgloss.NewStyle().Padding(0, 1)
)
