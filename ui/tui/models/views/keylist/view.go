// Copyright (c) 2026 Keymaster Team
// kvbrowse - read-only key-value database browser
// This source code is licensed under the MIT license found in the LICENSE file.
package keylist

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/toeirei/kvbrowse/internal/browser"
	"github.com/toeirei/kvbrowse/internal/decode"
	"github.com/toeirei/kvbrowse/internal/i18n"
	"github.com/toeirei/kvbrowse/internal/pagestore"
)

const (
	defaultWidth = 80
	valueWidth   = 22
	minKeyWidth  = 8
)

func (m *Model) View() string {
	if m.ctrl.Done() {
		return ""
	}

	width := m.width
	if width <= 0 {
		width = defaultWidth
	}

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		titleStyle.Render(title),
		statusStyle.Render(m.dbName+" | "+browser.StatusLine(m.frame)),
	)

	body := bodyStyle.Render(renderRows(m.frame, width-bodyStyle.GetHorizontalFrameSize()))

	content := lipgloss.JoinVertical(lipgloss.Left, header, "", body)
	footer := m.help.View()

	if m.height > 0 {
		gap := m.height - lipgloss.Height(content) - lipgloss.Height(footer)
		if gap > 0 {
			content += strings.Repeat("\n", gap)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, content, footer)
}

// renderRows draws the page as a three-column table fitted to width.
func renderRows(fr browser.Frame, width int) string {
	if fr.Err != nil {
		return errorStyle.Render(browser.ErrorRow(fr.Err))
	}
	if len(fr.Page.Rows) == 0 {
		return emptyStyle.Render(i18n.T("browser.empty"))
	}

	ordWidth := len(strconv.Itoa(fr.Page.LastOrdinal()))
	keyWidth := max(minKeyWidth, width-ordWidth-valueWidth-2)

	lines := make([]string, 0, len(fr.Page.Rows)+1)
	lines = append(lines, headerStyle.Render(
		pad(i18n.T("browser.col_index"), ordWidth)+" "+
			pad(i18n.T("browser.col_key"), keyWidth)+" "+
			i18n.T("browser.col_value"),
	))
	for _, r := range fr.Page.Rows {
		lines = append(lines, renderRow(r, ordWidth, keyWidth))
	}
	return strings.Join(lines, "\n")
}

func renderRow(r pagestore.Row, ordWidth, keyWidth int) string {
	ord := strconv.Itoa(r.Ordinal)
	ord = strings.Repeat(" ", max(0, ordWidth-len(ord))) + ord
	return ordinalStyle.Render(ord) + " " +
		pad(runewidth.Truncate(r.Key, keyWidth, "…"), keyWidth) + " " +
		valueStyle(r).Render(browser.RowValue(r))
}

func pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

func valueStyle(r pagestore.Row) lipgloss.Style {
	if r.ValueErr != nil {
		return errorStyle
	}
	switch r.Value.Kind {
	case decode.String:
		return strStyle
	case decode.IntegerOrBytes:
		return intStyle
	default:
		return bytesStyle
	}
}
