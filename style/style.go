// Package style holds the palette shared by grid, menu and filter panels.
package style

import (
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
)

// FilterIcon is drawn after each header title.
const FilterIcon = "⏷"

var (
	border = lipgloss.Color("240")
	muted  = lipgloss.Color("246")

	// grid highlights, the cell being strongest
	HlRowStyle  = lipgloss.NewStyle().Background(lipgloss.Color("235"))
	HlColStyle  = lipgloss.NewStyle().Background(lipgloss.Color("234"))
	HlCellStyle = lipgloss.NewStyle().Background(lipgloss.Color("237"))

	MutedStyle   = lipgloss.NewStyle().Foreground(muted)
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	SectionStyle = lipgloss.NewStyle().Bold(true)
	ButtonStyle  = lipgloss.NewStyle().Padding(0, 1).Background(lipgloss.Color("238"))

	FilterIconStyle = lipgloss.NewStyle().Foreground(border)
	FilterMarkStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("31"))

	DialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(1, 2)
)

// CellStyler crosshairs the selected cell, leaving the header row alone.
func CellStyler(selectedRow, selectedCol int) func(row, col int) lipgloss.Style {
	return func(row, col int) lipgloss.Style {
		switch {
		case row == table.HeaderRow:
			return lipgloss.NewStyle()
		case row == selectedRow && col == selectedCol:
			return HlCellStyle
		case row == selectedRow:
			return HlRowStyle
		case col == selectedCol:
			return HlColStyle
		}
		return lipgloss.NewStyle()
	}
}

// StyleTable draws only the rule under the headers.
func StyleTable(tbl *table.Table) {

	rule := "─"
	tbl.Border(lipgloss.Border{Top: rule, Middle: rule, MiddleLeft: rule, MiddleRight: rule}).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		BorderStyle(lipgloss.NewStyle().Foreground(border))
}
