package message

import (
	tea "charm.land/bubbletea/v2"

	nt "gridmenu/entity"
)

// GetPageCmd returns a command to request a page of data
func GetPageCmd(offset, size int) tea.Cmd {
	return func() tea.Msg {
		return GetPageMsg{
			Offset: offset,
			Size:   size,
		}
	}
}

// ErrorCmd returns a command reporting err
func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		return ErrorMsg{Err: err}
	}
}

// SubmitColumnsCmd returns a command delivering columns to the host
func SubmitColumnsCmd(columns []nt.Column) tea.Cmd {
	columns = nt.CloneColumns(columns)
	return func() tea.Msg {
		return ColumnsSubmittedMsg{Columns: columns}
	}
}

// CloseMenuCmd returns a command closing the column menu
func CloseMenuCmd() tea.Cmd {
	return func() tea.Msg {
		return CloseMenuMsg{}
	}
}
