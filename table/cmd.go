package table

import (
	tea "charm.land/bubbletea/v2"

	"gridmenu/message"
)

func (pnl TablePanel) selectedCmd() tea.Cmd {

	id, err := pnl.SelectedId()
	if err != nil {
		return nil
	}

	row := pnl.selected + 1 // 1-indexed for display

	return func() tea.Msg {
		return message.SelectedMsg{
			Row: row,
			Id:  id,
		}
	}
}

func (pnl TablePanel) openMenuCmd() tea.Cmd {

	field, err := pnl.SelectedField()
	if err != nil {
		return message.ErrorCmd(err)
	}

	return func() tea.Msg {
		return message.OpenMenuMsg{Field: field}
	}
}
