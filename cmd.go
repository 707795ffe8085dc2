package gridmenu

import (
	"slices"

	tea "charm.land/bubbletea/v2"

	nt "gridmenu/entity"
	"gridmenu/filter"
	"gridmenu/menu"
	"gridmenu/message"
	"gridmenu/table"
)

// getPage gets a page of lines from the store
func (m Model) getPage(offset, size int) tea.Cmd {

	return func() tea.Msg {

		_, count, err := m.store.GetView()
		if err != nil {
			return message.ErrorMsg{Err: err}
		}

		lines, err := m.store.GetPage(offset, size)
		if err != nil {
			return message.ErrorMsg{Err: err}
		}

		return table.PageMsg{
			Lines: lines,
			Count: count,
		}
	}
}

// setView pushes layout filter and sorts to the store and resets paging
func (m Model) setView() tea.Cmd {

	err := m.store.SetView(m.layout.Filter, m.layout.Sorts)
	if err != nil {
		return message.ErrorCmd(err)
	}

	filterMsg := table.FilterMsg{Filter: m.layout.Filter}
	return tea.Sequence(
		func() tea.Msg { return filterMsg },
		func() tea.Msg { return table.ResetMsg{} },
	)
}

// setColumns sends columns with current store fields to the table
func (m Model) setColumns(columns []nt.Column) tea.Cmd {

	fields, _, err := m.store.GetView()
	if err != nil {
		return message.ErrorCmd(err)
	}

	return func() tea.Msg {
		return table.ColumnsMsg{Columns: columns, Fields: fields}
	}
}

// writeLayout saves the layout to its file
func (m Model) writeLayout() tea.Cmd {

	if m.layoutPath == "" {
		return nil
	}

	err := m.layout.Write(m.layoutPath)
	if err != nil {
		return message.ErrorCmd(err)
	}

	m.logger.Info(m.ctx, "wrote layout", "path", m.layoutPath)
	return nil
}

// menuConfig builds a menu session config for field
func (m Model) menuConfig(field string) menu.Config {

	opts := m.layout.Menu
	return menu.Config{
		Field:                field,
		Columns:              m.layout.Columns,
		OnColumnsSubmit:      message.SubmitColumnsCmd,
		OnCloseMenu:          message.CloseMenuCmd,
		ShowColumnMenuSort:   opts.Sort,
		ShowColumnMenuFilter: opts.Filter,
		HideColumns:          opts.HideColumns,
		CustomCol:            m.layout.Custom,
		GridClass:            opts.GridClass,
		ChildClass:           opts.ChildClass,
		Filter:               m.layout.Filter,
		Sorts:                m.layout.Sorts,
	}
}

// filterSection picks the filter editor for field, nil for the default
func (m Model) filterSection(field string) (section menu.FilterSection, err error) {

	if !m.layout.Menu.Filter || !slices.Contains(m.layout.Menu.Checkbox, field) {
		return
	}

	values, err := m.store.Distinct(field)
	if err != nil {
		return
	}

	section = filter.NewCheckboxFilter(m.ctx, m.logger, field, values, m.layout.Filter)
	return
}
