package gridmenu

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	nt "gridmenu/entity"
	"gridmenu/highlight"
	"gridmenu/menu"
	"gridmenu/message"
	"gridmenu/style"
	"gridmenu/table"
)

const (
	footerHeight = 2
)

// Model is the bubbletea model hosting the grid and its column menu.
type Model struct {
	store      Store
	layout     *Layout
	layoutPath string

	logger      nt.Logger
	ctx         context.Context
	errorString string

	CurrentScreen Screen
	selected      int // 1-indexed, 0 before any selection

	TablePanel table.TablePanel
	MenuPanel  menu.MenuPanel

	Width  int
	Height int
}

// NewModel creates a new bt model, layoutPath may be empty for no writes.
func NewModel(ctx context.Context, store Store, layout *Layout, layoutPath string, lgr nt.Logger) (model Model, err error) {

	err = store.SetView(layout.Filter, layout.Sorts)
	if err != nil {
		return
	}

	fields, count, err := store.GetView()
	if err != nil {
		return
	}

	cfg := table.Config{
		Grid: layout.Menu.GridClass,
		Sync: highlight.Synchronizer{
			Scope: highlight.Selector{
				GridClass:  layout.Menu.GridClass,
				ChildClass: layout.Menu.ChildClass,
			},
			Custom: layout.Custom,
		},
		Filter: layout.Filter,
	}

	model = Model{
		store:         store,
		layout:        layout,
		layoutPath:    layoutPath,
		logger:        lgr,
		ctx:           ctx,
		CurrentScreen: TableScreen,
		TablePanel:    cfg.New(ctx, layout.Columns, fields, count, lgr),
	}

	return
}

// Layout returns the current layout.
func (m Model) Layout() Layout {
	return *m.layout
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {

	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

		var cmd tea.Cmd
		m, cmd = m.updateTable(table.SizeMsg{Width: msg.Width, Height: msg.Height - footerHeight})
		if m.CurrentScreen == MenuScreen {
			m = m.updateMenu(menu.SizeMsg{Width: msg.Width, Height: msg.Height - footerHeight})
		}
		return m, cmd

	case message.GetPageMsg:
		return m, m.getPage(msg.Offset, msg.Size)

	case message.SelectedMsg:
		m.selected = msg.Row
		return m, nil

	case message.ErrorMsg:
		m.logger.Error(m.ctx, "error msg", msg.Err)
		m.errorString = msg.Err.Error()
		return m, nil

	case message.OpenMenuMsg:
		return m.openMenu(msg.Field)

	case message.ColumnsSubmittedMsg:
		m.layout.Columns = nt.CloneColumns(msg.Columns)
		if m.CurrentScreen == MenuScreen {
			m = m.updateMenu(menu.ColumnsMsg{Columns: m.layout.Columns})
		}
		return m, m.setColumns(m.layout.Columns)

	case message.CloseMenuMsg:
		m.CurrentScreen = TableScreen
		return m, nil

	case message.SetFilterMsg:
		m.layout.Filter = msg.Filter
		m.CurrentScreen = TableScreen
		return m, m.setView()

	case message.SetSortMsg:
		m.layout.Sorts = msg.Sorts
		return m, m.setView()

	case table.TableMsg:
		return m.updateTable(msg)

	case tea.KeyPressMsg:
		if m.errorString != "" {
			m.errorString = ""
		}

		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.CurrentScreen == MenuScreen {
			return m.forwardMenu(msg)
		}

		switch msg.String() {
		case "q", "esc":
			return m, tea.Quit
		case "w":
			return m, m.writeLayout()
		}

		return m.updateTable(msg)
	}

	if m.CurrentScreen == MenuScreen {
		return m.forwardMenu(msg)
	}
	return m, nil
}

func (m Model) View() tea.View {
	if m.Width == 0 {
		return tea.NewView("Loading...")
	}

	var content string
	switch m.CurrentScreen {
	case MenuScreen:
		content = m.MenuPanel.Render()
	default:
		content = m.TablePanel.Render()
	}
	content = lipgloss.Place(m.Width, m.Height-footerHeight, lipgloss.Left, lipgloss.Top, content)

	footer := RenderFooter(m.selected, m.total(), nt.FilteredFields(m.layout.Filter), m.store.Name(), m.Width)
	if m.errorString != "" {
		footer = style.ErrorStyle.Render(m.errorString)
	}

	view := tea.NewView(lipgloss.JoinVertical(lipgloss.Left, content, "", footer))
	view.AltScreen = true
	return view
}

// unexported

func (m Model) openMenu(field string) (Model, tea.Cmd) {

	section, err := m.filterSection(field)
	if err != nil {
		return m, message.ErrorCmd(err)
	}

	m.MenuPanel = menu.NewMenuPanel(m.ctx, m.logger, m.menuConfig(field), section)
	m.CurrentScreen = MenuScreen
	m = m.updateMenu(menu.SizeMsg{Width: m.Width, Height: m.Height - footerHeight})

	m.logger.Info(m.ctx, "opened column menu", "field", field)
	return m, nil
}

func (m Model) updateTable(msg tea.Msg) (Model, tea.Cmd) {

	model, cmd := m.TablePanel.Update(msg)
	m.TablePanel = model.(table.TablePanel)
	return m, cmd
}

func (m Model) forwardMenu(msg tea.Msg) (tea.Model, tea.Cmd) {

	model, cmd := m.MenuPanel.Update(msg)
	m.MenuPanel = model.(menu.MenuPanel)
	return m, cmd
}

// updateMenu applies a message that yields no command
func (m Model) updateMenu(msg menu.MenuMsg) Model {

	model, _ := m.MenuPanel.Update(msg)
	m.MenuPanel = model.(menu.MenuPanel)
	return m
}

func (m Model) total() int {
	return m.TablePanel.Total()
}
