package menu

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"gridmenu/board"
	"gridmenu/board/piece"
	nt "gridmenu/entity"
	"gridmenu/filter"
	"gridmenu/message"
	"gridmenu/style"
)

// FilterSection is the filter editor a menu hosts.
type FilterSection interface {
	tea.Model
	Render() string
}

// MenuPanel displays a column menu as a modal dialog
type MenuPanel struct {
	ctl    Controller
	board  board.Board
	slots  [][]slot
	filter FilterSection

	width  int
	height int

	ctx    context.Context
	logger nt.Logger
}

type slotKind int

const (
	slotLabel slotKind = iota
	slotSortAsc
	slotSortDesc
	slotSortClear
	slotFilter
	slotColumns
	slotToggle
	slotReset
	slotSave
)

// slot ties a board square to a menu action
type slot struct {
	kind  slotKind
	index int // working column index for toggles
}

// NewMenuPanel opens a menu session, filterSection may be nil.
func NewMenuPanel(ctx context.Context, lgr nt.Logger, cfg Config, filterSection FilterSection) MenuPanel {

	if filterSection == nil && cfg.ShowColumnMenuFilter {
		filterSection = filter.NewFilterPanel(ctx, lgr, cfg.Field, cfg.Filter)
	}

	pnl := MenuPanel{
		ctl:    *cfg.New(),
		filter: filterSection,
		ctx:    ctx,
		logger: lgr,
	}
	pnl = pnl.rebuild(0, 0)

	return pnl
}

func (pnl MenuPanel) Init() tea.Cmd {
	return nil
}

// Controller returns a copy of the menu state.
func (pnl MenuPanel) Controller() *Controller {
	ctl := pnl.ctl
	ctl.working = nt.CloneColumns(pnl.ctl.working)
	return &ctl
}

func (pnl MenuPanel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case SizeMsg:
		pnl.width = msg.Width
		pnl.height = msg.Height
		if pnl.filter != nil {
			return pnl.updateFilter(filter.SizeMsg{Width: msg.Width, Height: msg.Height})
		}
		return pnl, nil

	case ColumnsMsg:
		pnl.ctl.SetColumns(msg.Columns)
		return pnl.rebuild(pnl.board.Position()), nil
	}

	// everything else belongs to an open filter section
	if pnl.filter != nil && pnl.ctl.FilterExpanded() {
		if key, ok := msg.(tea.KeyPressMsg); ok && key.String() == "esc" {
			pnl.ctl.ExpandFilterSection(false)
			return pnl.rebuild(pnl.board.Position()), nil
		}
		return pnl.updateFilter(msg)
	}

	if key, ok := msg.(tea.KeyPressMsg); ok {
		return pnl.handleKey(key)
	}

	return pnl, nil
}

func (pnl MenuPanel) View() tea.View {
	return tea.NewView(pnl.Render())
}

// Render draws the menu dialog
func (pnl MenuPanel) Render() string {

	var content strings.Builder

	cfg := pnl.ctl.cfg
	title := cfg.Field
	if custom, ok := cfg.CustomCol[cfg.Field]; ok && custom.Title != "" {
		title = custom.Title
	} else if col, ok := nt.FindColumn(cfg.Columns, cfg.Field); ok {
		title = col.Label()
	}
	content.WriteString(style.SectionStyle.Render(title) + "\n\n")
	content.WriteString(pnl.board.Render())

	if pnl.filter != nil && pnl.ctl.FilterExpanded() {
		content.WriteString("\n\n" + pnl.filter.Render())
	}

	helpText := "↑↓: move  t: toggle  enter: press  s: save  r: reset  esc: close"
	if pnl.ctl.FilterExpanded() {
		helpText = "esc: back to menu"
	}
	content.WriteString("\n\n" + style.MutedStyle.Render(helpText))

	dialog := style.DialogStyle.Render(content.String())

	if pnl.width > 0 && pnl.height > 0 {
		return lipgloss.Place(pnl.width, pnl.height, lipgloss.Center, lipgloss.Center, dialog)
	}
	return dialog
}

// unexported

func (pnl MenuPanel) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {

	key := msg.String()
	switch key {
	case "esc":
		return pnl, pnl.close()

	case "s":
		if pnl.ctl.cfg.HideColumns {
			return pnl, nil
		}
		return pnl, pnl.ctl.Submit()

	case "r":
		if pnl.ctl.cfg.HideColumns {
			return pnl, nil
		}
		return pnl, pnl.ctl.Reset()

	case "c":
		if pnl.ctl.cfg.HideColumns {
			return pnl, nil
		}
		pnl.ctl.ExpandColumnsSection()
		return pnl.rebuild(pnl.board.Position()), nil

	case "f":
		if pnl.filter == nil {
			return pnl, nil
		}
		pnl.ctl.ExpandFilterSection(!pnl.ctl.FilterExpanded())
		return pnl.rebuild(pnl.board.Position()), nil
	}

	// the cursor square acts here, piece commands are dropped
	rank, file := pnl.board.Position()
	if sl, ok := pnl.slot(rank, file); ok {
		switch {
		case sl.kind == slotToggle && (key == "t" || key == "space"):
			pnl.ctl.ToggleColumn(sl.index)
			return pnl.rebuild(rank, file), nil

		case sl.kind != slotToggle && sl.kind != slotLabel && (key == "enter" || key == "space"):
			return pnl.press(sl, rank, file)
		}
	}

	updated, _ := pnl.board.Update(msg)
	pnl.board = updated.(board.Board)
	return pnl, nil
}

func (pnl MenuPanel) press(sl slot, rank, file int) (tea.Model, tea.Cmd) {

	cfg := pnl.ctl.cfg

	switch sl.kind {
	case slotSortAsc, slotSortDesc:
		sorts := []nt.Sort{{Field: cfg.Field, Desc: sl.kind == slotSortDesc}}
		return pnl, tea.Sequence(setSortCmd(sorts), pnl.close())

	case slotSortClear:
		return pnl, tea.Sequence(setSortCmd(nil), pnl.close())

	case slotFilter:
		pnl.ctl.ExpandFilterSection(!pnl.ctl.FilterExpanded())

	case slotColumns:
		pnl.ctl.ExpandColumnsSection()

	case slotReset:
		return pnl, pnl.ctl.ResetFilteredColumns()

	case slotSave:
		return pnl, pnl.ctl.SaveFilteredColumns()
	}

	return pnl.rebuild(rank, file), nil
}

func (pnl MenuPanel) updateFilter(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := pnl.filter.Update(msg)
	pnl.filter = updated.(FilterSection)
	return pnl, cmd
}

func (pnl MenuPanel) close() tea.Cmd {
	if pnl.ctl.cfg.OnCloseMenu == nil {
		return nil
	}
	return pnl.ctl.cfg.OnCloseMenu()
}

func (pnl MenuPanel) slot(rank, file int) (sl slot, ok bool) {
	if rank < 0 || rank >= len(pnl.slots) {
		return
	}
	if file < 0 || file >= len(pnl.slots[rank]) {
		return
	}
	return pnl.slots[rank][file], true
}

// rebuild lays out the board from controller state, keeping position
func (pnl MenuPanel) rebuild(rank, file int) MenuPanel {

	cfg := pnl.ctl.cfg
	ranks := []board.Rank{}
	slots := [][]slot{}

	add := func(pieces []board.Piece, sls []slot) {
		ranks = append(ranks, board.NewRank(pieces))
		slots = append(slots, sls)
	}

	if cfg.ShowColumnMenuSort {
		add(
			[]board.Piece{
				piece.NewButton("↑ Asc"),
				piece.NewButton("↓ Desc"),
				piece.NewButton("Clear sort"),
			},
			[]slot{{kind: slotSortAsc}, {kind: slotSortDesc}, {kind: slotSortClear}},
		)
	}

	if pnl.filter != nil {
		add(
			[]board.Piece{piece.NewButton(expander("Filter", pnl.ctl.FilterExpanded()))},
			[]slot{{kind: slotFilter}},
		)
	}

	if !cfg.HideColumns {
		add(
			[]board.Piece{piece.NewButton(expander("Columns", pnl.ctl.ColumnsExpanded()))},
			[]slot{{kind: slotColumns}},
		)

		if pnl.ctl.ColumnsExpanded() {
			for _, row := range pnl.ctl.Rows() {
				add(
					[]board.Piece{
						piece.NewCheckbox(row.Checked).Labeled(row.Id, row.Label).Disabled(row.Disabled),
					},
					[]slot{{kind: slotToggle, index: row.Index}},
				)
			}
			add(
				[]board.Piece{piece.NewButton("Reset"), piece.NewButton("Save")},
				[]slot{{kind: slotReset}, {kind: slotSave}},
			)
		}
	}

	if len(ranks) == 0 {
		add([]board.Piece{piece.NewLabel("(nothing to show)").Muted()}, []slot{{kind: slotLabel}})
	}

	brd, err := board.New(ranks, nil, rank, file)
	if err != nil {
		pnl.logger.Error(pnl.ctx, "failed to build menu board", err)
	}

	pnl.board = brd
	pnl.slots = slots
	return pnl
}

func expander(label string, expanded bool) string {
	if expanded {
		return "▾ " + label
	}
	return "▸ " + label
}

func setSortCmd(sorts []nt.Sort) tea.Cmd {
	return func() tea.Msg {
		return message.SetSortMsg{Sorts: sorts}
	}
}
