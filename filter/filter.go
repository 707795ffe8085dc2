package filter

import (
	"context"
	"fmt"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"

	"gridmenu/board"
	"gridmenu/board/piece"
	nt "gridmenu/entity"
	"gridmenu/message"
	"gridmenu/style"
)

// FilterPanel edits the conditions on one field using a Board
type FilterPanel struct {
	field      string
	filter     nt.Filter // host filter the field's group is merged into
	anyOf      bool      // conditions combine with Or
	conditions []nt.Filter
	board      board.Board

	width  int
	height int

	ctx    context.Context
	logger nt.Logger
}

// opStrings for Operator piece
var opStrings = []string{
	"==",
	"!=",
	"contains",
	"matches",
	">",
	">=",
	"<",
	"<=",
}

// opFromString maps operator string back to FilterOp
var opFromString = map[string]nt.FilterOp{
	"==":       nt.Eq,
	"!=":       nt.Ne,
	"contains": nt.Contains,
	"matches":  nt.Match,
	">":        nt.Gt,
	">=":       nt.Gte,
	"<":        nt.Lt,
	"<=":       nt.Lte,
}

var logicStrings = []string{"all", "any"}

const (
	logicRank      = 0
	firstCondition = 1
)

// NewFilterPanel starts from the group currently filtering field, if any.
func NewFilterPanel(ctx context.Context, lgr nt.Logger, field string, filter nt.Filter) FilterPanel {

	pnl := FilterPanel{
		field:  field,
		filter: filter,
		ctx:    ctx,
		logger: lgr,
	}

	group, ok := nt.GroupFor(filter, field)
	switch {
	case !ok:
		pnl.conditions = []nt.Filter{pnl.blank()}
	case group.IsLeaf():
		pnl.conditions = []nt.Filter{group}
	default:
		pnl.anyOf = group.Op == nt.Or
		pnl.conditions = leaves(group)
	}

	for i := range pnl.conditions {
		pnl.conditions[i].Enabled = true
	}

	pnl.board = pnl.buildBoard(firstCondition, 0)
	return pnl
}

func (pnl FilterPanel) Init() tea.Cmd {
	return nil
}

func (pnl FilterPanel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case SizeMsg:
		pnl.width = msg.Width
		pnl.height = msg.Height
		sized, _ := pnl.board.Update(board.SizeMsg{Width: msg.Width, Height: msg.Height})
		pnl.board = sized.(board.Board)
		return pnl, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+n":
			pnl.conditions = append(pnl.conditions, pnl.blank())
			pnl.board = pnl.buildBoard(firstCondition+len(pnl.conditions)-1, 0)
			return pnl, nil

		case "ctrl+x":
			rank, _ := pnl.board.Position()
			idx, ok := pnl.condition(rank)
			if !ok || len(pnl.conditions) == 1 {
				return pnl, nil
			}
			pnl.conditions = append(pnl.conditions[:idx:idx], pnl.conditions[idx+1:]...)
			pnl.board = pnl.buildBoard(min(rank, firstCondition+len(pnl.conditions)-1), 0)
			return pnl, nil
		}

		if btn, ok := pnl.board.Piece().(piece.Button); ok && pressed(msg) {
			return pnl, pnl.press(btn.Label())
		}

		updated, _ := pnl.board.Update(msg)
		pnl.board = updated.(board.Board)
		return pnl.read(), nil
	}

	return pnl, nil
}

func (pnl FilterPanel) View() tea.View {
	return tea.NewView(pnl.Render())
}

// Render draws the conditions with help text
func (pnl FilterPanel) Render() string {

	helpText := "t: toggle  ←→: change op  tab: next  ^n: add  ^x: remove"

	return fmt.Sprintf("Filter %s:\n%s\n\n%s",
		pnl.field,
		pnl.board.Render(),
		style.MutedStyle.Render(helpText))
}

// Group returns the group the enabled conditions form.
func (pnl FilterPanel) Group() nt.Filter {

	var enabled []nt.Filter
	for _, cond := range pnl.conditions {
		if !cond.Enabled || valueString(cond.Value) == "" {
			continue
		}
		cond.Field = pnl.field
		enabled = append(enabled, cond)
	}

	switch {
	case len(enabled) == 0:
		return nt.Filter{}
	case len(enabled) == 1:
		return enabled[0]
	case pnl.anyOf:
		return nt.Filter{Op: nt.Or, Children: enabled}
	}
	return nt.Filter{Op: nt.And, Children: enabled}
}

// unexported

const (
	applyLabel = "Apply"
	clearLabel = "Clear"
)

func (pnl FilterPanel) press(label string) tea.Cmd {
	switch label {
	case applyLabel:
		return pnl.applyCmd()
	case clearLabel:
		return setFilterCmd(nt.WithGroup(pnl.filter, pnl.field, nt.Filter{}))
	}
	return nil
}

// read copies the pieces of the cursor's rank back into the conditions
func (pnl FilterPanel) read() FilterPanel {

	rank, _ := pnl.board.Position()
	if rank == logicRank {
		if op, ok := pnl.board.PieceAt(logicRank, 1).(piece.Operator); ok {
			pnl.anyOf = op.Selected() == "any"
		}
		return pnl
	}

	idx, ok := pnl.condition(rank)
	if !ok {
		return pnl
	}

	cond := pnl.conditions[idx]
	if cb, ok := pnl.board.PieceAt(rank, 0).(piece.Checkbox); ok {
		cond.Enabled = cb.Checked()
	}
	if op, ok := pnl.board.PieceAt(rank, 1).(piece.Operator); ok {
		if fop, ok := opFromString[op.Selected()]; ok {
			cond.Op = fop
		}
	}
	if ti, ok := pnl.board.PieceAt(rank, 2).(piece.TextInput); ok {
		cond.Value = ti.Value()
	}

	pnl.conditions = slices.Clone(pnl.conditions)
	pnl.conditions[idx] = cond
	return pnl
}

func (pnl FilterPanel) applyCmd() tea.Cmd {

	filter := nt.WithGroup(pnl.filter, pnl.field, pnl.Group())
	pnl.logger.Info(pnl.ctx, "applying filter", "field", pnl.field, "groups", len(filter.Groups()))

	return setFilterCmd(filter)
}

func (pnl FilterPanel) blank() nt.Filter {
	return nt.Filter{Op: nt.Eq, Field: pnl.field, Value: "", Enabled: true}
}

func (pnl FilterPanel) condition(rank int) (idx int, ok bool) {
	idx = rank - firstCondition
	ok = idx >= 0 && idx < len(pnl.conditions)
	return
}

func (pnl FilterPanel) buildBoard(rank, file int) board.Board {

	logic := 0
	if pnl.anyOf {
		logic = 1
	}

	ranks := []board.Rank{
		board.NewRank([]board.Piece{piece.NewLabel("match"), piece.NewOperator(logicStrings, logic)}),
	}

	for _, cond := range pnl.conditions {
		opIndex := 0
		for i, op := range opStrings {
			if opFromString[op] == cond.Op {
				opIndex = i
				break
			}
		}

		ranks = append(ranks, board.NewRank([]board.Piece{
			piece.NewCheckbox(cond.Enabled),
			piece.NewOperator(opStrings, opIndex),
			piece.NewTextInput(valueString(cond.Value), 50),
		}))
	}

	ranks = append(ranks, board.NewRank([]board.Piece{
		piece.NewButton(applyLabel),
		piece.NewButton(clearLabel),
	}))

	files := []board.File{
		filterFile{width: 5},  // checkbox
		filterFile{width: 14}, // operator
		filterFile{width: 30}, // value
	}

	brd, err := board.New(ranks, files, rank, file)
	if err != nil {
		pnl.logger.Error(pnl.ctx, "failed to build filter board", err)
	}
	return brd
}

func leaves(group nt.Filter) []nt.Filter {
	var found []nt.Filter
	for _, child := range group.Children {
		if child.IsLeaf() {
			found = append(found, child)
			continue
		}
		found = append(found, leaves(child)...)
	}
	return found
}

func valueString(val any) string {
	if val == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprintf("%v", val))
}

func pressed(key tea.KeyPressMsg) bool {
	return key.String() == "enter" || key.String() == "space"
}

func setFilterCmd(filter nt.Filter) tea.Cmd {
	return func() tea.Msg {
		return message.SetFilterMsg{Filter: filter}
	}
}

// filterFile implements board.File
type filterFile struct {
	name  string
	width int
}

func (f filterFile) Name() string { return f.name }
func (f filterFile) Width() int   { return f.width }
