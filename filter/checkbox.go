package filter

import (
	"context"
	"fmt"
	"slices"

	tea "charm.land/bubbletea/v2"

	"gridmenu/board"
	"gridmenu/board/piece"
	nt "gridmenu/entity"
	"gridmenu/style"
)

// CheckboxFilter offers the distinct values of a field as checkboxes.
// Checked values filter the field with an Or of equalities.
type CheckboxFilter struct {
	field   string
	filter  nt.Filter
	values  []string
	checked []bool
	board   board.Board

	ctx    context.Context
	logger nt.Logger
}

func NewCheckboxFilter(ctx context.Context, lgr nt.Logger, field string, values []string, filter nt.Filter) CheckboxFilter {

	pnl := CheckboxFilter{
		field:   field,
		filter:  filter,
		values:  values,
		checked: make([]bool, len(values)),
		ctx:     ctx,
		logger:  lgr,
	}

	if group, ok := nt.GroupFor(filter, field); ok {
		selected := equalities(group)
		for i, val := range values {
			pnl.checked[i] = slices.Contains(selected, val)
		}
	}

	pnl.board = pnl.buildBoard()
	return pnl
}

func (pnl CheckboxFilter) Init() tea.Cmd {
	return nil
}

func (pnl CheckboxFilter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return pnl, nil
	}

	if btn, ok := pnl.board.Piece().(piece.Button); ok && pressed(key) {
		return pnl, pnl.press(btn.Label())
	}

	updated, _ := pnl.board.Update(key)
	pnl.board = updated.(board.Board)

	rank, _ := pnl.board.Position()
	if cb, ok := pnl.board.Piece().(piece.Checkbox); ok && rank < len(pnl.checked) {
		pnl.checked = slices.Clone(pnl.checked)
		pnl.checked[rank] = cb.Checked()
	}
	return pnl, nil
}

func (pnl CheckboxFilter) View() tea.View {
	return tea.NewView(pnl.Render())
}

func (pnl CheckboxFilter) Render() string {
	return fmt.Sprintf("Filter %s:\n%s\n\n%s",
		pnl.field,
		pnl.board.Render(),
		style.MutedStyle.Render("t: toggle  tab: next  enter: press"))
}

// Group returns the Or of checked values.
func (pnl CheckboxFilter) Group() nt.Filter {

	var eqs []nt.Filter
	for i, val := range pnl.values {
		if pnl.checked[i] {
			eqs = append(eqs, nt.Filter{Op: nt.Eq, Field: pnl.field, Value: val, Enabled: true})
		}
	}

	switch len(eqs) {
	case 0:
		return nt.Filter{}
	case 1:
		return eqs[0]
	}
	return nt.Filter{Op: nt.Or, Children: eqs}
}

// unexported

func (pnl CheckboxFilter) press(label string) tea.Cmd {
	switch label {
	case applyLabel:
		return setFilterCmd(nt.WithGroup(pnl.filter, pnl.field, pnl.Group()))
	case clearLabel:
		return setFilterCmd(nt.WithGroup(pnl.filter, pnl.field, nt.Filter{}))
	}
	return nil
}

func (pnl CheckboxFilter) buildBoard() board.Board {

	ranks := []board.Rank{}
	for i, val := range pnl.values {
		ranks = append(ranks, board.NewRank([]board.Piece{
			piece.NewCheckbox(pnl.checked[i]).Labeled(val, val),
		}))
	}

	ranks = append(ranks, board.NewRank([]board.Piece{
		piece.NewButton(applyLabel),
		piece.NewButton(clearLabel),
	}))

	brd, err := board.New(ranks, []board.File{filterFile{width: 8}}, 0, 0)
	if err != nil {
		pnl.logger.Error(pnl.ctx, "failed to build checkbox board", err)
	}
	return brd
}

// equalities lists values a group compares equal to
func equalities(group nt.Filter) []string {

	if group.IsLeaf() {
		if group.Op == nt.Eq {
			return []string{valueString(group.Value)}
		}
		return nil
	}

	var vals []string
	for _, child := range group.Children {
		vals = append(vals, equalities(child)...)
	}
	return vals
}
