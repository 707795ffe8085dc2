package piece

import (
	tea "charm.land/bubbletea/v2"

	"gridmenu/board"
	"gridmenu/style"
)

// Operator cycles through options with left and right, wrapping at either end
type Operator struct {
	options []string
	index   int
}

func NewOperator(options []string, index int) Operator {
	if index < 0 || index >= len(options) {
		index = 0
	}
	return Operator{
		options: options,
		index:   index,
	}
}

func (op Operator) Update(msg tea.Msg) (board.Piece, tea.Cmd) {

	key, ok := msg.(tea.KeyPressMsg)
	if !ok || len(op.options) == 0 {
		return op, nil
	}

	switch key.String() {
	case "left":
		op.index = (op.index - 1 + len(op.options)) % len(op.options)
	case "right", "space":
		op.index = (op.index + 1) % len(op.options)
	default:
		return op, nil
	}

	changed := &OperatorChangedMsg{Selected: op.Selected(), Index: op.index}
	return op, func() tea.Msg { return changed }
}

func (op Operator) Selected() string {
	if op.index < 0 || op.index >= len(op.options) {
		return ""
	}
	return op.options[op.index]
}

func (op Operator) Index() int {
	return op.index
}

func (op Operator) Render() string {
	if len(op.options) == 0 {
		return "?"
	}
	return style.MutedStyle.Render("‹ ") + op.Selected() + style.MutedStyle.Render(" ›")
}
