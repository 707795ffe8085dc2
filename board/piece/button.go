package piece

import (
	tea "charm.land/bubbletea/v2"

	"gridmenu/board"
	"gridmenu/style"
)

// Button is pressed with enter or space
type Button struct {
	label string
}

func NewButton(label string) Button {
	return Button{label: label}
}

func (b Button) Update(msg tea.Msg) (board.Piece, tea.Cmd) {

	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return b, nil
	}

	switch key.String() {
	case "enter", "space":
		label := b.label
		return b, func() tea.Msg {
			return &PressedMsg{Label: label}
		}
	}
	return b, nil
}

func (b Button) Label() string {
	return b.label
}

func (b Button) Render() string {
	return style.ButtonStyle.Render(b.label)
}
