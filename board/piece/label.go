package piece

import (
	tea "charm.land/bubbletea/v2"

	"gridmenu/board"
	"gridmenu/style"
)

// Label is read-only text, optionally muted
type Label struct {
	text  string
	muted bool
}

func NewLabel(text string) Label {
	return Label{text: text}
}

// Muted returns a copy rendered in the muted style.
func (l Label) Muted() Label {
	l.muted = true
	return l
}

func (l Label) Update(tea.Msg) (board.Piece, tea.Cmd) {
	return l, nil
}

func (l Label) Text() string {
	return l.text
}

func (l Label) Render() string {
	if l.muted {
		return style.MutedStyle.Render(l.text)
	}
	return l.text
}
