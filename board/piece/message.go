package piece

import "gridmenu/board"

var (
	_ board.PieceMsg = (*CheckedMsg)(nil)
	_ board.PieceMsg = (*PressedMsg)(nil)
	_ board.PieceMsg = (*OperatorChangedMsg)(nil)
	_ board.PieceMsg = (*ValueChangedMsg)(nil)
)

// Position is stamped on piece messages by the board.
type Position struct {
	Rank int
	File int
}

func (Position) IsPieceMsg() {}

func (pos *Position) SetPosition(rank, file int) {
	pos.Rank = rank
	pos.File = file
}

// CheckedMsg is sent when a checkbox is toggled
type CheckedMsg struct {
	Position
	Id      string
	Checked bool
}

// PressedMsg is sent when a button is pressed
type PressedMsg struct {
	Position
	Label string
}

// OperatorChangedMsg is sent when an operator selection changes
type OperatorChangedMsg struct {
	Position
	Selected string
	Index    int
}

// ValueChangedMsg is sent when a text input value changes
type ValueChangedMsg struct {
	Position
	Value string
}
