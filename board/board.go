package board

import (
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/pkg/errors"

	"gridmenu/style"
)

// Piece is the content of one square.
type Piece interface {
	Update(msg tea.Msg) (Piece, tea.Cmd)
	Render() string
}

// PieceMsg is a message emitted by a piece.
// Board stamps the position of the emitting piece before delivery.
type PieceMsg interface {
	IsPieceMsg()
	SetPosition(rank, file int)
}

// File describes a board column.
type File interface {
	Name() string
	Width() int
}

// Rank is a row of pieces.
type Rank struct {
	pieces []Piece
}

func NewRank(pieces []Piece) Rank {
	return Rank{pieces: pieces}
}

// SizeMsg sets the space available to the board.
type SizeMsg struct {
	Width  int
	Height int
}

// Board represents a 2D grid of pieces organized into ranks (rows).
// Board is designed for immutable use in bubbletea/Elm architecture:
// - Navigation returns a new Board with updated position
// - Ranks are cloned before a piece is replaced
type Board struct {
	ranks    []Rank
	files    []File
	position position

	width  int
	height int
}

// New creates a board positioned at rank, file.
func New(ranks []Rank, files []File, rank, file int) (brd Board, err error) {

	if len(ranks) == 0 {
		err = errors.Errorf("board needs at least one rank")
		return
	}
	for i, rank := range ranks {
		if len(rank.pieces) == 0 {
			err = errors.Errorf("rank %d has no pieces", i)
			return
		}
	}

	brd = Board{
		ranks: ranks,
		files: files,
	}
	brd.position = brd.clamp(position{rank: rank, file: file})
	return
}

func (brd Board) Init() tea.Cmd {
	return nil
}

func (brd Board) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case SizeMsg:
		brd.width = msg.Width
		brd.height = msg.Height

	case tea.KeyPressMsg:
		switch msg.String() {
		case "up":
			return brd.MoveUp(), nil
		case "down":
			return brd.MoveDown(), nil
		case "shift+tab":
			return brd.MoveLeft(), nil
		case "tab":
			return brd.MoveRight(), nil
		}

		pc, cmd := brd.Piece().Update(msg)
		brd = brd.SetPiece(brd.position.rank, brd.position.file, pc)
		return brd, stamp(cmd, brd.position.rank, brd.position.file)
	}

	return brd, nil
}

func (brd Board) View() tea.View {
	return tea.NewView(brd.Render())
}

// Render draws the board with the current square highlighted.
func (brd Board) Render() string {

	lines := []string{}

	if brd.hasHeaders() {
		var hdr []string
		for _, file := range brd.files {
			hdr = append(hdr, pad(file.Name(), file.Width()))
		}
		lines = append(lines, style.MutedStyle.Render(strings.Join(hdr, " ")))
	}

	for r, rank := range brd.ranks {
		var cells []string
		for f, pc := range rank.pieces {
			cell := pad(pc.Render(), brd.fileWidth(f))
			if r == brd.position.rank && f == brd.position.file {
				cell = style.HlCellStyle.Render(cell)
			}
			cells = append(cells, cell)
		}
		lines = append(lines, strings.Join(cells, " "))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Position returns the current rank and file.
func (brd Board) Position() (rank, file int) {
	return brd.position.rank, brd.position.file
}

// Piece returns the piece at the current position.
func (brd Board) Piece() Piece {
	return brd.ranks[brd.position.rank].pieces[brd.position.file]
}

// PieceAt returns the piece at rank, file or nil when out of bounds.
func (brd Board) PieceAt(rank, file int) Piece {
	if rank < 0 || rank >= len(brd.ranks) {
		return nil
	}
	pieces := brd.ranks[rank].pieces
	if file < 0 || file >= len(pieces) {
		return nil
	}
	return pieces[file]
}

// SetPiece returns a board with the piece at rank, file replaced.
func (brd Board) SetPiece(rank, file int, pc Piece) Board {
	if brd.PieceAt(rank, file) == nil {
		return brd
	}

	ranks := slices.Clone(brd.ranks)
	ranks[rank] = Rank{pieces: slices.Clone(ranks[rank].pieces)}
	ranks[rank].pieces[file] = pc

	brd.ranks = ranks
	return brd
}

// Ranks returns the number of ranks.
func (brd Board) Ranks() int {
	return len(brd.ranks)
}

func (brd Board) MoveUp() Board {
	brd.position = brd.clamp(position{rank: brd.position.rank - 1, file: brd.position.file})
	return brd
}

func (brd Board) MoveDown() Board {
	brd.position = brd.clamp(position{rank: brd.position.rank + 1, file: brd.position.file})
	return brd
}

func (brd Board) MoveLeft() Board {
	brd.position = brd.clamp(position{rank: brd.position.rank, file: brd.position.file - 1})
	return brd
}

func (brd Board) MoveRight() Board {
	brd.position = brd.clamp(position{rank: brd.position.rank, file: brd.position.file + 1})
	return brd
}

// unexported

type position struct {
	rank int
	file int
}

// clamp keeps pos on the board, ranks may be ragged
func (brd Board) clamp(pos position) position {

	pos.rank = max(0, min(pos.rank, len(brd.ranks)-1))

	last := len(brd.ranks[pos.rank].pieces) - 1
	pos.file = max(0, min(pos.file, last))

	return pos
}

func (brd Board) hasHeaders() bool {
	for _, file := range brd.files {
		if file.Name() != "" {
			return true
		}
	}
	return false
}

func (brd Board) fileWidth(idx int) int {
	if idx < len(brd.files) {
		return brd.files[idx].Width()
	}
	return 0
}

func pad(in string, width int) string {
	gap := width - lipgloss.Width(in)
	if gap <= 0 {
		return in
	}
	return in + strings.Repeat(" ", gap)
}

func stamp(cmd tea.Cmd, rank, file int) tea.Cmd {
	if cmd == nil {
		return nil
	}
	return func() tea.Msg {
		msg := cmd()
		if pm, ok := msg.(PieceMsg); ok {
			pm.SetPosition(rank, file)
		}
		return msg
	}
}
