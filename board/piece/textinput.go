package piece

import (
	"strings"
	"unicode"

	tea "charm.land/bubbletea/v2"

	"gridmenu/board"
	"gridmenu/style"
)

const defaultMaxLength = 100

// TextInput is an editable single line of text
type TextInput struct {
	value     []rune
	cursor    int
	maxLength int
}

func NewTextInput(value string, maxLength int) TextInput {
	if maxLength <= 0 {
		maxLength = defaultMaxLength
	}
	runes := []rune(value)
	return TextInput{
		value:     runes,
		cursor:    len(runes),
		maxLength: maxLength,
	}
}

func (ti TextInput) Update(msg tea.Msg) (board.Piece, tea.Cmd) {

	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return ti, nil
	}

	before := string(ti.value)

	switch key.String() {
	case "backspace":
		if ti.cursor > 0 {
			ti.value = append(ti.value[:ti.cursor-1:ti.cursor-1], ti.value[ti.cursor:]...)
			ti.cursor--
		}
	case "delete":
		if ti.cursor < len(ti.value) {
			ti.value = append(ti.value[:ti.cursor:ti.cursor], ti.value[ti.cursor+1:]...)
		}
	case "left":
		ti.cursor = max(ti.cursor-1, 0)
	case "right":
		ti.cursor = min(ti.cursor+1, len(ti.value))
	case "home", "ctrl+a":
		ti.cursor = 0
	case "end", "ctrl+e":
		ti.cursor = len(ti.value)
	default:
		ins := []rune(key.Text)
		if printable(key.Text) && len(ti.value)+len(ins) <= ti.maxLength {
			value := make([]rune, 0, len(ti.value)+len(ins))
			value = append(value, ti.value[:ti.cursor]...)
			value = append(value, ins...)
			ti.value = append(value, ti.value[ti.cursor:]...)
			ti.cursor += len(ins)
		}
	}

	after := string(ti.value)
	if after == before {
		return ti, nil
	}

	return ti, func() tea.Msg {
		return &ValueChangedMsg{Value: after}
	}
}

func (ti TextInput) Value() string {
	return string(ti.value)
}

func (ti TextInput) Cursor() int {
	return ti.cursor
}

func (ti TextInput) Render() string {
	if len(ti.value) == 0 {
		return style.MutedStyle.Render("…")
	}
	return string(ti.value)
}

func printable(text string) bool {
	return text != "" && strings.IndexFunc(text, func(r rune) bool {
		return !unicode.IsPrint(r)
	}) < 0
}
