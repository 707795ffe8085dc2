package piece

import (
	tea "charm.land/bubbletea/v2"

	"gridmenu/board"
	"gridmenu/style"
)

// Checkbox is a toggleable checkbox with an optional label
type Checkbox struct {
	id       string
	label    string
	checked  bool
	disabled bool
}

func NewCheckbox(checked bool) Checkbox {
	return Checkbox{checked: checked}
}

// Labeled returns the checkbox with an id and label.
func (c Checkbox) Labeled(id, label string) Checkbox {
	c.id = id
	c.label = label
	return c
}

// Disabled returns the checkbox with toggling refused when disabled.
func (c Checkbox) Disabled(disabled bool) Checkbox {
	c.disabled = disabled
	return c
}

func (c Checkbox) Update(msg tea.Msg) (board.Piece, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		if c.disabled {
			return c, nil
		}
		if msg.String() == "t" || msg.String() == "space" {
			c.checked = !c.checked
			return c, func() tea.Msg {
				return &CheckedMsg{Id: c.id, Checked: c.checked}
			}
		}
	}
	return c, nil
}

func (c Checkbox) Id() string {
	return c.id
}

func (c Checkbox) Checked() bool {
	return c.checked
}

func (c Checkbox) IsDisabled() bool {
	return c.disabled
}

func (c Checkbox) Render() string {
	box := "[ ]"
	if c.checked {
		box = "[x]"
	}
	if c.disabled {
		box = style.MutedStyle.Render(box)
	}
	if c.label == "" {
		return box
	}
	return box + " " + c.label
}
