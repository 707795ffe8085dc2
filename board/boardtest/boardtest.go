// Package boardtest drives board based models from tests.
package boardtest

import (
	"reflect"

	tea "charm.land/bubbletea/v2"

	"gridmenu/board"
)

var cmdType = reflect.TypeOf((tea.Cmd)(nil))

// Key returns a key press as the terminal would deliver it.
func Key(name string) tea.KeyPressMsg {
	switch name {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "left":
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case "shift+tab":
		return tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	case "backspace":
		return tea.KeyPressMsg{Code: tea.KeyBackspace}
	case "space":
		return tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	case "ctrl+n":
		return tea.KeyPressMsg{Code: 'n', Mod: tea.ModCtrl}
	case "ctrl+x":
		return tea.KeyPressMsg{Code: 'x', Mod: tea.ModCtrl}
	}

	runes := []rune(name)
	return tea.KeyPressMsg{Code: runes[0], Text: name}
}

// Run executes cmd, expanding batches and sequences, and returns the messages in order.
func Run(cmd tea.Cmd) []tea.Msg {

	if cmd == nil {
		return nil
	}

	msg := cmd()
	val := reflect.ValueOf(msg)
	if val.Kind() != reflect.Slice || val.Type().Elem() != cmdType {
		return []tea.Msg{msg}
	}

	msgs := []tea.Msg{}
	for i := range val.Len() {
		msgs = append(msgs, Run(val.Index(i).Interface().(tea.Cmd))...)
	}
	return msgs
}

// Model is a bubbletea model returning its own type from Update.
type Model interface {
	Update(msg tea.Msg) (tea.Model, tea.Cmd)
}

// Send delivers msg to mdl, feeding piece messages back in as the runtime would.
// Messages for anyone else are returned.
func Send[M Model](mdl M, msg tea.Msg) (M, []tea.Msg) {

	updated, cmd := mdl.Update(msg)
	mdl = updated.(M)

	out := []tea.Msg{}
	for _, next := range Run(cmd) {
		if _, ok := next.(board.PieceMsg); ok {
			var more []tea.Msg
			mdl, more = Send(mdl, next)
			out = append(out, more...)
			continue
		}
		out = append(out, next)
	}
	return mdl, out
}

// Type sends each key in turn, collecting messages.
func Type[M Model](mdl M, keys ...string) (M, []tea.Msg) {

	out := []tea.Msg{}
	for _, name := range keys {
		var msgs []tea.Msg
		mdl, msgs = Send(mdl, Key(name))
		out = append(out, msgs...)
	}
	return mdl, out
}
