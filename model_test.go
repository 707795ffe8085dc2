package gridmenu

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridmenu/board/boardtest"
	nt "gridmenu/entity"
	"gridmenu/highlight"
	"gridmenu/logging"
	"gridmenu/message"
)

type fakeStore struct {
	filter nt.Filter
	sorts  []nt.Sort
	views  int
}

func (fs *fakeStore) Name() string { return "fake" }

func (fs *fakeStore) SetView(filter nt.Filter, sorts []nt.Sort) error {
	fs.filter = filter
	fs.sorts = sorts
	fs.views++
	return nil
}

func (fs *fakeStore) GetView() ([]nt.Field, int, error) {
	return []nt.Field{
		{Name: "id", Type: "BIGINT"},
		{Name: "name", Type: "VARCHAR"},
		{Name: "status", Type: "VARCHAR"},
		{Name: "price", Type: "DOUBLE"},
	}, 2, nil
}

func (fs *fakeStore) GetPage(offset, size int) ([]nt.Line, error) {
	return []nt.Line{
		{Id: "1", Values: []nt.Value{{Raw: int64(1)}, {Raw: "Pro Hub"}, {Raw: "Active"}, {Raw: 120.5}}},
		{Id: "2", Values: []nt.Value{{Raw: int64(2)}, {Raw: "Mini Relay"}, {Raw: "Draft"}, {Raw: 9.99}}},
	}, nil
}

func (fs *fakeStore) Distinct(field string) ([]string, error) {
	return []string{"Active", "Draft"}, nil
}

func testLayout() *Layout {
	return &Layout{
		Columns: []nt.Column{
			{Field: "id", Title: "ID", Show: true, DefaultColumn: true, Width: 4},
			{Field: "name", Title: "Name", Show: true, Width: 12},
			{Field: "status", Title: "Status", Show: true, Width: 8},
			{Field: "price", Title: "Price", Show: true, Width: 8},
		},
		Menu: MenuOptions{
			Sort:      true,
			Filter:    true,
			GridClass: "products",
			Checkbox:  []string{"status"},
		},
	}
}

func newModel(t *testing.T, store Store, path string) Model {
	t.Helper()

	lgr := logging.New(io.Discard, slog.LevelInfo)
	m, err := NewModel(context.Background(), store, testLayout(), path, lgr)
	require.NoError(t, err)
	return m
}

// pump delivers msgs, then what they lead to, keys ahead of command results
func pump(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()

	queue := msgs
	for i := 0; len(queue) > 0; i++ {
		require.Less(t, i, 500, "message loop")

		msg := queue[0]
		queue = queue[1:]

		updated, cmd := m.Update(msg)
		m = updated.(Model)
		for _, next := range boardtest.Run(cmd) {
			if _, ok := next.(tea.QuitMsg); ok {
				continue
			}
			queue = append(queue, next)
		}
	}
	return m
}

func keys(names ...string) []tea.Msg {
	msgs := []tea.Msg{}
	for _, name := range names {
		msgs = append(msgs, boardtest.Key(name))
	}
	return msgs
}

func headerTexts(m Model) []string {
	out := []string{}
	for _, hdr := range m.TablePanel.Headers() {
		out = append(out, hdr.Text)
	}
	return out
}

func TestModelHidesColumn(t *testing.T) {

	m := newModel(t, &fakeStore{}, "")
	m = pump(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Equal(t, 1, m.selected)

	m = pump(t, m, keys("m")...)
	require.Equal(t, MenuScreen, m.CurrentScreen)
	assert.Contains(t, ansi.Strip(m.MenuPanel.Render()), "ID")

	m = pump(t, m, keys("c", "down", "down", "down", "t", "s")...)

	assert.Equal(t, TableScreen, m.CurrentScreen)
	assert.False(t, m.Layout().Columns[1].Show)
	assert.Equal(t, []string{"ID", "Status", "Price"}, headerTexts(m))
}

func TestModelToggleThenSaveTypedAhead(t *testing.T) {

	m := newModel(t, &fakeStore{}, "")
	m = pump(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m = pump(t, m, message.OpenMenuMsg{Field: "id"})
	m = pump(t, m, keys("c", "down", "down", "down")...)

	updated, late := m.Update(boardtest.Key("t"))
	m = updated.(Model)
	m = pump(t, m, boardtest.Key("s"))
	m = pump(t, m, boardtest.Run(late)...)

	assert.Equal(t, TableScreen, m.CurrentScreen)
	assert.False(t, m.Layout().Columns[1].Show)
	assert.Equal(t, []string{"ID", "Status", "Price"}, headerTexts(m))
}

func TestModelCheckboxFilter(t *testing.T) {

	store := &fakeStore{}
	m := newModel(t, store, "")
	m = pump(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	m = pump(t, m, message.OpenMenuMsg{Field: "status"})
	m = pump(t, m, keys("f", "t", "down", "down", "enter")...)

	exp := nt.Filter{Op: nt.Eq, Field: "status", Value: "Active", Enabled: true}
	assert.Equal(t, TableScreen, m.CurrentScreen)
	assert.Equal(t, exp, store.filter)
	assert.Equal(t, exp, m.Layout().Filter)
	assert.Equal(t, []int{2}, highlight.Marked(m.TablePanel.Headers()))
}

func TestModelSort(t *testing.T) {

	store := &fakeStore{}
	m := newModel(t, store, "")

	m = pump(t, m, message.OpenMenuMsg{Field: "price"})
	m = pump(t, m, keys("tab", "enter")...)

	assert.Equal(t, TableScreen, m.CurrentScreen)
	assert.Equal(t, []nt.Sort{{Field: "price", Desc: true}}, store.sorts)
}

func TestModelWritesLayout(t *testing.T) {

	path := filepath.Join(t.TempDir(), "layout.yaml")
	m := newModel(t, &fakeStore{}, path)

	m = pump(t, m, message.SetFilterMsg{Filter: nt.Filter{Op: nt.Gt, Field: "price", Value: 10}})
	m = pump(t, m, keys("w")...)

	layout, err := LoadLayout(path)
	require.NoError(t, err)
	assert.Equal(t, m.Layout(), *layout)
}

func TestModelError(t *testing.T) {

	m := newModel(t, &fakeStore{}, "")
	m = pump(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	m = pump(t, m, message.OpenMenuMsg{Field: "name"})
	assert.Equal(t, MenuScreen, m.CurrentScreen)

	m = pump(t, m, message.ErrorMsg{Err: assert.AnError})
	assert.Equal(t, assert.AnError.Error(), m.errorString)

	m = pump(t, m, keys("esc")...)
	assert.Empty(t, m.errorString)
	assert.Equal(t, TableScreen, m.CurrentScreen)
}
