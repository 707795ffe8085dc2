package table

import (
	"context"
	"io"
	"log/slog"
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

var fields = []nt.Field{
	{Name: "id", Type: "BIGINT"},
	{Name: "name", Type: "VARCHAR"},
	{Name: "price", Type: "DOUBLE"},
}

func columns() []nt.Column {
	return []nt.Column{
		{Field: "id", Title: "ID", Show: true, Width: 4},
		{Field: "name", Title: "Name", Show: false, Width: 12},
		{Field: "price", Title: "Price", Show: true, Width: 9, Format: "%.2f"},
	}
}

func newPanel(cfg Config) TablePanel {
	return cfg.New(context.Background(), columns(), fields, 2, logging.New(io.Discard, slog.LevelInfo))
}

func update(pnl TablePanel, msg tea.Msg) (TablePanel, []tea.Msg) {
	updated, cmd := pnl.Update(msg)
	return updated.(TablePanel), boardtest.Run(cmd)
}

func texts(headers []highlight.Header) []string {
	out := []string{}
	for _, hdr := range headers {
		out = append(out, hdr.Text)
	}
	return out
}

func TestHeadersHideHidden(t *testing.T) {

	pnl := newPanel(Config{Grid: "products"})

	assert.Equal(t, []string{"ID", "Price"}, texts(pnl.Headers()))
	assert.Equal(t, "products", pnl.Headers()[1].Grid)

	cols := columns()
	cols[1].Show = true
	pnl, msgs := update(pnl, ColumnsMsg{Columns: cols, Fields: fields})

	assert.Equal(t, []string{"ID", "Name", "Price"}, texts(pnl.Headers()))
	require.Len(t, msgs, 1)
	assert.IsType(t, message.GetPageMsg{}, msgs[0])
}

func TestHeadersCustomTitle(t *testing.T) {

	pnl := newPanel(Config{Sync: highlight.Synchronizer{
		Custom: map[string]nt.Column{"price": {Title: "Cost"}},
	}})
	pnl, _ = update(pnl, FilterMsg{Filter: nt.Filter{Op: nt.Gt, Field: "price", Value: 3}})

	assert.Equal(t, []string{"ID", "Cost"}, texts(pnl.Headers()))
	assert.Equal(t, []int{1}, highlight.Marked(pnl.Headers()))
}

func TestNestedGridLeftAlone(t *testing.T) {

	scope := highlight.Selector{GridClass: "products", ChildClass: "detail"}
	filter := nt.Filter{Op: nt.Gt, Field: "price", Value: 3}

	outer := newPanel(Config{Grid: "products", Sync: highlight.Synchronizer{Scope: scope}})
	outer, _ = update(outer, FilterMsg{Filter: filter})
	assert.Equal(t, []int{1}, highlight.Marked(outer.Headers()))

	nested := newPanel(Config{Grid: "products", Parent: "detail", Sync: highlight.Synchronizer{Scope: scope}})
	nested, _ = update(nested, FilterMsg{Filter: filter})
	assert.Equal(t, "detail", nested.Headers()[1].Parent)
	assert.Empty(t, highlight.Marked(nested.Headers()))
}

func TestFilterMarksHeader(t *testing.T) {

	pnl := newPanel(Config{
		Grid: "products",
		Sync: highlight.Synchronizer{Scope: highlight.Selector{GridClass: "products"}},
	})
	assert.Empty(t, highlight.Marked(pnl.Headers()))

	pnl, _ = update(pnl, FilterMsg{Filter: nt.Filter{Op: nt.Eq, Field: "price", Value: 3}})
	assert.Equal(t, []int{1}, highlight.Marked(pnl.Headers()))

	// hidden columns have no header to mark
	pnl, _ = update(pnl, FilterMsg{Filter: nt.Filter{Op: nt.Eq, Field: "name", Value: "Hub"}})
	assert.Empty(t, highlight.Marked(pnl.Headers()))

	pnl, _ = update(pnl, FilterMsg{Filter: nt.Filter{Op: nt.Eq, Field: "price", Value: 3}})
	pnl, _ = update(pnl, FilterMsg{})
	assert.Empty(t, highlight.Marked(pnl.Headers()))
}

func TestRenderAndSelect(t *testing.T) {

	pnl := newPanel(Config{})
	pnl, _ = update(pnl, SizeMsg{Width: 40, Height: 10})

	lines := []nt.Line{
		{Id: "1", Values: []nt.Value{{Raw: int64(1)}, {Raw: "Hub"}, {Raw: 12.5}}},
		{Id: "2", Values: []nt.Value{{Raw: int64(2)}, {Raw: "Relay"}, {Raw: 3.0}}},
	}
	pnl, msgs := update(pnl, PageMsg{Lines: lines, Count: 2})
	assert.Equal(t, []tea.Msg{message.SelectedMsg{Row: 1, Id: "1"}}, msgs)

	out := ansi.Strip(pnl.Render())
	assert.Contains(t, out, "12.50")
	assert.Contains(t, out, "Price")
	assert.NotContains(t, out, "Relay", "name is hidden")

	pnl, msgs = update(pnl, boardtest.Key("down"))
	assert.Equal(t, []tea.Msg{message.SelectedMsg{Row: 2, Id: "2"}}, msgs)

	_, msgs = update(pnl, boardtest.Key("m"))
	assert.Equal(t, []tea.Msg{message.OpenMenuMsg{Field: "id"}}, msgs)

	pnl, _ = update(pnl, boardtest.Key("right"))
	_, msgs = update(pnl, boardtest.Key("m"))
	assert.Equal(t, []tea.Msg{message.OpenMenuMsg{Field: "price"}}, msgs)
}

func TestTruncate(t *testing.T) {

	assert.Equal(t, "short", truncate("short", 8))
	assert.Equal(t, "abcd…", ansi.Strip(truncate("abcdefgh", 5)))
}

func TestFormatter(t *testing.T) {

	comma := makeFormatter("BIGINT", "comma")
	assert.Equal(t, "1,234,567", comma(nt.Value{Raw: int64(1234567)}))

	money := makeFormatter("DOUBLE", "%.2f")
	assert.Equal(t, "3.10", money(nt.Value{Raw: 3.1}))
	assert.Equal(t, "", money(nt.Value{}))
}
