package table

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/dustin/go-humanize"
	reflow "github.com/muesli/reflow/truncate"
	"github.com/pkg/errors"

	nt "gridmenu/entity"
	"gridmenu/highlight"
	"gridmenu/message"
	"gridmenu/style"
)

// Todo: handle columns overflow

const (
	headerHeight = 2
)

// TablePanel handles the grid display and navigation state
type TablePanel struct {
	selected int // Absolute position (0 to total-1) of selected line
	offset   int // Offset of page shown
	total    int // Total lines after filtering
	column   int // Selected visible column

	width  int
	height int

	grid    string
	parent  string
	sync    highlight.Synchronizer
	columns []nt.Column
	filter  nt.Filter
	headers []highlight.Header

	colFmts []colFmt
	lines   []nt.Line
	table   *table.Table

	ctx    context.Context
	logger nt.Logger
}

// Config locates the panel's headers for highlighting.
type Config struct {
	Grid   string
	Parent string // container the grid is nested in, if any
	Sync   highlight.Synchronizer
	Filter nt.Filter
}

func (cfg Config) New(ctx context.Context, columns []nt.Column, fields []nt.Field, count int, lgr nt.Logger) TablePanel {

	lgt := table.New()
	style.StyleTable(lgt)

	tablePanel := TablePanel{
		table:  lgt,
		total:  count,
		grid:   cfg.Grid,
		parent: cfg.Parent,
		sync:   cfg.Sync,
		filter: cfg.Filter,
		ctx:    ctx,
		logger: lgr,
	}

	tablePanel = tablePanel.setColumns(columns, fields)

	return tablePanel
}

func (pnl TablePanel) Init() tea.Cmd {
	return nil
}

type colFmt struct {
	lineIdx   int
	width     int
	fieldName string
	title     string
	formatter func(nt.Value) string
}

func (pnl TablePanel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case SizeMsg:
		pnl.width = msg.Width
		pnl.height = msg.Height

		pageSize := pnl.PageSize()
		if pageSize > 0 {
			return pnl, message.GetPageCmd(pnl.offset, pageSize)
		}

	case ColumnsMsg:
		pnl = pnl.setColumns(msg.Columns, msg.Fields)
		return pnl, message.GetPageCmd(pnl.offset, pnl.PageSize())

	case FilterMsg:
		pnl.filter = msg.Filter
		pnl.headers = pnl.sync.Run(pnl.headers, pnl.columns, pnl.filter)
		pnl.logger.Debug(pnl.ctx, "synced filter icons", "marked", highlight.Marked(pnl.headers))
		return pnl, nil

	case PageMsg:
		pnl.lines = msg.Lines
		pnl.total = msg.Count
		return pnl, pnl.selectedCmd()

	case ResetMsg:
		pnl.selected = 0
		pnl.offset = 0
		return pnl, message.GetPageCmd(pnl.offset, pnl.PageSize())

	case tea.KeyPressMsg:
		pageSize := pnl.PageSize()

		switch msg.String() {
		case "up", "k":
			if pnl.selected > 0 {
				pnl.selected--
			}

		case "down", "j":
			if pnl.selected < pnl.total-1 {
				pnl.selected++
			}

		case "left", "h":
			if pnl.column > 0 {
				pnl.column--
			}
			return pnl, nil

		case "right", "l":
			if pnl.column < len(pnl.colFmts)-1 {
				pnl.column++
			}
			return pnl, nil

		case "pgup", "ctrl+u":
			pnl.selected -= pageSize
			if pnl.selected < 0 {
				pnl.selected = 0
			}

		case "pgdown", "ctrl+d":
			pnl.selected += pageSize
			if pnl.selected >= pnl.total {
				pnl.selected = pnl.total - 1
			}

		case "g":
			pnl.selected = 0

		case "G":
			pnl.selected = pnl.total - 1

		case "m", "enter":
			return pnl, pnl.openMenuCmd()
		}

		// Adjust offset to keep selected line visible
		oldOffset := pnl.offset
		if pnl.selected < pnl.offset {
			pnl.offset = pnl.selected
		} else if pnl.selected >= pnl.offset+pageSize {
			pnl.offset = pnl.selected - pageSize + 1
		}

		// If we've scrolled to a different page, request new data
		if pnl.offset != oldOffset {
			return pnl, message.GetPageCmd(pnl.offset, pageSize)
		}

		// Selection changed but we have the data - notify parent
		return pnl, pnl.selectedCmd()
	}

	return pnl, nil
}

func (pnl TablePanel) View() tea.View {
	return tea.NewView(pnl.Render())
}

// Render draws headers and the current page
func (pnl TablePanel) Render() string {

	if len(pnl.colFmts) == 0 {
		return style.MutedStyle.Render("(no columns)")
	}

	pnl.table.StyleFunc(style.CellStyler(pnl.selectedLine(), pnl.column))
	pnl.table.Headers(pnl.headerCells()...)

	pnl.table.ClearRows()
	for _, line := range pnl.lines {
		pnl.table.Row(pnl.row(line)...)
	}

	return pnl.table.Render()
}

// Headers returns the rendered header snapshot.
func (pnl TablePanel) Headers() []highlight.Header {
	return pnl.headers
}

// Columns returns the columns the panel was last given.
func (pnl TablePanel) Columns() []nt.Column {
	return pnl.columns
}

// SelectedField returns the field of the selected column.
func (pnl TablePanel) SelectedField() (field string, err error) {

	if pnl.column < 0 || pnl.column >= len(pnl.colFmts) {
		err = errors.Errorf("column %d is out of bounds of %d columns", pnl.column, len(pnl.colFmts))
		return
	}

	field = pnl.colFmts[pnl.column].fieldName
	return
}

// SelectedId returns the id of the currently selected line
func (pnl TablePanel) SelectedId() (id string, err error) {

	selected := pnl.selectedLine()
	ln := len(pnl.lines)

	if ln == 0 || selected < 0 || selected >= ln {
		err = errors.Errorf("index %d is out of bounds of %d lines", selected, ln)
		return
	}

	id = pnl.lines[selected].Id
	return
}

// Total returns the line count after filtering.
func (pnl TablePanel) Total() int {
	return pnl.total
}

// PageSize returns the number of rows that fit on panel
func (pnl TablePanel) PageSize() int {
	return pnl.height - headerHeight
}

// unexported

func (pnl TablePanel) selectedLine() int {
	return pnl.selected - pnl.offset
}

func (pnl TablePanel) headerCells() []string {

	cells := make([]string, len(pnl.colFmts))
	for i, colFmt := range pnl.colFmts {

		icon := style.FilterIconStyle.Render(style.FilterIcon)
		if i < len(pnl.headers) && pnl.headers[i].Marked {
			icon = style.FilterMarkStyle.Render(style.FilterIcon)
		}

		title := truncate(colFmt.title, colFmt.width)
		gap := max(colFmt.width-lipgloss.Width(title), 0)
		cells[i] = title + strings.Repeat(" ", gap) + " " + icon
	}
	return cells
}

func (pnl TablePanel) row(line nt.Line) []string {
	row := make([]string, len(pnl.colFmts))
	for i, colFmt := range pnl.colFmts {
		if colFmt.lineIdx >= len(line.Values) {
			continue
		}
		formatted := colFmt.formatter(line.Values[colFmt.lineIdx])
		row[i] = truncate(formatted, colFmt.width)
	}
	return row
}

func (pnl TablePanel) setColumns(columns []nt.Column, fields []nt.Field) TablePanel {

	// colFmts tracks order and format of columns to be shown
	colFmts := []colFmt{}

	idxByName := map[string]int{}
	for i, field := range fields {
		idxByName[field.Name] = i
	}

	for _, col := range nt.Visible(columns) {

		idx, ok := idxByName[col.Field]
		if !ok {
			pnl.logger.Info(pnl.ctx, "skipping column without field", "field", col.Field)
			continue
		}

		title := col.Label()
		if custom, ok := pnl.sync.Custom[col.Field]; ok && custom.Title != "" {
			title = custom.Title
		}

		colFmts = append(colFmts, colFmt{
			lineIdx:   idx,
			width:     max(col.Width, 1),
			fieldName: col.Field,
			title:     title,
			formatter: makeFormatter(fields[idx].Type, col.Format),
		})
	}

	headers := make([]highlight.Header, len(colFmts))
	for i, colFmt := range colFmts {
		headers[i] = highlight.Header{
			Grid:   pnl.grid,
			Parent: pnl.parent,
			Index:  i,
			Text:   colFmt.title,
		}
	}

	pnl.columns = nt.CloneColumns(columns)
	pnl.colFmts = colFmts
	pnl.headers = pnl.sync.Run(headers, pnl.columns, pnl.filter)
	pnl.lines = nil // lines we had no longer match colFmts

	if pnl.column >= len(colFmts) {
		pnl.column = max(len(colFmts)-1, 0)
	}

	return pnl
}

// help

func makeFormatter(fieldType, format string) func(nt.Value) string {
	if format != "" && fieldType == "TIMESTAMP" {
		return func(val nt.Value) string {
			t, err := val.Time()
			if err == nil {
				return t.Format(format)
			}
			return val.String()
		}
	}

	if format == "comma" {
		return func(val nt.Value) string {
			if i, err := val.Int(); err == nil {
				return humanize.Comma(int64(i))
			}
			if f, err := val.Float(); err == nil {
				return humanize.Commaf(f)
			}
			return val.String()
		}
	}

	if format != "" && (fieldType == "DOUBLE" || fieldType == "DECIMAL") {
		return func(val nt.Value) string {
			f, err := val.Float()
			if err == nil {
				return fmt.Sprintf(format, f)
			}
			return val.String()
		}
	}

	return func(v nt.Value) string {
		return v.String()
	}
}

func truncate(in string, width int) string {

	if lipgloss.Width(in) <= width {
		return in
	}

	return reflow.StringWithTail(in, uint(width), style.MutedStyle.Render("…"))
}
