// Package menu implements the per-column grid menu: column visibility with
// optional sort and filter sections.
package menu

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	nt "gridmenu/entity"
)

// Config is supplied by the host opening a menu.
type Config struct {
	Field   string      // column the menu was opened on
	Columns []nt.Column // authoritative column list

	// OnColumnsSubmit receives the finalized columns, OnCloseMenu follows it.
	// Either may be nil.
	OnColumnsSubmit func(columns []nt.Column) tea.Cmd
	OnCloseMenu     func() tea.Cmd

	ShowColumnMenuSort   bool
	ShowColumnMenuFilter bool
	HideColumns          bool

	CustomCol  map[string]nt.Column // title overrides by field
	GridClass  string
	ChildClass string

	Filter nt.Filter // read only
	Sorts  []nt.Sort // read only
}

// Row is one toggle row of the columns section.
type Row struct {
	Id       string
	Index    int // into the working columns
	Label    string
	Checked  bool
	Disabled bool
}

// Controller holds the state of one menu session.
type Controller struct {
	cfg     Config
	working []nt.Column

	columnsExpanded bool
	filterExpanded  bool
}

func (cfg Config) New() *Controller {
	return &Controller{
		cfg:     cfg,
		working: nt.CloneColumns(cfg.Columns),
	}
}

// Config returns the host configuration.
func (ctl *Controller) Config() Config {
	return ctl.cfg
}

// Columns returns a copy of the working columns.
func (ctl *Controller) Columns() []nt.Column {
	return nt.CloneColumns(ctl.working)
}

// SetColumns replaces the host list, discarding any unsaved edits.
func (ctl *Controller) SetColumns(columns []nt.Column) {
	ctl.cfg.Columns = nt.CloneColumns(columns)
	ctl.working = nt.CloneColumns(columns)
}

// CanToggle reports whether the column at index may be toggled.
// The last shown column may not be hidden.
func (ctl *Controller) CanToggle(index int) bool {

	if index < 0 || index >= len(ctl.working) {
		return false
	}

	col := ctl.working[index]
	if col.DefaultColumn {
		return false
	}
	return !(col.Show && nt.VisibleCount(ctl.working) == 1)
}

// ToggleColumn flips Show on the column at index, reporting whether it did.
func (ctl *Controller) ToggleColumn(index int) bool {

	if !ctl.CanToggle(index) {
		return false
	}

	working := nt.CloneColumns(ctl.working)
	working[index].Show = !working[index].Show
	ctl.working = working
	return true
}

// ExpandColumnsSection flips the columns section, collapsing filter when opened.
func (ctl *Controller) ExpandColumnsSection() {
	ctl.columnsExpanded = !ctl.columnsExpanded
	if ctl.columnsExpanded {
		ctl.filterExpanded = false
	}
}

// ExpandFilterSection sets the filter section, collapsing columns when opened.
func (ctl *Controller) ExpandFilterSection(expanded bool) {
	ctl.filterExpanded = expanded
	if expanded {
		ctl.columnsExpanded = false
	}
}

func (ctl *Controller) ColumnsExpanded() bool {
	return ctl.columnsExpanded
}

func (ctl *Controller) FilterExpanded() bool {
	return ctl.filterExpanded
}

// Submit hands the working columns to the host and closes.
func (ctl *Controller) Submit() tea.Cmd {
	return ctl.finalize(ctl.working)
}

// Reset hands the host's original columns, all shown, to the host and closes.
func (ctl *Controller) Reset() tea.Cmd {
	ctl.working = nt.ShowAll(ctl.cfg.Columns)
	return ctl.finalize(ctl.working)
}

// SaveFilteredColumns is Submit for the save button.
func (ctl *Controller) SaveFilteredColumns() tea.Cmd {
	return ctl.finalize(ctl.working)
}

// ResetFilteredColumns shows every working column, submits and closes.
func (ctl *Controller) ResetFilteredColumns() tea.Cmd {
	ctl.working = nt.ShowAll(ctl.working)
	return ctl.finalize(ctl.working)
}

// Rows lists toggle rows, structural columns have none.
func (ctl *Controller) Rows() []Row {

	rows := []Row{}
	for i, col := range ctl.working {
		if col.DefaultColumn {
			continue
		}
		rows = append(rows, Row{
			Id:       RowId(i),
			Index:    i,
			Label:    col.Label(),
			Checked:  col.Show,
			Disabled: col.Show && !ctl.CanToggle(i),
		})
	}
	return rows
}

// RowId is the id of the checkbox for the column at index.
func RowId(index int) string {
	return fmt.Sprintf("column-visibility-show-%d", index)
}

// unexported

func (ctl *Controller) finalize(columns []nt.Column) tea.Cmd {

	var cmds []tea.Cmd
	if ctl.cfg.OnColumnsSubmit != nil {
		cmds = append(cmds, ctl.cfg.OnColumnsSubmit(nt.CloneColumns(columns)))
	}
	if ctl.cfg.OnCloseMenu != nil {
		cmds = append(cmds, ctl.cfg.OnCloseMenu())
	}
	return tea.Sequence(cmds...)
}
