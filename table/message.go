package table

import nt "gridmenu/entity"

type TableMsg interface {
	isTableMsg()
}

func (SizeMsg) isTableMsg()    {}
func (PageMsg) isTableMsg()    {}
func (ColumnsMsg) isTableMsg() {}
func (FilterMsg) isTableMsg()  {}
func (ResetMsg) isTableMsg()   {}

type SizeMsg struct {
	Width  int
	Height int
}

type PageMsg struct {
	Lines []nt.Line
	Count int
}

type ColumnsMsg struct {
	Columns []nt.Column
	Fields  []nt.Field
}

// FilterMsg signals the active filter changed
type FilterMsg struct {
	Filter nt.Filter
}

type ResetMsg struct{}
