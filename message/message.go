package message

import nt "gridmenu/entity"

// ErrorMsg contains an error
type ErrorMsg struct {
	Err error
}

// GetPageMsg signals to load a page of lines
type GetPageMsg struct {
	Offset int
	Size   int
}

// SelectedMsg reports the selected line
type SelectedMsg struct {
	Row int
	Id  string
}

// OpenMenuMsg signals to open the column menu on a field
type OpenMenuMsg struct {
	Field string
}

// ColumnsSubmittedMsg carries a finalized column list to the host
type ColumnsSubmittedMsg struct {
	Columns []nt.Column
}

// CloseMenuMsg signals the column menu is done
type CloseMenuMsg struct{}

// SetFilterMsg replaces the grid filter
type SetFilterMsg struct {
	Filter nt.Filter
}

// SetSortMsg replaces the grid sort
type SetSortMsg struct {
	Sorts []nt.Sort
}
