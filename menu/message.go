package menu

import nt "gridmenu/entity"

type MenuMsg interface {
	isMenuMsg()
}

func (SizeMsg) isMenuMsg()    {}
func (ColumnsMsg) isMenuMsg() {}

type SizeMsg struct {
	Width  int
	Height int
}

// ColumnsMsg signals the host's column list changed
type ColumnsMsg struct {
	Columns []nt.Column
}
