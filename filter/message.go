package filter

// FilterMsg is implemented by messages a host sends to its filter panel.
type FilterMsg interface {
	isFilterMsg()
}

func (SizeMsg) isFilterMsg() {}

// SizeMsg carries the space given to the panel.
type SizeMsg struct {
	Width  int
	Height int
}
