package gridmenu

// Screen indicates which screen is currently displayed
type Screen int

const (
	TableScreen Screen = iota
	MenuScreen
)
