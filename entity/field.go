package entity

// Field is a column of the backing store.
type Field struct {
	Name string
	Type string
}
