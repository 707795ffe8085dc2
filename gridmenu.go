// Package gridmenu hosts a product grid with a per-column menu.
package gridmenu

import (
	nt "gridmenu/entity"
)

// Todo: follow the store when products change under the grid

// Store specifies a backing datastore.
type Store interface {
	// Name returns the name of the data source
	Name() string
	// SetView Filter and Sort(s)
	SetView(filter nt.Filter, sorts []nt.Sort) (err error)
	// GetView fields and count
	GetView() (fields []nt.Field, count int, err error)
	// GetPage of lines
	GetPage(offset, size int) (lines []nt.Line, err error)
	// Distinct values of a field
	Distinct(field string) (values []string, err error)
}
