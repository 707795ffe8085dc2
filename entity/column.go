package entity

import (
	"cmp"
	"slices"
)

// Column describes one grid column as offered by the column menu.
type Column struct {
	Field         string `yaml:"field"`
	Title         string `yaml:"title"`
	Show          bool   `yaml:"show"`
	DefaultColumn bool   `yaml:"default_column,omitempty"` // never offered as a toggle row
	Width         int    `yaml:"width"`
	OrderIndex    int    `yaml:"order_index,omitempty"`
	Format        string `yaml:"format,omitempty"`
}

// Label returns the title, or the field name when untitled.
func (col Column) Label() string {
	if col.Title == "" {
		return col.Field
	}
	return col.Title
}

// CloneColumns returns a copy safe to mutate.
func CloneColumns(columns []Column) []Column {
	if columns == nil {
		return nil
	}
	return slices.Clone(columns)
}

// ShowAll returns a copy of columns with every column shown.
func ShowAll(columns []Column) []Column {
	shown := CloneColumns(columns)
	for i := range shown {
		shown[i].Show = true
	}
	return shown
}

// VisibleCount counts shown columns.
func VisibleCount(columns []Column) int {
	count := 0
	for _, col := range columns {
		if col.Show {
			count++
		}
	}
	return count
}

// FindColumn returns the column with field, if any.
func FindColumn(columns []Column, field string) (col Column, ok bool) {
	idx := slices.IndexFunc(columns, func(c Column) bool {
		return c.Field == field
	})
	if idx < 0 {
		return
	}
	return columns[idx], true
}

// Visible returns shown columns in display order.
// Stable on OrderIndex, so unordered columns keep list order.
func Visible(columns []Column) []Column {

	visible := []Column{}
	for _, col := range columns {
		if col.Show {
			visible = append(visible, col)
		}
	}

	slices.SortStableFunc(visible, func(a, b Column) int {
		return cmp.Compare(a.OrderIndex, b.OrderIndex)
	})

	return visible
}
