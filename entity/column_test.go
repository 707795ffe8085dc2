package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVisible(t *testing.T) {

	columns := []Column{
		{Field: "id", Show: true},
		{Field: "name", Show: false},
		{Field: "price", Show: true, OrderIndex: 2},
		{Field: "status", Show: true, OrderIndex: 1},
		{Field: "type", Show: true},
	}

	var fields []string
	for _, col := range Visible(columns) {
		fields = append(fields, col.Field)
	}
	assert.Equal(t, []string{"id", "type", "status", "price"}, fields)
}

func TestShowAll(t *testing.T) {

	columns := []Column{{Field: "id", Show: true}, {Field: "name"}}

	shown := ShowAll(columns)
	assert.Equal(t, 2, VisibleCount(shown))
	assert.False(t, columns[1].Show, "original is untouched")
}

func TestFindColumn(t *testing.T) {

	columns := []Column{{Field: "id"}, {Field: "name", Title: "Product"}}

	col, ok := FindColumn(columns, "name")
	assert.True(t, ok)
	assert.Equal(t, "Product", col.Label())

	_, ok = FindColumn(columns, "nope")
	assert.False(t, ok)

	assert.Equal(t, "id", columns[0].Label())
}

func TestValue(t *testing.T) {

	i, err := Value{Raw: int32(7)}.Int()
	assert.NoError(t, err)
	assert.Equal(t, 7, i)

	f, err := Value{Raw: int64(3)}.Float()
	assert.NoError(t, err)
	assert.Equal(t, 3.0, f)

	_, err = Value{Raw: "x"}.Int()
	assert.Error(t, err)

	assert.Equal(t, "", Value{}.String())
	assert.Equal(t, "12.5", Value{Raw: 12.5}.String())
}
