package gridmenu

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "layout.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadLayout(t *testing.T) {

	path := writeFile(t, `
columns:
  - {field: id, title: ID, show: true, default_column: true, width: 5}
  - {field: name, title: Name, show: false, width: 20}
filter:
  op: contains
  field: name
  value: hub
menu: {sort: true, filter: true, grid_class: products, checkbox: [name]}
custom: {name: {title: Product}}
`)

	layout, err := LoadLayout(path)
	require.NoError(t, err)

	assert.Len(t, layout.Columns, 2)
	assert.True(t, layout.Columns[0].DefaultColumn)
	assert.Equal(t, "hub", layout.Filter.Value)
	assert.Equal(t, "Product", layout.Custom["name"].Title)
	assert.Equal(t, MenuOptions{Sort: true, Filter: true, GridClass: "products", Checkbox: []string{"name"}}, layout.Menu)
}

func TestLoadLayoutRejects(t *testing.T) {

	tests := []struct {
		name    string
		content string
		exp     string
	}{
		{"no columns", "menu: {sort: true}", "no columns"},
		{"duplicate", "columns: [{field: id, show: true}, {field: id}]", "duplicate column"},
		{"none shown", "columns: [{field: id}, {field: name}]", "no visible columns"},
		{"bad op", "columns: [{field: id, show: true}]\nfilter: {op: like}", "unknown filter op"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadLayout(writeFile(t, tc.content))
			assert.ErrorContains(t, err, tc.exp)
		})
	}
}
