// Package highlight marks the filter icon of grid headers whose column is filtered.
//
// The grid exposes only rendered header text, so headers are matched to
// filtered columns by title.
package highlight

import (
	"slices"

	nt "gridmenu/entity"
)

// Header is one rendered header cell.
type Header struct {
	Grid   string // grid the header belongs to
	Parent string // enclosing container, set for nested grids
	Index  int    // position among the grid's headers
	Text   string // visible label
	Marked bool   // filter icon carries the highlight
}

// Scope picks the headers a synchronizer may touch.
type Scope interface {
	InScope(hdr Header) bool
}

// Selector scopes headers by grid and excludes those nested under a child container.
// The zero Selector matches every header.
type Selector struct {
	GridClass  string
	ChildClass string
}

// InScope implements Scope.
func (sel Selector) InScope(hdr Header) bool {

	if sel.GridClass != "" && hdr.Grid != sel.GridClass {
		return false
	}
	if sel.ChildClass != "" && hdr.Parent == sel.ChildClass {
		return false
	}
	return true
}

// Titles resolves the display title of each filtered field.
// Custom overrides win over column titles; unknown fields resolve to nothing.
func Titles(columns []nt.Column, custom map[string]nt.Column, filter nt.Filter) []string {

	titles := []string{}
	for _, field := range nt.FilteredFields(filter) {

		if col, ok := custom[field]; ok && col.Title != "" {
			titles = append(titles, col.Title)
			continue
		}

		col, ok := nt.FindColumn(columns, field)
		if !ok {
			continue
		}
		titles = append(titles, col.Label())
	}
	return titles
}

// Sync returns a copy of headers with markers updated for titles.
// In-scope headers are marked when their text is a title and unmarked otherwise,
// out-of-scope headers are left as found.
func Sync(headers []Header, scope Scope, titles []string) []Header {

	if scope == nil {
		scope = Selector{}
	}

	synced := slices.Clone(headers)
	for i, hdr := range synced {
		if !scope.InScope(hdr) {
			continue
		}
		synced[i].Marked = len(titles) > 0 && slices.Contains(titles, hdr.Text)
	}
	return synced
}

// Marked returns the indices of marked headers.
func Marked(headers []Header) []int {

	marked := []int{}
	for _, hdr := range headers {
		if hdr.Marked {
			marked = append(marked, hdr.Index)
		}
	}
	return marked
}

// Synchronizer re-runs Sync from its inputs.
type Synchronizer struct {
	Scope  Scope
	Custom map[string]nt.Column
}

// Run computes updated headers for the current columns and filter.
func (syn Synchronizer) Run(headers []Header, columns []nt.Column, filter nt.Filter) []Header {

	titles := Titles(columns, syn.Custom, filter)
	return Sync(headers, syn.Scope, titles)
}
