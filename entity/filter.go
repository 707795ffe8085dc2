package entity

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// FilterOp represents a filter operation type.
type FilterOp int

const (
	// Logical operators
	And FilterOp = iota
	Or
	Not

	// Comparison operators
	Eq       // ==
	Ne       // !=
	Gt       // >
	Gte      // >=
	Lt       // <
	Lte      // <=
	Contains // substring match
	Match    // regex match
)

var opNames = []string{"and", "or", "not", "eq", "ne", "gt", "gte", "lt", "lte", "contains", "match"}

func (op FilterOp) String() string {
	if op < 0 || int(op) >= len(opNames) {
		return "unknown"
	}
	return opNames[op]
}

// MarshalYAML writes the op by name.
func (op FilterOp) MarshalYAML() (any, error) {
	return op.String(), nil
}

// UnmarshalYAML reads the op by name.
func (op *FilterOp) UnmarshalYAML(node *yaml.Node) error {

	for i, name := range opNames {
		if node.Value == name {
			*op = FilterOp(i)
			return nil
		}
	}
	return errors.Errorf("unknown filter op %q", node.Value)
}

// Filter represents a composable filter for grid queries.
// Filters can be simple comparisons or complex logical combinations.
// The zero Filter matches everything.
type Filter struct {
	Op       FilterOp `yaml:"op"`                 // Operation type
	Field    string   `yaml:"field,omitempty"`    // Field name for comparison (empty for logical ops)
	Value    any      `yaml:"value,omitempty"`    // Comparison value (nil for logical ops)
	Enabled  bool     `yaml:"enabled,omitempty"`  // Whether this filter is active in an editor
	Children []Filter `yaml:"children,omitempty"` // Child filters for logical ops
}

// IsLeaf is true for comparisons.
func (f Filter) IsLeaf() bool {
	return f.Op >= Eq
}

// IsZero is true when the filter constrains nothing.
func (f Filter) IsZero() bool {
	return !f.IsLeaf() && len(f.Children) == 0
}

// Groups returns the active filter groups.
// A leaf root is a group of its own, the children of an And root are groups.
func (f Filter) Groups() []Filter {

	switch {
	case f.IsZero():
		return nil
	case f.IsLeaf(), f.Op != And:
		return []Filter{f}
	}

	groups := []Filter{}
	for _, child := range f.Children {
		if child.IsZero() {
			continue
		}
		groups = append(groups, child)
	}
	return groups
}

// GroupField is the field a group filters on: its own, or that of its first child.
func (f Filter) GroupField() string {
	if f.IsLeaf() || len(f.Children) == 0 {
		return f.Field
	}
	return f.Children[0].GroupField()
}

// FilteredFields lists the field of each active group, in order.
func FilteredFields(f Filter) []string {

	fields := []string{}
	for _, group := range f.Groups() {
		if field := group.GroupField(); field != "" {
			fields = append(fields, field)
		}
	}
	return fields
}

// GroupFor returns the group filtering on field, if any.
func GroupFor(f Filter, field string) (group Filter, ok bool) {
	for _, group := range f.Groups() {
		if group.GroupField() == field {
			return group, true
		}
	}
	return
}

// WithGroup replaces the groups on field with group.
// A zero group removes the field's filtering.
func WithGroup(f Filter, field string, group Filter) Filter {

	groups := []Filter{}
	for _, existing := range f.Groups() {
		if existing.GroupField() != field {
			groups = append(groups, existing)
		}
	}
	if !group.IsZero() {
		groups = append(groups, group)
	}

	switch {
	case len(groups) == 0:
		return Filter{}
	case len(groups) == 1 && groups[0].IsLeaf():
		return groups[0]
	}
	return Filter{Op: And, Children: groups}
}

// Sort represents a sort directive for grid queries.
type Sort struct {
	Field string `yaml:"field"` // Field name to sort by
	Desc  bool   `yaml:"desc"`  // Sort descending if true, ascending if false
}
