package gridmenu

import (
	"os"

	"github.com/pkg/errors"

	nt "gridmenu/entity"
	"gridmenu/util"
)

const layoutMode os.FileMode = 0644

// MenuOptions configures the column menu.
type MenuOptions struct {
	Sort        bool     `yaml:"sort"`
	Filter      bool     `yaml:"filter"`
	HideColumns bool     `yaml:"hide_columns,omitempty"`
	GridClass   string   `yaml:"grid_class,omitempty"`
	ChildClass  string   `yaml:"child_class,omitempty"`
	Checkbox    []string `yaml:"checkbox,omitempty"` // fields filtered by distinct value
}

// Layout is the persisted arrangement of the grid.
type Layout struct {
	Columns []nt.Column          `yaml:"columns"`
	Filter  nt.Filter            `yaml:"filter,omitempty"`
	Sorts   []nt.Sort            `yaml:"sorts,omitempty"`
	Menu    MenuOptions          `yaml:"menu"`
	Custom  map[string]nt.Column `yaml:"custom,omitempty"`
}

// LoadLayout reads and checks a layout file.
func LoadLayout(path string) (layout *Layout, err error) {

	layout = &Layout{}
	err = util.LoadConfig(layout, path)
	if err != nil {
		return
	}

	err = layout.check()
	err = errors.Wrapf(err, "bad layout in %s", path)
	return
}

// Write saves the layout.
func (layout *Layout) Write(path string) (err error) {

	err = util.WriteConfig(layout, path, layoutMode)
	return
}

func (layout *Layout) check() (err error) {

	if len(layout.Columns) == 0 {
		return errors.Errorf("no columns")
	}

	seen := map[string]bool{}
	for _, col := range layout.Columns {
		if col.Field == "" {
			return errors.Errorf("column without field")
		}
		if seen[col.Field] {
			return errors.Errorf("duplicate column %q", col.Field)
		}
		seen[col.Field] = true
	}

	if nt.VisibleCount(layout.Columns) == 0 {
		return errors.Errorf("no visible columns")
	}

	return
}
