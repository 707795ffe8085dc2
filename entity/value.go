package entity

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
)

// Value is a cell as scanned from the store.
type Value struct {
	Raw any
}

// String returns the value as text, empty for null.
func (v Value) String() string {
	switch raw := v.Raw.(type) {
	case nil:
		return ""
	case string:
		return raw
	case time.Time:
		return raw.Format(time.DateTime)
	}
	return fmt.Sprintf("%v", v.Raw)
}

// Int returns an integer value of any width.
func (v Value) Int() (int, error) {
	switch raw := v.Raw.(type) {
	case int:
		return raw, nil
	case int32:
		return int(raw), nil
	case int64:
		return int(raw), nil
	}
	return 0, errors.Errorf("value is not an int: %T", v.Raw)
}

// Float returns a floating point value, converting integers.
func (v Value) Float() (float64, error) {
	switch raw := v.Raw.(type) {
	case float64:
		return raw, nil
	case float32:
		return float64(raw), nil
	}
	if i, err := v.Int(); err == nil {
		return float64(i), nil
	}
	return 0, errors.Errorf("value is not a float: %T", v.Raw)
}

// Time returns the value as a time.Time.
func (v Value) Time() (time.Time, error) {
	t, ok := v.Raw.(time.Time)
	if !ok {
		return time.Time{}, errors.Errorf("value is not a time.Time: %T", v.Raw)
	}
	return t, nil
}

// Line is one grid row, values ordered as the fields from Store.GetView.
type Line struct {
	Id     string
	Values []Value
}
