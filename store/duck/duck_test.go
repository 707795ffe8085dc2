package duck

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nt "gridmenu/entity"
	"gridmenu/logging"
)

const products = `[
	{"id": 1, "name": "Pro Hub", "created_user_name": "Avery Kim", "product_status_name": "Active", "item_type_name": "Hardware", "price": 120.5, "updated_at": "2025-03-01 10:00:00"},
	{"id": 2, "name": "Mini Relay", "created_user_name": "Sam Ortiz", "product_status_name": "Draft", "item_type_name": "Hardware", "price": 9.99, "updated_at": "2025-04-02 11:30:00"},
	{"id": 3, "name": "Support Plan", "created_user_name": "Avery Kim", "product_status_name": "Active", "item_type_name": "Service", "price": 499, "updated_at": ""}
]`

func newDuck(t *testing.T) *Duck {
	t.Helper()

	dk, err := New(context.Background(), logging.New(io.Discard, slog.LevelInfo))
	require.NoError(t, err)
	t.Cleanup(dk.Close)

	err = dk.Load(context.Background(), "test", []byte(products))
	require.NoError(t, err)
	return dk
}

func ids(t *testing.T, lines []nt.Line) []string {
	t.Helper()

	out := []string{}
	for _, line := range lines {
		out = append(out, line.Id)
	}
	return out
}

func TestLoadAndView(t *testing.T) {

	dk := newDuck(t)
	assert.Equal(t, "test", dk.Name())

	fields, count, err := dk.GetView()
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	require.Len(t, fields, 7)
	assert.Equal(t, nt.Field{Name: "id", Type: "BIGINT"}, fields[0])
	assert.Equal(t, "DOUBLE", fields[5].Type)

	lines, err := dk.GetPage(0, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, ids(t, lines))
	assert.Equal(t, "Pro Hub", lines[0].Values[1].String())

	price, err := lines[0].Values[5].Float()
	require.NoError(t, err)
	assert.Equal(t, 120.5, price)

	lines, err = dk.GetPage(0, 0)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestSetView(t *testing.T) {

	dk := newDuck(t)

	filter := nt.Filter{Op: nt.And, Children: []nt.Filter{
		{Op: nt.Eq, Field: "product_status_name", Value: "Active"},
		{Op: nt.Gt, Field: "price", Value: "100"},
	}}
	err := dk.SetView(filter, []nt.Sort{{Field: "price", Desc: true}})
	require.NoError(t, err)

	_, count, err := dk.GetView()
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	lines, err := dk.GetPage(0, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "1"}, ids(t, lines))

	err = dk.SetView(nt.Filter{Op: nt.Contains, Field: "name", Value: "relay"}, nil)
	require.NoError(t, err)

	lines, err = dk.GetPage(0, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, ids(t, lines))

	err = dk.SetView(nt.Filter{Op: nt.Match, Field: "name", Value: "^(Pro|Support)"}, nil)
	require.NoError(t, err)

	lines, err = dk.GetPage(0, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "3"}, ids(t, lines))
}

func TestContainsWildcardsAreLiteral(t *testing.T) {

	dk := newDuck(t)

	tests := []struct {
		value string
		exp   int
	}{
		{"%", 0},
		{"_", 0},
		{"9.9", 1},
		{"9_9", 0},
	}

	for _, tc := range tests {
		t.Run(tc.value, func(t *testing.T) {
			err := dk.SetView(nt.Filter{Op: nt.Contains, Field: "price", Value: tc.value}, nil)
			require.NoError(t, err)

			_, count, err := dk.GetView()
			require.NoError(t, err)
			assert.Equal(t, tc.exp, count)
		})
	}
}

func TestDistinct(t *testing.T) {

	dk := newDuck(t)

	values, err := dk.Distinct("product_status_name")
	require.NoError(t, err)
	assert.Equal(t, []string{"Active", "Draft"}, values)

	_, err = dk.Distinct("nope")
	assert.Error(t, err)
}

func TestLoadBadJson(t *testing.T) {

	dk, err := New(context.Background(), logging.New(io.Discard, slog.LevelInfo))
	require.NoError(t, err)
	defer dk.Close()

	err = dk.Load(context.Background(), "bad", []byte("{"))
	assert.ErrorContains(t, err, "failed to unmarshal products from bad")
}
