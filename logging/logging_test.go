package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlogger(t *testing.T) {

	buf := &bytes.Buffer{}
	lgr := New(buf, slog.LevelInfo)

	ctx := ComponentCtx(context.Background(), "menu")
	ctx = AppendCtx(ctx, slog.String("field", "name"))

	lgr.Info(ctx, "opened", "count", 3)
	lgr.Error(ctx, "failed", errors.New("oops"))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	rec := map[string]any{}
	require.NoError(t, json.Unmarshal(lines[0], &rec))
	assert.Equal(t, "opened", rec["msg"])
	assert.Equal(t, "menu", rec["component"])
	assert.Equal(t, "name", rec["field"])
	assert.Equal(t, float64(3), rec["count"])

	rec = map[string]any{}
	require.NoError(t, json.Unmarshal(lines[1], &rec))
	assert.Equal(t, "ERROR", rec["level"])
	assert.Equal(t, "oops", rec["error"])
}

func TestSloggerDebugLevel(t *testing.T) {

	buf := &bytes.Buffer{}
	New(buf, slog.LevelInfo).Debug(context.Background(), "hidden")
	assert.Empty(t, buf.String())

	New(buf, slog.LevelDebug).Debug(context.Background(), "shown", "query", "SELECT 1")
	assert.Contains(t, buf.String(), `"level":"DEBUG"`)
	assert.Contains(t, buf.String(), `"query":"SELECT 1"`)
}

func TestAppendCtxDoesNotShare(t *testing.T) {

	base := ComponentCtx(context.Background(), "table")
	one := AppendCtx(base, slog.Int("n", 1))
	two := AppendCtx(base, slog.Int("n", 2))

	assert.Len(t, base.Value(slogFields).([]slog.Attr), 1)
	assert.Equal(t, int64(1), one.Value(slogFields).([]slog.Attr)[1].Value.Int64())
	assert.Equal(t, int64(2), two.Value(slogFields).([]slog.Attr)[1].Value.Int64())
}
