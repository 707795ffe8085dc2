// Package logging adapts log/slog to entity.Logger with attributes carried by context.
package logging

import (
	"context"
	"io"
	"log/slog"

	"github.com/pkg/errors"
)

type ctxKey string

const (
	slogFields ctxKey = "slog_fields"
	Component  string = "component"
)

// ContextHandler adds attributes found in ctx to each record.
type ContextHandler struct {
	slog.Handler
}

func (h ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if attrs, ok := ctx.Value(slogFields).([]slog.Attr); ok {
		r.AddAttrs(attrs...)
	}

	err := h.Handler.Handle(ctx, r)
	return errors.Wrapf(err, "failed to handle log record %q", r.Message)
}

// AppendCtx adds an attribute to ctx for inclusion in subsequent records.
func AppendCtx(parent context.Context, attr slog.Attr) context.Context {

	var attrs []slog.Attr
	if v, ok := parent.Value(slogFields).([]slog.Attr); ok {
		attrs = append(attrs, v...)
	}
	attrs = append(attrs, attr)

	return context.WithValue(parent, slogFields, attrs)
}

// ComponentCtx tags ctx with a component name.
func ComponentCtx(parent context.Context, name string) context.Context {
	return AppendCtx(parent, slog.String(Component, name))
}

// Slogger is a contextual, structured logger.
type Slogger struct {
	logger *slog.Logger
}

// New creates a Slogger writing json lines to writer.
func New(writer io.Writer, level slog.Level) *Slogger {

	handler := slog.NewJSONHandler(writer, &slog.HandlerOptions{Level: level})
	return &Slogger{
		logger: slog.New(ContextHandler{Handler: handler}),
	}
}

func (lgr *Slogger) Debug(ctx context.Context, msg string, kv ...any) {
	lgr.logger.DebugContext(ctx, msg, kv...)
}

func (lgr *Slogger) Info(ctx context.Context, msg string, kv ...any) {
	lgr.logger.InfoContext(ctx, msg, kv...)
}

func (lgr *Slogger) Error(ctx context.Context, msg string, err error, kv ...any) {
	lgr.logger.ErrorContext(ctx, msg, append(kv, "error", errString(err))...)
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
