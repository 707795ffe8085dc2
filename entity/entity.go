// Package entity holds the grid types shared by panels, menu and store.
package entity

import "context"

// Logger is a contextual, structured logger, kv are alternating keys and values.
type Logger interface {
	Debug(ctx context.Context, msg string, kv ...any)
	Info(ctx context.Context, msg string, kv ...any)
	Error(ctx context.Context, msg string, err error, kv ...any)
}
