package sketch

import (
	"context"
	"log/slog"
)

// nopHandler is a slog.Handler that discards every record. Enabled
// returns false so callers skip attribute formatting entirely, making
// disabled logging effectively free.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
// A Context logs nothing unless one is injected with [WithLogger].
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }
