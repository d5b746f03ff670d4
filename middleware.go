package funcall

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
)

// Middleware wraps a handler with cross-cutting behavior (logging, recovery).
// name is the registry key of the function being wrapped.
type Middleware[C any] func(name string, next HandlerFunc[C]) HandlerFunc[C]

// Use stores the middlewares and reapplies them from scratch to every
// registered handler (onion order: first middleware is outermost).
// Definitions registered after Use get them too. Calling Use again replaces
// the chain and rewraps from the raw handlers, so nothing is double-wrapped.
func (r *Registry[C]) Use(middlewares ...Middleware[C]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.middlewares = middlewares
	for name, def := range r.funcs {
		r.handlers[name] = wrapHandler(name, def.handler, middlewares)
	}
}

func wrapHandler[C any](name string, h HandlerFunc[C], middlewares []Middleware[C]) HandlerFunc[C] {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](name, h)
	}
	return h
}

// WithLogging returns a middleware that logs start, end, duration, and errors.
func WithLogging[C any](logger *slog.Logger) Middleware[C] {
	if logger == nil {
		logger = slog.Default()
	}
	return func(name string, next HandlerFunc[C]) HandlerFunc[C] {
		return func(ctx context.Context, argsJSON json.RawMessage, ec C) (json.RawMessage, error) {
			logger.Info("function start", "function", name)
			start := time.Now()
			res, err := next(ctx, argsJSON, ec)
			dur := time.Since(start)
			if err != nil {
				logger.Error("function error", "function", name, "duration", dur, "error", err)
				return nil, err
			}
			logger.Info("function end", "function", name, "duration", dur)
			return res, nil
		}
	}
}

// WithRecovery returns a middleware that converts handler panics into errors.
// The dispatcher itself never recovers; opt in per registry with Use.
func WithRecovery[C any]() Middleware[C] {
	return func(name string, next HandlerFunc[C]) HandlerFunc[C] {
		return func(ctx context.Context, argsJSON json.RawMessage, ec C) (res json.RawMessage, err error) {
			defer func() {
				if p := recover(); p != nil {
					res = nil
					err = fmt.Errorf("funcall: function %s panicked: %v", name, p)
				}
			}()
			return next(ctx, argsJSON, ec)
		}
	}
}
