package funcall

import (
	"context"
	"encoding/json"
	"time"
)

// defOptions hold optional definition settings.
type defOptions struct {
	strict bool
}

// Option configures a definition built with New or NewDynamic.
type Option func(*defOptions)

// WithStrict sets strict schema mode: additionalProperties false for every
// object and all properties required. Use for OpenAI Structured Outputs
// compatibility.
func WithStrict() Option {
	return func(o *defOptions) {
		o.strict = true
	}
}

// RegistryOption configures a Registry.
type RegistryOption func(*registryOptions)

type registryOptions struct {
	onBefore func(context.Context, ToolCallRequest)
	onAfter  func(context.Context, ToolCallRequest, json.RawMessage, error, time.Duration)
}

// WithOnBeforeCall sets a hook invoked before each dispatch, after the
// function lookup succeeds.
func WithOnBeforeCall(fn func(context.Context, ToolCallRequest)) RegistryOption {
	return func(o *registryOptions) {
		o.onBefore = fn
	}
}

// WithOnAfterCall sets a hook invoked when a dispatch finishes, success or
// error, with the result, the error, and the elapsed time.
func WithOnAfterCall(fn func(context.Context, ToolCallRequest, json.RawMessage, error, time.Duration)) RegistryOption {
	return func(o *registryOptions) {
		o.onAfter = fn
	}
}
