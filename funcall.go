package funcall

import (
	"context"
	"encoding/json"
	"maps"

	"github.com/google/jsonschema-go/jsonschema"
)

// HandlerFunc is the erased handler signature stored inside a Definition.
// argsJSON has already passed schema validation when the registry invokes it.
// C is the caller-supplied execution context, threaded through unchanged so
// handlers can reach application dependencies (API clients, session state)
// without globals. The library never inspects it.
type HandlerFunc[C any] func(ctx context.Context, argsJSON json.RawMessage, ec C) (json.RawMessage, error)

// Definition is one registered function: a description shown to the LLM, an
// object-shaped argument schema, and a handler. Immutable after construction
// (New or NewDynamic); it carries no name, the name is the registry key.
type Definition[C any] struct {
	description string
	schema      map[string]any
	resolved    *jsonschema.Resolved
	handler     HandlerFunc[C]
}

// Description returns the human-readable purpose string passed to the builder.
func (d *Definition[C]) Description() string { return d.description }

// Schema returns a shallow copy of the argument schema (top-level keys only).
// Nested maps are shared; callers must not mutate them.
func (d *Definition[C]) Schema() map[string]any { return maps.Clone(d.schema) }

// Handler returns the erased handler. Exposed for callers that dispatch
// outside a Registry; arguments passed directly are not schema-validated.
func (d *Definition[C]) Handler() HandlerFunc[C] { return d.handler }

// ToolCallRequest is a single invocation request as produced by the LLM:
// a function name and a JSON-encoded object literal with the arguments.
// ID is the provider's call correlation id; the dispatcher passes it through.
type ToolCallRequest struct {
	ID        string
	Name      string
	Arguments string
}
