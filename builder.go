package funcall

import (
	"context"
	"encoding/json"
	"fmt"
)

// New builds a Definition from a typed function. The argument schema is
// reflected from A; R is marshaled to JSON as the call result; C is the
// execution context type threaded through to fn unchanged. The static types
// of fn are erased in the stored handler; schema validation at dispatch
// time re-establishes the safety the types gave at definition time.
// Returns an error if A does not produce an object schema (the tool-calling
// wire format requires named properties) or schema generation fails.
func New[A any, R any, C any](
	description string,
	fn func(ctx context.Context, args A, ec C) (R, error),
	opts ...Option,
) (*Definition[C], error) {
	var o defOptions
	for _, opt := range opts {
		opt(&o)
	}
	if fn == nil {
		return nil, fmt.Errorf("funcall: handler must not be nil")
	}
	schemaMap, resolved, err := schemaFor[A](o.strict)
	if err != nil {
		return nil, err
	}
	handler := func(ctx context.Context, argsJSON json.RawMessage, ec C) (json.RawMessage, error) {
		var args A
		if err := json.Unmarshal(argsJSON, &args); err != nil {
			return nil, err
		}
		if err := validateCustom(args); err != nil {
			return nil, err
		}
		res, err := fn(ctx, args, ec)
		if err != nil {
			// Handler errors pass through untouched; the caller decides
			// what the LLM gets to see.
			return nil, err
		}
		out, err := json.Marshal(res)
		if err != nil {
			return nil, fmt.Errorf("funcall: marshal result: %w", err)
		}
		return out, nil
	}
	return &Definition[C]{
		description: description,
		schema:      schemaMap,
		resolved:    resolved,
		handler:     handler,
	}, nil
}

// NewDynamic builds a Definition from a raw JSON Schema map and a handler
// that works on validated raw JSON. Useful when the schema is assembled at
// runtime (e.g. from an OpenAPI document). The schema root must describe an
// object. The map is deep-copied before any rewrite so the caller's value is
// never mutated.
func NewDynamic[C any](
	description string,
	schemaMap map[string]any,
	fn HandlerFunc[C],
	opts ...Option,
) (*Definition[C], error) {
	var o defOptions
	for _, opt := range opts {
		opt(&o)
	}
	if schemaMap == nil {
		return nil, fmt.Errorf("funcall: dynamic schema map must not be nil")
	}
	if fn == nil {
		return nil, fmt.Errorf("funcall: handler must not be nil")
	}
	schemaCopy, err := deepCopySchema(schemaMap)
	if err != nil {
		return nil, err
	}
	if t, _ := schemaCopy["type"].(string); t != "object" {
		return nil, fmt.Errorf("funcall: dynamic schema root must have type \"object\", got %q", t)
	}
	normalizeSchema(schemaCopy, o.strict)
	resolved, err := compileSchema(schemaCopy)
	if err != nil {
		return nil, fmt.Errorf("funcall: compile dynamic schema: %w", err)
	}
	return &Definition[C]{
		description: description,
		schema:      schemaCopy,
		resolved:    resolved,
		handler:     fn,
	}, nil
}

func deepCopySchema(schemaMap map[string]any) (map[string]any, error) {
	data, err := json.Marshal(schemaMap)
	if err != nil {
		return nil, fmt.Errorf("funcall: deep copy schema map: %w", err)
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("funcall: deep copy schema map: %w", err)
	}
	return out, nil
}
