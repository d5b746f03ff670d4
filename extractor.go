package funcall

import (
	"encoding/json"
	"maps"

	"github.com/google/jsonschema-go/jsonschema"
)

// Extractor provides schema generation and validated parsing for type A
// without going through a Definition or Registry. Use it in orchestrators
// that need the schema export and the typed parse but run their own dispatch.
type Extractor[A any] struct {
	schemaMap map[string]any
	resolved  *jsonschema.Resolved
}

// NewExtractor creates an Extractor for type A. strict applies the same
// rewrite as WithStrict: additionalProperties false, all properties required.
func NewExtractor[A any](strict bool) (*Extractor[A], error) {
	schemaMap, resolved, err := schemaFor[A](strict)
	if err != nil {
		return nil, err
	}
	return &Extractor[A]{schemaMap: schemaMap, resolved: resolved}, nil
}

// Schema returns a shallow copy of the generated JSON Schema (top-level keys
// only). Nested maps are shared; callers must not mutate them.
func (e *Extractor[A]) Schema() map[string]any {
	return maps.Clone(e.schemaMap)
}

// ParseAndValidate deserializes argsJSON into A after schema validation, then
// runs Validatable.Validate when A implements it. Parse errors come back
// unmodified; validation failures wrap ErrInvalidArguments.
func (e *Extractor[A]) ParseAndValidate(argsJSON []byte) (A, error) {
	var zero A
	var v any
	if err := json.Unmarshal(argsJSON, &v); err != nil {
		return zero, err
	}
	if err := validateValue(e.resolved, v); err != nil {
		return zero, err
	}
	var args A
	if err := json.Unmarshal(argsJSON, &args); err != nil {
		return zero, err
	}
	if err := validateCustom(args); err != nil {
		return zero, err
	}
	return args, nil
}
