package funcall

import (
	"encoding/json"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"
	"sync"

	"github.com/google/jsonschema-go/jsonschema"
)

var (
	typeOverridesMu sync.RWMutex
	typeOverrides   = make(map[reflect.Type]*jsonschema.Schema)
)

// RegisterType maps a custom Go type to a JSON Schema type/format in generated
// argument schemas. emptyInstance is a value of the type (e.g. uuid.UUID{});
// jsonType is the JSON Schema type ("string", "number", ...); format is
// optional ("uuid", "decimal", ...). Pointer fields (*T) reuse the mapping for
// T. Call at application startup, before the first New or NewExtractor.
func RegisterType(emptyInstance any, jsonType, format string) {
	if emptyInstance == nil {
		panic("funcall: RegisterType emptyInstance must not be nil")
	}
	if jsonType == "" {
		panic("funcall: RegisterType jsonType must not be empty")
	}
	typeOverridesMu.Lock()
	defer typeOverridesMu.Unlock()
	typeOverrides[reflect.TypeOf(emptyInstance)] = &jsonschema.Schema{Type: jsonType, Format: format}
}

// overrideSchemas snapshots the registered type mappings for jsonschema.ForOptions.
func overrideSchemas() map[reflect.Type]*jsonschema.Schema {
	typeOverridesMu.RLock()
	defer typeOverridesMu.RUnlock()
	out := make(map[reflect.Type]*jsonschema.Schema, len(typeOverrides))
	for t, s := range typeOverrides {
		out[t] = s.CloneSchemas()
	}
	return out
}

// schemaFor reflects an argument schema for type A and compiles a validator
// for it. Runs once per New call. The root must come out object-shaped: the
// tool-calling wire format has no place for a bare scalar or array schema.
func schemaFor[A any](strict bool) (map[string]any, *jsonschema.Resolved, error) {
	schema, err := jsonschema.For[A](&jsonschema.ForOptions{TypeSchemas: overrideSchemas()})
	if err != nil {
		return nil, nil, err
	}
	schemaMap, err := schemaToMap(schema)
	if err != nil {
		return nil, nil, err
	}
	if t, _ := schemaMap["type"].(string); t != "object" {
		return nil, nil, fmt.Errorf("funcall: argument type %T must produce an object schema, got %q", *new(A), t)
	}
	describeFromTags(schemaMap, reflect.TypeOf(*new(A)))
	normalizeSchema(schemaMap, strict)
	resolved, err := compileSchema(schemaMap)
	if err != nil {
		return nil, nil, err
	}
	return schemaMap, resolved, nil
}

// schemaToMap round-trips a Schema through JSON into a plain map.
func schemaToMap(schema *jsonschema.Schema) (map[string]any, error) {
	if schema == nil {
		return nil, fmt.Errorf("funcall: schema reflection returned nil")
	}
	data, err := json.Marshal(schema)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// describeFromTags copies `description` and `enum` struct tags onto the
// matching root-level properties. The json tag (part before the comma) keys
// the match; typ may be a pointer to the struct.
func describeFromTags(schemaMap map[string]any, typ reflect.Type) {
	if schemaMap == nil || typ == nil {
		return
	}
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return
	}
	props, ok := schemaMap["properties"].(map[string]any)
	if !ok {
		return
	}
	for i := range typ.NumField() {
		field := typ.Field(i)
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}
		prop, ok := props[name].(map[string]any)
		if !ok {
			continue
		}
		if desc := field.Tag.Get("description"); desc != "" {
			prop["description"] = desc
		}
		if enumTag := field.Tag.Get("enum"); enumTag != "" {
			parts := strings.Split(enumTag, ",")
			enum := make([]any, len(parts))
			for j, p := range parts {
				enum[j] = strings.TrimSpace(p)
			}
			prop["enum"] = enum
		}
	}
}

// walkSchema visits every map node in the schema tree, including $defs.
func walkSchema(node map[string]any, visit func(map[string]any)) {
	if node == nil {
		return
	}
	visit(node)
	for _, val := range node {
		switch v := val.(type) {
		case map[string]any:
			walkSchema(v, visit)
		case []any:
			for _, item := range v {
				if child, ok := item.(map[string]any); ok {
					walkSchema(child, visit)
				}
			}
		}
	}
}

// normalizeSchema strips id/$id everywhere (so resolution never depends on
// them) and, when strict is set, rewrites every object node for OpenAI
// Structured Outputs: additionalProperties false, all properties required.
func normalizeSchema(schemaMap map[string]any, strict bool) {
	walkSchema(schemaMap, func(n map[string]any) {
		delete(n, "id")
		delete(n, "$id")
		props, isObj := n["properties"].(map[string]any)
		if !strict || !isObj {
			return
		}
		n["additionalProperties"] = false
		if len(props) == 0 {
			return
		}
		keys := slices.Sorted(maps.Keys(props))
		required := make([]any, len(keys))
		for i, k := range keys {
			required[i] = k
		}
		n["required"] = required
	})
}

// compileSchema turns a raw schema map into a resolved validator without
// mutating the map.
func compileSchema(schemaMap map[string]any) (*jsonschema.Resolved, error) {
	data, err := json.Marshal(schemaMap)
	if err != nil {
		return nil, err
	}
	var s jsonschema.Schema
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return s.Resolve(nil)
}
