package funcall

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParameterSchema_AllThreeFields(t *testing.T) {
	t.Parallel()
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"a": map[string]any{"type": "number"},
		},
		"required":             []any{"a"},
		"additionalProperties": false,
		"$schema":              "https://json-schema.org/draft/2020-12/schema",
	}
	params := parameterSchema(schema)
	// Exactly the three wire fields, everything else dropped.
	assert.Len(t, params, 3)
	assert.Equal(t, "object", params["type"])
	assert.Equal(t, schema["properties"], params["properties"])
	assert.Equal(t, []any{"a"}, params["required"])
}

func TestParameterSchema_Fallback(t *testing.T) {
	t.Parallel()
	for name, schema := range map[string]map[string]any{
		"empty":         {},
		"no type":       {"properties": map[string]any{}, "required": []any{}},
		"no properties": {"type": "object", "required": []any{}},
		"no required":   {"type": "object", "properties": map[string]any{}},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, map[string]any{}, parameterSchema(schema))
		})
	}
}

func TestToolDescriptor_JSONShape(t *testing.T) {
	t.Parallel()
	desc := ToolDescriptor{
		Type: descriptorType,
		Function: FunctionSpec{
			Name:        "add_two",
			Description: "Add two numbers",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"a": map[string]any{"type": "number"},
					"b": map[string]any{"type": "number"},
				},
				"required": []any{"a", "b"},
			},
		},
	}
	data, err := json.Marshal(desc)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type": "function",
		"function": {
			"name": "add_two",
			"description": "Add two numbers",
			"parameters": {
				"type": "object",
				"properties": {
					"a": {"type": "number"},
					"b": {"type": "number"}
				},
				"required": ["a", "b"]
			}
		}
	}`, string(data))
}

func TestAsTools_FallbackParameters(t *testing.T) {
	t.Parallel()
	// An object schema with no properties at all degenerates to {} on the wire.
	def, err := NewDynamic("No arguments", map[string]any{"type": "object"},
		func(_ context.Context, argsJSON json.RawMessage, _ struct{}) (json.RawMessage, error) {
			return []byte(`"ok"`), nil
		})
	require.NoError(t, err)
	reg := NewRegistry[struct{}]()
	reg.Set("no_args", def)

	tools := reg.AsTools()
	require.Len(t, tools, 1)
	assert.Equal(t, map[string]any{}, tools[0].Function.Parameters)
}
