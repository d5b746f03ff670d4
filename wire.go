package funcall

// ToolDescriptor is the wire-format projection of one registry entry, shaped
// exactly like an OpenAI chat-completion tool definition. Recomputed by
// AsTools on demand, never cached.
type ToolDescriptor struct {
	Type     string       `json:"type"`
	Function FunctionSpec `json:"function"`
}

// FunctionSpec is the function part of a ToolDescriptor.
type FunctionSpec struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}

// descriptorType is the only tool type the chat-completion format defines
// for callable functions.
const descriptorType = "function"

// parameterSchema projects the wire-level parameter schema out of a generated
// argument schema: exactly type, properties, and required. If any of the
// three is missing (the schema degenerated to an empty object), it returns an
// empty map rather than a partially-populated descriptor.
func parameterSchema(schema map[string]any) map[string]any {
	typ, okType := schema["type"]
	props, okProps := schema["properties"]
	required, okRequired := schema["required"]
	if !okType || !okProps || !okRequired {
		return map[string]any{}
	}
	return map[string]any{
		"type":       typ,
		"properties": props,
		"required":   required,
	}
}
