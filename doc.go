// Package funcall turns typed Go functions into LLM-callable tools and
// dispatches the tool calls an LLM sends back.
//
// # Overview
//
// An LLM chat-completion API accepts a list of tool descriptors and returns
// tool calls as JSON. This package owns both directions: a typed function
// plus an argument struct become a Definition (reflection generates the JSON
// Schema shown to the model), a Registry exports the definitions in the
// OpenAI tool wire format, and CallTool routes an incoming call back to the
// right handler: parse, validate against the same schema the model saw,
// invoke, return the JSON result.
//
// # Key concepts
//
//   - Single source of truth: one argument struct drives both the exported
//     schema and the validation of incoming arguments.
//   - Self-correction: validation failures come back as *ArgumentError whose
//     message names the function and asks for corrected parameters, ready to
//     be fed to the model as the tool's error output.
//   - Execution context: Registry and Definition are generic over a
//     caller-defined context type C, passed to every handler untouched, so
//     handlers reach their dependencies without globals.
//
// # Example
//
//	type AddArgs struct {
//		A float64 `json:"a" description:"first addend"`
//		B float64 `json:"b" description:"second addend"`
//	}
//	def, err := funcall.New("Add two numbers",
//		func(_ context.Context, args AddArgs, _ struct{}) (float64, error) {
//			return args.A + args.B, nil
//		})
//	if err != nil { ... }
//	reg := funcall.NewRegistry[struct{}]()
//	reg.Set("add_two", def)
//	tools := reg.AsTools() // send with the chat-completion request
//	res, err := reg.CallTool(ctx, funcall.ToolCallRequest{
//		Name:      "add_two",
//		Arguments: `{"a":2,"b":3}`,
//	}, struct{}{})
package funcall
