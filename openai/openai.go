// Package openai bridges a funcall.Registry to the official OpenAI Go SDK:
// registry descriptors out as chat-completion tool params, completion-message
// tool calls in as dispatch requests.
package openai

import (
	"encoding/json"

	"github.com/funcall/funcall"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/shared"
)

// Tools converts the registry's descriptors into chat-completion tool params
// for openai.ChatCompletionNewParams.Tools.
func Tools[C any](r *funcall.Registry[C]) []openai.ChatCompletionToolUnionParam {
	descriptors := r.AsTools()
	tools := make([]openai.ChatCompletionToolUnionParam, 0, len(descriptors))
	for _, d := range descriptors {
		fn := shared.FunctionDefinitionParam{
			Name:       d.Function.Name,
			Parameters: shared.FunctionParameters(d.Function.Parameters),
		}
		if d.Function.Description != "" {
			fn.Description = openai.String(d.Function.Description)
		}
		tools = append(tools, openai.ChatCompletionToolUnionParam{
			OfFunction: &openai.ChatCompletionFunctionToolParam{Function: fn},
		})
	}
	return tools
}

// Requests converts the tool calls of a completion message (e.g.
// completion.Choices[0].Message.ToolCalls) into dispatch requests.
func Requests(calls []openai.ChatCompletionMessageToolCallUnion) []funcall.ToolCallRequest {
	reqs := make([]funcall.ToolCallRequest, 0, len(calls))
	for _, call := range calls {
		reqs = append(reqs, funcall.ToolCallRequest{
			ID:        call.ID,
			Name:      call.Function.Name,
			Arguments: call.Function.Arguments,
		})
	}
	return reqs
}

// ResultMessage wraps a CallTool result as the tool message answering req,
// for inclusion in the next request turn.
func ResultMessage(req funcall.ToolCallRequest, result json.RawMessage) openai.ChatCompletionMessageParamUnion {
	return openai.ToolMessage(string(result), req.ID)
}

// ErrorMessage wraps a recoverable dispatch error (typically an
// *funcall.ArgumentError) as the tool message answering req, so the model
// can read it and retry with corrected arguments.
func ErrorMessage(req funcall.ToolCallRequest, err error) openai.ChatCompletionMessageParamUnion {
	return openai.ToolMessage(err.Error(), req.ID)
}
