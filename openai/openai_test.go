package openai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/funcall/funcall"
	"github.com/openai/openai-go/v3"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestTools(t *testing.T) {
	type Args struct {
		A float64 `json:"a"`
		B float64 `json:"b"`
	}
	def, err := funcall.New("Add two numbers",
		func(_ context.Context, args Args, _ struct{}) (float64, error) {
			return args.A + args.B, nil
		})
	require.NoError(t, err)
	reg := funcall.NewRegistry[struct{}]()
	reg.Set("add_two", def)

	tools := Tools(reg)
	require.Len(t, tools, 1)
	fn := tools[0].OfFunction
	require.NotNil(t, fn)
	assert.Equal(t, "add_two", fn.Function.Name)
	assert.Equal(t, "Add two numbers", fn.Function.Description.Value)
	assert.Equal(t, "object", fn.Function.Parameters["type"])
}

func TestTools_EmptyRegistry(t *testing.T) {
	reg := funcall.NewRegistry[struct{}]()
	assert.Empty(t, Tools(reg))
}

func TestRequests(t *testing.T) {
	calls := []openai.ChatCompletionMessageToolCallUnion{
		{
			ID: "call_1",
			Function: openai.ChatCompletionMessageFunctionToolCallFunction{
				Name:      "add_two",
				Arguments: `{"a":2,"b":3}`,
			},
		},
	}
	reqs := Requests(calls)
	require.Len(t, reqs, 1)
	assert.Equal(t, "call_1", reqs[0].ID)
	assert.Equal(t, "add_two", reqs[0].Name)
	assert.JSONEq(t, `{"a":2,"b":3}`, reqs[0].Arguments)
}

func TestResultMessage(t *testing.T) {
	req := funcall.ToolCallRequest{ID: "call_1", Name: "add_two", Arguments: `{"a":2,"b":3}`}
	msg := ResultMessage(req, []byte(`5`))
	tool := msg.OfTool
	require.NotNil(t, tool)
	assert.Equal(t, "call_1", tool.ToolCallID)
}

func TestErrorMessage(t *testing.T) {
	req := funcall.ToolCallRequest{ID: "call_2", Name: "add_two", Arguments: `{"a":"x"}`}
	err := &funcall.ArgumentError{Function: "add_two", Err: funcall.ErrInvalidArguments}
	msg := ErrorMessage(req, err)
	tool := msg.OfTool
	require.NotNil(t, tool)
	assert.Equal(t, "call_2", tool.ToolCallID)
	assert.Contains(t, tool.Content.OfString.Value, "add_two")
}
