package funcall

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgumentError_Message(t *testing.T) {
	t.Parallel()
	err := &ArgumentError{
		Function: "add_two",
		Err:      fmt.Errorf("%w: a must be a number", ErrInvalidArguments),
	}
	msg := err.Error()
	assert.Contains(t, msg, `"add_two"`)
	assert.Contains(t, msg, "call add_two again with corrected parameters")
	assert.Contains(t, msg, "a must be a number")
}

func TestArgumentError_Unwrap(t *testing.T) {
	t.Parallel()
	err := &ArgumentError{
		Function: "f",
		Err:      fmt.Errorf("%w: detail", ErrInvalidArguments),
	}
	assert.ErrorIs(t, err, ErrInvalidArguments)

	var ae *ArgumentError
	require.ErrorAs(t, fmt.Errorf("outer: %w", err), &ae)
	assert.Equal(t, "f", ae.Function)
}

func TestIsArgumentError(t *testing.T) {
	t.Parallel()
	assert.True(t, IsArgumentError(&ArgumentError{Function: "f", Err: ErrInvalidArguments}))
	assert.True(t, IsArgumentError(fmt.Errorf("wrapped: %w", &ArgumentError{Function: "f", Err: ErrInvalidArguments})))
	assert.False(t, IsArgumentError(errors.New("other")))
	assert.False(t, IsArgumentError(nil))
}
