// Package testutil provides test helpers for funcall (canned definitions and
// pre-populated registries).
package testutil

import (
	"context"
	"encoding/json"

	"github.com/funcall/funcall"
)

// NewTestRegistry returns a Registry populated with the given definitions.
func NewTestRegistry[C any](funcs map[string]*funcall.Definition[C]) *funcall.Registry[C] {
	return funcall.NewRegistryFrom(funcs)
}

// Echo returns a definition that accepts any object and returns the received
// arguments unchanged. Handy as a probe for dispatch wiring.
func Echo[C any]() *funcall.Definition[C] {
	schema := map[string]any{
		"type":       "object",
		"properties": map[string]any{},
	}
	def, err := funcall.NewDynamic("Echo the received arguments", schema,
		func(_ context.Context, argsJSON json.RawMessage, _ C) (json.RawMessage, error) {
			return argsJSON, nil
		})
	if err != nil {
		panic("testutil: build echo definition: " + err.Error())
	}
	return def
}

// Static returns a definition that accepts any object and always returns
// result. The handler never fails.
func Static[C any](result json.RawMessage) *funcall.Definition[C] {
	schema := map[string]any{
		"type":       "object",
		"properties": map[string]any{},
	}
	def, err := funcall.NewDynamic("Return a fixed result", schema,
		func(_ context.Context, _ json.RawMessage, _ C) (json.RawMessage, error) {
			return result, nil
		})
	if err != nil {
		panic("testutil: build static definition: " + err.Error())
	}
	return def
}
