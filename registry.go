package funcall

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"
)

// Registry holds function definitions keyed by name and dispatches tool-call
// requests against them. Set and CallTool are safe for concurrent use; a Set
// racing concurrent CallTool reads is last-write-wins. The dispatcher adds no
// timeout, semaphore, or retry of its own; a handler that needs those wires
// them itself or gets them from middleware.
type Registry[C any] struct {
	mu          sync.RWMutex
	funcs       map[string]*Definition[C]
	handlers    map[string]HandlerFunc[C] // definition handlers with middlewares applied
	middlewares []Middleware[C]
	opts        registryOptions
}

// NewRegistry creates an empty Registry with the given options.
func NewRegistry[C any](opts ...RegistryOption) *Registry[C] {
	var o registryOptions
	for _, opt := range opts {
		opt(&o)
	}
	return &Registry[C]{
		funcs:    make(map[string]*Definition[C]),
		handlers: make(map[string]HandlerFunc[C]),
		opts:     o,
	}
}

// NewRegistryFrom creates a Registry pre-populated from a name→definition map.
func NewRegistryFrom[C any](funcs map[string]*Definition[C], opts ...RegistryOption) *Registry[C] {
	r := NewRegistry[C](opts...)
	for name, def := range funcs {
		r.Set(name, def)
	}
	return r
}

// Set inserts or replaces the definition for name. Last write wins; there is
// no versioning. Stored middlewares (see Use) are applied to the handler
// before it becomes dispatchable.
func (r *Registry[C]) Set(name string, def *Definition[C]) {
	if def == nil {
		panic("funcall: Set with nil definition")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.funcs[name] = def
	r.handlers[name] = wrapHandler(name, def.handler, r.middlewares)
}

// Get returns the definition registered under name, or (nil, false).
func (r *Registry[C]) Get(name string) (*Definition[C], bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.funcs[name]
	return def, ok
}

// Names returns the registered function names, sorted.
func (r *Registry[C]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.funcs))
}

// AsTools exports one wire-format descriptor per registry entry, sorted by
// name for deterministic order. Descriptors are built fresh on every call.
func (r *Registry[C]) AsTools() []ToolDescriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := slices.Sorted(maps.Keys(r.funcs))
	out := make([]ToolDescriptor, 0, len(names))
	for _, name := range names {
		def := r.funcs[name]
		out = append(out, ToolDescriptor{
			Type: descriptorType,
			Function: FunctionSpec{
				Name:        name,
				Description: def.description,
				Parameters:  parameterSchema(def.schema),
			},
		})
	}
	return out
}

// CallTool dispatches one tool-call request: lookup, parse, validate, invoke.
// Panics if req.Name is not registered: the request side and the registry
// being out of sync is a programming error, not an input error. Parse errors
// from the raw argument string and handler errors propagate unmodified;
// schema validation failures come back as *ArgumentError naming the function
// so the message can be fed to the LLM for a corrected retry. ec is handed to
// the handler untouched.
func (r *Registry[C]) CallTool(ctx context.Context, req ToolCallRequest, ec C) (result json.RawMessage, err error) {
	r.mu.RLock()
	def, ok := r.funcs[req.Name]
	handler := r.handlers[req.Name]
	r.mu.RUnlock()
	if !ok {
		panic(fmt.Sprintf("funcall: CallTool for unregistered function %q", req.Name))
	}

	start := time.Now()
	if r.opts.onAfter != nil {
		defer func() {
			r.opts.onAfter(ctx, req, result, err, time.Since(start))
		}()
	}
	if r.opts.onBefore != nil {
		r.opts.onBefore(ctx, req)
	}

	var parsed any
	if err = json.Unmarshal([]byte(req.Arguments), &parsed); err != nil {
		return nil, err
	}
	if err = validateValue(def.resolved, parsed); err != nil {
		return nil, &ArgumentError{Function: req.Name, Err: err}
	}

	result, err = handler(ctx, json.RawMessage(req.Arguments), ec)
	if err != nil && errors.Is(err, ErrInvalidArguments) && !IsArgumentError(err) {
		// Validatable failures surface from inside the erased handler
		// without a name; attach it here where the name is known.
		err = &ArgumentError{Function: req.Name, Err: err}
	}
	return result, err
}
