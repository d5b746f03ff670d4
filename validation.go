package funcall

import (
	"fmt"
	"reflect"
)

// Validatable is implemented by argument structs that need business
// validation beyond the schema. Validate runs after schema validation and
// unmarshaling; a non-nil error is reported to the LLM as invalid arguments.
type Validatable interface {
	Validate() error
}

// schemaValidator validates an already-parsed JSON value (e.g. map[string]any
// from json.Unmarshal). *jsonschema.Resolved implements it.
type schemaValidator interface {
	Validate(v any) error
}

// validateValue runs schema validation on parsed value v and tags failures
// with ErrInvalidArguments. The caller unmarshals and reports parse errors.
func validateValue(validator schemaValidator, v any) error {
	if err := validator.Validate(v); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidArguments, err)
	}
	return nil
}

// validateCustom runs Validatable.Validate on args. If args itself does not
// implement Validatable and is a value type, &args is tried as well (pointer
// receiver). Validate is never called twice for the same receiver.
func validateCustom[A any](args A) error {
	if v, ok := any(args).(Validatable); ok {
		return tagInvalid(v.Validate())
	}
	typ := reflect.TypeOf(args)
	if typ == nil || typ.Kind() == reflect.Pointer {
		return nil
	}
	if v, ok := any(&args).(Validatable); ok {
		return tagInvalid(v.Validate())
	}
	return nil
}

func tagInvalid(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidArguments, err)
}
