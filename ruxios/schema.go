package ruxios

import (
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ValidationErrors lists every schema violation found in a document.
type ValidationErrors []error

// Error implements the error interface.
func (ve ValidationErrors) Error() string {
	msgs := make([]string, len(ve))
	for i, err := range ve {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// Validate checks the document against a JSON Schema given as text.
//
// It returns nil when the document is valid, ValidationErrors when it is
// not, and a plain error when the schema itself does not compile.
//
// Example:
//
//	err := resp.Data.Validate(`{"type":"object","required":["login"]}`)
func (v Value) Validate(schema string) error {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", strings.NewReader(schema)); err != nil {
		return fmt.Errorf("invalid schema: %w", err)
	}
	compiled, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("invalid schema: %w", err)
	}

	var doc any
	if err := v.Decode(&doc); err != nil {
		return fmt.Errorf("invalid document: %w", err)
	}

	err = compiled.Validate(doc)
	if err == nil {
		return nil
	}
	if verr, ok := err.(*jsonschema.ValidationError); ok {
		return collectViolations(verr)
	}
	return ValidationErrors{err}
}

// collectViolations flattens the cause tree of a validation error.
func collectViolations(err *jsonschema.ValidationError) ValidationErrors {
	var out ValidationErrors
	if err.Message != "" {
		out = append(out, fmt.Errorf("%s: %s", locationOf(err.InstanceLocation), err.Message))
	}
	for _, cause := range err.Causes {
		out = append(out, collectViolations(cause)...)
	}
	return out
}

func locationOf(loc string) string {
	if loc == "" {
		return "/"
	}
	return loc
}
