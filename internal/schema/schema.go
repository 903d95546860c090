package schema

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/ShadowStrikeHQ/chaudit-unattendedupdateschecker/internal/audit"
)

// Validator wraps a compiled JSON Schema.
type Validator struct {
	schema *jsonschema.Schema
}

// Compile loads and compiles the schema file at path. Failure here is
// fatal: without a usable schema the shape check cannot run at all.
func Compile(path string) (*Validator, error) {
	s, err := jsonschema.Compile(path)
	if err != nil {
		return nil, fmt.Errorf("compile schema %s: %w", path, err)
	}
	return &Validator{schema: s}, nil
}

// Validate checks the raw decoded document against the schema and
// returns one finding per leaf violation. Violations never abort the
// run; rule evaluation proceeds regardless.
func (v *Validator) Validate(raw any) ([]audit.Finding, error) {
	norm, err := normalize(raw)
	if err != nil {
		return nil, err
	}
	err = v.schema.Validate(norm)
	if err == nil {
		return []audit.Finding{{
			ID:      "schema",
			Source:  audit.SourceSchema,
			Status:  audit.StatusPass,
			Message: "document matches schema",
		}}, nil
	}
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return nil, err
	}
	var out []audit.Finding
	for _, leaf := range leaves(ve) {
		loc := leaf.InstanceLocation
		if loc == "" {
			loc = "/"
		}
		out = append(out, audit.Finding{
			ID:       "schema" + leaf.InstanceLocation,
			Source:   audit.SourceSchema,
			Status:   audit.StatusFail,
			Severity: "HIGH",
			Message:  fmt.Sprintf("schema violation at %s: %s", loc, leaf.Message),
		})
	}
	return out, nil
}

// leaves flattens the validation error tree to its most specific
// causes, which carry the actionable messages.
func leaves(ve *jsonschema.ValidationError) []*jsonschema.ValidationError {
	if len(ve.Causes) == 0 {
		return []*jsonschema.ValidationError{ve}
	}
	var out []*jsonschema.ValidationError
	for _, c := range ve.Causes {
		out = append(out, leaves(c)...)
	}
	return out
}

// normalize round-trips the value through JSON so YAML-decoded trees
// (int values, interface keys) look like what the schema library
// expects.
func normalize(raw any) (any, error) {
	b, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("document is not schema-checkable: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}
