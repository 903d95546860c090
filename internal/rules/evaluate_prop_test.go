package rules

import (
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/ShadowStrikeHQ/chaudit-unattendedupdateschecker/internal/audit"
	"github.com/ShadowStrikeHQ/chaudit-unattendedupdateschecker/internal/document"
)

// For any two-segment path over a document holding a single scalar,
// resolution either finds the scalar's key or reports MISSING; it
// never panics and never invents a value.
func TestMissingPathsAlwaysYieldMissing(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	doc := &document.Node{
		Kind: document.KindMapping,
		Map: map[string]*document.Node{
			"present": {Kind: document.KindString, Str: "yes"},
		},
	}

	properties.Property("unresolvable paths yield MISSING", prop.ForAll(
		func(first, second string) bool {
			r := Rule{
				ID:        "probe",
				Summary:   "probe",
				Path:      first + "." + second,
				Condition: Exists(),
			}
			fs := Evaluate(doc, []Rule{r}, Options{})
			// "present" holds a scalar, so a second segment can never
			// resolve; every generated path must come back MISSING.
			return len(fs) == 1 && fs[0].Status == audit.StatusMissing
		},
		gen.Identifier(),
		gen.Identifier(),
	))

	properties.TestingRun(t)
}

// Running the evaluator twice over the same (document, rules) pair
// yields identical findings.
func TestEvaluateIdempotence(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("evaluate twice, same findings", prop.ForAll(
		func(key, value, want string) bool {
			doc := &document.Node{
				Kind: document.KindMapping,
				Map: map[string]*document.Node{
					key: {Kind: document.KindString, Str: value},
				},
			}
			rs := []Rule{{
				ID:        "eq",
				Summary:   "value check",
				Path:      key,
				Condition: Equals(want),
			}}
			first := Evaluate(doc, rs, Options{})
			second := Evaluate(doc, rs, Options{})
			return reflect.DeepEqual(first, second)
		},
		gen.Identifier(),
		gen.AlphaString(),
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}
