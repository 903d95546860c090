package rules

import "github.com/ShadowStrikeHQ/chaudit-unattendedupdateschecker/internal/document"

// Rule checks one location in a configuration document against one
// condition.
type Rule struct {
	ID       string
	Summary  string
	Severity string // LOW|MEDIUM|HIGH
	Path     string // dotted keys, optional [idx] for sequences
	// Condition is the expected-value check applied when Path resolves.
	Condition Condition
	// Err marks a rule that failed to compile (unknown condition kind,
	// bad pattern). Evaluate reports it as an ERROR finding instead of
	// evaluating it.
	Err string
}

// Condition is the closed set of expected-value checks. Eval is given
// the node the rule's path resolved to and reports whether it is
// satisfied; Describe names the expectation for finding messages.
type Condition interface {
	Describe() string
	Eval(n *document.Node) bool
}
