package rulepack

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ShadowStrikeHQ/chaudit-unattendedupdateschecker/internal/rules"
)

// A pack is a flat YAML list of path/condition/expected-value rules:
//
//	rules:
//	  - id: ssh-permit-root-login
//	    summary: remote root login must be disabled
//	    severity: HIGH
//	    path: ssh.PermitRootLogin
//	    condition: equals
//	    value: "no"
//
// Condition kinds: equals, one_of, min, max, mode_at_most, pattern,
// must_be_true, must_be_false, exists.
type pack struct {
	Rules []packRule `yaml:"rules"`
}

type packRule struct {
	ID       string `yaml:"id"`
	Summary  string `yaml:"summary"`
	Severity string `yaml:"severity"`
	Path     string `yaml:"path"`

	Condition string   `yaml:"condition"`
	Value     string   `yaml:"value"`   // equals
	Values    []string `yaml:"values"`  // one_of
	Limit     *float64 `yaml:"limit"`   // min, max
	Mask      string   `yaml:"mask"`    // mode_at_most, octal
	Pattern   string   `yaml:"pattern"` // pattern
}

// Load reads a rule pack file. An unreadable or unparseable file is
// fatal. A malformed individual rule is not: it compiles to a rule
// carrying its own error so the evaluator reports it and moves on.
func Load(path string) ([]rules.Rule, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rule pack: %w", err)
	}
	var p pack
	if err := yaml.Unmarshal(b, &p); err != nil {
		return nil, fmt.Errorf("parse rule pack: %w", err)
	}
	if len(p.Rules) == 0 {
		return nil, fmt.Errorf("rule pack %s contains no rules", path)
	}
	out := make([]rules.Rule, 0, len(p.Rules))
	for i, pr := range p.Rules {
		out = append(out, compile(i, pr))
	}
	return out, nil
}

func compile(i int, pr packRule) rules.Rule {
	r := rules.Rule{
		ID:       pr.ID,
		Summary:  pr.Summary,
		Severity: strings.ToUpper(strings.TrimSpace(pr.Severity)),
		Path:     pr.Path,
	}
	if r.ID == "" {
		r.ID = fmt.Sprintf("rule-%d", i+1)
	}
	if r.Severity == "" {
		r.Severity = "LOW"
	}
	if pr.Path == "" {
		r.Err = "missing path"
		return r
	}
	if pr.Condition == "" {
		r.Err = "missing condition"
		return r
	}

	switch strings.ToLower(strings.TrimSpace(pr.Condition)) {
	case "equals":
		r.Condition = rules.Equals(pr.Value)
	case "one_of":
		if len(pr.Values) == 0 {
			r.Err = "one_of needs a values list"
			return r
		}
		r.Condition = rules.OneOf(pr.Values...)
	case "min":
		if pr.Limit == nil {
			r.Err = "min needs a limit"
			return r
		}
		r.Condition = rules.Min(*pr.Limit)
	case "max":
		if pr.Limit == nil {
			r.Err = "max needs a limit"
			return r
		}
		r.Condition = rules.Max(*pr.Limit)
	case "mode_at_most":
		mask, err := strconv.ParseUint(strings.TrimPrefix(pr.Mask, "0o"), 8, 32)
		if err != nil {
			r.Err = fmt.Sprintf("bad octal mask %q", pr.Mask)
			return r
		}
		r.Condition = rules.ModeAtMost(uint32(mask))
	case "pattern":
		cond, err := rules.Pattern(pr.Pattern)
		if err != nil {
			r.Err = err.Error()
			return r
		}
		r.Condition = cond
	case "must_be_true":
		r.Condition = rules.IsTrue()
	case "must_be_false":
		r.Condition = rules.IsFalse()
	case "exists":
		r.Condition = rules.Exists()
	default:
		r.Err = fmt.Sprintf("unknown condition kind %q", pr.Condition)
	}
	return r
}
