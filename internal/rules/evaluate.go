package rules

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ShadowStrikeHQ/chaudit-unattendedupdateschecker/internal/audit"
	"github.com/ShadowStrikeHQ/chaudit-unattendedupdateschecker/internal/document"
)

// Options tunes one evaluation pass. The zero value evaluates every
// rule in input order.
type Options struct {
	SeverityThreshold string          // drop rules below this severity ("" == LOW)
	Disabled          map[string]bool // rule IDs to skip (upper-cased)
	SortBySeverity    bool            // report order: severity desc instead of input order
}

// Evaluate runs each rule against the document and returns one
// finding per evaluated rule. It is a pure function of its inputs:
// no state crosses rule evaluations or runs.
func Evaluate(doc *document.Node, rs []Rule, opts Options) []audit.Finding {
	out := make([]audit.Finding, 0, len(rs))
	for _, r := range rs {
		if opts.Disabled[strings.ToUpper(strings.TrimSpace(r.ID))] {
			continue
		}
		if severityRank(r.Severity) < severityRank(opts.SeverityThreshold) {
			continue
		}
		out = append(out, evaluateOne(doc, r))
	}
	if opts.SortBySeverity {
		sort.SliceStable(out, func(i, j int) bool {
			return severityRank(out[i].Severity) > severityRank(out[j].Severity)
		})
	}
	return out
}

func evaluateOne(doc *document.Node, r Rule) audit.Finding {
	f := audit.Finding{
		ID:       r.ID,
		Source:   audit.SourceRule,
		Severity: strings.ToUpper(r.Severity),
	}
	if r.Err != "" {
		f.Status = audit.StatusError
		f.Message = "rule error: " + r.Err
		return f
	}
	if r.Condition == nil {
		f.Status = audit.StatusError
		f.Message = "rule error: no condition"
		return f
	}
	segs, err := ParsePath(r.Path)
	if err != nil {
		f.Status = audit.StatusError
		f.Message = "rule error: " + err.Error()
		return f
	}
	node, ok := Resolve(doc, segs)
	if !ok {
		f.Status = audit.StatusMissing
		f.Message = fmt.Sprintf("%s: %s not present", r.Summary, r.Path)
		return f
	}
	if r.Condition.Eval(node) {
		f.Status = audit.StatusPass
		f.Message = r.Summary
		return f
	}
	f.Status = audit.StatusFail
	f.Observed = node.String()
	f.Message = fmt.Sprintf("%s: %s %s (observed: %s)", r.Summary, r.Path, r.Condition.Describe(), f.Observed)
	return f
}

func severityRank(sev string) int {
	switch strings.ToUpper(strings.TrimSpace(sev)) {
	case "HIGH":
		return 3
	case "MEDIUM":
		return 2
	default:
		return 1 // LOW or unknown
	}
}
