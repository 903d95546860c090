package rules

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ShadowStrikeHQ/chaudit-unattendedupdateschecker/internal/document"
)

// Equals matches a scalar exactly. Numbers and booleans compare by
// value, everything else by string form.
func Equals(want string) Condition { return equalsCond{want: want} }

type equalsCond struct{ want string }

func (c equalsCond) Describe() string { return fmt.Sprintf("must equal %q", c.want) }

func (c equalsCond) Eval(n *document.Node) bool {
	if f, ok := n.AsFloat(); ok {
		if wf, err := strconv.ParseFloat(c.want, 64); err == nil {
			return f == wf
		}
	}
	if n.Kind == document.KindBool {
		if wb, err := strconv.ParseBool(c.want); err == nil {
			return n.Bool == wb
		}
	}
	return n.IsScalar() && n.String() == c.want
}

// OneOf matches when the scalar's string form is in the allowed set
// (case-insensitive, the common convention in service configs).
func OneOf(allowed ...string) Condition { return oneOfCond{allowed: allowed} }

type oneOfCond struct{ allowed []string }

func (c oneOfCond) Describe() string {
	return "must be one of [" + strings.Join(c.allowed, ", ") + "]"
}

func (c oneOfCond) Eval(n *document.Node) bool {
	if !n.IsScalar() {
		return false
	}
	for _, a := range c.allowed {
		if strings.EqualFold(n.String(), a) {
			return true
		}
	}
	return false
}

// Max and Min are numeric thresholds. Non-numeric values fail.
func Max(limit float64) Condition { return thresholdCond{limit: limit, max: true} }
func Min(limit float64) Condition { return thresholdCond{limit: limit} }

type thresholdCond struct {
	limit float64
	max   bool
}

func (c thresholdCond) Describe() string {
	op := "at least"
	if c.max {
		op = "at most"
	}
	return fmt.Sprintf("must be %s %s", op, strconv.FormatFloat(c.limit, 'f', -1, 64))
}

func (c thresholdCond) Eval(n *document.Node) bool {
	f, ok := n.AsFloat()
	if !ok {
		return false
	}
	if c.max {
		return f <= c.limit
	}
	return f >= c.limit
}

// ModeAtMost treats the value as an octal file mode ("0644", "600",
// or a bare number read as octal digits) and requires that it grants
// no bit beyond mask.
func ModeAtMost(mask uint32) Condition { return modeCond{mask: mask} }

type modeCond struct{ mask uint32 }

func (c modeCond) Describe() string { return fmt.Sprintf("mode must be at most %04o", c.mask) }

func (c modeCond) Eval(n *document.Node) bool {
	mode, ok := parseMode(n)
	return ok && mode&^c.mask == 0
}

func parseMode(n *document.Node) (uint32, bool) {
	var s string
	switch n.Kind {
	case document.KindString:
		s = strings.TrimSpace(n.Str)
	case document.KindNumber:
		// 644 in a config means 0644; re-read the digits as octal.
		s = strconv.FormatInt(int64(n.Num), 10)
	default:
		return 0, false
	}
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0o"), "0O")
	m, err := strconv.ParseUint(s, 8, 32)
	if err != nil {
		return 0, false
	}
	return uint32(m), true
}

// Pattern requires the scalar's string form to match expr. The
// expression is anchored so a partial hit is not a pass.
func Pattern(expr string) (Condition, error) {
	re, err := regexp.Compile("^(?:" + expr + ")$")
	if err != nil {
		return nil, fmt.Errorf("pattern %q: %w", expr, err)
	}
	return patternCond{expr: expr, re: re}, nil
}

type patternCond struct {
	expr string
	re   *regexp.Regexp
}

func (c patternCond) Describe() string { return fmt.Sprintf("must match pattern %q", c.expr) }

func (c patternCond) Eval(n *document.Node) bool {
	return n.IsScalar() && c.re.MatchString(n.String())
}

// IsTrue and IsFalse accept the boolean spellings configs actually
// use (true/false, yes/no, on/off).
func IsTrue() Condition  { return boolCond{want: true} }
func IsFalse() Condition { return boolCond{want: false} }

type boolCond struct{ want bool }

func (c boolCond) Describe() string { return fmt.Sprintf("must be %t", c.want) }

func (c boolCond) Eval(n *document.Node) bool {
	b, ok := n.AsBool()
	return ok && b == c.want
}

// Exists passes whenever the path resolves; the value is irrelevant.
func Exists() Condition { return existsCond{} }

type existsCond struct{}

func (existsCond) Describe() string { return "must be present" }
func (existsCond) Eval(*document.Node) bool { return true }
