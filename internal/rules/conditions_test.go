package rules

import (
	"testing"

	"github.com/ShadowStrikeHQ/chaudit-unattendedupdateschecker/internal/document"
)

func str(s string) *document.Node  { return &document.Node{Kind: document.KindString, Str: s} }
func num(f float64) *document.Node { return &document.Node{Kind: document.KindNumber, Num: f} }
func boolean(b bool) *document.Node {
	return &document.Node{Kind: document.KindBool, Bool: b}
}

func TestEquals(t *testing.T) {
	c := Equals("no")
	if !c.Eval(str("no")) {
		t.Error("exact string should match")
	}
	if c.Eval(str("yes")) {
		t.Error("different string should not match")
	}
	// numeric-aware: "1" equals 1 and 1.0
	n := Equals("1")
	if !n.Eval(num(1)) || !n.Eval(str("1.0")) {
		t.Error("numeric forms of 1 should match")
	}
	// bool-aware
	b := Equals("true")
	if !b.Eval(boolean(true)) || b.Eval(boolean(false)) {
		t.Error("bool compare broken")
	}
	// containers never equal a scalar
	if c.Eval(&document.Node{Kind: document.KindMapping}) {
		t.Error("mapping should not equal a scalar")
	}
}

func TestOneOf(t *testing.T) {
	c := OneOf("INFO", "VERBOSE")
	if !c.Eval(str("info")) {
		t.Error("membership is case-insensitive")
	}
	if c.Eval(str("DEBUG")) {
		t.Error("DEBUG is not allowed")
	}
}

func TestThresholds(t *testing.T) {
	if !Max(4).Eval(num(4)) || Max(4).Eval(num(5)) {
		t.Error("Max boundary broken")
	}
	if !Min(12).Eval(str("14")) || Min(12).Eval(num(8)) {
		t.Error("Min broken")
	}
	if Max(4).Eval(str("not a number")) {
		t.Error("non-numeric value must fail a threshold")
	}
}

func TestModeAtMost(t *testing.T) {
	c := ModeAtMost(0o640)
	if !c.Eval(str("0640")) || !c.Eval(str("600")) || !c.Eval(str("0o400")) {
		t.Error("modes within mask should pass")
	}
	if c.Eval(str("0644")) || c.Eval(str("777")) {
		t.Error("modes beyond mask should fail")
	}
	// bare number means octal digits: 640 -> 0640
	if !c.Eval(num(640)) {
		t.Error("numeric 640 should read as 0640")
	}
	if c.Eval(str("rw-r--r--")) {
		t.Error("unparseable mode should fail")
	}
}

func TestPattern(t *testing.T) {
	c, err := Pattern(`AES(128|256)`)
	if err != nil {
		t.Fatal(err)
	}
	if !c.Eval(str("AES256")) {
		t.Error("AES256 should match")
	}
	if c.Eval(str("AES256-weak")) {
		t.Error("pattern is anchored, partial match must fail")
	}
	if _, err := Pattern(`[unclosed`); err == nil {
		t.Error("bad pattern should error at compile time")
	}
}

func TestBoolConditions(t *testing.T) {
	if !IsFalse().Eval(str("no")) || !IsTrue().Eval(str("Yes")) {
		t.Error("yes/no spellings should count as booleans")
	}
	if IsTrue().Eval(str("maybe")) {
		t.Error("non-boolean strings must fail")
	}
	if !IsTrue().Eval(boolean(true)) || IsFalse().Eval(boolean(true)) {
		t.Error("bool nodes broken")
	}
}

func TestExists(t *testing.T) {
	if !Exists().Eval(str("anything")) || !Exists().Eval(&document.Node{Kind: document.KindMapping}) {
		t.Error("exists passes for any resolved node")
	}
}
