package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ShadowStrikeHQ/chaudit-unattendedupdateschecker/internal/audit"
	"github.com/ShadowStrikeHQ/chaudit-unattendedupdateschecker/internal/document"
)

const sshSchema = `{
  "type": "object",
  "required": ["ssh"],
  "properties": {
    "ssh": {
      "type": "object",
      "required": ["PermitRootLogin"],
      "properties": {
        "PermitRootLogin": {"type": "string"},
        "MaxAuthTries": {"type": "integer"}
      }
    }
  }
}`

func compileSample(t *testing.T) *Validator {
	t.Helper()
	p := filepath.Join(t.TempDir(), "schema.json")
	if err := os.WriteFile(p, []byte(sshSchema), 0o644); err != nil {
		t.Fatal(err)
	}
	v, err := Compile(p)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	return v
}

func rawDoc(t *testing.T, src string) any {
	t.Helper()
	_, raw, err := document.Parse([]byte(src), document.FormatYAML)
	if err != nil {
		t.Fatal(err)
	}
	return raw
}

func TestValidate_ConformingDocument(t *testing.T) {
	v := compileSample(t)
	fs, err := v.Validate(rawDoc(t, `{"ssh": {"PermitRootLogin": "no", "MaxAuthTries": 3}}`))
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if len(fs) != 1 || fs[0].Status != audit.StatusPass {
		t.Fatalf("findings = %+v, want single PASS", fs)
	}
}

func TestValidate_ViolationsBecomeFindings(t *testing.T) {
	v := compileSample(t)
	fs, err := v.Validate(rawDoc(t, `{"ssh": {"PermitRootLogin": 5}}`))
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if len(fs) == 0 {
		t.Fatal("expected at least one violation finding")
	}
	for _, f := range fs {
		if f.Status != audit.StatusFail || f.Source != audit.SourceSchema {
			t.Errorf("finding = %+v, want FAIL from SCHEMA", f)
		}
	}
}

func TestValidate_YAMLDecodedIntegers(t *testing.T) {
	// yaml.v3 decodes integers as int; the normalizer must make the
	// schema's "integer" type still match.
	v := compileSample(t)
	fs, err := v.Validate(rawDoc(t, "ssh:\n  PermitRootLogin: \"no\"\n  MaxAuthTries: 4\n"))
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if fs[0].Status != audit.StatusPass {
		t.Fatalf("findings = %+v, want PASS", fs)
	}
}

func TestCompile_BadSchemaIsFatal(t *testing.T) {
	p := filepath.Join(t.TempDir(), "schema.json")
	if err := os.WriteFile(p, []byte(`{"type": 42}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Compile(p); err == nil {
		t.Fatal("invalid schema must fail to compile")
	}
	if _, err := Compile(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("missing schema file must fail to compile")
	}
}
