package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Kind discriminates the three shapes a parsed configuration value
// can take (plus the scalar subtypes).
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindSequence
	KindMapping
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	}
	return "unknown"
}

// Node is one value of a parsed YAML/JSON document. Only the fields
// matching Kind are meaningful. Nodes are never mutated after Load.
type Node struct {
	Kind Kind
	Bool bool
	Num  float64
	Str  string
	Seq  []*Node
	Map  map[string]*Node
}

// Format names the on-disk encoding of a document.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// DetectFormat maps a file extension to a Format.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unsupported configuration file type %q (only YAML and JSON are supported)", filepath.Ext(path))
}

// Load reads and parses the file at path. It returns the typed tree
// and the raw decoded value (for schema validation, which wants plain
// Go values). Any failure here is fatal to the run.
func Load(path string) (*Node, any, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	node, raw, err := Parse(b, format)
	if err != nil {
		return nil, nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return node, raw, nil
}

// Parse decodes data in the given format into a Node tree.
func Parse(data []byte, format Format) (*Node, any, error) {
	var raw any
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, nil, err
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&raw); err != nil {
			return nil, nil, err
		}
	default:
		return nil, nil, fmt.Errorf("unknown format %q", format)
	}
	node, err := fromValue(raw)
	if err != nil {
		return nil, nil, err
	}
	return node, raw, nil
}

func fromValue(v any) (*Node, error) {
	switch t := v.(type) {
	case nil:
		return &Node{Kind: KindNull}, nil
	case bool:
		return &Node{Kind: KindBool, Bool: t}, nil
	case int:
		return &Node{Kind: KindNumber, Num: float64(t)}, nil
	case int64:
		return &Node{Kind: KindNumber, Num: float64(t)}, nil
	case uint64:
		return &Node{Kind: KindNumber, Num: float64(t)}, nil
	case float64:
		return &Node{Kind: KindNumber, Num: t}, nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return nil, err
		}
		return &Node{Kind: KindNumber, Num: f}, nil
	case string:
		return &Node{Kind: KindString, Str: t}, nil
	case []any:
		n := &Node{Kind: KindSequence, Seq: make([]*Node, 0, len(t))}
		for _, item := range t {
			child, err := fromValue(item)
			if err != nil {
				return nil, err
			}
			n.Seq = append(n.Seq, child)
		}
		return n, nil
	case map[string]any:
		n := &Node{Kind: KindMapping, Map: make(map[string]*Node, len(t))}
		for k, item := range t {
			child, err := fromValue(item)
			if err != nil {
				return nil, err
			}
			n.Map[k] = child
		}
		return n, nil
	case map[any]any:
		// yaml.v3 only produces this for non-string keys.
		n := &Node{Kind: KindMapping, Map: make(map[string]*Node, len(t))}
		for k, item := range t {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("mapping key %v is not a string", k)
			}
			child, err := fromValue(item)
			if err != nil {
				return nil, err
			}
			n.Map[key] = child
		}
		return n, nil
	}
	return nil, fmt.Errorf("unsupported value of type %T", v)
}

// String renders the canonical scalar form used in finding messages.
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	switch n.Kind {
	case KindNull:
		return "null"
	case KindBool:
		return strconv.FormatBool(n.Bool)
	case KindNumber:
		return strconv.FormatFloat(n.Num, 'f', -1, 64)
	case KindString:
		return n.Str
	case KindSequence:
		parts := make([]string, 0, len(n.Seq))
		for _, c := range n.Seq {
			parts = append(parts, c.String())
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindMapping:
		keys := make([]string, 0, len(n.Map))
		for k := range n.Map {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, k+": "+n.Map[k].String())
		}
		return "{" + strings.Join(parts, ", ") + "}"
	}
	return ""
}

// AsFloat returns the numeric value of a number node or a numeric
// string node.
func (n *Node) AsFloat() (float64, bool) {
	switch n.Kind {
	case KindNumber:
		return n.Num, true
	case KindString:
		f, err := strconv.ParseFloat(strings.TrimSpace(n.Str), 64)
		return f, err == nil
	}
	return 0, false
}

// AsBool interprets bool nodes plus the spellings common in service
// configs (yes/no, on/off).
func (n *Node) AsBool() (bool, bool) {
	switch n.Kind {
	case KindBool:
		return n.Bool, true
	case KindString:
		switch strings.ToLower(strings.TrimSpace(n.Str)) {
		case "true", "yes", "on", "1":
			return true, true
		case "false", "no", "off", "0":
			return false, true
		}
	}
	return false, false
}

// IsScalar reports whether the node is a leaf value.
func (n *Node) IsScalar() bool {
	return n.Kind != KindSequence && n.Kind != KindMapping
}
