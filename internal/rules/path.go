package rules

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ShadowStrikeHQ/chaudit-unattendedupdateschecker/internal/document"
)

// Segment is one step of a rule path: a mapping key or a sequence
// index.
type Segment struct {
	Key     string
	Index   int
	IsIndex bool
}

// ParsePath splits a dotted path like "ssh.PermitRootLogin" or
// "users[0].name" into segments.
func ParsePath(path string) ([]Segment, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("empty path")
	}
	var segs []Segment
	for _, part := range strings.Split(path, ".") {
		if part == "" {
			return nil, fmt.Errorf("path %q has an empty segment", path)
		}
		key := part
		var idxs []int
		for strings.HasSuffix(key, "]") {
			open := strings.LastIndex(key, "[")
			if open < 0 {
				return nil, fmt.Errorf("path %q: unmatched ']' in %q", path, part)
			}
			n, err := strconv.Atoi(key[open+1 : len(key)-1])
			if err != nil || n < 0 {
				return nil, fmt.Errorf("path %q: bad index in %q", path, part)
			}
			idxs = append([]int{n}, idxs...)
			key = key[:open]
		}
		if key == "" && len(idxs) == 0 {
			return nil, fmt.Errorf("path %q has an empty segment", path)
		}
		if key != "" {
			if strings.ContainsAny(key, "[]") {
				return nil, fmt.Errorf("path %q: stray bracket in %q", path, part)
			}
			segs = append(segs, Segment{Key: key})
		}
		for _, n := range idxs {
			segs = append(segs, Segment{Index: n, IsIndex: true})
		}
	}
	return segs, nil
}

// Resolve walks the document along segs. The second return is false
// when any step is absent (missing key, index out of range, or a
// scalar where a container was expected).
func Resolve(doc *document.Node, segs []Segment) (*document.Node, bool) {
	cur := doc
	for _, s := range segs {
		if cur == nil {
			return nil, false
		}
		if s.IsIndex {
			if cur.Kind != document.KindSequence || s.Index >= len(cur.Seq) {
				return nil, false
			}
			cur = cur.Seq[s.Index]
			continue
		}
		if cur.Kind != document.KindMapping {
			return nil, false
		}
		next, ok := cur.Map[s.Key]
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, cur != nil
}
