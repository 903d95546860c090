package upgrades

import (
	"bufio"
	"bytes"
	"regexp"
	"strings"
)

// Conf is a parsed APT configuration fragment: scalar settings like
//
//	APT::Periodic::Unattended-Upgrade "1";
//
// and list blocks like
//
//	Unattended-Upgrade::Allowed-Origins {
//	        "${distro_id}:${distro_codename}-security";
//	};
type Conf struct {
	Values map[string]string
	Lists  map[string][]string
}

var (
	reKeyValue   = regexp.MustCompile(`^([A-Za-z0-9:._+-]+)\s+"([^"]*)"\s*;`)
	reBlockStart = regexp.MustCompile(`^([A-Za-z0-9:._+-]+)\s*\{`)
	reListItem   = regexp.MustCompile(`^"([^"]*)"\s*;?`)
)

// ParseConf reads an APT conf fragment. Lines it does not understand
// are skipped; apt itself is the authority on the full grammar, this
// only needs the shapes the shipped fragments use.
func ParseConf(data []byte) *Conf {
	c := &Conf{
		Values: make(map[string]string),
		Lists:  make(map[string][]string),
	}
	var block string

	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(stripComment(sc.Text()))
		if line == "" {
			continue
		}
		if block != "" {
			if strings.HasPrefix(line, "}") {
				block = ""
				continue
			}
			if m := reListItem.FindStringSubmatch(line); m != nil {
				c.Lists[block] = append(c.Lists[block], m[1])
			}
			continue
		}
		if m := reKeyValue.FindStringSubmatch(line); m != nil {
			c.Values[m[1]] = m[2]
			continue
		}
		if m := reBlockStart.FindStringSubmatch(line); m != nil {
			block = m[1]
			// ensure the key is visible even for an empty block
			if _, ok := c.Lists[block]; !ok {
				c.Lists[block] = nil
			}
		}
	}
	return c
}

// stripComment drops a trailing // comment unless it sits inside a
// quoted value.
func stripComment(line string) string {
	inQuote := false
	for i := 0; i+1 < len(line); i++ {
		switch line[i] {
		case '"':
			inQuote = !inQuote
		case '/':
			if !inQuote && line[i+1] == '/' {
				return line[:i]
			}
		}
	}
	return line
}
