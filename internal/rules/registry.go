package rules

// The built-in baseline rules register themselves in init(), one file
// per rule, and are returned in registration order. User rule packs
// bypass the registry entirely.

var registry []Rule

func Register(r Rule) {
	registry = append(registry, r)
}

// Builtin returns a copy of the baseline rule set.
func Builtin() []Rule {
	out := make([]Rule, len(registry))
	copy(out, registry)
	return out
}
