package rules

func init() {
	Register(Rule{
		ID:        "password-min-length",
		Summary:   "password policy must require a minimum length",
		Severity:  "MEDIUM",
		Path:      "password.minlen",
		Condition: Min(12),
	})
}
