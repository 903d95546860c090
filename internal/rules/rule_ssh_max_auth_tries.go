package rules

func init() {
	Register(Rule{
		ID:        "ssh-max-auth-tries",
		Summary:   "SSH should limit authentication attempts",
		Severity:  "LOW",
		Path:      "ssh.MaxAuthTries",
		Condition: Max(4),
	})
}
