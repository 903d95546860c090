package rules

func init() {
	Register(Rule{
		ID:        "ssh-log-level",
		Summary:   "SSH log level should capture auth events",
		Severity:  "LOW",
		Path:      "ssh.LogLevel",
		Condition: OneOf("INFO", "VERBOSE"),
	})
}
