package rules

func init() {
	Register(Rule{
		ID:        "ssh-password-authentication",
		Summary:   "SSH password authentication should be replaced by keys",
		Severity:  "MEDIUM",
		Path:      "ssh.PasswordAuthentication",
		Condition: IsFalse(),
	})
}
