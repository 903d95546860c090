package rules

func init() {
	Register(Rule{
		ID:        "ssh-permit-root-login",
		Summary:   "remote root login must be disabled",
		Severity:  "HIGH",
		Path:      "ssh.PermitRootLogin",
		Condition: Equals("no"),
	})
}
