package rules

func init() {
	Register(Rule{
		ID:        "telnet-disabled",
		Summary:   "telnet service must stay disabled",
		Severity:  "HIGH",
		Path:      "services.telnet.enabled",
		Condition: IsFalse(),
	})
}
