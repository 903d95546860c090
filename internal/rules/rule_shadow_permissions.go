package rules

func init() {
	Register(Rule{
		ID:        "shadow-file-mode",
		Summary:   "shadow file must not be world readable",
		Severity:  "HIGH",
		Path:      "files.shadow.mode",
		Condition: ModeAtMost(0o640),
	})
}
