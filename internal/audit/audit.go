package audit

import "time"

const Version = "0.1.0"

// Status classifies the outcome of one check.
type Status string

const (
	StatusPass    Status = "PASS"    // condition satisfied
	StatusFail    Status = "FAIL"    // condition violated
	StatusMissing Status = "MISSING" // target path absent from the document
	StatusError   Status = "ERROR"   // the rule itself could not be evaluated
)

// Source identifies which pass produced a finding.
const (
	SourceRule     = "RULE"
	SourceSchema   = "SCHEMA"
	SourceUpgrades = "UPGRADES"
)

type Finding struct {
	ID       string `json:"id"`
	Source   string `json:"source"`
	Status   Status `json:"status"`
	Severity string `json:"severity,omitempty"` // LOW|MEDIUM|HIGH
	Message  string `json:"message"`
	Observed string `json:"observed,omitempty"`
}

// Report is the result of one run. It is built fresh each run and
// never persisted unless the user asks for a JSON artifact.
type Report struct {
	Tool      string    `json:"tool"`
	Version   string    `json:"version"`
	StartedAt time.Time `json:"started_at"`
	Source    string    `json:"source,omitempty"`
	Findings  []Finding `json:"findings"`
	Summary   Summary   `json:"summary"`
}

type Summary struct {
	Pass    int `json:"pass"`
	Fail    int `json:"fail"`
	Missing int `json:"missing"`
	Error   int `json:"error"`
}

func NewReport(source string) *Report {
	return &Report{
		Tool:      "chaudit",
		Version:   Version,
		StartedAt: time.Now().UTC(),
		Source:    source,
	}
}

func (r *Report) Add(fs ...Finding) {
	for _, f := range fs {
		r.Findings = append(r.Findings, f)
		switch f.Status {
		case StatusPass:
			r.Summary.Pass++
		case StatusFail:
			r.Summary.Fail++
		case StatusMissing:
			r.Summary.Missing++
		case StatusError:
			r.Summary.Error++
		}
	}
}

// Failed reports whether any finding is something other than a pass.
func (r *Report) Failed() bool {
	return r.Summary.Fail > 0 || r.Summary.Missing > 0 || r.Summary.Error > 0
}
