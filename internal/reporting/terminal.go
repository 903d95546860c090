package reporting

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/ShadowStrikeHQ/chaudit-unattendedupdateschecker/internal/audit"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

func statusTag(s audit.Status) string {
	switch s {
	case audit.StatusPass:
		return green("[PASS]")
	case audit.StatusMissing:
		return yellow("[MISS]")
	case audit.StatusError:
		return red("[ERR ]")
	default:
		return red("[FAIL]")
	}
}

// WriteText renders the report one line per finding, in finding
// order, followed by a summary line.
func WriteText(w io.Writer, rep *audit.Report) {
	if rep.Source != "" {
		fmt.Fprintf(w, "%s\n", bold(rep.Source))
	}
	for _, f := range rep.Findings {
		fmt.Fprintf(w, "  %s %-32s %s\n", statusTag(f.Status), f.ID, f.Message)
	}
	fmt.Fprintf(w, "\n  %d passed, %d failed, %d missing, %d errors\n",
		rep.Summary.Pass, rep.Summary.Fail, rep.Summary.Missing, rep.Summary.Error)
}
