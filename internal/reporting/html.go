package reporting

import (
	"fmt"
	"html"
	"os"
	"path/filepath"

	"github.com/ShadowStrikeHQ/chaudit-unattendedupdateschecker/internal/audit"
)

// WriteHTML writes a browsable report next to the JSON artifact.
func WriteHTML(outDir string, rep *audit.Report) (string, error) {
	name := fmt.Sprintf("chaudit-%s.html", rep.StartedAt.Format("20060102-150405"))
	path := filepath.Join(outDir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	title := "chaudit report"
	fmt.Fprintf(f, "<!doctype html><html><head><meta charset='utf-8'><title>%s</title>", title)
	fmt.Fprint(f, "<style>body{font-family:system-ui,Arial,sans-serif;padding:20px;line-height:1.4} table{border-collapse:collapse;margin:8px 0} td,th{border:1px solid #ddd;padding:6px} h1,h2{margin:6px 0 4px} .dim{color:#666} .mono{font-family:ui-monospace,Menlo,Consolas,monospace} .PASS{color:#060} .FAIL,.ERROR{color:#b00} .MISSING{color:#a60}</style>")
	fmt.Fprint(f, "</head><body>")

	fmt.Fprintf(f, "<h1>%s – <span class='mono'>%s</span></h1>", title, html.EscapeString(rep.Source))
	fmt.Fprintf(f, "<p class='dim'>%s &nbsp; chaudit %s</p>",
		rep.StartedAt.Format("2006-01-02 15:04:05 UTC"), html.EscapeString(rep.Version))
	fmt.Fprintf(f, "<p><b>%d passed</b> &nbsp; %d failed &nbsp; %d missing &nbsp; %d errors</p>",
		rep.Summary.Pass, rep.Summary.Fail, rep.Summary.Missing, rep.Summary.Error)

	if len(rep.Findings) == 0 {
		fmt.Fprint(f, "<p class='dim'>No findings.</p></body></html>")
		return path, nil
	}

	fmt.Fprint(f, "<h2>Findings</h2><table><tr><th>Status</th><th>Severity</th><th>ID</th><th>Source</th><th>Message</th><th>Observed</th></tr>")
	for _, fd := range rep.Findings {
		fmt.Fprintf(f, "<tr><td class='%s'>%s</td><td>%s</td><td class='mono'>%s</td><td>%s</td><td>%s</td><td class='mono'>%s</td></tr>",
			html.EscapeString(string(fd.Status)),
			html.EscapeString(string(fd.Status)),
			html.EscapeString(fd.Severity),
			html.EscapeString(fd.ID),
			html.EscapeString(fd.Source),
			html.EscapeString(fd.Message),
			html.EscapeString(fd.Observed),
		)
	}
	fmt.Fprint(f, "</table></body></html>")
	return path, nil
}
