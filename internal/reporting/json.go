package reporting

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ShadowStrikeHQ/chaudit-unattendedupdateschecker/internal/audit"
)

// WriteJSON writes the report as an indented JSON artifact under
// outDir and returns the file path. Only called when the user asked
// for it; nothing else is persisted.
func WriteJSON(outDir string, rep *audit.Report) (string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", err
	}
	name := fmt.Sprintf("chaudit-%s.json", rep.StartedAt.Format("20060102-150405"))
	path := filepath.Join(outDir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rep); err != nil {
		return "", err
	}
	return path, nil
}
