package shared

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ShadowStrikeHQ/chaudit-unattendedupdateschecker/internal/upgrades"
)

// Settings are the tool's own knobs, not the document under audit.
type Settings struct {
	Rules struct {
		SeverityThreshold string   `yaml:"severity_threshold"` // "LOW"|"MEDIUM"|"HIGH"
		Disabled          []string `yaml:"disabled"`
	} `yaml:"rules"`

	Upgrades upgrades.Expectations `yaml:"upgrades"`

	Reporting struct {
		OutDir string `yaml:"out_dir"`
	} `yaml:"reporting"`

	Logging struct {
		Format string `yaml:"format"` // "json"|"text"
		Level  string `yaml:"level"`  // "info"|"debug"|"warn"|"error"
	} `yaml:"logging"`
}

func DefaultSettings() Settings {
	var s Settings
	s.Rules.SeverityThreshold = "LOW"
	s.Upgrades = upgrades.DefaultExpectations()
	s.Reporting.OutDir = "./reports"
	s.Logging.Format = "text"
	s.Logging.Level = "info"
	return s
}

// LoadSettings reads the optional settings file and applies env
// overrides. A missing or unreadable file leaves the defaults alone.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if path != "" {
		if b, err := os.ReadFile(path); err == nil {
			if err := yaml.Unmarshal(b, &s); err != nil {
				return s, err
			}
		}
	}
	if v := os.Getenv("CHAUDIT_LOG_FORMAT"); v != "" {
		s.Logging.Format = v
	}
	if v := os.Getenv("CHAUDIT_LOG_LEVEL"); v != "" {
		s.Logging.Level = v
	}
	if v := os.Getenv("CHAUDIT_OUT_DIR"); v != "" {
		s.Reporting.OutDir = v
	}
	if v := os.Getenv("CHAUDIT_SEVERITY_THRESHOLD"); v != "" {
		s.Rules.SeverityThreshold = v
	}
	return s, nil
}
