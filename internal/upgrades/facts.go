package upgrades

import (
	"context"
	"log/slog"

	"github.com/ShadowStrikeHQ/chaudit-unattendedupdateschecker/internal/executor"
)

// Expectations is the correct-configuration baseline the check
// compares against. Which keys and values count as "correct" is
// deliberately configuration, not code; the defaults match Debian's
// stock 20auto-upgrades.
type Expectations struct {
	AutoUpgradesFile   string `yaml:"auto_upgrades_file"`
	UnattendedFile     string `yaml:"unattended_file"`
	UpdatePackageLists string `yaml:"update_package_lists"`
	UnattendedUpgrade  string `yaml:"unattended_upgrade"`
	AutomaticReboot    string `yaml:"automatic_reboot"`
}

func DefaultExpectations() Expectations {
	return Expectations{
		AutoUpgradesFile:   "/etc/apt/apt.conf.d/20auto-upgrades",
		UnattendedFile:     "/etc/apt/apt.conf.d/50unattended-upgrades",
		UpdatePackageLists: "1",
		UnattendedUpgrade:  "1",
		AutomaticReboot:    "false",
	}
}

// Facts is everything the gatherer could learn about the host's
// unattended-upgrades setup. Absent pieces are recorded, not fatal:
// the checker turns them into failing findings.
type Facts struct {
	Installed bool

	AutoUpgrades    *Conf // nil when the fragment could not be read
	AutoUpgradesErr string

	Unattended    *Conf
	UnattendedErr string
}

const dpkgQuery = "dpkg -s unattended-upgrades"

// Gather queries the package manager and reads the APT fragments.
// It never fails; whatever could not be read is noted in the Facts.
func Gather(ctx context.Context, exec executor.Executor, want Expectations) Facts {
	var f Facts

	if _, err := exec.Run(ctx, dpkgQuery); err == nil {
		f.Installed = true
	} else {
		slog.Debug("dpkg query failed", "err", err)
	}

	if b, err := exec.ReadFile(ctx, want.AutoUpgradesFile); err == nil {
		f.AutoUpgrades = ParseConf(b)
	} else {
		f.AutoUpgradesErr = "configuration file not found: " + want.AutoUpgradesFile
		slog.Debug("read apt fragment", "path", want.AutoUpgradesFile, "err", err)
	}

	if b, err := exec.ReadFile(ctx, want.UnattendedFile); err == nil {
		f.Unattended = ParseConf(b)
	} else {
		f.UnattendedErr = "configuration file not found: " + want.UnattendedFile
		slog.Debug("read apt fragment", "path", want.UnattendedFile, "err", err)
	}

	return f
}
