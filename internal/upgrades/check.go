package upgrades

import (
	"fmt"
	"strings"

	"github.com/ShadowStrikeHQ/chaudit-unattendedupdateschecker/internal/audit"
)

const (
	keyUpdateLists    = "APT::Periodic::Update-Package-Lists"
	keyUnattended     = "APT::Periodic::Unattended-Upgrade"
	keyAllowedOrigins = "Unattended-Upgrade::Allowed-Origins"
	keyAutoReboot     = "Unattended-Upgrade::Automatic-Reboot"
)

// Check compares gathered facts against the expected configuration
// and emits one finding per condition. It is pure: same facts, same
// findings.
func Check(f Facts, want Expectations) []audit.Finding {
	out := make([]audit.Finding, 0, 5)

	if f.Installed {
		out = append(out, pass("upgrades-installed", "unattended-upgrades package installed"))
	} else {
		out = append(out, fail("upgrades-installed", "HIGH", "unattended-upgrades not installed", ""))
	}

	out = append(out, checkPeriodic(f, "upgrades-update-package-lists", keyUpdateLists, want.UpdatePackageLists))
	out = append(out, checkPeriodic(f, "upgrades-unattended-upgrade", keyUnattended, want.UnattendedUpgrade))
	out = append(out, checkOrigins(f))
	out = append(out, checkReboot(f, want))

	return out
}

// checkPeriodic verifies one APT::Periodic value in 20auto-upgrades.
func checkPeriodic(f Facts, id, key, want string) audit.Finding {
	if f.AutoUpgrades == nil {
		return fail(id, "HIGH", f.AutoUpgradesErr, "")
	}
	got, ok := f.AutoUpgrades.Values[key]
	if !ok {
		return audit.Finding{
			ID:       id,
			Source:   audit.SourceUpgrades,
			Status:   audit.StatusMissing,
			Severity: "HIGH",
			Message:  key + " is not set",
		}
	}
	if got != want {
		return fail(id, "HIGH", fmt.Sprintf("%s should be %q (observed: %q)", key, want, got), got)
	}
	return pass(id, key+" enabled")
}

func checkOrigins(f Facts) audit.Finding {
	const id = "upgrades-allowed-origins"
	if f.Unattended == nil {
		return fail(id, "MEDIUM", f.UnattendedErr, "")
	}
	origins, ok := f.Unattended.Lists[keyAllowedOrigins]
	if !ok || len(origins) == 0 {
		return fail(id, "MEDIUM", keyAllowedOrigins+" not properly configured", "")
	}
	return pass(id, fmt.Sprintf("%s configured (%d origins)", keyAllowedOrigins, len(origins)))
}

// checkReboot treats an unset Automatic-Reboot as "false", which is
// the package default.
func checkReboot(f Facts, want Expectations) audit.Finding {
	const id = "upgrades-automatic-reboot"
	if f.Unattended == nil {
		return fail(id, "LOW", f.UnattendedErr, "")
	}
	got, ok := f.Unattended.Values[keyAutoReboot]
	if !ok {
		got = "false"
	}
	if !strings.EqualFold(got, want.AutomaticReboot) {
		return fail(id, "LOW",
			fmt.Sprintf("%s should be %q (observed: %q)", keyAutoReboot, want.AutomaticReboot, got), got)
	}
	return pass(id, keyAutoReboot+" policy matches")
}

func pass(id, msg string) audit.Finding {
	return audit.Finding{
		ID:      id,
		Source:  audit.SourceUpgrades,
		Status:  audit.StatusPass,
		Message: msg,
	}
}

func fail(id, sev, msg, observed string) audit.Finding {
	return audit.Finding{
		ID:       id,
		Source:   audit.SourceUpgrades,
		Status:   audit.StatusFail,
		Severity: sev,
		Message:  msg,
		Observed: observed,
	}
}
