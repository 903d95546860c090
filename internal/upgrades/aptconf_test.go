package upgrades

import "testing"

const sampleAutoUpgrades = `APT::Periodic::Update-Package-Lists "1";
APT::Periodic::Unattended-Upgrade "1";
`

const sampleUnattended = `// Automatically upgrade packages from these (origin:archive) pairs
Unattended-Upgrade::Allowed-Origins {
        "${distro_id}:${distro_codename}";
        "${distro_id}:${distro_codename}-security";
//      "${distro_id}:${distro_codename}-updates";
};

Unattended-Upgrade::Automatic-Reboot "false";
Unattended-Upgrade::Mail ""; // empty means root
`

func TestParseConf_Values(t *testing.T) {
	c := ParseConf([]byte(sampleAutoUpgrades))
	if got := c.Values["APT::Periodic::Update-Package-Lists"]; got != "1" {
		t.Errorf("Update-Package-Lists = %q", got)
	}
	if got := c.Values["APT::Periodic::Unattended-Upgrade"]; got != "1" {
		t.Errorf("Unattended-Upgrade = %q", got)
	}
}

func TestParseConf_ListBlock(t *testing.T) {
	c := ParseConf([]byte(sampleUnattended))
	origins := c.Lists["Unattended-Upgrade::Allowed-Origins"]
	if len(origins) != 2 {
		t.Fatalf("origins = %v, want 2 entries (commented line skipped)", origins)
	}
	if origins[1] != "${distro_id}:${distro_codename}-security" {
		t.Errorf("origins[1] = %q", origins[1])
	}
	if got := c.Values["Unattended-Upgrade::Automatic-Reboot"]; got != "false" {
		t.Errorf("Automatic-Reboot = %q", got)
	}
	// trailing comment after the value must not eat the value
	if got, ok := c.Values["Unattended-Upgrade::Mail"]; !ok || got != "" {
		t.Errorf("Mail = %q, %v", got, ok)
	}
}

func TestParseConf_EmptyBlockKeyIsVisible(t *testing.T) {
	c := ParseConf([]byte("Unattended-Upgrade::Allowed-Origins {\n};\n"))
	if _, ok := c.Lists["Unattended-Upgrade::Allowed-Origins"]; !ok {
		t.Error("empty block key should still be present")
	}
	if len(c.Lists["Unattended-Upgrade::Allowed-Origins"]) != 0 {
		t.Error("empty block should have no items")
	}
}

func TestParseConf_GarbageIsSkipped(t *testing.T) {
	c := ParseConf([]byte("### not apt syntax\nwhatever\nAPT::Periodic::Enable \"1\";\n"))
	if got := c.Values["APT::Periodic::Enable"]; got != "1" {
		t.Errorf("Enable = %q", got)
	}
	if len(c.Values) != 1 {
		t.Errorf("unexpected extra values: %v", c.Values)
	}
}
