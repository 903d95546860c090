package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ShadowStrikeHQ/chaudit-unattendedupdateschecker/internal/audit"
	"github.com/ShadowStrikeHQ/chaudit-unattendedupdateschecker/internal/document"
	"github.com/ShadowStrikeHQ/chaudit-unattendedupdateschecker/internal/executor"
	"github.com/ShadowStrikeHQ/chaudit-unattendedupdateschecker/internal/reporting"
	"github.com/ShadowStrikeHQ/chaudit-unattendedupdateschecker/internal/rulepack"
	"github.com/ShadowStrikeHQ/chaudit-unattendedupdateschecker/internal/rules"
	"github.com/ShadowStrikeHQ/chaudit-unattendedupdateschecker/internal/schema"
	"github.com/ShadowStrikeHQ/chaudit-unattendedupdateschecker/internal/shared"
	"github.com/ShadowStrikeHQ/chaudit-unattendedupdateschecker/internal/upgrades"
)

var (
	flagCheckUpgrades bool
	flagConfigFile    string
	flagSchemaFile    string
	flagRulesFile     string
	flagSettingsFile  string
	flagOutDir        string
	flagSortSeverity  bool
)

var rootCmd = &cobra.Command{
	Use:   "chaudit",
	Short: "Check unattended upgrades and audit configuration files",
	Long: "chaudit checks whether unattended security updates are enabled and\n" +
		"correctly configured, and audits YAML/JSON configuration files against\n" +
		"security best-practice rules. It reads state and reports; it never\n" +
		"modifies the system.",
	RunE: runAudit,
}

func init() {
	rootCmd.Flags().BoolVar(&flagCheckUpgrades, "check-upgrades", false, "check unattended upgrades status")
	rootCmd.Flags().StringVar(&flagConfigFile, "config-file", "", "configuration file to audit (YAML or JSON)")
	rootCmd.Flags().StringVar(&flagSchemaFile, "schema-file", "", "JSON schema file to validate the document against")
	rootCmd.Flags().StringVar(&flagRulesFile, "rules-file", "", "YAML rule pack replacing the built-in rules")
	rootCmd.Flags().StringVar(&flagSettingsFile, "settings", "", "tool settings file (YAML)")
	rootCmd.Flags().StringVar(&flagOutDir, "out", "", "also write a JSON report into this directory")
	rootCmd.Flags().BoolVar(&flagSortSeverity, "sort-severity", false, "order findings by severity instead of rule order")
}

func runAudit(cmd *cobra.Command, args []string) error {
	if !flagCheckUpgrades && flagConfigFile == "" {
		return fmt.Errorf("nothing to do: pass --check-upgrades and/or --config-file")
	}

	set, err := shared.LoadSettings(flagSettingsFile)
	if err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	shared.InitLogger(set.Logging.Format, set.Logging.Level)

	ctx := context.Background()
	rep := audit.NewReport(describeRun())

	if flagCheckUpgrades {
		facts := upgrades.Gather(ctx, executor.NewLocalExecutor(), set.Upgrades)
		rep.Add(upgrades.Check(facts, set.Upgrades)...)
	}

	if flagConfigFile != "" {
		if err := auditConfig(rep, set); err != nil {
			slog.Error("audit failed", "err", err)
			fmt.Fprintln(os.Stderr, "chaudit:", err)
			os.Exit(1)
		}
	}

	reporting.WriteText(os.Stdout, rep)

	if flagOutDir != "" {
		jsonPath, err := reporting.WriteJSON(flagOutDir, rep)
		if err != nil {
			slog.Error("write report", "err", err)
			os.Exit(1)
		}
		htmlPath, err := reporting.WriteHTML(flagOutDir, rep)
		if err != nil {
			slog.Error("write report", "err", err)
			os.Exit(1)
		}
		slog.Info("report written", "json", jsonPath, "html", htmlPath)
	}

	if rep.Failed() {
		os.Exit(1)
	}
	return nil
}

// auditConfig loads the document and runs the schema pass (when a
// schema is given) followed by the rule pass. Load failures are
// fatal; everything past a successful load folds into findings.
func auditConfig(rep *audit.Report, set shared.Settings) error {
	doc, raw, err := document.Load(flagConfigFile)
	if err != nil {
		return err
	}

	if flagSchemaFile != "" {
		v, err := schema.Compile(flagSchemaFile)
		if err != nil {
			return err
		}
		fs, err := v.Validate(raw)
		if err != nil {
			return err
		}
		rep.Add(fs...)
	}

	rs := rules.Builtin()
	if flagRulesFile != "" {
		if rs, err = rulepack.Load(flagRulesFile); err != nil {
			return err
		}
	}

	disabled := make(map[string]bool, len(set.Rules.Disabled))
	for _, id := range set.Rules.Disabled {
		disabled[strings.ToUpper(strings.TrimSpace(id))] = true
	}
	rep.Add(rules.Evaluate(doc, rs, rules.Options{
		SeverityThreshold: set.Rules.SeverityThreshold,
		Disabled:          disabled,
		SortBySeverity:    flagSortSeverity,
	})...)
	return nil
}

func describeRun() string {
	var parts []string
	if flagCheckUpgrades {
		parts = append(parts, "unattended upgrades")
	}
	if flagConfigFile != "" {
		parts = append(parts, flagConfigFile)
	}
	return strings.Join(parts, ", ")
}
