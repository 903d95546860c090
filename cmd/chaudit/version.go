package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ShadowStrikeHQ/chaudit-unattendedupdateschecker/internal/audit"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print chaudit version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("chaudit", audit.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
