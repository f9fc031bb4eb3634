package main

import (
	"os"
	"strings"

	"github.com/aretw0/decaytable"
	"github.com/aretw0/decaytable/internal/cli"
	"github.com/aretw0/decaytable/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of decaytable",
	Run: func(cmd *cobra.Command, args []string) {
		tui.PrintBanner(os.Stdout, strings.TrimSpace(decaytable.Version), cli.PaletteFor(os.Stdout, noColor(cmd)))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
