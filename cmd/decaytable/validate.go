package main

import (
	"fmt"
	"os"

	"github.com/aretw0/decaytable/internal/validator"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate FILE...",
	Short: "Check the decay table for consistency",
	Long:  `Reports decays without modes, unknown particles, branching fractions above one and decay cycles.`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s := openSession(cmd, args)
		defer finish(s)

		for _, d := range s.Parser.Diagnostics() {
			fmt.Printf("note: %s\n", d.String())
		}

		t, err := s.Parser.Table()
		if err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		report := validator.ValidateTable(t, s.DB)
		for _, f := range report.Findings {
			if f.Severity == validator.SeverityWarning {
				fmt.Println(f.String())
			}
		}
		if err := report.Err(); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Decay table is valid! ✅")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
