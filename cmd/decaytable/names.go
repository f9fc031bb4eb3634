package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var namesCmd = &cobra.Command{
	Use:   "names FILE...",
	Short: "List the decaying particles",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s := openSession(cmd, args)
		defer finish(s)

		names, err := s.Parser.ListDecayMotherNames()
		if err != nil {
			fmt.Printf("Error listing decays: %v\n", err)
			os.Exit(1)
		}
		for _, n := range names {
			fmt.Println(n)
		}
		if diags, _ := cmd.Flags().GetBool("diagnostics"); diags {
			for _, d := range s.Parser.Diagnostics() {
				fmt.Fprintln(os.Stderr, d.String())
			}
		}
	},
}

func init() {
	namesCmd.Flags().Bool("diagnostics", false, "Also print recoverable findings to stderr")
	rootCmd.AddCommand(namesCmd)
}
