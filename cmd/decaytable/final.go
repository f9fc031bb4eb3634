package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var finalCmd = &cobra.Command{
	Use:   "final MOTHER FILE...",
	Short: "List the exclusive final states of a particle",
	Args:  cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		s := openSession(cmd, args[1:])
		defer finish(s)

		states, err := s.Parser.FinalStates(args[0], s.Stable()...)
		if err != nil {
			fmt.Printf("Error enumerating final states: %v\n", err)
			os.Exit(1)
		}
		for _, fs := range states {
			fmt.Printf("%12.6g : %s\n", fs.BF, fs.Daughters)
		}
	},
}

func init() {
	rootCmd.AddCommand(finalCmd)
}
