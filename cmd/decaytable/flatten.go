package main

import (
	"fmt"
	"os"

	"github.com/aretw0/decaytable/pkg/chain"
	"github.com/spf13/cobra"
)

var flattenCmd = &cobra.Command{
	Use:   "flatten MOTHER FILE...",
	Short: "Collapse a single-mode decay chain into one decay",
	Long:  `Builds the chain of MOTHER and multiplies the fractions of its intermediate decays. Every decaying particle must have exactly one mode.`,
	Args:  cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		s := openSession(cmd, args[1:])
		defer finish(s)

		c, err := s.Parser.BuildDecayChains(args[0], s.Stable()...)
		if err != nil {
			fmt.Printf("Error building chain: %v\n", err)
			os.Exit(1)
		}
		flat, err := chain.Flatten(c, s.Stable()...)
		if err != nil {
			fmt.Printf("Error flattening chain: %v\n", err)
			os.Exit(1)
		}
		bf, err := flat.BF()
		if err != nil {
			fmt.Printf("Error flattening chain: %v\n", err)
			os.Exit(1)
		}
		desc, err := chain.Descriptor(flat, s.Config.Descriptor.Outer, s.Config.Descriptor.Inner)
		if err != nil {
			fmt.Printf("Error describing chain: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%s (bf=%g)\n", desc, bf)
	},
}

func init() {
	rootCmd.AddCommand(flattenCmd)
}
