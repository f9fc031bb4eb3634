package main

import (
	"fmt"
	"os"

	"github.com/aretw0/decaytable/internal/cli"
	"github.com/aretw0/decaytable/internal/presentation/tui"
	"github.com/aretw0/decaytable/pkg/chain"
	"github.com/spf13/cobra"
)

var chainCmd = &cobra.Command{
	Use:   "chain MOTHER FILE...",
	Short: "Print the decay chain of a particle",
	Long:  `Expands MOTHER recursively through the decay table, stopping at particles without decays and at --stable particles.`,
	Args:  cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		s := openSession(cmd, args[1:])
		defer finish(s)

		c, err := s.Parser.BuildDecayChains(args[0], s.Stable()...)
		if err != nil {
			fmt.Printf("Error building chain: %v\n", err)
			os.Exit(1)
		}
		if desc, _ := cmd.Flags().GetBool("descriptor"); desc {
			printDescriptor(s, c)
			return
		}
		if err := tui.WriteTree(os.Stdout, c, cli.PaletteFor(os.Stdout, noColor(cmd))); err != nil {
			fmt.Printf("Error printing chain: %v\n", err)
			os.Exit(1)
		}
	},
}

func printDescriptor(s *cli.Session, c *chain.Chain) {
	out, err := chain.Descriptor(c, s.Config.Descriptor.Outer, s.Config.Descriptor.Inner)
	if err != nil {
		fmt.Printf("Error describing chain: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(out)
}

func init() {
	chainCmd.Flags().Bool("descriptor", false, "Print a one-line descriptor instead of a tree")
	rootCmd.AddCommand(chainCmd)
}
