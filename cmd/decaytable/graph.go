package main

import (
	"fmt"
	"os"

	"github.com/aretw0/decaytable/internal/presentation/graph"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph MOTHER FILE...",
	Short: "Export the decay chain visualization",
	Long:  `Builds the chain of MOTHER and outputs a Mermaid diagram (graph TD) of it.`,
	Args:  cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		s := openSession(cmd, args[1:])
		defer finish(s)

		c, err := s.Parser.BuildDecayChains(args[0], s.Stable()...)
		if err != nil {
			fmt.Printf("Error building chain: %v\n", err)
			os.Exit(1)
		}

		fmt.Print(graph.GenerateMermaid(c, &graph.Overlay{Stable: s.Stable()}))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
