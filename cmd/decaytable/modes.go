package main

import (
	"fmt"
	"os"

	"github.com/aretw0/decaytable"
	"github.com/aretw0/decaytable/internal/cli"
	"github.com/aretw0/decaytable/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var modesCmd = &cobra.Command{
	Use:   "modes MOTHER FILE...",
	Short: "Print the decay modes of a particle",
	Long:  `Prints every decay mode of MOTHER sorted by branching fraction, as plain columns or as a rendered Markdown table.`,
	Args:  cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		s := openSession(cmd, args[1:])
		defer finish(s)

		flags := cmd.Flags()
		opts := decaytable.DefaultPrintOptions()
		noModel, _ := flags.GetBool("no-model")
		opts.PrintModel = !noModel
		opts.Ascending, _ = flags.GetBool("ascending")
		opts.Normalize, _ = flags.GetBool("normalize")
		opts.Scale, _ = flags.GetFloat64("scale")

		if md, _ := flags.GetBool("markdown"); md {
			if err := printMarkdown(s, args[0], opts, noColor(cmd)); err != nil {
				fmt.Printf("Error rendering modes: %v\n", err)
				os.Exit(1)
			}
			return
		}
		if err := s.Parser.PrintDecayModes(os.Stdout, args[0], opts); err != nil {
			fmt.Printf("Error printing modes: %v\n", err)
			os.Exit(1)
		}
	},
}

func printMarkdown(s *cli.Session, mother string, opts decaytable.PrintOptions, plain bool) error {
	rows, err := s.Parser.DecayModes(mother, opts)
	if err != nil {
		return err
	}
	render, err := tui.NewRenderer(cli.MarkdownStyle(os.Stdout, plain))
	if err != nil {
		return err
	}
	out, err := render(tui.ModesMarkdown(mother, rows))
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}

func init() {
	modesCmd.Flags().Bool("no-model", false, "Omit model names and parameters")
	modesCmd.Flags().Bool("ascending", false, "Sort by increasing branching fraction")
	modesCmd.Flags().Bool("normalize", false, "Rescale the fractions so they sum to --scale")
	modesCmd.Flags().Float64("scale", 1, "Sum of the normalized fractions, in (0, 1]")
	modesCmd.Flags().Bool("markdown", false, "Render a Markdown table")
	rootCmd.AddCommand(modesCmd)
}
