package main

import (
	"fmt"
	"os"

	"github.com/aretw0/decaytable/internal/cli"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "decaytable",
	Short: "Decaytable reads EvtGen decay files",
	Long:  `Decaytable parses .dec decay files into a decay table and explores the decay chains they describe.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Config file (default ./decaytable.yaml when present)")
	rootCmd.PersistentFlags().String("particles", "", "YAML particle catalogue (default: built-in catalogue)")
	rootCmd.PersistentFlags().StringSlice("stable", nil, "Particles never expanded into their decays")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().Bool("debug", false, "Log every pipeline stage")
	rootCmd.PersistentFlags().Bool("no-cc", false, "Ignore CDecay statements")
	rootCmd.PersistentFlags().Bool("metrics", false, "Print pipeline metrics to stderr when done")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
}

// openSession parses the given decay files with the persistent flags applied.
func openSession(cmd *cobra.Command, files []string) *cli.Session {
	flags := cmd.Flags()
	opts := cli.Options{Files: files}
	opts.ConfigPath, _ = flags.GetString("config")
	opts.ParticleDB, _ = flags.GetString("particles")
	opts.Stable, _ = flags.GetStringSlice("stable")
	opts.LogLevel, _ = flags.GetString("log-level")
	opts.Debug, _ = flags.GetBool("debug")
	opts.NoCC, _ = flags.GetBool("no-cc")
	opts.Metrics, _ = flags.GetBool("metrics")

	s, err := cli.Open(opts)
	if err != nil {
		fmt.Printf("Error reading decay files: %v\n", err)
		os.Exit(1)
	}
	return s
}

// finish writes the metrics, if requested, once a command is done.
func finish(s *cli.Session) {
	if err := s.WriteMetrics(os.Stderr); err != nil {
		fmt.Printf("Error writing metrics: %v\n", err)
		os.Exit(1)
	}
}

func noColor(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool("no-color")
	return v
}
