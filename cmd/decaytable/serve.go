package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	httpAdapter "github.com/aretw0/decaytable/pkg/adapters/http"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve FILE...",
	Short: "Start the read-only HTTP server",
	Long:  `Parses the decay files once and serves decay table queries as a JSON API over HTTP.`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		port, _ := cmd.Flags().GetString("port")

		s := openSession(cmd, args)
		defer finish(s)

		handler, err := httpAdapter.NewHandler(s.Parser, s.Logger)
		if err != nil {
			fmt.Printf("Error initializing server: %v\n", err)
			os.Exit(1)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		fmt.Printf("Starting Decaytable Server on :%s\n", port)
		fmt.Printf("Serving decays from: %s\n", s.Parser.Name)
		if err := httpAdapter.ListenAndServe(ctx, ":"+port, handler, s.Logger); err != nil {
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Decaytable Server stopped gracefully")
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
}
