package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	host   string
	sport  string
	dryRun bool
)

var rootCmd = &cobra.Command{
	Use:   "scoreline-cli",
	Short: "A CLI to interact with the scoreline server",
	Long: `A command-line interface for scoring cricket and football matches
and running knockout tournaments against a scoreline server.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&host, "host", "http://localhost:8080", "The host address of the server")
	rootCmd.PersistentFlags().StringVar(&sport, "sport", "cricket", "Sport to act on (cricket or football)")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Ask the server to validate without saving")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Whoops. There was an error while executing your command '%s'", err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
