package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information - set at build time
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// configPath is the -c/--config flag shared by every subcommand.
var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:   "shopadmin",
		Short: "Terminal admin console for the store API",
		Long: `shopadmin is an interactive terminal console for store administrators.
It manages products, categories, orders, and customers through the store's
REST API and requires an admin account.`,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to JSON config file")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(consoleCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
