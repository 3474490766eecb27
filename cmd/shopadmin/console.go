package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dmperov/shopadmin/internal/config"
	"github.com/dmperov/shopadmin/internal/console"
	"github.com/dmperov/shopadmin/internal/logging"
)

var verbose bool

func init() {
	consoleCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	consoleCmd.Flags().String("base-url", "", "store API base URL")
	loginCmd.Flags().String("base-url", "", "store API base URL")
}

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Start the interactive admin console",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		applyFlagOverrides(cmd, cfg)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		log := logging.New(os.Stderr, verbose)
		app := console.NewApp(cfg, log)
		app.Run(ctx)
		return nil
	},
}

// applyFlagOverrides is the last configuration layer: explicit flags beat
// the environment and the config file.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	if v, err := cmd.Flags().GetString("base-url"); err == nil && v != "" {
		cfg.BaseURL = v
	}
}
