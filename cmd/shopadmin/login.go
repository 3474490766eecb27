package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dmperov/shopadmin/internal/config"
	"github.com/dmperov/shopadmin/internal/console"
	"github.com/dmperov/shopadmin/internal/logging"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate and persist the session",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		applyFlagOverrides(cmd, cfg)

		app := console.NewApp(cfg, logging.New(os.Stderr, false))
		return app.Login(cmd.Context())
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the persisted session",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		app := console.NewApp(cfg, logging.New(os.Stderr, false))
		return app.Logout(cmd.Context())
	},
}
