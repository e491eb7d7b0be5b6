package main

import (
	"context"

	"repair_intake/internal/app"
	"repair_intake/internal/infrastructure/config"
	"repair_intake/internal/infrastructure/logging"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var Version = "dev"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "repairctl",
		Short:         "Operate the repair intake store: tables, seed data, reconciliation and exports",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newVersionCmd())
	root.AddCommand(newCreateTablesCmd())
	root.AddCommand(newSeedCmd())
	root.AddCommand(newReconcileCmd())
	root.AddCommand(newExportCmd())

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println(Version)
		},
	}
}

func loadConfig() (config.Config, *zerolog.Logger, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, logging.New(cfg.Env, cfg.LogLevel), nil
}

// openApp builds the application for one-shot commands.
func openApp(ctx context.Context) (*app.App, error) {
	cfg, logger, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return app.New(ctx, cfg, logger)
}
