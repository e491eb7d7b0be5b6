package main

import (
	"fmt"

	"repair_intake/internal/infrastructure/config"
	"repair_intake/internal/infrastructure/database"

	"github.com/spf13/cobra"
)

func newCreateTablesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create-tables",
		Short: "Create the DynamoDB tables and indexes if missing",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}
			if cfg.StorageDriver != config.StorageDynamoDB {
				return fmt.Errorf("create-tables needs STORAGE_DRIVER=%s", config.StorageDynamoDB)
			}
			ctx := cmd.Context()
			ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS, logger)
			if err != nil {
				return err
			}
			return database.CreateTables(ctx, ddb, cfg.Tables, logger)
		},
	}
}

func newSeedCmd() *cobra.Command {
	var skipSlots bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the service catalog from the shop file and open the slot horizon",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			services, err := a.Catalog.Seed(ctx, a.Shop.Catalog)
			if err != nil {
				return fmt.Errorf("seed catalog: %w", err)
			}
			cmd.Printf("services: %d\n", services)

			if skipSlots {
				return nil
			}
			slots, err := a.Slots.EnsureHorizon(ctx)
			if err != nil {
				return fmt.Errorf("open slots: %w", err)
			}
			cmd.Printf("slots created: %d\n", slots)
			return nil
		},
	}

	cmd.Flags().BoolVar(&skipSlots, "skip-slots", false, "only load the catalog")
	return cmd
}

func newReconcileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reconcile",
		Short: "Retry slot releases left pending by cancellations",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			n, err := a.Requests.ReconcileReleases(ctx)
			if err != nil {
				return err
			}
			cmd.Printf("released: %d\n", n)
			return nil
		},
	}
}
