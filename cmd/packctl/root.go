package main

import (
	"fmt"
	"sync"

	"packing/cmd"
	"packing/internal/adapters/out/oes"
	"packing/internal/adapters/out/postgres"
	"packing/internal/core/ports"
	"packing/internal/logger"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// commandContext loads the configuration and opens each database once, on
// first use.
type commandContext struct {
	configOnce sync.Once
	config     cmd.Config
	configErr  error

	dbOnce sync.Once
	db     *gorm.DB
	dbErr  error

	ordersOnce sync.Once
	orders     ports.OrderProvider
	ordersErr  error
}

func (c *commandContext) loadConfig() (cmd.Config, error) {
	c.configOnce.Do(func() {
		c.config, c.configErr = cmd.LoadConfig()
		if c.configErr == nil {
			logger.Init(c.config.LogLevel, true)
		}
	})
	return c.config, c.configErr
}

func (c *commandContext) database() (*gorm.DB, error) {
	c.dbOnce.Do(func() {
		config, err := c.loadConfig()
		if err != nil {
			c.dbErr = err
			return
		}
		c.db, c.dbErr = postgres.Open(config.PostgresDSN())
	})
	return c.db, c.dbErr
}

// orderProvider is nil when no order-entry system is configured.
func (c *commandContext) orderProvider() (ports.OrderProvider, error) {
	c.ordersOnce.Do(func() {
		config, err := c.loadConfig()
		if err != nil {
			c.ordersErr = err
			return
		}
		if !config.OESEnabled() {
			return
		}
		oesDB, err := oes.Open(config.OESDSN())
		if err != nil {
			c.ordersErr = err
			return
		}
		c.orders = oes.NewClient(oesDB)
	})
	return c.orders, c.ordersErr
}

func newRootCommand() *cobra.Command {
	ctx := &commandContext{}

	rootCmd := &cobra.Command{
		Use:           "packctl",
		Short:         "Inspect orders, packs and the carton catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.AddCommand(newMigrateCommand(ctx))
	rootCmd.AddCommand(newOrdersCommand(ctx))
	rootCmd.AddCommand(newSnapshotCommand(ctx))
	rootCmd.AddCommand(newSlipCommand(ctx))
	rootCmd.AddCommand(newStaleCommand(ctx))
	rootCmd.AddCommand(newCartonsCommand(ctx))

	return rootCmd
}

func newMigrateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the packing schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := ctx.database()
			if err != nil {
				return err
			}
			if err = postgres.Migrate(db); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Schema is up to date")
			return nil
		},
	}
}
