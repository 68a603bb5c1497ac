package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Abraxas-365/laboral/internal/config"
	"github.com/Abraxas-365/laboral/pkg/logx"
)

func main() {
	var envFile string
	var cfg *config.Config

	rootCmd := &cobra.Command{
		Use:           "laboral",
		Short:         "Chilean labor management API",
		Long:          "Vacation planning against the Chilean holiday calendar, contracts, overtime and a labor-law assistant",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if envFile != "" {
				cfg, err = config.Load(envFile)
			} else {
				cfg, err = config.Load()
			}
			if err != nil {
				return err
			}
			logx.SetLevel(logx.ParseLevel(cfg.LogLevel))
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "env file to load (default .env)")

	rootCmd.AddCommand(
		serveCmd(&cfg),
		migrateCmd(&cfg),
		holidaysCmd(&cfg),
	)

	if err := rootCmd.Execute(); err != nil {
		logx.Errorf("%v", err)
		os.Exit(1)
	}
}

func serveCmd(cfg **config.Config) *cobra.Command {
	var autoMigrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			logx.Info("Starting Laboral API Server...")

			container := NewContainer(*cfg)
			defer container.Close()

			if autoMigrate {
				if err := migrate(cmd.Context(), container.DB); err != nil {
					return err
				}
			}
			return serve(container)
		},
	}
	cmd.Flags().BoolVar(&autoMigrate, "migrate", false, "apply pending migrations before serving")
	return cmd
}

func migrateCmd(cfg **config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			db := openDB((*cfg).DB)
			defer db.Close()
			return migrate(cmd.Context(), db)
		},
	}
}

func holidaysCmd(cfg **config.Config) *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "holidays",
		Short: "Print the holidays of a year and where they came from",
		RunE: func(cmd *cobra.Command, args []string) error {
			rdb := openRedis((*cfg).Redis)
			if rdb != nil {
				defer rdb.Close()
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			resp, err := newHolidayService((*cfg).Holidays, rdb).Lookup(ctx, year)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(resp); err != nil {
				return fmt.Errorf("failed to print holidays: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&year, "year", time.Now().Year(), "calendar year")
	return cmd
}
