// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/canonical/community-service/internal/db"
	"github.com/canonical/community-service/internal/logging"
	"github.com/canonical/community-service/internal/monitoring"
	"github.com/canonical/community-service/internal/tracing"
	"github.com/canonical/community-service/migrations"
)

// migrateCmd applies every pending migration, it is what deployments run before serve.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	Args:  cobra.NoArgs,
	RunE: withMigrations(func(ctx context.Context, provider *goose.Provider, out io.Writer) error {
		results, err := provider.Up(ctx)
		printResults(out, results)
		return err
	}),
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the last migration, or every migration above --to",
	Args:  cobra.NoArgs,
	RunE: withMigrations(func(ctx context.Context, provider *goose.Provider, out io.Writer) error {
		if migrateTo < 0 {
			result, err := provider.Down(ctx)
			if result != nil {
				printResults(out, []*goose.MigrationResult{result})
			}
			return err
		}

		results, err := provider.DownTo(ctx, migrateTo)
		printResults(out, results)
		return err
	}),
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "List migrations and when they were applied",
	Args:  cobra.NoArgs,
	RunE: withMigrations(func(ctx context.Context, provider *goose.Provider, out io.Writer) error {
		statuses, err := provider.Status(ctx)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "VERSION\tSTATE\tAPPLIED_AT\tSOURCE")
		for _, s := range statuses {
			appliedAt := "-"
			if s.State == goose.StateApplied {
				appliedAt = s.AppliedAt.Format(time.RFC3339)
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", s.Source.Version, s.State, appliedAt, filepath.Base(s.Source.Path))
		}
		return w.Flush()
	}),
}

// migrateCheckCmd fails while migrations are pending, for use as an init or readiness gate.
var migrateCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Fail when migrations are pending",
	Args:  cobra.NoArgs,
	RunE: withMigrations(func(ctx context.Context, provider *goose.Provider, out io.Writer) error {
		current, err := provider.GetDBVersion(ctx)
		if err != nil {
			return fmt.Errorf("failed to read schema version: %w", err)
		}

		pending, err := provider.HasPending(ctx)
		if err != nil {
			return fmt.Errorf("failed to check pending migrations: %w", err)
		}

		if pending {
			return fmt.Errorf("migrations are pending: schema at version %d", current)
		}

		fmt.Fprintf(out, "schema up to date at version %d\n", current)
		return nil
	}),
}

var migrateTo int64

// withMigrations opens the database from the shared configuration and hands a goose
// provider over the embedded migrations to fn.
func withMigrations(fn func(context.Context, *goose.Provider, io.Writer) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		spec, err := loadDatabaseSpecs()
		if err != nil {
			return err
		}

		logger := logging.NewLogger("error")
		defer logger.Sync()

		dbClient, err := db.NewDBClient(
			dbConfig(*spec, false),
			tracing.NewNoopTracer(),
			monitoring.NewNoopMonitor("community-service-migrate"),
			logger,
		)
		if err != nil {
			return fmt.Errorf("failed to connect to the database: %w", err)
		}
		defer dbClient.Close()

		provider, err := goose.NewProvider(goose.DialectPostgres, dbClient.SQL(), migrations.EmbedMigrations)
		if err != nil {
			return fmt.Errorf("failed to create goose provider: %w", err)
		}

		return fn(cmd.Context(), provider, cmd.OutOrStdout())
	}
}

func printResults(out io.Writer, results []*goose.MigrationResult) {
	for _, r := range results {
		if r.Error != nil {
			fmt.Fprintf(out, "FAILED %s %s: %v\n", r.Direction, filepath.Base(r.Source.Path), r.Error)
			continue
		}
		fmt.Fprintf(out, "OK %s %s (%s)\n", r.Direction, filepath.Base(r.Source.Path), r.Duration.Round(time.Millisecond))
	}
}

func init() {
	migrateDownCmd.Flags().Int64Var(&migrateTo, "to", -1, "roll back to this version instead of a single step")

	migrateCmd.AddCommand(migrateDownCmd)
	migrateCmd.AddCommand(migrateStatusCmd)
	migrateCmd.AddCommand(migrateCheckCmd)
	rootCmd.AddCommand(migrateCmd)
}
