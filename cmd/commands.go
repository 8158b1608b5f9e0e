package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"marketsim/internal/adapter/postgres"
	"marketsim/internal/db"
)

func newMigrateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the embedded database migrations",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.migrate()
		},
	}
}

func (a *app) migrate() error {
	res, err := db.Migrate(a.cfg.Psql.Addr.String())
	if err != nil {
		return a.runErr("migration error", err)
	}
	if res.Changed {
		a.logger.Info("migrations applied", slog.Uint64("from", uint64(res.From)), slog.Uint64("to", uint64(res.To)))
	} else {
		a.logger.Info("schema up to date", slog.Uint64("version", uint64(res.To)))
	}
	return nil
}

func newSeedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert demo campaigns for the stub user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pool, err := a.openPool(cmd.Context())
			if err != nil {
				return err
			}
			defer pool.Close()

			n, err := db.Seed(cmd.Context(), pool, a.cfg.Auth.UserID)
			if err != nil {
				return a.runErr("seed error", err)
			}
			a.logger.Info("seed complete", slog.Int("campaigns", n), slog.Int64("user_id", a.cfg.Auth.UserID))
			return nil
		},
	}
}

// newTablesCmd lists the tables of the public schema, a quick check that
// the database is reachable and migrated.
func newTablesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "List database tables with estimated row counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pool, err := a.openPool(cmd.Context())
			if err != nil {
				return err
			}
			defer pool.Close()

			tables, err := postgres.NewCatalog(pool).ListTables(cmd.Context())
			if err != nil {
				return a.runErr("list tables error", err)
			}
			if len(tables) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no tables found, run `marketsim migrate` first")
				return nil
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "TABLE\tEST. ROWS")
			for _, t := range tables {
				fmt.Fprintf(tw, "%s\t%d\n", t.Name, t.EstimatedRows)
			}
			return tw.Flush()
		},
	}
}

func newSimulateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "simulate <campaign-id>",
		Short: "Run one simulation tick for a campaign and print the sample",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid campaign id %q", args[0])
			}
			pool, err := a.openPool(cmd.Context())
			if err != nil {
				return err
			}
			defer pool.Close()

			deps := a.newSimulationDeps(cmd.Context(), pool)
			defer deps.Close(a.logger)

			p, err := deps.simulation.Simulate(cmd.Context(), a.cfg.Auth.UserID, id)
			if err != nil {
				return a.runErr("simulate error", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "campaign %d @ %s: impressions=%d clicks=%d conversions=%d cost=%s\n",
				p.CampaignID, p.Date.Format("2006-01-02 15:04:05"), p.Impressions, p.Clicks, p.Conversions, p.Cost.StringFixed(2))
			return nil
		},
	}
}
