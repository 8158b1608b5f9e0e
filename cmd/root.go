package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"marketsim/internal/adapter/kafka"
	"marketsim/internal/adapter/postgres"
	rediscache "marketsim/internal/adapter/redis"
	"marketsim/internal/adapter/usecase"
	"marketsim/internal/config"
	"marketsim/internal/db"
)

// app carries what every subcommand needs once configuration is loaded.
type app struct {
	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "marketsim",
		Short:         "Backend of the Dummy Market learning platform",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				slog.Error("failed to load config", slog.Any("error", err))
				return err
			}
			a.cfg = cfg
			a.logger = slog.New(cfg.Log.NewHandler(os.Stdout))
			return nil
		},
	}
	root.AddCommand(
		newServeCmd(a),
		newMigrateCmd(a),
		newSeedCmd(a),
		newTablesCmd(a),
		newSimulateCmd(a),
	)
	return root
}

// runErr logs err and returns it so cobra exits non-zero.
func (a *app) runErr(msg string, err error) error {
	a.logger.Error(msg, slog.Any("error", err))
	return fmt.Errorf("%s: %w", msg, err)
}

// simulationDeps is the simulation pipeline shared by serve and simulate.
type simulationDeps struct {
	campaigns  *postgres.CampaignRepository
	simulation *usecase.SimulationUseCase
	closers    []func() error
}

// newSimulationDeps wires the simulation use case to Postgres and, when
// configured, to the Redis snapshot cache and the Kafka publisher. An
// unreachable Redis disables the cache instead of failing.
func (a *app) newSimulationDeps(ctx context.Context, pool *pgxpool.Pool) *simulationDeps {
	d := &simulationDeps{campaigns: postgres.NewCampaignRepository(pool)}
	opts := []usecase.SimulationOption{usecase.WithHistoryLimit(a.cfg.Sim.HistoryLimit)}

	if a.cfg.Redis.Enabled() {
		client := redis.NewClient(&redis.Options{
			Addr:     a.cfg.Redis.Addr,
			Password: a.cfg.Redis.Password,
			DB:       a.cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			a.logger.Warn("redis unavailable, snapshot cache disabled", slog.Any("error", err))
			_ = client.Close()
		} else {
			opts = append(opts, usecase.WithSnapshotCache(rediscache.NewSnapshotCache(client, a.cfg.Redis.TTL)))
			d.closers = append(d.closers, client.Close)
			a.logger.Info("snapshot cache enabled", slog.String("addr", a.cfg.Redis.Addr))
		}
	}

	if a.cfg.Kafka.Enabled() {
		pub := kafka.NewPublisher(a.cfg.Kafka.Brokers, a.cfg.Kafka.Topic)
		opts = append(opts, usecase.WithPublisher(pub))
		d.closers = append(d.closers, pub.Close)
		a.logger.Info("data point publisher enabled", slog.String("topic", a.cfg.Kafka.Topic))
	}

	d.simulation = usecase.NewSimulationUseCase(d.campaigns, postgres.NewSimulationRepository(pool), a.logger, opts...)
	return d
}

func (d *simulationDeps) Close(logger *slog.Logger) {
	for i := len(d.closers) - 1; i >= 0; i-- {
		if err := d.closers[i](); err != nil {
			logger.Warn("close error", slog.Any("error", err))
		}
	}
}

func (a *app) openPool(ctx context.Context) (*pgxpool.Pool, error) {
	pool, err := db.NewPostgresPool(ctx, a.cfg.Psql)
	if err != nil {
		return nil, a.runErr("database connection error", err)
	}
	return pool, nil
}
