package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"marketsim/internal/adapter/billing"
	httpadapter "marketsim/internal/adapter/http"
	"marketsim/internal/adapter/postgres"
	"marketsim/internal/adapter/usecase"
	"marketsim/internal/core/port"
	"marketsim/internal/metrics"
	"marketsim/internal/scheduler"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the simulation ticker",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.serve(cmd.Context())
		},
	}
}

// serve optionally runs migrations, wires the adapters, then runs the HTTP
// server and the ticker until ctx is cancelled.
func (a *app) serve(ctx context.Context) error {
	cfg, logger := a.cfg, a.logger

	if cfg.Psql.RunMigrations {
		if err := a.migrate(); err != nil {
			return err
		}
	}

	pool, err := a.openPool(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	sim := a.newSimulationDeps(ctx, pool)
	defer sim.Close(logger)

	var gateway port.BillingGateway
	if cfg.Stripe.Enabled() {
		gateway = billing.NewGateway(cfg.Stripe)
		logger.Info("billing enabled")
	} else {
		logger.Info("billing disabled, STRIPE_SECRET_KEY is empty")
	}

	m := metrics.New()
	handler := httpadapter.NewHandler(httpadapter.Services{
		Campaigns:  usecase.NewCampaignUseCase(sim.campaigns),
		Simulation: sim.simulation,
		Accounts:   usecase.NewAccountUseCase(postgres.NewAccountRepository(pool), gateway, logger),
		Learning:   usecase.NewLearningUseCase(postgres.NewLearningRepository(pool)),
	}, cfg.Auth.UserID, m, logger)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      handler.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	if cfg.Sim.Enabled {
		runner := scheduler.NewRunner(sim.campaigns, sim.simulation, cfg.Sim, m, logger)
		g.Go(func() error {
			runner.Run(gctx)
			return nil
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown error", slog.Any("error", err))
			return err
		}
		logger.Info("server gracefully stopped")
		return nil
	})

	if err = g.Wait(); err != nil {
		return a.runErr("server error", err)
	}
	return nil
}
