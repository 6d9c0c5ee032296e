package main

import (
	"context"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"outliner/internal/api"
	"outliner/internal/config"
	"outliner/internal/pipeline"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP outline extraction service",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()

		cfg := config.Load()
		if err := cfg.Validate(); err != nil {
			log.Error("invalid configuration", "error", err)
			return err
		}

		orch := pipeline.NewOrchestrator(
			cfg.WorkerCount,
			cfg.MaxQueueSize,
			cfg.JobTTL,
			api.ProcessJob(extractorConfig(cfg, log)),
			log,
		)
		orch.Start(cmd.Context())

		srv := api.NewServer(orch, log, cfg)
		httpServer := &http.Server{
			Addr:         ":" + cfg.Port,
			Handler:      srv,
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 120 * time.Second,
			IdleTimeout:  60 * time.Second,
		}

		// Graceful shutdown on context cancellation.
		go func() {
			<-cmd.Context().Done()
			log.Info("shutting down...")

			orch.Stop()

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			httpServer.Shutdown(shutdownCtx)
		}()

		log.Info("starting outliner", "port", cfg.Port, "mode", cfg.Mode)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			return err
		}
		return nil
	},
}
