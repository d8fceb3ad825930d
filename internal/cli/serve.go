package cli

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	auction "social-auction/internal/auctionService"
	"social-auction/internal/config"
	"social-auction/internal/repository"
	"social-auction/internal/seed"
	"social-auction/internal/server"
	"social-auction/utils"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

type serveOptions struct {
	port     string
	logLevel string
	noSeed   bool
}

func bindServeFlags(cmd *cobra.Command, opts *serveOptions) {
	cmd.Flags().StringVarP(&opts.port, "port", "p", "", "Port to listen on (overrides PORT)")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides LOG_LEVEL)")
	cmd.Flags().BoolVar(&opts.noSeed, "no-seed", false, "Start with an empty store")
}

func newServeCmd() *cobra.Command {
	opts := &serveOptions{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the auction API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts)
		},
	}
	bindServeFlags(cmd, opts)
	return cmd
}

// loadServeConfig merges environment configuration with command-line flags
func loadServeConfig(opts *serveOptions) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if opts.port != "" {
		if err := config.ValidatePort(opts.port); err != nil {
			return config.Config{}, err
		}
		cfg.Port = opts.port
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	if opts.noSeed {
		cfg.SeedData = false
	}
	return cfg, nil
}

func runServe(cmd *cobra.Command, opts *serveOptions) error {
	cfg, err := loadServeConfig(opts)
	if err != nil {
		return err
	}
	if err := utils.SetLevel(cfg.LogLevel); err != nil {
		return err
	}
	gin.SetMode(cfg.GinMode)
	utils.Debug("Configuration loaded", map[string]any{
		"port":             cfg.Port,
		"log_level":        cfg.LogLevel,
		"gin_mode":         cfg.GinMode,
		"seed_data":        cfg.SeedData,
		"allowed_origins":  cfg.AllowedOrigins,
		"shutdown_timeout": cfg.ShutdownTimeout.String(),
	})

	repo := repository.NewMemoryRepo()
	if cfg.SeedData {
		if err := seed.Populate(repo, time.Now()); err != nil {
			return fmt.Errorf("seed store: %w", err)
		}
		utils.Info("Seed data loaded", map[string]any{
			"users":    repo.CountUsers(),
			"auctions": len(repo.ListAuctions()),
		})
	}

	auctionSvc := auction.NewAuctionService(repo)
	router := server.SetupRouter(auctionSvc, cfg.AllowedOrigins)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.Run(ctx, srv, cfg.ShutdownTimeout)
}
