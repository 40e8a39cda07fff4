// Command authd runs the zero-knowledge authentication verifier as a
// standalone HTTP service.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/fzdarsky/zkpauth/internal/config"
	"github.com/fzdarsky/zkpauth/internal/lifecycle"
	"github.com/fzdarsky/zkpauth/internal/logging"
	transporthttp "github.com/fzdarsky/zkpauth/internal/transport/http"
	"github.com/fzdarsky/zkpauth/internal/verifier"
	"github.com/fzdarsky/zkpauth/pkg/zkp"
)

var (
	// version is set by build flags.
	version = "dev"
	// commit is set by build flags.
	commit = "none"
)

func main() {
	configPath := flag.String("config", "/etc/zkpauth/config.yaml", "path to configuration file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		logger := logging.New(logging.LevelError, logging.FormatJSON)
		logger.Error("service failed", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := logging.New(logging.LogLevel(cfg.Logging.Level), logging.LogFormat(cfg.Logging.Format))

	logger.Info("zkpauth verifier starting", map[string]any{
		"version":        version,
		"commit":         commit,
		"listen_address": cfg.Service.ListenAddress,
		"group_profile":  cfg.Service.GroupProfile,
	})

	group, err := resolveGroup(cfg.Service.GroupProfile)
	if err != nil {
		return err
	}
	if err := group.Validate(); err != nil {
		return fmt.Errorf("invalid group parameters: %w", err)
	}

	challengeTTL, err := cfg.GetChallengeTTL()
	if err != nil {
		return fmt.Errorf("failed to parse challenge TTL: %w", err)
	}

	svc := verifier.NewService(verifier.Config{
		Group:            group,
		ChallengeTTL:     challengeTTL,
		RateLimitEnabled: cfg.Service.RateLimitEnabled,
	}, logger)
	defer svc.Close()

	handler := transporthttp.NewHandler(svc, logger)

	server := &http.Server{
		Addr:    cfg.Service.ListenAddress,
		Handler: handler.Mux(),
	}

	shutdownManager := lifecycle.NewShutdownManager()
	shutdownCtx := shutdownManager.Start(context.Background())

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server ready to accept connections")
		if serveErr := server.ListenAndServe(); serveErr != nil && serveErr != http.ErrServerClosed {
			errCh <- serveErr
		}
	}()

	select {
	case <-shutdownCtx.Done():
		logger.Info("shutting down", map[string]any{"reason": shutdownManager.Reason()})
		logger.Info("draining", map[string]any{"summary": shutdownManager.Drain(svc)})
		return server.Shutdown(context.Background())
	case serveErr := <-errCh:
		return fmt.Errorf("server failed: %w", serveErr)
	}
}

func resolveGroup(profile string) (*zkp.GroupParams, error) {
	switch profile {
	case "", "default":
		return zkp.DefaultGroup(), nil
	case "independent":
		return zkp.IndependentGroup(), nil
	default:
		return nil, fmt.Errorf("unknown group_profile: %q", profile)
	}
}
