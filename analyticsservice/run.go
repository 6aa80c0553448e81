// Package analyticsservice boots the analytics HTTP service: configuration,
// upstream client, accessors, health monitoring and graceful shutdown.
package analyticsservice

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/playlens/playlens/internal/api"
	"github.com/playlens/playlens/internal/auth"
	"github.com/playlens/playlens/internal/config"
	"github.com/playlens/playlens/internal/health"
	"github.com/playlens/playlens/internal/platform/logger"
	"github.com/playlens/playlens/internal/playfab"
	"github.com/playlens/playlens/internal/services"
	"github.com/rs/zerolog"
)

// Run starts the analytics service HTTP server and blocks until shutdown or error.
func Run() error {
	log := logger.New("playlens-analytics")

	cfg, err := config.New()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load configuration")
		return err
	}

	log.Info().
		Str("title_id", cfg.TitleID).
		Str("upstream_base_url", cfg.UpstreamBaseURL).
		Int("http_port", cfg.HTTPPort).
		Msg("Analytics service starting")

	// Create cancellable root context bound to SIGINT/SIGTERM
	ctx, stop := newServerContext()
	defer stop()

	// Upstream client, auth gateway and accessors
	gateway, deps := initDependencies(cfg, log)

	// Build router
	router := api.NewRouter(deps)

	// Start health checkers and bind service health
	svcHealth := startHealthCheckers(ctx, cfg, log, gateway)

	// Block startup until the upstream reports healthy; fail fast otherwise
	if err := waitUntilHealthy(ctx, cfg, svcHealth); err != nil {
		log.Error().Err(err).Msg("startup health check failed")
		return err
	}

	// HTTP server and serve
	server := newHTTPServer(ctx, cfg, router)
	errCh := serveHTTP(server, log, cfg)

	// Graceful shutdown on context cancel or server error
	select {
	case <-ctx.Done():
		log.Info().Msg("Shutting down server")
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctxShutdown); err != nil {
			log.Error().Err(err).Msg("Server forced to shutdown")
			return err
		}
		log.Info().Msg("Server exited")
		return nil
	case err := <-errCh:
		log.Error().Err(err).Msg("HTTP server failed")
		return err
	}
}

// initDependencies constructs the upstream client, auth gateway and the five
// accessor services, wired the way the router expects them.
func initDependencies(cfg *config.Config, log zerolog.Logger) (*auth.Gateway, api.Deps) {
	client := playfab.New(cfg.UpstreamBaseURL, cfg.SecretKey,
		time.Duration(cfg.UpstreamTimeoutSeconds)*time.Second)

	gateway := auth.New(client, log,
		time.Duration(cfg.TokenValiditySeconds)*time.Second,
		time.Duration(cfg.TokenRefreshBufferSeconds)*time.Second)

	players := services.NewPlayerService(client, log, cfg.SegmentBatchSize)
	userData := services.NewUserDataService(client)
	files := services.NewFileService(client, gateway, log)
	objects := services.NewObjectService(client, gateway, log)
	analytics := services.NewAnalyticsService(players, userData, files, objects, log)

	return gateway, api.Deps{
		Players:            players,
		UserData:           userData,
		Files:              files,
		Objects:            objects,
		Analytics:          analytics,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	}
}

// startHealthCheckers starts the upstream checker and service-level aggregator; binds health.
func startHealthCheckers(ctx context.Context, cfg *config.Config, log zerolog.Logger, gateway *auth.Gateway) *health.ServiceHealthChecker {
	probeTimeout := time.Duration(cfg.HealthProbeTimeoutSeconds) * time.Second
	interval := time.Duration(cfg.HealthIntervalSeconds) * time.Second

	upstreamChecker := health.NewUpstreamHealthChecker(gateway, log, probeTimeout)
	go upstreamChecker.Start(ctx, interval)

	svcHealth := health.NewServiceHealthChecker(log, upstreamChecker)
	go svcHealth.Start(ctx, interval)
	api.BindServiceHealth(svcHealth.IsHealthy)
	return svcHealth
}

func newHTTPServer(ctx context.Context, cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
}

func serveHTTP(server *http.Server, log zerolog.Logger, cfg *config.Config) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.HTTPPort).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()
	return errCh
}

// waitUntilHealthy blocks until service health is healthy or the startup window expires.
func waitUntilHealthy(ctx context.Context, cfg *config.Config, svcHealth *health.ServiceHealthChecker) error {
	// Health checkers start unhealthy and need time for their first probe cycle
	timeoutSeconds := calculateStartupHealthTimeout(cfg.HealthIntervalSeconds)
	deadline := time.Now().Add(time.Duration(timeoutSeconds) * time.Second)
	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()
	for {
		if svcHealth.IsHealthy() {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("startup aborted: upstream not healthy within %d seconds", timeoutSeconds)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// calculateStartupHealthTimeout returns the startup health timeout in seconds,
// calculated as interval*2 with a minimum of 60 seconds.
func calculateStartupHealthTimeout(healthIntervalSeconds int) int {
	timeout := healthIntervalSeconds * 2
	if timeout < 60 {
		return 60
	}
	return timeout
}

// newServerContext returns a cancellable context that is cancelled on SIGINT/SIGTERM.
func newServerContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
