package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/Shaik-mohd-huzaifa/SkillIssue-finder/internal/adapters/github"
	"github.com/Shaik-mohd-huzaifa/SkillIssue-finder/internal/adapters/http/api"
	app "github.com/Shaik-mohd-huzaifa/SkillIssue-finder/internal/app"
	"github.com/Shaik-mohd-huzaifa/SkillIssue-finder/internal/config"
	"github.com/Shaik-mohd-huzaifa/SkillIssue-finder/internal/retriever"
	"github.com/Shaik-mohd-huzaifa/SkillIssue-finder/pkg/logger"
	"github.com/Shaik-mohd-huzaifa/SkillIssue-finder/pkg/metrics"
)

// HTTP server timeout constants.
const (
	readTimeout           = 10 * time.Second
	writeTimeout          = 30 * time.Second
	idleTimeout           = 60 * time.Second
	readHeaderTimeout     = 5 * time.Second
	shutdownTimeout       = 30 * time.Second
	systemMetricsInterval = 10 * time.Second
)

func main() {
	// Disable default Go metrics collection to avoid duplicate metrics
	// We collect our own custom system metrics instead
	prometheus.Unregister(collectors.NewGoCollector())
	prometheus.Unregister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// Initialize logging
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}

	loggerInstance := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		loggerInstance.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}
	if cfg.Debug {
		_ = logger.SetLevelString("debug")
	}
	loggerInstance.Info(ctx, "configuration loaded",
		logger.String("addr", cfg.Addr),
		logger.Bool("debug", cfg.Debug),
		logger.Bool("tokenSet", cfg.GitHubToken != ""),
	)

	// GitHub client shared by profile analysis and issue search. A token
	// failure is non-fatal: the service keeps running degraded.
	gh := github.NewClient(cfg.GitHubToken)
	if cfg.GitHubToken != "" {
		if err := gh.Verify(ctx); err != nil {
			loggerInstance.Warn(ctx, "github token verification failed; continuing degraded", logger.Error(err))
		}
	}

	// Create and start the service with configuration options
	svc := app.New(
		app.WithLogger(loggerInstance),
		app.WithProfileSource(gh),
		app.WithSearcher(gh),
		app.WithResultCaps(cfg.DefaultMaxResults, cfg.MaxResultsCap),
		app.WithMaxReposPerUser(cfg.MaxReposPerUser),
		app.WithIssueTypes(cfg.SupportedIssueTypes, cfg.DefaultIssueTypes),
		app.WithRetrieverOptions(
			retriever.WithPopularRepos(cfg.PopularRepositories),
			retriever.WithSkillLimits(cfg.MaxSearchLanguages, cfg.MaxSearchTechnologies),
			retriever.WithRepoLimits(cfg.PopularReposPerSkill, cfg.IssuesPerRepo),
			retriever.WithPerSkillTimeout(cfg.PerSkillTimeout()),
		),
	)
	if err := svc.Start(ctx); err != nil {
		os.Stderr.WriteString("failed to start service: " + err.Error() + "\n")
		return
	}
	defer svc.Stop()

	// Start system metrics updater
	go startSystemMetricsUpdater(ctx)

	// HTTP mux and routes.
	mux := http.NewServeMux()

	// Register business API routes with the service dependency.
	apiServer := api.NewServer(svc, svc)
	apiServer.Register(ctx, mux)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	// Start the HTTP server
	go func() {
		loggerInstance.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			os.Stderr.WriteString("HTTP server failed: " + err.Error() + "\n")
			return
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()
	loggerInstance.Info(ctx, "shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		loggerInstance.Error(ctx, "server shutdown failed", logger.Error(err))
	}

	loggerInstance.Info(ctx, "server stopped")
}

// startSystemMetricsUpdater starts a background goroutine that updates system metrics.
func startSystemMetricsUpdater(ctx context.Context) {
	ticker := time.NewTicker(systemMetricsInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			updateSystemMetrics()
		}
	}
}

// updateSystemMetrics updates system-level metrics.
func updateSystemMetrics() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	metrics.UpdateSystemMemoryUsage(m.Alloc)
	metrics.UpdateSystemGoroutineCount(runtime.NumGoroutine())
}
