package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"student-dashboard/config"
	_ "student-dashboard/docs" // Swagger docs
	advisorUC "student-dashboard/internal/advisor/usecase"
	"student-dashboard/internal/dashboard"
	dashboardRepo "student-dashboard/internal/dashboard/repository/memory"
	dashboardUC "student-dashboard/internal/dashboard/usecase"
	"student-dashboard/internal/httpserver"
	"student-dashboard/pkg/gemini"
	"student-dashboard/pkg/log"
	"student-dashboard/pkg/metrics"
	"student-dashboard/pkg/tracing"
)

// @title       Student Dashboard API
// @description Student productivity dashboard with Gemini note summaries and study advice.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Student Dashboard...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Observability
	shutdownTracing, err := tracing.Setup(ctx, tracing.Config{
		Enabled:     cfg.Tracing.Enabled,
		Endpoint:    cfg.Tracing.Endpoint,
		ServiceName: cfg.Tracing.ServiceName,
	})
	if err != nil {
		logger.Error(ctx, "Failed to set up tracing: ", err)
		return
	}
	defer func() {
		if err := shutdownTracing(context.WithoutCancel(ctx)); err != nil {
			logger.Warnf(ctx, "Tracing shutdown: %v", err)
		}
	}()

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}

	// 4. Gemini client
	if cfg.Gemini.APIKey == "" {
		logger.Warn(ctx, "GEMINI_API_KEY is not set: summaries and advice will use fallback text")
	}
	geminiClient, err := gemini.New(gemini.Config{
		APIKey:         cfg.Gemini.APIKey,
		Model:          cfg.Gemini.Model,
		APIURL:         cfg.Gemini.APIURL,
		HTTPClient:     &http.Client{Timeout: cfg.Gemini.Timeout},
		ThinkingBudget: cfg.Gemini.ThinkingBudgetPtr(),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize Gemini client: ", err)
		return
	}
	logger.Infof(ctx, "Gemini model: %s", geminiClient.Model())

	// 5. Advisor & dashboard domain
	advisor := advisorUC.New(logger, geminiClient, m, advisorUC.Config{
		CacheSize: cfg.Advisor.CacheSize,
		CacheTTL:  cfg.Advisor.CacheTTL,
	})
	repo := dashboardRepo.New(logger, dashboard.SampleState())
	uc := dashboardUC.New(logger, repo, advisor, m)

	// First advice request; the dashboard shows the loading text until it resolves.
	uc.RefreshAdvice(ctx)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		Metrics:         m,
		RateLimitPerMin: cfg.RateLimit.RequestsPerMin,
		DashboardUC:     uc,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
	}

	drainCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.HTTPServer.ShutdownTimeout)
	defer cancel()
	if err := uc.Drain(drainCtx); err != nil {
		logger.Warnf(ctx, "Background requests still running at exit: %v", err)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
