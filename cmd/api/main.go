package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/thomad99/lab007-scraper/internal/alert"
	"github.com/thomad99/lab007-scraper/internal/app"
	"github.com/thomad99/lab007-scraper/internal/appconf"
	"github.com/thomad99/lab007-scraper/internal/logging"
	"github.com/thomad99/lab007-scraper/internal/monitor"
	"github.com/thomad99/lab007-scraper/internal/restapi"
	"github.com/thomad99/lab007-scraper/internal/scraper"
	"github.com/thomad99/lab007-scraper/internal/webui"
	"github.com/thomad99/lab007-scraper/monitordb"
)

func main() {
	// A missing .env file is fine; the environment may be set by the host.
	_ = godotenv.Load()

	var (
		cfg           appconf.Config
		envFlag       string
		apiKeysFlag   string
		cycles        int
		interval      time.Duration
		scrapeTimeout time.Duration
		verbose       bool
	)

	flag.IntVar(&cfg.Port, "port", appconf.EnvInt("PORT", 10000), "API server port")
	flag.StringVar(&envFlag, "env", appconf.EnvString("ENV", "development"), "Environment (development|test|production)")
	flag.StringVar(&apiKeysFlag, "api-keys", appconf.EnvString("API_KEYS", "test"), "Comma Separated API Keys (test, etc)")
	flag.IntVar(&cfg.RateLimit, "rate-limit", appconf.EnvInt("RATE_LIMIT", 100), "Requests per second allowed per API key (0 disables)")
	flag.IntVar(&cycles, "cycles", appconf.EnvInt("MONITOR_CYCLES", 10), "Number of monitoring cycles per run")
	flag.DurationVar(&interval, "interval", time.Minute, "Delay between monitoring cycles")
	flag.DurationVar(&scrapeTimeout, "scrape-timeout", 10*time.Second, "Per-site scrape timeout")
	flag.BoolVar(&verbose, "verbose", false, "Enable debug logging")
	flag.Parse()

	cfg.Env = appconf.EnvFlagToEnvironment(envFlag)
	if apiKeysFlag != "" {
		cfg.APIKeys = strings.Split(apiKeysFlag, ",")
		for i := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(cfg.APIKeys[i])
		}
	}

	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	logger := logging.NewStructuredLogger(os.Stdout, logLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	dbClient, err := monitordb.NewClient(ctx, monitordb.NewConfig(
		appconf.EnvString("DB_HOST", "localhost"),
		appconf.EnvString("DB_PORT", "5432"),
		appconf.EnvString("DB_USER", "postgres"),
		appconf.EnvString("DB_PASSWORD", ""),
		appconf.EnvString("DB_NAME", "website_monitor"),
		verbose,
	))
	cancel()
	if err != nil {
		logging.LogError(logger, "failed to connect to database", err)
		os.Exit(1)
	}

	notifier := buildNotifier(logger)

	manager := monitor.NewManager(monitor.Config{
		Cycles:        cycles,
		Interval:      interval,
		ScrapeTimeout: scrapeTimeout,
	}, dbClient.Queries, scraper.NewScraper(scrapeTimeout), notifier, logger)

	application := &app.Application{
		Config:  cfg,
		Logger:  logger,
		Queries: dbClient.Queries,
		Monitor: manager,
	}

	mux := http.NewServeMux()
	restapi.NewRestAPI(application).SetRoutes(mux)
	webui.NewWebUI(application).SetWebUIRoutes(mux)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      restapi.NewRequestLoggingMiddleware(logger)(mux),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	shutdownErr := make(chan error, 1)
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		sig := <-quit

		logger.Info("shutting down server", slog.String("signal", sig.String()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		shutdownErr <- srv.Shutdown(shutdownCtx)
	}()

	logger.Info("starting server",
		slog.String("addr", srv.Addr),
		slog.String("env", cfg.Env.String()))

	err = srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		logging.LogError(logger, "server failed", err)
		os.Exit(1)
	}

	if err := <-shutdownErr; err != nil {
		logging.LogError(logger, "server shutdown failed", err)
	}

	manager.Shutdown()
	dbClient.Close()

	logger.Info("server stopped")
}

// buildNotifier wires the SMTP mailer from the environment, falling back to a
// no-op notifier so monitoring still runs without mail credentials.
func buildNotifier(logger *slog.Logger) alert.Notifier {
	smtpConfig := alert.Config{
		Host:     appconf.EnvString("SMTP_HOST", ""),
		Port:     appconf.EnvInt("SMTP_PORT", 587),
		Sender:   appconf.EnvString("SMTP_SENDER", ""),
		Password: appconf.EnvString("SMTP_PASSWORD", ""),
	}

	if !smtpConfig.Configured() {
		logger.Warn("SMTP not configured; change alerts will be logged, not sent")
		return alert.NoopNotifier{}
	}

	mailer, err := alert.NewMailer(smtpConfig)
	if err != nil {
		logging.LogError(logger, "failed to configure mailer, alerts will be logged", err)
		return alert.NoopNotifier{}
	}

	logger.Info("SMTP alerting configured", slog.String("host", smtpConfig.Host))
	return mailer
}
