package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-levels/internal/bcd"
	"github.com/goodnatureofminers/blockinsight7000-levels/internal/levels"
	"github.com/goodnatureofminers/blockinsight7000-levels/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-levels/internal/model"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type config struct {
	APIURL           string        `long:"api-url" env:"BCD_LEVELS_API_URL" description:"better-call.dev API base URL" default:"https://api.better-call.dev/v1"`
	HTTPTimeout      time.Duration `long:"http-timeout" env:"BCD_LEVELS_HTTP_TIMEOUT" description:"HTTP timeout for API requests" default:"30s"`
	RPS              int           `long:"rps" env:"BCD_LEVELS_RPS" description:"maximum API requests per second, 0 for unlimited" default:"0"`
	PageSize         int           `long:"page-size" env:"BCD_LEVELS_PAGE_SIZE" description:"operations per page sent as count, 0 for the server default" default:"0"`
	MaxPages         int           `long:"max-pages" env:"BCD_LEVELS_MAX_PAGES" description:"abort after this many operations pages, 0 for unlimited" default:"0"`
	NoHead           bool          `long:"no-head" env:"BCD_LEVELS_NO_HEAD" description:"do not add the current head level to the output"`
	IncludeFinalPage bool          `long:"include-final-page" env:"BCD_LEVELS_INCLUDE_FINAL_PAGE" description:"keep operations returned together with the end cursor"`
	LogLevel         string        `long:"log-level" env:"BCD_LEVELS_LOG_LEVEL" description:"log level (debug, info, warn, error)" default:"info"`
	MetricsAddr      string        `long:"metrics-addr" env:"BCD_LEVELS_METRICS_ADDR" description:"address for metrics server, empty to disable"`
}

func main() {
	_ = godotenv.Load()

	cfg, ref, ok, err := parseCommandLine(os.Args, os.Stdout)
	if err != nil {
		log.Fatalf("failed to parse flags: %v", err)
	}
	if !ok {
		return
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("can't initialize zap logger: %v", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, ref, os.Stdout, logger); err != nil {
		logger.Fatal("level discovery failed", zap.Error(err))
	}
}

// parseCommandLine returns ok=false when the process should exit 0 without doing any work:
// after --help, or after printing usage for a wrong number of positional arguments.
func parseCommandLine(argv []string, stdout io.Writer) (config, model.NetworkRef, bool, error) {
	cfg := config{}
	prog := "levels"
	if len(argv) > 0 {
		prog = filepath.Base(argv[0])
		argv = argv[1:]
	}

	args, err := flags.ParseArgs(&cfg, argv)
	if err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return cfg, model.NetworkRef{}, false, nil
		}
		return cfg, model.NetworkRef{}, false, err
	}

	if len(args) != 2 {
		_, _ = fmt.Fprintf(stdout, "Usage %s network contract_address\n", prog)
		return cfg, model.NetworkRef{}, false, nil
	}

	return cfg, model.NetworkRef{
		Network:  model.Network(args[0]),
		Contract: model.ContractAddress(args[1]),
	}, true, nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	zcfg := zap.NewDevelopmentConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	return zcfg.Build()
}

func run(ctx context.Context, cfg config, ref model.NetworkRef, out io.Writer, logger *zap.Logger) error {
	if cfg.MetricsAddr != "" {
		startMetricsServer(ctx, cfg.MetricsAddr, logger)
	}

	client, err := bcd.NewClient(bcd.Config{
		BaseURL:  cfg.APIURL,
		Timeout:  cfg.HTTPTimeout,
		RPS:      cfg.RPS,
		PageSize: cfg.PageSize,
	}, logger.Named("bcd"))
	if err != nil {
		return fmt.Errorf("init bcd client: %w", err)
	}
	api := bcd.NewObservedClient(client, metrics.NewAPIClient(ref.Network))

	collector, err := levels.NewCollector(
		api,
		api,
		metrics.NewLevelCollector(ref.Network),
		levels.Options{
			SeedHead:         !cfg.NoHead,
			MaxPages:         cfg.MaxPages,
			IncludeFinalPage: cfg.IncludeFinalPage,
		},
		logger.Named("collector"),
	)
	if err != nil {
		return fmt.Errorf("init level collector: %w", err)
	}

	set, err := collector.Collect(ctx, ref)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintln(out, set.String()); err != nil {
		return fmt.Errorf("write levels: %w", err)
	}
	return nil
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
