package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pribylovaa/jobsync-search/internal/cache"
	"github.com/pribylovaa/jobsync-search/internal/config"
	searchhttp "github.com/pribylovaa/jobsync-search/internal/http"
	"github.com/pribylovaa/jobsync-search/internal/metrics"
	"github.com/pribylovaa/jobsync-search/internal/service"
	"github.com/pribylovaa/jobsync-search/internal/storage/postgres"
	"github.com/pribylovaa/jobsync-search/pkg/redact"
)

// Константы для определения окружения.
const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file (overrides CONFIG_PATH env)")
	flag.Parse()

	cfg := config.MustLoad(configPath)

	log := setupLogger(cfg.Env)
	slog.SetDefault(log)
	log.Info("starting search-service", "env", cfg.Env)

	rootCtx, rootCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer rootCancel()

	dbCtx, dbCancel := context.WithTimeout(rootCtx, 10*time.Second)
	store, err := postgres.New(dbCtx, cfg.DB.URL)
	dbCancel()
	if err != nil {
		log.Error("postgres_connect_failed", slog.String("err", err.Error()))
		rootCancel()
		os.Exit(1)
	}
	defer store.Close()
	log.Info("postgres_connected", slog.String("db", redact.URL(cfg.DB.URL)))

	searchCache := cache.NewNoop()
	if cfg.Cache.Enabled() {
		cacheCtx, cacheCancel := context.WithTimeout(rootCtx, 5*time.Second)
		rc, err := cache.NewRedisCache(cacheCtx, cfg.Cache.RedisURL, cfg.Cache.Prefix)
		cacheCancel()
		if err != nil {
			// Кэш необязателен: работаем без него.
			log.Warn("redis_connect_failed",
				slog.String("redis", redact.URL(cfg.Cache.RedisURL)),
				slog.String("err", err.Error()),
			)
		} else {
			searchCache = rc
			log.Info("redis_connected",
				slog.String("redis", redact.URL(cfg.Cache.RedisURL)),
				slog.Duration("ttl", cfg.Cache.TTL),
			)
		}
	}
	defer func() {
		if cerr := searchCache.Close(); cerr != nil {
			log.Warn("cache_close_failed", slog.String("err", cerr.Error()))
		}
	}()

	m := metrics.New(prometheus.DefaultRegisterer)

	svc := service.New(store, searchCache, m, *cfg)
	log.Info("service_initialized")

	apiHandler := searchhttp.NewRouter(svc, searchhttp.Options{
		Logger:  log,
		Timeout: cfg.Timeouts.Service,
		Metrics: m,
	})

	probes := searchhttp.NewProbes(store, 2*time.Second)

	mux := http.NewServeMux()
	mux.HandleFunc("/livez", probes.Livez)
	mux.HandleFunc("/healthz", probes.Healthz)
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", apiHandler)

	httpAddr := cfg.HTTP.Addr()
	httpSrv := &http.Server{
		Addr:              httpAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ln, err := net.Listen("tcp", httpAddr)
	if err != nil {
		log.Error("http_listen_failed", slog.String("addr", httpAddr), slog.String("err", err.Error()))
		store.Close()
		os.Exit(1)
	}

	log.Info("http_listen_start", slog.String("addr", httpAddr))

	serveErrCh := make(chan error, 1)
	go func() {
		if err := httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErrCh <- err
		}
		close(serveErrCh)
	}()

	probes.SetReady(true)
	log.Info("search_service_ready")

	select {
	case <-rootCtx.Done():
		log.Info("shutdown_requested")
	case err := <-serveErrCh:
		if err != nil {
			log.Error("http_serve_failed", slog.String("err", err.Error()))
		}
	}

	probes.SetReady(false)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Warn("http_shutdown_incomplete", slog.String("err", err.Error()))
	} else {
		log.Info("http_stopped")
	}

	log.Info("service_stopped")
}

// setupLogger настраивает slog по окружению.
func setupLogger(env string) *slog.Logger {
	switch env {
	case envLocal:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envDev:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}
