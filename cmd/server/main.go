package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/time/rate"

	"github.com/Skotchmaster/rockstar_shop/internal/catalog"
	"github.com/Skotchmaster/rockstar_shop/internal/config"
	"github.com/Skotchmaster/rockstar_shop/internal/es"
	"github.com/Skotchmaster/rockstar_shop/internal/events"
	"github.com/Skotchmaster/rockstar_shop/internal/handlers"
	"github.com/Skotchmaster/rockstar_shop/internal/kv"
	"github.com/Skotchmaster/rockstar_shop/internal/logging"
	"github.com/Skotchmaster/rockstar_shop/internal/metrics"
	"github.com/Skotchmaster/rockstar_shop/internal/middleware/csrf"
	loggingmw "github.com/Skotchmaster/rockstar_shop/internal/middleware/logging"
	"github.com/Skotchmaster/rockstar_shop/internal/mykafka"
	"github.com/Skotchmaster/rockstar_shop/internal/session"
	"github.com/Skotchmaster/rockstar_shop/internal/support"
	httpserver "github.com/Skotchmaster/rockstar_shop/internal/transport/http"
)

func main() {
	cfg := config.MustLoad()

	logger := logging.New(cfg.LogLevel)
	slog.SetDefault(logger)
	ctx := logging.IntoContext(context.Background(), logger)

	store, err := openStore(ctx, cfg.Storage)
	if err != nil {
		logger.Error("storage_init_failed", "driver", cfg.Storage.Driver, logging.Err(err))
		os.Exit(1)
	}

	var publisher events.Publisher = events.Nop{}
	var producer *mykafka.Producer
	if len(cfg.Kafka.Brokers) > 0 {
		producer = mykafka.NewProducer(cfg.Kafka.Brokers)
		publisher = producer
	}

	searcher, err := newSearcher(ctx, cfg.ES)
	if err != nil {
		logger.Error("search_init_failed", logging.Err(err))
		os.Exit(1)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.NewMetrics(reg)

	var sender support.Sender = support.LogSender{}
	if cfg.EmailJS.PublicKey != "" {
		sender = support.NewEmailJSClient(support.EmailJSConfig{
			Endpoint:   cfg.EmailJS.Endpoint,
			ServiceID:  cfg.EmailJS.ServiceID,
			TemplateID: cfg.EmailJS.TemplateID,
			PublicKey:  cfg.EmailJS.PublicKey,
		})
	}
	limiter := rate.NewLimiter(rate.Limit(cfg.EmailJS.RatePerSec), cfg.EmailJS.Burst)

	registry := session.NewRegistry(session.RegistryConfig{
		Store:   store,
		Events:  publisher,
		Metrics: m,
		Latency: cfg.SimulatedLatency,
	})

	var shuttingDown atomic.Bool

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = httpserver.HandleError
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID(), loggingmw.RequestLogger(logger, m))

	csrfCfg := csrf.DefaultConfig()
	csrfCfg.Secure = cfg.Device.CookieSecure

	deps := httpserver.Deps{
		Registry:       registry,
		CatalogHandler: handlers.NewCatalogHandler(searcher),
		SupportHandler: &handlers.SupportHandler{Service: support.NewService(sender, limiter, m, publisher)},
		Gatherer:       reg,
		DeviceSecret:   []byte(cfg.Device.Secret),
		DeviceTTL:      cfg.Device.TTL,
		CookieSecure:   cfg.Device.CookieSecure,
		AdminToken:     cfg.AdminToken,
		CSRF:           &csrfCfg,
		Ready: func() error {
			if shuttingDown.Load() {
				return errors.New("shutting down")
			}
			return nil
		},
	}

	httpserver.Register(e, &deps)

	sweepCtx, stopSweep := context.WithCancel(ctx)
	go sweep(sweepCtx, registry, cfg.SessionIdleTimeout)

	srv := &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.ServerPort),
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		logger.Info("http_listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http_server_failed", logging.Err(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	go func() {
		<-quit
		logger.Warn("force_exit")
		os.Exit(1)
	}()

	logger.Info("shutting_down")
	shuttingDown.Store(true)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server_shutdown_failed", logging.Err(err))
	}

	stopSweep()
	registry.Close()

	if c, ok := store.(io.Closer); ok {
		if err := c.Close(); err != nil {
			logger.Error("storage_close_failed", logging.Err(err))
		}
	}

	if producer != nil {
		if err := producer.Close(); err != nil {
			logger.Error("kafka_close_failed", logging.Err(err))
		}
	}

	logger.Info("shutdown_complete")
}

func openStore(ctx context.Context, cfg config.Storage) (kv.Store, error) {
	switch cfg.Driver {
	case "memory":
		return kv.NewMemoryStore(), nil
	case "sqlite", "postgres":
		return kv.OpenGorm(ctx, cfg.Driver, cfg.DatabaseURL)
	case "redis":
		return kv.OpenRedis(ctx, kv.RedisOptions{
			Addr:        cfg.RedisAddr,
			Username:    cfg.RedisUser,
			Password:    cfg.RedisPassword,
			DB:          cfg.RedisDB,
			MaxRetries:  3,
			DialTimeout: 5 * time.Second,
			Timeout:     3 * time.Second,
		})
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

func newSearcher(ctx context.Context, cfg config.ES) (catalog.Searcher, error) {
	if cfg.URL == "" {
		return catalog.MemorySearcher{}, nil
	}

	client, err := es.NewClient(ctx, es.Config{URL: cfg.URL, User: cfg.User, Password: cfg.Password})
	if err != nil {
		return nil, err
	}
	s := &catalog.ESSearcher{Client: client, Index: cfg.Index}
	if err := s.Bootstrap(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func sweep(ctx context.Context, r *session.Registry, idle time.Duration) {
	if idle <= 0 {
		return
	}
	t := time.NewTicker(idle / 2)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := r.Sweep(idle); n > 0 {
				logging.FromContext(ctx).Debug("states_swept", "count", n)
			}
		}
	}
}
