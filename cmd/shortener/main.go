package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/acme/autocert"

	"github.com/atinyakov/url-cutter/internal/app/server"
	"github.com/atinyakov/url-cutter/internal/app/service"
	"github.com/atinyakov/url-cutter/internal/cache"
	"github.com/atinyakov/url-cutter/internal/config"
	"github.com/atinyakov/url-cutter/internal/logger"
	"github.com/atinyakov/url-cutter/internal/repository"
	"github.com/atinyakov/url-cutter/internal/storage"
	"github.com/atinyakov/url-cutter/internal/worker"

	_ "net/http/pprof"
)

var buildVersion string
var buildDate string
var buildCommit string

const shutdownTimeout = 10 * time.Second

// app is the assembled process: store, cache, engine, workers and router.
type app struct {
	handler http.Handler
	service *service.URLService
	clicks  *worker.ClickWorker
	sweeper *worker.Sweeper
	closers []io.Closer
}

func main() {
	fmt.Printf("Build version: %s\n", orNA(buildVersion))
	fmt.Printf("Build date: %s\n", orNA(buildDate))
	fmt.Printf("Build commit: %s\n", orNA(buildCommit))

	options, err := config.Parse()
	if err != nil {
		panic(err)
	}

	log := logger.New()
	if err := log.Init(options.LogLevel); err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, options, log); err != nil {
		log.Log.Error("server stopped with error", zap.Error(err))
		panic(err)
	}
}

func run(ctx context.Context, options *config.Options, log *logger.Logger) error {
	zapLogger := log.Log

	a, err := newApp(ctx, options, log)
	if err != nil {
		return err
	}
	defer a.close(zapLogger)

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	go a.clicks.Run(workerCtx)
	if a.sweeper != nil {
		go a.sweeper.Run(workerCtx)
	}
	defer func() {
		stopWorkers()
		<-a.clicks.Done()
	}()

	if options.EnablePprof {
		go func() {
			zapLogger.Info("Starting pprof server", zap.String("addr", "localhost:6060"))
			if err := http.ListenAndServe("localhost:6060", nil); err != nil {
				zapLogger.Error("pprof server error", zap.Error(err))
			}
		}()
	}

	srv := &http.Server{
		Addr:              options.Port,
		Handler:           a.handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	if options.EnableHTTPS {
		manager := &autocert.Manager{
			Cache:      autocert.DirCache("cache-dir"),
			Prompt:     autocert.AcceptTOS,
			HostPolicy: autocert.HostWhitelist(hostOf(options.ResultHostname)),
		}
		srv.Addr = ":443"
		srv.TLSConfig = manager.TLSConfig()
	}

	errCh := make(chan error, 1)
	go func() {
		zapLogger.Info("Server is running", zap.String("addr", srv.Addr), zap.Bool("tls", options.EnableHTTPS))
		var err error
		if options.EnableHTTPS {
			err = srv.ListenAndServeTLS("", "")
		} else {
			err = srv.ListenAndServe()
		}
		errCh <- err
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	zapLogger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

// newApp picks the store and cache from options and wires the engine.
func newApp(ctx context.Context, options *config.Options, log *logger.Logger) (*app, error) {
	zapLogger := log.Log
	a := &app{}

	var store service.Storage
	if options.DatabaseDSN != "" {
		zapLogger.Info("using db")
		db, err := repository.InitDB(ctx, options.DatabaseDSN, log.Named("repository"))
		if err != nil {
			return nil, fmt.Errorf("init db: %w", err)
		}
		a.closers = append(a.closers, db)
		store = repository.CreateURLRepository(db, log.Named("repository"))
	} else {
		zapLogger.Info("using in memory storage")
		mem, err := storage.CreateMemoryStorage()
		if err != nil {
			return nil, err
		}
		store = mem
	}

	var linkCache service.Cache
	if options.RedisURL != "" {
		zapLogger.Info("using redis cache")
		rc, err := cache.ConnectRedis(ctx, options.RedisURL)
		if err != nil {
			a.close(zapLogger)
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		a.closers = append(a.closers, rc)
		linkCache = rc
	} else {
		zapLogger.Info("using in process cache")
		mc := cache.NewMemory(10 * time.Minute)
		a.closers = append(a.closers, mc)
		linkCache = mc
	}

	gen, err := service.NewCodeGenerator(options.ShortCodeLength)
	if err != nil {
		a.close(zapLogger)
		return nil, err
	}

	a.clicks = worker.NewClickWorker(log.Named("clicks"), store, worker.DefaultFlushInterval, worker.DefaultBatchSize)
	a.service = service.NewURL(store, linkCache, gen, log.Named("service"),
		service.WithCacheTTL(options.CacheTTL),
		service.WithLinkLifetime(options.LinkLifetime()),
		service.WithClickRecorder(a.clicks),
	)
	if options.SweepInterval > 0 {
		a.sweeper = worker.NewSweeper(log.Named("sweeper"), a.service, options.SweepInterval)
	}

	if options.SecretKey == config.DefaultSecretKey {
		zapLogger.Warn("token signing key is the built-in default, set SECRET_KEY or -k")
	}
	auth := service.NewAuth(store, options.SecretKey, service.TokenExp)
	a.handler = server.Init(options.ResultHostname, zapLogger, a.service, auth, options.TrustedSubnet)

	return a, nil
}

func (a *app) close(logger *zap.Logger) {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			logger.Warn("close failed", zap.Error(err))
		}
	}
	a.closers = nil
}

func hostOf(baseURL string) string {
	u, err := url.Parse(baseURL)
	if err != nil || u.Hostname() == "" {
		return baseURL
	}
	return u.Hostname()
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
