package http

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"
	"usertodo/config"
	_ "usertodo/docs" // swagger spec
	"usertodo/infras/postgres"
	"usertodo/shared/cache"
	"usertodo/shared/constant"
	"usertodo/transport/http/middleware"
	"usertodo/transport/http/response"
	"usertodo/transport/http/router"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	httpSwagger "github.com/swaggo/http-swagger"
)

type ServerState int32

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

const (
	readHeaderTimeout = 10 * time.Second
	rootMessage       = "Hello World!"
)

// Pinger reports whether a backing store answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HTTP struct {
	Config     *config.Config
	Router     router.Router
	Middleware middleware.AppMiddleware
	DB         Pinger
	Cache      cache.RedisCache

	state  atomic.Int32
	once   sync.Once
	mux    *chi.Mux
	server *http.Server
}

func New(cfg *config.Config, r router.Router, mw middleware.AppMiddleware, db *postgres.Connection, c cache.RedisCache) *HTTP {
	return &HTTP{
		Config:     cfg,
		Router:     r,
		Middleware: mw,
		DB:         db,
		Cache:      c,
	}
}

// Handler returns the fully wired router. Safe to call more than once.
func (h *HTTP) Handler() http.Handler {
	h.once.Do(h.setup)

	return h.mux
}

func (h *HTTP) State() ServerState {
	return ServerState(h.state.Load())
}

// Serve blocks until ctx is cancelled, then shuts the server down gracefully.
func (h *HTTP) Serve(ctx context.Context) error {
	h.server = &http.Server{
		Addr:              net.JoinHostPort(h.Config.Server.Host, h.Config.Port),
		Handler:           h.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)

	go func() {
		log.Info().Str("addr", h.server.Addr).Msg("Starting up HTTP server.")

		if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start HTTP server: %w", err)
	case <-ctx.Done():
		return h.shutdown()
	}
}

func (h *HTTP) setup() {
	h.mux = chi.NewRouter()

	h.mux.Use(
		h.Middleware.RequestID,
		chiMiddleware.Recoverer,
		chiMiddleware.RealIP,
		h.Middleware.RequestLog,
		h.Middleware.Metrics,
		h.Middleware.Tracing,
		h.Middleware.CORS(),
		h.Middleware.RateLimit(),
	)

	h.mux.Get("/", h.root)
	h.mux.Get("/health", h.health)
	h.mux.Handle("/metrics", promhttp.Handler())
	h.mux.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	h.Router.SetupRoutes(h.mux)

	h.state.Store(int32(ServerStateReady))
}

func (h *HTTP) root(writer http.ResponseWriter, _ *http.Request) {
	if h.State() != ServerStateReady {
		response.WithPreparingShutdown(writer)

		return
	}

	response.WithData(writer, http.StatusOK, rootMessage, nil)
}

func (h *HTTP) health(writer http.ResponseWriter, request *http.Request) {
	if h.State() != ServerStateReady {
		response.WithPreparingShutdown(writer)

		return
	}

	status := map[string]string{"database": "up", "cache": "disabled"}

	if err := h.DB.Ping(request.Context()); err != nil {
		log.Error().Err(err).Msg("Health check: database unreachable")
		response.WithUnhealthy(writer)

		return
	}

	if h.Cache.Enabled() {
		if err := h.Cache.Ping(request.Context()); err != nil {
			log.Error().Err(err).Msg("Health check: cache unreachable")
			response.WithUnhealthy(writer)

			return
		}

		status["cache"] = "up"
	}

	response.WithData(writer, http.StatusOK, "OK", status)
}

func (h *HTTP) shutdown() error {
	if h.Config.Server.Env == constant.ServerEnvDevelopment {
		log.Warn().Msg("Received SIGTERM. Shutting down now.")

		return h.drain(0)
	}

	shutdownConfig := h.Config.Server.Shutdown

	log.Info().Msg("Received SIGTERM.")
	log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Entering grace period.")

	h.state.Store(int32(ServerStateInGracePeriod))

	time.Sleep(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second)

	log.Info().Int64("seconds", shutdownConfig.CleanupPeriodSeconds).Msg("Entering cleanup period.")

	h.state.Store(int32(ServerStateInCleanupPeriod))

	return h.drain(time.Duration(shutdownConfig.CleanupPeriodSeconds) * time.Second)
}

// drain waits up to timeout for in-flight requests; zero closes immediately.
func (h *HTTP) drain(timeout time.Duration) error {
	if timeout == 0 {
		if err := h.server.Close(); err != nil {
			return fmt.Errorf("failed to close HTTP server: %w", err)
		}

		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down HTTP server: %w", err)
	}

	log.Info().Msg("Cleaning up completed. Shutting down now.")

	return nil
}
