// Package server is the composition root: it wires services to handlers and owns the HTTP lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/queroir/api/internal/config"
	"github.com/queroir/api/internal/infrastructure/backend"
	"github.com/queroir/api/internal/interfaces/http/common"
	"github.com/queroir/api/internal/interfaces/http/restaurants"
	"github.com/queroir/api/internal/logging"
	"github.com/queroir/api/internal/metrics"
	"github.com/queroir/api/internal/restaurant/application"
)

const healthTimeout = 2 * time.Second

// Server manages the HTTP server lifecycle around one store backend.
type Server struct {
	store           *backend.Backend
	handler         *restaurants.Handler
	location        *time.Location
	addr            string
	allowedOrigins  []string
	rateLimit       config.RateLimitConfig
	shutdownTimeout time.Duration
}

// New builds the services over store and the handlers over the services.
// opts are passed to every application service.
func New(cfg *config.Config, store *backend.Backend, opts ...application.Option) *Server {
	loc, err := cfg.Location()
	if err != nil {
		logging.Warn().Err(err).Msg("timezone unavailable, using UTC-3")
	}

	handler := restaurants.NewHandler(restaurants.Config{
		Restaurants:    application.NewRestaurantService(store.Restaurants, store.Dishes, opts...),
		Dishes:         application.NewDishService(store.Restaurants, store.Dishes, opts...),
		Roulette:       application.NewRouletteService(store.Restaurants, opts...),
		Location:       loc,
		RequestTimeout: cfg.Server.RequestTimeout,
	})

	return &Server{
		store:           store,
		handler:         handler,
		location:        loc,
		addr:            cfg.Server.Addr,
		allowedOrigins:  append([]string(nil), cfg.Server.AllowedOrigins...),
		rateLimit:       cfg.RateLimit,
		shutdownTimeout: cfg.Server.ShutdownTimeout,
	}
}

// Router assembles middleware and routes.
func (s *Server) Router() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(logging.AccessLog)
	router.Use(metrics.Middleware)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))

	router.Get("/healthz", s.healthHandler())
	router.Handle("/metrics", promhttp.Handler())
	s.handler.Register(router, s.writeLimiter())

	return router
}

// writeLimiter caps mutating requests per client IP. It returns nil when limiting is disabled.
func (s *Server) writeLimiter() func(http.Handler) http.Handler {
	if s.rateLimit.Requests <= 0 {
		return nil
	}
	return httprate.Limit(
		s.rateLimit.Requests,
		s.rateLimit.Window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			route := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}
			metrics.APIRateLimitHits.WithLabelValues(route).Inc()
			common.WriteError(w, http.StatusTooManyRequests, "muitas requisições, tente novamente em instantes")
		}),
	)
}

// healthHandler reports store reachability only.
func (s *Server) healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()

		if err := s.store.Ping(ctx); err != nil {
			logging.Ctx(ctx).Warn().Err(err).Msg("health check failed")
			common.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "degraded",
				"store":  s.store.Driver,
			})
			return
		}
		common.WriteJSON(w, http.StatusOK, map[string]string{
			"status": "ok",
			"store":  s.store.Driver,
			"time":   time.Now().In(s.location).Format(time.RFC3339),
		})
	}
}

// Run serves until ctx is cancelled, SIGINT or SIGTERM arrives, or the listener fails.
// The store is closed before Run returns.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", s.addr).Str("store", s.store.Driver).Msg("http server listening")
		errChan <- httpServer.ListenAndServe()
	}()

	runErr := s.waitForShutdown(ctx, httpServer, errChan)

	closeCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	if err := s.store.Close(closeCtx); err != nil {
		logging.Err(err).Msg("closing store")
	}
	return runErr
}

func (s *Server) waitForShutdown(ctx context.Context, httpServer *http.Server, errChan <-chan error) error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case sig := <-sigChan:
		logging.Info().Str("signal", sig.String()).Msg("shutting down")
	case <-ctx.Done():
		logging.Info().Msg("context cancelled, shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}
