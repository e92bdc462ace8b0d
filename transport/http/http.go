package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"shareit/config"
	"shareit/infras/metrics"
	"shareit/shared/constant"
	"shareit/transport/http/middleware"
	"shareit/transport/http/response"
	"shareit/transport/http/router"
	"sync/atomic"
	"syscall"
	"time"

	// Registers the generated OpenAPI document with swag.
	_ "shareit/docs"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
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
	healthPath  = "/health"
	swaggerPath = "/swagger/*"

	messageHealthy = "OK"

	readHeaderTimeout = 10 * time.Second
)

type HTTP struct {
	Config     *config.Config
	Router     router.Router
	Middleware middleware.AppMiddleware
	Metrics    *metrics.Metrics
	state      atomic.Int32
	server     *http.Server
	drained    chan struct{}
}

func New(cfg *config.Config, r router.Router, mw middleware.AppMiddleware, m *metrics.Metrics) *HTTP {
	return &HTTP{
		Config:     cfg,
		Router:     r,
		Middleware: mw,
		Metrics:    m,
	}
}

func (h *HTTP) Serve() {
	h.setup()

	log.Info().Str("port", h.Config.Server.Port).Msg("Starting up HTTP server.")

	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("Failed to start HTTP server")
	}

	// ListenAndServe returns as soon as Shutdown starts; wait for in-flight requests.
	<-h.drained
}

// Handler builds the routes without starting a listener or a signal watcher.
func (h *HTTP) Handler() http.Handler {
	h.setState(ServerStateReady)

	return h.routes()
}

func (h *HTTP) State() ServerState {
	return ServerState(h.state.Load())
}

func (h *HTTP) setState(state ServerState) {
	h.state.Store(int32(state))
}

func (h *HTTP) setup() {
	h.server = &http.Server{
		Addr:              net.JoinHostPort(h.Config.Server.Host, h.Config.Server.Port),
		Handler:           h.routes(),
		ReadHeaderTimeout: readHeaderTimeout,
	}
	h.drained = make(chan struct{})

	h.setupGracefulShutdown()
	h.setState(ServerStateReady)
}

func (h *HTTP) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(h.Middleware.RequestID)
	r.Use(h.Middleware.Tracing)

	if h.Config.App.Metrics.Enable {
		r.Use(h.Middleware.Metrics)
	}

	if h.Config.App.CORS.Enable {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   h.Config.App.CORS.AllowedOrigins,
			AllowedMethods:   h.Config.App.CORS.AllowedMethods,
			AllowedHeaders:   h.Config.App.CORS.AllowedHeaders,
			AllowCredentials: h.Config.App.CORS.AllowCredentials,
			MaxAge:           h.Config.App.CORS.MaxAgeSeconds,
		}))
	}

	r.Get(healthPath, h.health)

	if h.Config.App.Metrics.Enable {
		r.Handle(h.Config.App.Metrics.Path, h.Metrics.Handler())
	}

	if h.Config.App.Swagger.Enable && !h.Config.IsProduction() {
		r.Get(swaggerPath, httpSwagger.WrapHandler)
	}

	r.Group(func(api chi.Router) {
		api.Use(h.Middleware.RateLimit())
		api.Use(h.Middleware.SharerUser)

		h.Router.SetupRoutes(api)
	})

	return r
}

// health turns 503 as soon as shutdown starts, so load balancers drain the instance.
func (h *HTTP) health(w http.ResponseWriter, r *http.Request) {
	if h.State() != ServerStateReady {
		response.WithPreparingShutdown(w, r)

		return
	}

	response.WithMessage(w, http.StatusOK, messageHealthy)
}

func (h *HTTP) setupGracefulShutdown() {
	serverStateCh := make(chan os.Signal, 1)

	signal.Notify(serverStateCh, os.Interrupt, syscall.SIGTERM)

	go h.respondToSigterm(serverStateCh)
}

func (h *HTTP) respondToSigterm(done chan os.Signal) {
	<-done

	shutdownConfig := h.Config.Server.Shutdown

	if h.Config.Server.Env == constant.ServerEnvDevelopment {
		log.Warn().Msg("Received SIGTERM. Shutting down now.")

		h.shutdown(time.Duration(shutdownConfig.CleanupPeriodSeconds) * time.Second)

		return
	}

	log.Info().Msg("Received SIGTERM.")
	log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Entering grace period.")

	h.setState(ServerStateInGracePeriod)

	time.Sleep(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second)

	log.Info().Int64("seconds", shutdownConfig.CleanupPeriodSeconds).Msg("Entering cleanup period.")

	h.setState(ServerStateInCleanupPeriod)

	h.shutdown(time.Duration(shutdownConfig.CleanupPeriodSeconds) * time.Second)

	log.Info().Msg("Cleaning up completed. Shutting down now.")
}

func (h *HTTP) shutdown(timeout time.Duration) {
	defer close(h.drained)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to shut down HTTP server gracefully")
	}
}
