package server

import (
	"context"
	"crypto/tls"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net"
	"net/http"
	"net/http/pprof"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/quic-go/quic-go"
	"github.com/quic-go/quic-go/http3"
	"github.com/sirupsen/logrus"

	"github.com/zsiec/tick/internal/config"
	"github.com/zsiec/tick/internal/errors"
	"github.com/zsiec/tick/internal/health"
	"github.com/zsiec/tick/internal/logger"
	"github.com/zsiec/tick/internal/metrics"
)

// healthCheckInterval is how often registered checkers run in the
// background.
const healthCheckInterval = 30 * time.Second

// Server serves the API over HTTP/1.1 and, when enabled, HTTP/3. Metrics
// get their own listener.
type Server struct {
	config        *config.ServerConfig
	metricsConfig *config.MetricsConfig
	router        *mux.Router
	httpServer    *http.Server
	http3Server   *http3.Server
	metricsServer *http.Server
	logger        *logrus.Logger
	healthMgr     *health.Manager
	errorHandler  *errors.ErrorHandler
	limiter       *clientLimiter

	additionalRoutes []func(*mux.Router)
	routesOnce       sync.Once

	mu       sync.Mutex
	httpAddr net.Addr
	ready    chan struct{}
}

// New creates a new server instance.
func New(cfg *config.ServerConfig, metricsCfg *config.MetricsConfig, log *logrus.Logger, errorHandler *errors.ErrorHandler) *Server {
	s := &Server{
		config:           cfg,
		metricsConfig:    metricsCfg,
		router:           mux.NewRouter(),
		logger:           log,
		healthMgr:        health.NewManager(log),
		errorHandler:     errorHandler,
		additionalRoutes: make([]func(*mux.Router), 0),
		ready:            make(chan struct{}),
	}
	if cfg.RateLimit > 0 {
		s.limiter = newClientLimiter(cfg.RateLimit, cfg.RateBurst)
	}
	return s
}

// RegisterHealthChecker adds a checker to /health and the periodic runs.
func (s *Server) RegisterHealthChecker(c health.Checker) {
	s.healthMgr.Register(c)
}

// RegisterRoutes adds additional route handlers to the server. It must be
// called before Start or Handler.
func (s *Server) RegisterRoutes(registerFunc func(*mux.Router)) {
	s.additionalRoutes = append(s.additionalRoutes, registerFunc)
}

// Handler returns the fully configured router.
func (s *Server) Handler() http.Handler {
	s.routesOnce.Do(s.setupRoutes)
	return s.router
}

// Ready is closed once the HTTP listener is bound.
func (s *Server) Ready() <-chan struct{} {
	return s.ready
}

// Addr returns the bound HTTP address, or nil before Ready.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.httpAddr
}

// Start serves until ctx is cancelled or a listener fails, then shuts
// everything down.
func (s *Server) Start(ctx context.Context) error {
	handler := s.Handler()

	go s.healthMgr.StartPeriodicChecks(ctx, healthCheckInterval)
	if s.limiter != nil {
		go s.limiter.sweep(ctx, time.Minute)
	}

	errCh := make(chan error, 3)

	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", s.config.HTTPPort))
	if err != nil {
		return fmt.Errorf("failed to listen on HTTP port: %w", err)
	}
	s.mu.Lock()
	s.httpAddr = ln.Addr()
	s.mu.Unlock()

	s.httpServer = &http.Server{
		Handler:      handler,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}
	s.logger.WithField("addr", ln.Addr().String()).Info("Starting HTTP server")
	go func() {
		if err := s.httpServer.Serve(ln); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	if s.config.EnableHTTP3 {
		if err := s.startHTTP3(handler, errCh); err != nil {
			_ = s.httpServer.Close()
			return err
		}
	}

	if s.metricsConfig != nil && s.metricsConfig.Enabled {
		s.startMetricsServer(errCh)
	}

	close(s.ready)

	select {
	case err := <-errCh:
		_ = s.Shutdown()
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
		return s.Shutdown()
	}
}

func (s *Server) startHTTP3(handler http.Handler, errCh chan<- error) error {
	cert, err := tls.LoadX509KeyPair(s.config.TLSCertFile, s.config.TLSKeyFile)
	if err != nil {
		return fmt.Errorf("failed to load TLS certificates: %w", err)
	}

	s.http3Server = &http3.Server{
		Addr:    fmt.Sprintf(":%d", s.config.HTTP3Port),
		Handler: handler,
		TLSConfig: http3.ConfigureTLSConfig(&tls.Config{
			MinVersion:   tls.VersionTLS13,
			Certificates: []tls.Certificate{cert},
		}),
		QUICConfig: &quic.Config{
			MaxIncomingStreams: s.config.MaxIncomingStreams,
			MaxIdleTimeout:     s.config.MaxIdleTimeout,
		},
	}

	s.logger.WithField("port", s.config.HTTP3Port).Info("Starting HTTP/3 server")
	go func() {
		if err := s.http3Server.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http3 server: %w", err)
		}
	}()
	return nil
}

func (s *Server) startMetricsServer(errCh chan<- error) {
	mux := http.NewServeMux()
	mux.Handle(s.metricsConfig.Path, metrics.Handler())

	s.metricsServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.metricsConfig.Port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	s.logger.WithField("addr", s.metricsServer.Addr).Info("Starting metrics server")
	go func() {
		if err := s.metricsServer.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("metrics server: %w", err)
		}
	}()
}

// Shutdown drains the HTTP servers within the configured shutdown timeout.
func (s *Server) Shutdown() error {
	s.logger.Info("Shutting down server")

	timeout := s.config.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var errs []error
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("http server: %w", err))
		}
	}
	if s.http3Server != nil {
		// http3.Server.Close does not wait for in-flight requests.
		if err := s.http3Server.Close(); err != nil {
			errs = append(errs, fmt.Errorf("http3 server: %w", err))
		}
	}
	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("metrics server: %w", err))
		}
	}

	if err := stderrors.Join(errs...); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	s.logger.Info("Server shutdown complete")
	return nil
}

// setupRoutes configures all routes
func (s *Server) setupRoutes() {
	s.router.Use(s.requestIDMiddleware)
	s.router.Use(logger.RequestLoggerMiddleware(s.logger))
	s.router.Use(s.recoveryMiddleware)
	s.router.Use(s.errorHandler.Middleware)
	s.router.Use(s.metricsMiddleware)
	s.router.Use(s.corsMiddleware)
	s.router.Use(s.rateLimitMiddleware)

	healthHandler := health.NewHandler(s.healthMgr)
	s.router.HandleFunc("/health", healthHandler.HandleHealth).Methods("GET")
	s.router.HandleFunc("/ready", healthHandler.HandleReady).Methods("GET")
	s.router.HandleFunc("/live", healthHandler.HandleLive).Methods("GET")

	s.router.HandleFunc("/version", s.handleVersion).Methods("GET")

	if s.config.DebugEndpoints {
		s.setupDebugEndpoints()
	}

	for _, registerFunc := range s.additionalRoutes {
		registerFunc(s.router)
	}

	s.router.NotFoundHandler = http.HandlerFunc(s.errorHandler.HandleNotFound)
	s.router.MethodNotAllowedHandler = http.HandlerFunc(s.errorHandler.HandleMethodNotAllowed)
}

// setupDebugEndpoints registers pprof and a listener summary under /debug.
func (s *Server) setupDebugEndpoints() {
	s.logger.Info("Enabling debug endpoints")

	debug := s.router.PathPrefix("/debug").Subrouter()
	debug.HandleFunc("/pprof/cmdline", pprof.Cmdline)
	debug.HandleFunc("/pprof/profile", pprof.Profile)
	debug.HandleFunc("/pprof/symbol", pprof.Symbol)
	debug.HandleFunc("/pprof/trace", pprof.Trace)
	debug.PathPrefix("/pprof/").HandlerFunc(pprof.Index)

	debug.HandleFunc("/info", func(w http.ResponseWriter, r *http.Request) {
		info := map[string]interface{}{
			"protocols": map[string]bool{
				"http11": true,
				"http3":  s.config.EnableHTTP3,
			},
			"ports": map[string]int{
				"http":  s.config.HTTPPort,
				"http3": s.config.HTTP3Port,
			},
			"rate_limit": map[string]interface{}{
				"enabled": s.limiter != nil,
				"rate":    s.config.RateLimit,
				"burst":   s.config.RateBurst,
			},
			"debug_enabled": true,
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(info)
	}).Methods("GET")
}
