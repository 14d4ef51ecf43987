package web

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/gorilla/websocket"
	"github.com/kapu/pokedex-web-go/internal/adapter"
	"github.com/kapu/pokedex-web-go/internal/command"
	"github.com/kapu/pokedex-web-go/internal/constants"
	"go.uber.org/zap"
)

type Dependencies struct {
	Addr           string
	AllowedOrigins []string
	BatchType      string
	Registry       *command.Registry
	Renderer       *adapter.HTMLRenderer
	Logger         *zap.Logger
}

// Server serves the page, the per-tab websocket sessions and the stateless
// fragment endpoints.
type Server struct {
	deps       *Dependencies
	router     chi.Router
	httpServer *http.Server
	upgrader   websocket.Upgrader
	logger     *zap.Logger

	baseCtx    context.Context
	cancelBase context.CancelFunc
	sessions   sync.WaitGroup
}

func NewServer(deps *Dependencies) (*Server, error) {
	if deps == nil || deps.Registry == nil || deps.Renderer == nil || deps.Logger == nil {
		return nil, fmt.Errorf("web server dependencies not configured")
	}

	baseCtx, cancel := context.WithCancel(context.Background())
	s := &Server{
		deps:   deps,
		router: chi.NewRouter(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		logger:     deps.Logger,
		baseCtx:    baseCtx,
		cancelBase: cancel,
	}

	s.setupMiddleware()
	s.setupRoutes()

	s.httpServer = &http.Server{
		Addr:              deps.Addr,
		Handler:           s,
		ReadHeaderTimeout: constants.ServerConfig.ReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return baseCtx
		},
	}

	return s, nil
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(requestLogger(s.logger))
	s.router.Use(middleware.Recoverer)
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.deps.AllowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         constants.ServerConfig.CORSMaxAge,
	}))
}

func (s *Server) setupRoutes() {
	s.router.Get("/", s.handleIndex)
	s.router.Get("/ws", s.handleWebSocket)

	s.router.Route("/fragments", func(r chi.Router) {
		r.Get("/search", s.handleSearchFragment)
		r.Get("/batch", s.handleBatchFragment)
	})

	s.router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
}

// Start blocks serving HTTP until Shutdown is called.
func (s *Server) Start(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		s.cancelBase()
	}()

	s.logger.Info("HTTP server listening", zap.String("addr", s.deps.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server failed: %w", err)
	}
	return nil
}

// Shutdown stops accepting requests, closes open sessions and waits for them.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	s.cancelBase()

	done := make(chan struct{})
	go func() {
		s.sessions.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info("All websocket sessions closed")
	case <-ctx.Done():
		s.logger.Warn("Timeout waiting for websocket sessions to close")
	}

	return err
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			logger.Info("HTTP request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", middleware.GetReqID(r.Context())),
			)
		})
	}
}
