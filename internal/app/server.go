package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samvad-hq/samvad-item-client/internal/config"
	"github.com/samvad-hq/samvad-item-client/internal/handlers"
	"github.com/samvad-hq/samvad-item-client/internal/itemclient"
	"github.com/samvad-hq/samvad-item-client/internal/logger"
	"github.com/samvad-hq/samvad-item-client/pkg/httpclient"
)

// Server represents the item client runtime. It owns the gateway to the item
// service and the inbound HTTP server forwarding to it.
type Server struct {
	cfg    *config.Config
	log    logger.Logger
	engine *gin.Engine
	http   *http.Server
}

// NewServer builds the runtime from config.
func NewServer(cfg *config.Config, log logger.Logger) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if log == nil {
		log = logger.NopLogger{}
	}

	gateway, err := itemclient.New(itemclient.Options{
		BaseURL:   cfg.ItemServerURL,
		ItemsPath: cfg.ItemsPath,
		ErrorPath: cfg.ErrorPath,
	}, httpclient.NewRestyClient(cfg.RequestTimeout), log)
	if err != nil {
		return nil, fmt.Errorf("init item client: %w", err)
	}
	log.InfoObj("item client initialized", "item_server", map[string]any{
		"url":             cfg.ItemServerURL,
		"items_path":      cfg.ItemsPath,
		"error_path":      cfg.ErrorPath,
		"timeout_seconds": int(cfg.RequestTimeout.Seconds()),
	})

	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := setupRouter(gateway, log)

	return &Server{
		cfg:    cfg,
		log:    log,
		engine: engine,
		http: &http.Server{
			Addr:    cfg.HTTPAddr,
			Handler: engine,
		},
	}, nil
}

func setupRouter(gw handlers.ItemGateway, log logger.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), handlers.RequestID(), handlers.AccessLog(log))

	// health
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	handlers.RegisterItemRoutes(r, handlers.HandlerConfig{Gateway: gw, Log: log})

	return r
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	if s == nil || s.http == nil {
		return fmt.Errorf("server is not initialized")
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.InfoObj("http server listening", "addr", s.cfg.HTTPAddr)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
		s.log.InfoObj("http server shutting down", "reason", ctx.Err())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
