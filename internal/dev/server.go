package dev

import (
	"context"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/NayanVR/tuono/internal/bundler"
	"github.com/NayanVR/tuono/internal/config"
	"github.com/NayanVR/tuono/internal/errors"
)

// ServerOptions configures the development server.
type ServerOptions struct {
	// Config is the project configuration.
	Config *config.Config

	// Logger receives dev server events. Defaults to a no-op logger.
	Logger *zap.Logger

	// OnBundle is called after every bundle run with its outcome.
	OnBundle func(err error)

	// OnReload is called when browsers are told to reload.
	OnReload func(clients int)
}

// Server rebundles the project whenever a route file changes and pushes
// reload notifications to connected browsers.
type Server struct {
	config  *config.Config
	options ServerOptions
	logger  *zap.Logger

	watcher    *Watcher
	reload     *ReloadServer
	httpServer *http.Server

	mu      sync.Mutex
	running bool
}

// NewServer creates a new development server.
func NewServer(options ServerOptions) (*Server, error) {
	cfg := options.Config

	logger := options.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	watcher, err := NewWatcher(WatcherConfig{
		Root:     cfg.RoutesPath(),
		Debounce: 100 * time.Millisecond,
	}, WithLogger(logger))
	if err != nil {
		return nil, err
	}

	var reload *ReloadServer
	if cfg.Dev.HotReload {
		reload = NewReloadServer()
	}

	return &Server{
		config:  cfg,
		options: options,
		logger:  logger,
		watcher: watcher,
		reload:  reload,
	}, nil
}

// Start runs an initial bundle and serves until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = true
	s.mu.Unlock()

	s.bundle()

	s.watcher.OnChange(func(paths []string) {
		s.logger.Info("route change detected",
			zap.Strings("paths", paths),
		)
		s.bundle()
	})

	if err := s.watcher.Start(ctx); err != nil {
		return err
	}
	defer s.watcher.Stop()

	if s.reload != nil {
		mux := http.NewServeMux()
		mux.HandleFunc(ReloadEndpoint, s.reload.HandleWebSocket)

		s.httpServer = &http.Server{
			Addr:    s.config.DevAddr(),
			Handler: mux,
		}

		errCh := make(chan error, 1)
		go func() {
			errCh <- s.httpServer.ListenAndServe()
		}()

		s.logger.Info("dev server listening",
			zap.String("addr", s.config.DevAddr()),
		)

		select {
		case <-ctx.Done():
		case err := <-errCh:
			if err != nil && err != http.ErrServerClosed {
				return errors.New("E121").Wrap(err)
			}
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.httpServer.Shutdown(shutdownCtx)
		s.reload.Close()
		return nil
	}

	<-ctx.Done()
	return nil
}

// bundle runs the route compiler and reports the outcome to browsers.
func (s *Server) bundle() {
	err := bundler.Bundle(s.config.Dir(), nil)

	if s.options.OnBundle != nil {
		s.options.OnBundle(err)
	}

	if err != nil {
		s.logger.Error("bundle failed", zap.Error(err))
		if s.reload != nil {
			s.reload.NotifyError(err.Error())
		}
		return
	}

	s.logger.Info("bundle complete",
		zap.String("output", s.config.OutputPath()),
	)

	if s.reload != nil {
		s.reload.ClearError()
		s.reload.NotifyReload()
		if s.options.OnReload != nil {
			s.options.OnReload(s.reload.ClientCount())
		}
	}
}
