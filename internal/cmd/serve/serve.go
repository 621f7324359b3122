// Copyright 2026 Harald Albrecht.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package serve implements the spashell server command.
package serve

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/thediveo/spashell"
	"github.com/thediveo/spashell/headless"
	"github.com/thediveo/spashell/web"
)

// Config holds the server configuration. Environment variables provide the
// defaults, which command line flags override.
type Config struct {
	HTTPAddr        string        `env:"SPASHELL_HTTP_ADDR" envDefault:"localhost:8080"`
	AssetsDir       string        `env:"SPASHELL_ASSETS_DIR"`
	Index           string        `env:"SPASHELL_INDEX" envDefault:"index.html"`
	RoutesFile      string        `env:"SPASHELL_ROUTES_FILE"`
	Prerender       bool          `env:"SPASHELL_PRERENDER" envDefault:"true"`
	LogLevel        string        `env:"SPASHELL_LOG_LEVEL" envDefault:"info"`
	ShutdownTimeout time.Duration `env:"SPASHELL_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// ParseConfig parses the environment and then the flags into a Config.
func ParseConfig(flags *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	flags.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	flags.StringVar(&cfg.AssetsDir, "assets-dir", cfg.AssetsDir, "serve assets from this directory instead of the embedded ones")
	flags.StringVar(&cfg.Index, "index", cfg.Index, "shell document inside the assets")
	flags.StringVar(&cfg.RoutesFile, "routes", cfg.RoutesFile, "TOML route table replacing the built-in routes")
	flags.BoolVar(&cfg.Prerender, "prerender", cfg.Prerender, "render the route's fragment into the served shell document")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	flags.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", cfg.ShutdownTimeout, "grace period for in-flight requests")
	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Assets returns the file system to serve from.
func (cfg Config) Assets() fs.FS {
	if cfg.AssetsDir != "" {
		return os.DirFS(cfg.AssetsDir)
	}
	return web.FS()
}

// Routes returns the route table to prerender with.
func (cfg Config) Routes() (*spashell.RouteTable, error) {
	if cfg.RoutesFile == "" {
		return spashell.DefaultRouteTable(), nil
	}
	f, err := os.Open(cfg.RoutesFile)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	routes, err := spashell.LoadRouteTable(f)
	if err != nil {
		return nil, fmt.Errorf("route table %s: %w", cfg.RoutesFile, err)
	}
	return routes, nil
}

// NewHandler returns the HTTP handler serving the shell for cfg.
func NewHandler(cfg Config, log *slog.Logger) (http.Handler, error) {
	assets := cfg.Assets()
	var opts []spashell.SPAHandlerOption
	if cfg.Prerender {
		routes, err := cfg.Routes()
		if err != nil {
			return nil, err
		}
		opts = append(opts, spashell.WithIndexRewriter(headless.PrerenderRewriter(routes, assets, log)))
	}
	return accessLog(spashell.NewSPAHandler(assets, cfg.Index, opts...), log), nil
}

// Run serves until ctx is done, then shuts down gracefully.
func Run(ctx context.Context, cfg Config, log *slog.Logger) error {
	handler, err := NewHandler(cfg, log)
	if err != nil {
		return fmt.Errorf("init handler: %w", err)
	}
	lis, err := net.Listen("tcp", cfg.HTTPAddr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	done := make(chan error, 1)
	go func() { done <- srv.Serve(lis) }()
	log.Info("serving", slog.String("addr", lis.Addr().String()))

	select {
	case err := <-done:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-done; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (w *statusRecorder) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func accessLog(next http.Handler, log *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		path := r.URL.Path
		next.ServeHTTP(rec, r)
		log.Debug("request",
			slog.String("method", r.Method),
			slog.String("path", path),
			slog.Int("status", rec.status),
			slog.Duration("duration", time.Since(start)))
	})
}
