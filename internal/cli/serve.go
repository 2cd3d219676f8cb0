package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/cpereira/forcedraw/pkg/cache"
	"github.com/cpereira/forcedraw/pkg/graph"
	"github.com/cpereira/forcedraw/pkg/layout"
)

// maxRequestBytes bounds layout request bodies.
const maxRequestBytes = 4 << 20

// serveCommand creates the serve command: an HTTP layout service.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr       string
		configPath string
		redisAddr  string
		cacheTTL   time.Duration
		noCache    bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve layouts over HTTP",
		Long: `Serve layouts over HTTP.

POST /v1/layout accepts a JSON body with a node-link graph, a step
count, and optional simulation parameters, and responds with the layout
artifact. Identical request bodies are answered from a TTL-bounded
cache: in-memory by default, Redis with --redis so several instances
can share one cache.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			store, err := newServeCache(cmd.Context(), noCache, redisAddr)
			if err != nil {
				return err
			}
			defer store.Close()

			srv := &layoutServer{
				logger:   c.Logger,
				defaults: cfg,
				cache:    store,
				cacheTTL: cacheTTL,
			}
			return srv.listen(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&configPath, "config", "", "TOML simulation parameter file with server defaults")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "Redis address for a shared layout cache")
	cmd.Flags().DurationVar(&cacheTTL, "cache-ttl", time.Hour, "layout cache entry lifetime")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the layout cache")

	return cmd
}

func newServeCache(ctx context.Context, noCache bool, redisAddr string) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if redisAddr != "" {
		return cache.NewRedisCache(ctx, cache.RedisConfig{Addr: redisAddr})
	}
	return cache.NewMemoryCache(), nil
}

// layoutServer handles the HTTP surface. Each request simulates on a
// fresh engine, so concurrent requests never share layout state.
type layoutServer struct {
	logger   *log.Logger
	defaults layout.Config
	cache    cache.Cache
	cacheTTL time.Duration
}

func (s *layoutServer) listen(ctx context.Context, addr string) error {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req.WithContext(withLogger(req.Context(), s.logger)))
		})
	})
	r.Get("/healthz", s.handleHealth)
	r.Post("/v1/layout", s.handleLayout)

	srv := &http.Server{Addr: addr, Handler: r}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	s.logger.Info("Listening", "addr", addr)
	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *layoutServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// layoutRequest is the body of POST /v1/layout.
type layoutRequest struct {
	Graph  json.RawMessage `json:"graph"`
	Steps  int             `json:"steps"`
	Params *layout.Config  `json:"params,omitempty"`
}

// layoutResponse wraps the artifact with a server-assigned id.
type layoutResponse struct {
	ID     string         `json:"id"`
	Layout layoutArtifact `json:"layout"`
}

func (s *layoutServer) handleLayout(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("read body: %w", err))
		return
	}

	key := "layout:" + cache.Hash(body)
	if data, hit, err := s.cache.Get(r.Context(), key); err == nil && hit {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Cache", "hit")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	var req layoutRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
		return
	}
	if req.Steps <= 0 {
		req.Steps = 1000
	}

	g, err := graph.ReadGraph(bytes.NewReader(req.Graph))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	cfg := s.defaults
	if req.Params != nil {
		cfg = *req.Params
	}
	if err := cfg.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	logger := loggerFromContext(r.Context())
	prog := newProgress(logger)
	eng, err := simulate(cfg, g, req.Steps)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, layout.ErrEmptyGraph) || errors.Is(err, layout.ErrInvalidConfig) {
			status = http.StatusBadRequest
		}
		writeError(w, status, err)
		return
	}
	prog.done(fmt.Sprintf("Simulated %d steps over %d vertices", req.Steps, g.VertexCount()))

	art, err := buildArtifact(eng)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	resp := layoutResponse{ID: uuid.NewString(), Layout: art}
	data, err := json.Marshal(resp)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	if err := s.cache.Set(r.Context(), key, data, s.cacheTTL); err != nil {
		logger.Warn("Cache set failed", "err", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Cache", "miss")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
