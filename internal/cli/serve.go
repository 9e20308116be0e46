package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/aretw0/decisiontree"
	"github.com/aretw0/decisiontree/internal/logging"
	api "github.com/aretw0/decisiontree/pkg/adapters/http"
	"github.com/aretw0/decisiontree/pkg/adapters/memory"
	"github.com/aretw0/decisiontree/pkg/adapters/redis"
	"github.com/aretw0/decisiontree/pkg/i18n"
	"github.com/aretw0/decisiontree/pkg/observability"
	"github.com/aretw0/decisiontree/pkg/persistence/middleware"
	"github.com/aretw0/decisiontree/pkg/ports"
	"github.com/aretw0/decisiontree/pkg/session"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	backend "github.com/redis/go-redis/v9"
)

// shutdownTimeout gives outstanding requests a deadline on shutdown.
const shutdownTimeout = 5 * time.Second

// ServeOptions configures the HTTP server.
type ServeOptions struct {
	Addr string
	// Paths are tree definition files or directories.
	Paths []string
	// Catalog is the file catalog, possibly nil.
	Catalog *i18n.Catalog

	// RedisURL switches sessions (and locking) to Redis, e.g. redis://localhost:6379/0.
	RedisURL    string
	RedisPrefix string
	// RedisCatalogKey, when set, reads copy live from that hash before the file catalog.
	RedisCatalogKey string
	TTL             time.Duration

	// StateKey, when set, encrypts stored sessions (AES-256, 32 bytes).
	StateKey []byte

	Logger *slog.Logger
}

// Server is a configured but not yet listening HTTP server.
type Server struct {
	HTTP     *http.Server
	Registry *decisiontree.Registry
	Sessions *session.Manager
	Metrics  *observability.Metrics

	logger  *slog.Logger
	cleanup []func() error
}

// NewServer wires trees, sessions, metrics and the REST handler.
func NewServer(opts ServeOptions) (*Server, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	s := &Server{logger: logger}

	promReg := prometheus.NewRegistry()
	promReg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics, err := observability.NewMetrics(promReg)
	if err != nil {
		return nil, err
	}
	s.Metrics = metrics

	var client *backend.Client
	if opts.RedisURL != "" {
		redisOpts, err := backend.ParseURL(opts.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("invalid redis url: %w", err)
		}
		client = backend.NewClient(redisOpts)
		s.cleanup = append(s.cleanup, client.Close)
	}

	var lookups []i18n.Lookup
	if client != nil && opts.RedisCatalogKey != "" {
		lookups = append(lookups, redis.NewCatalog(client,
			redis.WithCatalogKey(opts.RedisCatalogKey),
			redis.WithCatalogLogger(logger)))
	}
	if opts.Catalog != nil {
		lookups = append(lookups, opts.Catalog)
	}

	treeOpts := []decisiontree.Option{
		decisiontree.WithLogger(logger),
		decisiontree.WithHooks(metrics.Hooks()),
	}
	if len(lookups) > 0 {
		treeOpts = append(treeOpts, decisiontree.WithCatalog(i18n.Chain(lookups...)))
	}
	reg, err := LoadRegistry(opts.Paths, treeOpts...)
	if err != nil {
		s.Close()
		return nil, err
	}
	s.Registry = reg

	var store ports.StateStore = memory.NewStore()
	sessionOpts := []session.Option{session.WithLogger(logger)}
	if client != nil {
		prefix := opts.RedisPrefix
		if prefix == "" {
			prefix = redis.DefaultPrefix
		}
		store = redis.NewFromClient(client, redis.WithPrefix(prefix), redis.WithTTL(opts.TTL))
		sessionOpts = append(sessionOpts, session.WithLocker(redis.NewLocker(client, prefix)))
	}
	store, err = sealStore(store, opts.StateKey)
	if err != nil {
		s.Close()
		return nil, err
	}
	s.Sessions = session.NewManager(reg, store, sessionOpts...)

	handler := api.NewHandler(reg, s.Sessions,
		api.WithLogger(logger),
		api.WithMetrics(promhttp.HandlerFor(promReg, promhttp.HandlerOpts{})))
	s.HTTP = &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s, nil
}

// Serve listens on ln until ctx is done, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("Starting server", "addr", ln.Addr().String(), "trees", s.Registry.Names())
		serverErrors <- s.HTTP.Serve(ln)
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		s.logger.Info("Start shutdown")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.HTTP.Shutdown(shutdownCtx); err != nil {
			s.logger.Warn("Graceful shutdown did not complete", "timeout", shutdownTimeout, "err", err)
			return s.HTTP.Close()
		}
		s.logger.Info("Server stopped gracefully")
		return nil
	}
}

// ListenAndServe listens on the configured address.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.HTTP.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Close releases backend connections.
func (s *Server) Close() error {
	var errs []error
	for _, fn := range s.cleanup {
		errs = append(errs, fn())
	}
	s.cleanup = nil
	return errors.Join(errs...)
}

// sealStore wraps store with encryption when key is set.
func sealStore(store ports.StateStore, key []byte) (ports.StateStore, error) {
	if len(key) == 0 {
		return store, nil
	}
	mw, err := middleware.NewEncryption(middleware.EncryptionConfig{ActiveKey: key})
	if err != nil {
		return nil, fmt.Errorf("invalid state key: %w", err)
	}
	return middleware.Wrap(store, mw), nil
}
