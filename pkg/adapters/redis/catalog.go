package redis

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aretw0/decisiontree/internal/logging"
	backend "github.com/redis/go-redis/v9"
)

// DefaultCatalogKey is the hash holding localization entries.
const DefaultCatalogKey = "decisiontree:catalog"

// Catalog implements i18n.Lookup over a Redis hash, field = dotted key.
// Copy can be edited live; trees read it on every resolution.
type Catalog struct {
	client  backend.UniversalClient
	key     string
	timeout time.Duration
	logger  *slog.Logger
}

type CatalogOption func(*Catalog)

// WithCatalogKey sets the hash key. Use one hash per locale.
func WithCatalogKey(key string) CatalogOption {
	return func(c *Catalog) {
		c.key = key
	}
}

// WithLookupTimeout bounds each lookup round trip.
func WithLookupTimeout(d time.Duration) CatalogOption {
	return func(c *Catalog) {
		c.timeout = d
	}
}

// WithCatalogLogger sets the logger for lookup failures.
func WithCatalogLogger(logger *slog.Logger) CatalogOption {
	return func(c *Catalog) {
		c.logger = logger
	}
}

// NewCatalog creates a catalog on client.
func NewCatalog(client backend.UniversalClient, opts ...CatalogOption) *Catalog {
	c := &Catalog{
		client:  client,
		key:     DefaultCatalogKey,
		timeout: time.Second,
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the entry for key. Redis failures are logged and reported as
// missing, so resolution falls through to the derived default.
func (c *Catalog) Get(key string) (string, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	val, err := c.client.HGet(ctx, c.key, key).Result()
	if err != nil {
		if !errors.Is(err, backend.Nil) {
			c.logger.Warn("catalog lookup failed", "key", key, "err", err)
		}
		return "", false
	}
	return val, true
}

// Set stores an entry.
func (c *Catalog) Set(ctx context.Context, key, value string) error {
	return c.client.HSet(ctx, c.key, key, value).Err()
}

// Load stores every entry in one round trip.
func (c *Catalog) Load(ctx context.Context, entries map[string]string) error {
	if len(entries) == 0 {
		return nil
	}
	values := make(map[string]any, len(entries))
	for k, v := range entries {
		values[k] = v
	}
	return c.client.HSet(ctx, c.key, values).Err()
}

// Delete removes an entry.
func (c *Catalog) Delete(ctx context.Context, key string) error {
	return c.client.HDel(ctx, c.key, key).Err()
}
