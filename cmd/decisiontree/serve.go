package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/decisiontree/internal/cli"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve [paths...]",
	Short: "Start the HTTP server",
	Long: `Serves the loaded trees and their sessions as a JSON API, with Prometheus
metrics on /metrics. Sessions live in memory unless --redis is set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, _, err := loadFromFlags(cmd)
		if err != nil {
			return err
		}
		catalogPath, _ := cmd.Flags().GetString("catalog")
		locale, _ := cmd.Flags().GetString("locale")
		catalog, err := cli.LoadCatalog(catalogPath, locale)
		if err != nil {
			return err
		}

		addr, _ := cmd.Flags().GetString("addr")
		redisURL, _ := cmd.Flags().GetString("redis")
		redisPrefix, _ := cmd.Flags().GetString("redis-prefix")
		redisCatalogKey, _ := cmd.Flags().GetString("redis-catalog-key")
		ttl, _ := cmd.Flags().GetDuration("ttl")
		key, err := stateKey(cmd)
		if err != nil {
			return err
		}

		srv, err := cli.NewServer(cli.ServeOptions{
			Addr:            addr,
			Paths:           definitionPaths(args),
			Catalog:         catalog,
			RedisURL:        redisURL,
			RedisPrefix:     redisPrefix,
			RedisCatalogKey: redisCatalogKey,
			TTL:             ttl,
			StateKey:        key,
			Logger:          logger,
		})
		if err != nil {
			return err
		}
		defer srv.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		cmd.Printf("Serving %d tree(s) on %s\n", len(srv.Registry.Names()), addr)
		return srv.ListenAndServe(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", ":8080", "Address to listen on")
	serveCmd.Flags().String("redis", "", "Redis URL for sessions and locking (e.g. redis://localhost:6379/0)")
	serveCmd.Flags().String("redis-prefix", "", "Key prefix for Redis sessions")
	serveCmd.Flags().String("redis-catalog-key", "", "Redis hash read for live copy before the catalog file")
	serveCmd.Flags().Duration("ttl", 0, "Session expiry in Redis (0 keeps sessions forever)")
}
