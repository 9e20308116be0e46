package main

import (
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/decisiontree"
	"github.com/aretw0/decisiontree/internal/cli"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "decisiontree",
	Short: "decisiontree walks question and answer decision trees",
	Long: `decisiontree loads decision trees from YAML or JSON definitions and lets you
walk them in the terminal, draw them as Mermaid graphs or serve them over HTTP.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("catalog", "", "YAML localization catalog")
	rootCmd.PersistentFlags().String("locale", "en", "Locale section of the catalog to use")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error); empty disables logging")
	rootCmd.PersistentFlags().String("state-key", os.Getenv("DECISIONTREE_STATE_KEY"), "Hex encoded AES-256 key encrypting stored sessions")
}

// stateKey decodes the --state-key flag; empty means no encryption.
func stateKey(cmd *cobra.Command) ([]byte, error) {
	raw, _ := cmd.Flags().GetString("state-key")
	if raw == "" {
		return nil, nil
	}
	key, err := hex.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid --state-key: %w", err)
	}
	return key, nil
}

// loadFromFlags builds the logger and catalog named by the persistent flags.
func loadFromFlags(cmd *cobra.Command) (*slog.Logger, []decisiontree.Option, error) {
	level, _ := cmd.Flags().GetString("log-level")
	catalogPath, _ := cmd.Flags().GetString("catalog")
	locale, _ := cmd.Flags().GetString("locale")

	logger, err := cli.NewLogger(level)
	if err != nil {
		return nil, nil, err
	}
	opts := []decisiontree.Option{decisiontree.WithLogger(logger)}

	catalog, err := cli.LoadCatalog(catalogPath, locale)
	if err != nil {
		return nil, nil, err
	}
	if catalog != nil {
		opts = append(opts, decisiontree.WithCatalog(catalog))
	}
	return logger, opts, nil
}

// definitionPaths defaults to the working directory.
func definitionPaths(args []string) []string {
	if len(args) == 0 {
		return []string{"."}
	}
	return args
}
