package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/decisiontree"
	"github.com/aretw0/decisiontree/internal/compiler"
	"github.com/aretw0/decisiontree/internal/logging"
	"github.com/aretw0/decisiontree/pkg/i18n"
)

// definitionExts are the file types picked up when a directory is given.
var definitionExts = map[string]bool{".yaml": true, ".yml": true, ".json": true}

// NewLogger builds the application logger from a --log-level value.
// An empty level disables logging.
func NewLogger(level string) (*slog.Logger, error) {
	if level == "" {
		return logging.NewNop(), nil
	}
	lvl, err := logging.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return logging.New(lvl), nil
}

// LoadCatalog reads a YAML catalog. An empty path yields no catalog.
func LoadCatalog(path, locale string) (*i18n.Catalog, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	catalog, err := i18n.LoadYAML(data, locale)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return catalog, nil
}

// DefinitionFiles expands paths: files are kept as given, directories
// contribute their YAML and JSON files in lexical order (not recursive).
func DefinitionFiles(paths []string) ([]string, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}
		entries, err := os.ReadDir(p)
		if err != nil {
			return nil, err
		}
		var found []string
		for _, e := range entries {
			if !e.IsDir() && definitionExts[strings.ToLower(filepath.Ext(e.Name()))] {
				found = append(found, filepath.Join(p, e.Name()))
			}
		}
		sort.Strings(found)
		files = append(files, found...)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no tree definitions found in %s", strings.Join(paths, ", "))
	}
	return files, nil
}

// LoadRegistry compiles every definition under paths into a new registry.
// opts apply to every tree.
func LoadRegistry(paths []string, opts ...decisiontree.Option) (*decisiontree.Registry, error) {
	files, err := DefinitionFiles(paths)
	if err != nil {
		return nil, err
	}
	reg := decisiontree.NewRegistry()
	for _, f := range files {
		tree, err := compiler.LoadFile(f, opts...)
		if err != nil {
			return nil, err
		}
		if err := reg.Register(tree); err != nil {
			return nil, fmt.Errorf("%s: %w", f, err)
		}
	}
	return reg, nil
}

// PickTree resolves ref in reg. An empty ref is allowed when exactly one
// tree is registered.
func PickTree(reg *decisiontree.Registry, ref string) (*decisiontree.Tree, error) {
	if ref == "" {
		names := reg.Names()
		if len(names) != 1 {
			return nil, fmt.Errorf("%d trees loaded; choose one with --tree (%s)", len(names), strings.Join(names, ", "))
		}
		ref = names[0]
	}
	return reg.Open(ref)
}
