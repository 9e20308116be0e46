package cli_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/decisiontree"
	"github.com/aretw0/decisiontree/internal/cli"
	"github.com/aretw0/decisiontree/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefinitionFiles(t *testing.T) {
	files, err := cli.DefinitionFiles([]string{"testdata"})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join("testdata", "catalog.yaml"),
		filepath.Join("testdata", "tiny.json"),
		filepath.Join("testdata", "vat.yaml"),
	}, files)

	files, err = cli.DefinitionFiles([]string{filepath.Join("testdata", "vat.yaml")})
	require.NoError(t, err)
	assert.Len(t, files, 1)

	_, err = cli.DefinitionFiles([]string{t.TempDir()})
	assert.Error(t, err)

	_, err = cli.DefinitionFiles([]string{filepath.Join("testdata", "missing")})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadRegistry(t *testing.T) {
	reg, err := cli.LoadRegistry([]string{
		filepath.Join("testdata", "vat.yaml"),
		filepath.Join("testdata", "tiny.json"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"should_i_register_for_vat?", "tiny"}, reg.Names())

	// A catalog is not a tree definition.
	_, err = cli.LoadRegistry([]string{"testdata"})
	assert.Error(t, err)

	// The same tree twice is a registration conflict.
	_, err = cli.LoadRegistry([]string{
		filepath.Join("testdata", "tiny.json"),
		filepath.Join("testdata", "tiny.json"),
	})
	assert.True(t, errors.Is(err, domain.ErrBuild), "err: %v", err)
}

func TestPickTree(t *testing.T) {
	single := decisiontree.NewRegistry()
	reg, err := cli.LoadRegistry([]string{filepath.Join("testdata", "tiny.json")})
	require.NoError(t, err)

	tree, err := cli.PickTree(reg, "")
	require.NoError(t, err)
	assert.Equal(t, "tiny", tree.Name())

	_, err = cli.PickTree(single, "")
	assert.Error(t, err)

	_, err = cli.PickTree(reg, "other")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLoadCatalog(t *testing.T) {
	catalog, err := cli.LoadCatalog("", "en")
	require.NoError(t, err)
	assert.Nil(t, catalog)

	catalog, err = cli.LoadCatalog(filepath.Join("testdata", "catalog.yaml"), "fr")
	require.NoError(t, err)
	text, ok := catalog.Get("should_i_register_for_vat?.display_name")
	assert.True(t, ok)
	assert.Equal(t, "Dois-je m'inscrire à la TVA ?", text)

	_, err = cli.LoadCatalog(filepath.Join("testdata", "missing.yaml"), "")
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	logger, err := cli.NewLogger("")
	require.NoError(t, err)
	assert.NotNil(t, logger)

	_, err = cli.NewLogger("debug")
	require.NoError(t, err)

	_, err = cli.NewLogger("chatty")
	assert.Error(t, err)
}
