package tui_test

import (
	"bytes"
	"testing"

	"github.com/aretw0/decisiontree/internal/presentation/tui"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_PinnedStyle(t *testing.T) {
	render, err := tui.NewRenderer(60, "dark")
	require.NoError(t, err)

	out, err := render("England, **Scotland**, Wales")
	require.NoError(t, err)
	assert.Contains(t, out, "Scotland")
	assert.NotContains(t, out, "**")
}

func TestRenderer_AutoStyle(t *testing.T) {
	render, err := tui.NewRenderer(0, "")
	require.NoError(t, err)

	// Without a terminal the auto style may keep markdown markers.
	out, err := render("England, **Scotland**, Wales")
	require.NoError(t, err)
	assert.Contains(t, out, "Scotland")
	assert.Contains(t, out, "Wales")
}

func TestHeadline_PlainProfile(t *testing.T) {
	out := termenv.NewOutput(&bytes.Buffer{}, termenv.WithProfile(termenv.Ascii))
	assert.Equal(t, "Are you in business?", tui.Headline(out)("Are you in business?"))
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	out := termenv.NewOutput(&buf, termenv.WithProfile(termenv.Ascii))

	tui.PrintBanner(out, "VAT")
	assert.Equal(t, "\n───────\n  VAT\n───────\n", buf.String())
}
