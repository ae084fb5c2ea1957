package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeStyleFile(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "style.toml")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func runApp(t *testing.T, args ...string) string {
	t.Helper()
	out := filepath.Join(t.TempDir(), "out.svg")
	argv := append([]string{"qrsvg", "--output", out}, args...)
	require.NoError(t, newApp().Run(argv))
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	return string(data)
}

// A style file must survive flags the user never passed: the flag defaults
// are only fallbacks, not overrides.
func TestStyleFileSurvivesFlagDefaults(t *testing.T) {
	path := writeStyleFile(t, `
[layout]
width = 400
height = 400
margin = 15

[color]
foreground = "#112233"
`)

	svg := runApp(t, "--content", "style file wins", "--config", path)
	assert.Contains(t, svg, `width="400" height="400"`)
	assert.Contains(t, svg, `fill="#112233"`)
	assert.NotContains(t, svg, `width="300"`)
	assert.NotContains(t, svg, `fill="#000000"`)
	// The untouched background default still applies.
	assert.Contains(t, svg, `fill="#ffffff"`)
}

func TestExplicitFlagOverridesStyleFile(t *testing.T) {
	path := writeStyleFile(t, `
[color]
foreground = "#112233"
`)

	svg := runApp(t, "--content", "flag wins", "--config", path, "--fg", "#445566")
	assert.Contains(t, svg, `fill="#445566"`)
	assert.NotContains(t, svg, `fill="#112233"`)
}

func TestFlagDefaultsApplyWithoutStyleFile(t *testing.T) {
	svg := runApp(t, "--content", "defaults")
	assert.Contains(t, svg, `width="300" height="300"`)
	assert.Contains(t, svg, `fill="#000000"`)
	assert.Contains(t, svg, `fill="#ffffff"`)
}
