package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeOptionsFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "heapchart.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	opts := Default()
	assert.Equal(t, 40, opts.BarWidth)
	assert.Equal(t, "#", opts.Marker)
	assert.Equal(t, 0.8, opts.GCDropRatio)
	assert.Equal(t, 0.3, opts.EfficientRangeRatio)
}

func TestLoadPartialOverride(t *testing.T) {
	path := writeOptionsFile(t, "bar_width: 20\nmarker: \"*\"\n")

	opts, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 20, opts.BarWidth)
	assert.Equal(t, "*", opts.Marker)
	// Unset fields keep their defaults
	assert.Equal(t, 0.8, opts.GCDropRatio)
	assert.Equal(t, 0.3, opts.EfficientRangeRatio)
}

func TestLoadOutOfRangeRatioFallsBack(t *testing.T) {
	path := writeOptionsFile(t, "gc_drop_ratio: 1.5\n")

	opts, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.8, opts.GCDropRatio)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeOptionsFile(t, "bar_width: [not a number\n")

	_, err := Load(path)
	assert.ErrorContains(t, err, "failed to parse options file")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorContains(t, err, "failed to read options file")
}
