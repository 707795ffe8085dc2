package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string   `yaml:"name"`
	Items []string `yaml:"items"`
}

func TestConfigRoundTrip(t *testing.T) {

	path := filepath.Join(t.TempDir(), "cfg.yaml")

	err := WriteConfig(sample{Name: "grid", Items: []string{"a", "b"}}, path, 0644)
	require.NoError(t, err)

	got := sample{}
	err = LoadConfig(&got, path)
	require.NoError(t, err)
	assert.Equal(t, sample{Name: "grid", Items: []string{"a", "b"}}, got)
}

func TestLoadConfigMissing(t *testing.T) {

	err := LoadConfig(&sample{}, filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "failed to read from")
}

func TestSampleConfig(t *testing.T) {

	path := filepath.Join(t.TempDir(), "layout.yaml")

	wrote, err := SampleConfig([]byte("first"), path, 0644)
	require.NoError(t, err)
	assert.True(t, wrote)

	wrote, err = SampleConfig([]byte("second"), path, 0644)
	require.NoError(t, err)
	assert.False(t, wrote)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first", string(data))
}
