package attrmap_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gautampuneet/dataloop-ai/pkg/attrmap"
)

const sampleYAML = `
id: "1"
name: first
metadata:
  system:
    size: 10.7
    height: 11
  user:
    batch: 1121
`

const sampleJSON = `{
  "name": "first",
  "metadata": {
    "system": {"size": 10.7, "height": 11}
  }
}`

// TestFromYAML verifies YAML parsing and flattened resolution.
func TestFromYAML(t *testing.T) {
	t.Run("nested keys resolve", func(t *testing.T) {
		m, err := attrmap.FromYAML([]byte(sampleYAML))
		require.NoError(t, err)
		assert.Equal(t, "first", m.Get("name"))
		assert.Equal(t, 11, m.Get("height"))
		assert.Equal(t, 10.7, m.Get("size"))
		assert.Equal(t, 1121, m.Get("batch"))
	})

	t.Run("defaults injected when absent", func(t *testing.T) {
		m, err := attrmap.FromYAML([]byte("name: my"))
		require.NoError(t, err)
		assert.Equal(t, 100, m.Get("height"))
		assert.Equal(t, 10, m.Get("size"))
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := attrmap.FromYAML([]byte("{unclosed"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse yaml")
	})
}

// TestFromJSON verifies JSON parsing. JSON numbers decode as float64.
func TestFromJSON(t *testing.T) {
	t.Run("nested keys resolve", func(t *testing.T) {
		m, err := attrmap.FromJSON([]byte(sampleJSON))
		require.NoError(t, err)
		assert.Equal(t, "first", m.Get("name"))
		assert.Equal(t, float64(11), m.Get("height"))
		assert.Equal(t, 10.7, m.Get("size"))
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := attrmap.FromJSON([]byte("{"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse json")
	})
}

// TestFromFile verifies extension-based dispatch.
func TestFromFile(t *testing.T) {
	t.Run("yaml file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "data.yaml")
		require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))

		m, err := attrmap.FromFile(path)
		require.NoError(t, err)
		assert.Equal(t, 1121, m.Get("batch"))
	})

	t.Run("json file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "data.json")
		require.NoError(t, os.WriteFile(path, []byte(sampleJSON), 0o644))

		m, err := attrmap.FromFile(path)
		require.NoError(t, err)
		assert.Equal(t, 10.7, m.Get("size"))
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "data.toml")
		require.NoError(t, os.WriteFile(path, []byte("a = 1"), 0o644))

		_, err := attrmap.FromFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported file extension")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := attrmap.FromFile(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read file")
	})
}
