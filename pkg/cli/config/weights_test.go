package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/storesafe-app/storesafe/pkg/cli/config"
)

func writeWeightsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "weights.toml")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0600)).Required()
	return path
}

func TestLoadWeights(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		path := writeWeightsFile(t, `
[[category]]
id = "fire"
name = "Fire"
weight = 0.6

[[category]]
id = "flood"
name = "Flood"
weight = 0.4
`)

		registry, err := config.LoadWeights(path)
		gt.NoError(t, err).Required()
		gt.Value(t, registry.Len()).Equal(2)

		weight, ok := registry.Weight("fire")
		gt.Bool(t, ok).True()
		gt.Value(t, weight).Equal(0.6)
	})

	t.Run("weights must sum to 1.0", func(t *testing.T) {
		path := writeWeightsFile(t, `
[[category]]
id = "fire"
name = "Fire"
weight = 0.6

[[category]]
id = "flood"
name = "Flood"
weight = 0.3
`)

		_, err := config.LoadWeights(path)
		gt.Error(t, err)
	})

	t.Run("malformed TOML", func(t *testing.T) {
		path := writeWeightsFile(t, `[[category`)

		_, err := config.LoadWeights(path)
		gt.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := config.LoadWeights(filepath.Join(t.TempDir(), "absent.toml"))
		gt.Error(t, err)
	})
}

func TestWeightsConfigure(t *testing.T) {
	t.Run("defaults to the built-in registry", func(t *testing.T) {
		var cfg config.Weights

		registry, err := cfg.Configure()
		gt.NoError(t, err).Required()
		gt.Value(t, registry.Len()).Equal(8)
	})
}
