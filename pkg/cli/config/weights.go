package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/storesafe-app/storesafe/pkg/domain/types"
	"github.com/storesafe-app/storesafe/pkg/scoring"
	"github.com/urfave/cli/v3"
)

// Weights holds the CLI flag for an optional category weight override file.
// Without a file the built-in registry is used. A file must still satisfy
// the weight-sum invariant: the registry is never silently renormalized.
type Weights struct {
	path string
}

// weightsFile is the TOML schema of a weight override file:
//
//	[[category]]
//	id = "security_risk_management"
//	name = "Security & Risk Management"
//	weight = 0.25
type weightsFile struct {
	Categories []weightsCategory `toml:"category"`
}

type weightsCategory struct {
	ID     string  `toml:"id"`
	Name   string  `toml:"name"`
	Weight float64 `toml:"weight"`
}

// Flags returns CLI flags for weight registry configuration
func (w *Weights) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "weights",
			Usage:       "Path to a TOML file overriding the category weight registry",
			Sources:     cli.EnvVars("STORESAFE_WEIGHTS"),
			Destination: &w.path,
		},
	}
}

// Path returns the configured weights file path
func (w *Weights) Path() string {
	return w.path
}

// Configure loads and validates the registry. Returns the default registry
// when no file is configured.
func (w *Weights) Configure() (*scoring.Registry, error) {
	if w.path == "" {
		return scoring.DefaultRegistry(), nil
	}
	return LoadWeights(w.path)
}

// LoadWeights reads a weight registry from a TOML file
func LoadWeights(path string) (*scoring.Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read weights file", goerr.V("path", path))
	}

	var file weightsFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, goerr.Wrap(err, "failed to parse weights file", goerr.V("path", path))
	}

	categories := make([]scoring.Category, len(file.Categories))
	for i, c := range file.Categories {
		categories[i] = scoring.Category{
			ID:     types.CategoryID(c.ID),
			Name:   c.Name,
			Weight: c.Weight,
		}
	}

	registry, err := scoring.NewRegistry(categories)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid weight registry", goerr.V("path", path))
	}

	return registry, nil
}
