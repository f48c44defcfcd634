package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/storesafe-app/storesafe/pkg/cli/config"
	"github.com/storesafe-app/storesafe/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdValidate() *cli.Command {
	var weightsCfg config.Weights

	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"v"},
		Usage:   "Validate the category weight registry configuration",
		Flags:   weightsCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()

			registry, err := weightsCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "weight registry validation failed")
			}

			logger.Info("Weight registry validation passed",
				"source", weightsSource(weightsCfg.Path()),
				"category_count", registry.Len(),
			)
			for _, cat := range registry.Categories() {
				logger.Info("Category validated",
					"id", cat.ID,
					"name", cat.Name,
					"weight", cat.Weight,
				)
			}

			return nil
		},
	}
}

func weightsSource(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}
