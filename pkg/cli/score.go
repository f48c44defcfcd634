package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/storesafe-app/storesafe/pkg/cli/config"
	"github.com/storesafe-app/storesafe/pkg/domain/model"
	"github.com/storesafe-app/storesafe/pkg/domain/types"
	"github.com/storesafe-app/storesafe/pkg/scoring"
	"github.com/urfave/cli/v3"
)

// scoreInput is the TOML schema for the one-shot score command. Any
// combination of the three sections may be present.
type scoreInput struct {
	Scores     map[string]float64 `toml:"scores"`
	Management *managementInput   `toml:"management"`
	Profile    *profileInput      `toml:"profile"`
}

type managementInput struct {
	Properties             int `toml:"properties"`
	ElectricalReports      int `toml:"electrical_reports"`
	ElectricalSatisfactory int `toml:"electrical_satisfactory"`
	DrainageReports        int `toml:"drainage_reports"`
	DrainageGood           int `toml:"drainage_good"`
	Overdue                int `toml:"overdue"`
	HighRiskItems          int `toml:"high_risk_items"`
}

type profileInput struct {
	BusinessActivity     string   `toml:"business_activity"`
	BuildingAgeRange     string   `toml:"building_age_range"`
	ManagementExperience string   `toml:"management_experience"`
	Qualifications       []string `toml:"qualifications"`
	ComplianceItems      []string `toml:"compliance_items"`
	EmployeeCountRange   string   `toml:"employee_count_range"`
	AnnualTurnoverRange  string   `toml:"annual_turnover_range"`
	SizeCategory         string   `toml:"size_category"`
}

var tierColors = map[types.RiskTier]*color.Color{
	types.RiskTierLow:      color.New(color.FgGreen),
	types.RiskTierMedium:   color.New(color.FgYellow),
	types.RiskTierHigh:     color.New(color.FgRed),
	types.RiskTierCritical: color.New(color.FgRed, color.Bold),
}

func cmdScore() *cli.Command {
	var inputPath string
	var weightsCfg config.Weights

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "input",
			Aliases:     []string{"i"},
			Usage:       "Path to a TOML file with scores, management counts and/or a business profile",
			Required:    true,
			Sources:     cli.EnvVars("STORESAFE_SCORE_INPUT"),
			Destination: &inputPath,
		},
	}
	flags = append(flags, weightsCfg.Flags()...)

	return &cli.Command{
		Name:  "score",
		Usage: "Run the scoring engine once against a local input file",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			registry, err := weightsCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load weight registry")
			}

			data, err := os.ReadFile(inputPath)
			if err != nil {
				return goerr.Wrap(err, "failed to read input file", goerr.V("path", inputPath))
			}

			var input scoreInput
			if err := toml.Unmarshal(data, &input); err != nil {
				return goerr.Wrap(err, "failed to parse input file", goerr.V("path", inputPath))
			}

			if len(input.Scores) == 0 && input.Management == nil && input.Profile == nil {
				return goerr.New("input file has no scores, management or profile section",
					goerr.V("path", inputPath))
			}

			if len(input.Scores) > 0 {
				if err := printAssessment(registry, input.Scores); err != nil {
					return err
				}
			}
			if input.Management != nil {
				if err := printManagementScore(*input.Management); err != nil {
					return err
				}
			}
			if input.Profile != nil {
				printRecommendation(*input.Profile)
			}

			return nil
		},
	}
}

func printAssessment(registry *scoring.Registry, scores map[string]float64) error {
	scoreMap := make(model.CategoryScoreMap, len(scores))
	for id, score := range scores {
		scoreMap[types.CategoryID(id)] = score
	}

	result, err := registry.Aggregate(scoreMap)
	if err != nil {
		return goerr.Wrap(err, "failed to aggregate category scores")
	}

	fmt.Println("Risk assessment")
	for _, c := range registry.Categories() {
		fmt.Printf("  %-28s %6.1f (weight %.2f)\n", c.Name, result.CategoryScores[c.ID], c.Weight)
	}
	tc := tierColors[result.Tier]
	fmt.Printf("  Overall risk score:   %d\n", result.OverallRiskScore)
	fmt.Printf("  Overall safety score: %d\n", result.OverallSafetyScore)
	fmt.Printf("  Tier:                 %s\n", tc.Sprint(result.Tier))
	return nil
}

func printManagementScore(in managementInput) error {
	score, err := scoring.CalculateManagementScore(model.ManagementScoreInputs{
		PropertiesCount:             in.Properties,
		ElectricalReportsCount:      in.ElectricalReports,
		ElectricalSatisfactoryCount: in.ElectricalSatisfactory,
		DrainageReportsCount:        in.DrainageReports,
		DrainageGoodCount:           in.DrainageGood,
		OverdueInspectionsCount:     in.Overdue,
		HighRiskItemsCount:          in.HighRiskItems,
	})
	if err != nil {
		return goerr.Wrap(err, "failed to calculate management score")
	}

	grade := scoring.GradeForScore(score)
	gc := color.New(color.FgRed)
	switch grade {
	case types.GradeExcellent, types.GradeGood:
		gc = color.New(color.FgGreen)
	case types.GradeFair:
		gc = color.New(color.FgYellow)
	}

	fmt.Println("Management score")
	fmt.Printf("  Score: %d\n", score)
	fmt.Printf("  Grade: %s\n", gc.Sprint(grade))
	return nil
}

func printRecommendation(in profileInput) {
	profile := model.BusinessProfile{
		BusinessActivity:     in.BusinessActivity,
		BuildingAgeRange:     in.BuildingAgeRange,
		ManagementExperience: in.ManagementExperience,
		Qualifications:       in.Qualifications,
		ComplianceItems:      in.ComplianceItems,
		EmployeeCountRange:   in.EmployeeCountRange,
		AnnualTurnoverRange:  in.AnnualTurnoverRange,
		SizeCategory:         in.SizeCategory,
	}

	fmt.Println("Tier recommendation")
	fmt.Printf("  Preliminary risk score: %d\n", scoring.PreliminaryRiskScore(profile))
	fmt.Printf("  Recommended tier:       %s\n", color.New(color.FgCyan).Sprint(scoring.RecommendTier(profile)))
}
