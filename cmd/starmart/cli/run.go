// cmd/starmart/cli/run.go
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/meridian-data/starmart/pkg/config"
	"github.com/meridian-data/starmart/pkg/pipeline"
	"github.com/meridian-data/starmart/pkg/quality"
)

func newRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the full pipeline and export CSV and JSON outputs",
		Example: `  # Run with input paths from the environment or .env
  starmart run

  # Run against explicit inputs with a pinned reference date
  starmart run --sales sales.csv --students students.csv --reference-date 2025-09-01`,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, _, err := runPipeline(cmd.Context())
			if err != nil {
				return err
			}
			printQualitySummary(result)
			return nil
		},
	}
}

func newLoadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "load",
		Short: "Run the full pipeline and additionally load PostgreSQL",
		Long: `Runs the same pipeline as "run", then drops and recreates the star
schema tables in the configured PostgreSQL schema and loads both stars.
Requires POSTGRES_USER, POSTGRES_PASSWORD, and POSTGRES_DB.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			result, p, err := runPipeline(ctx)
			if err != nil {
				return err
			}

			pgCfg, err := config.LoadPostgresConfig()
			if err != nil {
				return err
			}
			if err := p.LoadWarehouse(ctx, pgCfg, result); err != nil {
				return err
			}

			printQualitySummary(result)
			return nil
		},
	}
}

func runPipeline(ctx context.Context) (*pipeline.Result, *pipeline.Pipeline, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	logger, err := buildLogger(cfg)
	if err != nil {
		return nil, nil, err
	}
	defer logger.Sync()

	p := pipeline.New(cfg, logger)
	result, err := p.Run(ctx)
	if err != nil {
		return nil, nil, err
	}
	return result, p, nil
}

// printQualitySummary renders the per-domain quality counts and scores.
func printQualitySummary(result *pipeline.Result) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("Data Quality Summary")
	t.AppendHeader(table.Row{"Metric", "Sales", "Students"})

	sales := result.Report.Sales
	students := result.Report.Students
	t.AppendRows([]table.Row{
		{"Total records", sales.TotalRecords, students.TotalRecords},
		{"Skipped rows", result.SalesStats.Skipped, result.StudentStats.Skipped},
		{"Missing dates", sales.MissingDates, students.MissingEnrollmentDates},
		{"Zero prices", sales.ZeroPrices, "-"},
		{"Zero quantity", sales.ZeroQuantity, "-"},
		{"Missing ages", "-", students.MissingAges},
		{"Missing majors", "-", students.MissingMajors},
		{"Average total value", nullableMoney(sales.AvgTotalValue), "-"},
		{"Average age", "-", nullableNumber(students.AverageAge)},
	})

	t.AppendSeparator()
	t.AppendRows([]table.Row{
		{"Quality score", nullableScore(result.Scores.Sales), nullableScore(result.Scores.Student)},
	})
	if result.Scores.Overall != nil {
		t.AppendFooter(table.Row{"Overall",
			fmt.Sprintf("%.1f%%", *result.Scores.Overall),
			quality.Rating(*result.Scores.Overall)})
	}
	t.Render()
}

func nullableMoney(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("$%.2f", *v)
}

func nullableNumber(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f", *v)
}

func nullableScore(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f%% (%s)", *v, quality.Rating(*v))
}
