// pkg/pipeline/pipeline.go

// Package pipeline orchestrates one end-to-end run: load raw CSVs, validate
// and type the rows, aggregate quality, compute analytics, assemble both star
// schemas, and export every output file.
package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/meridian-data/starmart/pkg/analytics"
	"github.com/meridian-data/starmart/pkg/config"
	"github.com/meridian-data/starmart/pkg/export"
	"github.com/meridian-data/starmart/pkg/model"
	"github.com/meridian-data/starmart/pkg/quality"
	"github.com/meridian-data/starmart/pkg/source"
	"github.com/meridian-data/starmart/pkg/star"
	"github.com/meridian-data/starmart/pkg/transform"
)

// Pipeline runs the full ETL flow for one pair of input files.
type Pipeline struct {
	cfg    *config.Config
	loader *source.Loader
	logger *zap.Logger
}

// Result carries everything one run produced.
type Result struct {
	RunID            uuid.UUID
	Sales            []model.CanonicalSales
	Students         []model.CanonicalStudent
	SalesStar        star.SalesStar
	StudentStar      star.StudentStar
	Report           model.QualityReport
	Scores           quality.Scores
	SalesAnalytics   analytics.SalesAnalytics
	StudentAnalytics analytics.StudentAnalytics
	SalesStats       transform.Stats
	StudentStats     transform.Stats
	Metrics          *RunMetrics
}

// New creates a Pipeline.
func New(cfg *config.Config, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		cfg:    cfg,
		loader: source.NewLoader(logger),
		logger: logger,
	}
}

// Run executes every stage in order. A loader failure aborts the run; no
// partial outputs are written.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	result := &Result{
		RunID:   uuid.New(),
		Metrics: NewRunMetrics(p.logger),
	}
	logger := p.logger.With(zap.String("runID", result.RunID.String()))
	logger.Info("Starting pipeline run",
		zap.String("salesPath", p.cfg.SalesPath),
		zap.String("studentsPath", p.cfg.StudentsPath),
		zap.Time("referenceDate", p.cfg.ReferenceDate))

	endStage := result.Metrics.StartStage("load")
	salesRows, err := p.loader.Load(p.cfg.SalesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load sales data: %w", err)
	}
	studentRows, err := p.loader.Load(p.cfg.StudentsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load student data: %w", err)
	}
	endStage()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	endStage = result.Metrics.StartStage("transform")
	rawSales := make([]model.RawSales, 0, len(salesRows))
	for _, row := range salesRows {
		rawSales = append(rawSales, model.RawSalesFromRow(row))
	}
	salesTransformer := transform.NewSalesTransformer(logger)
	result.Sales = salesTransformer.TransformAll(rawSales)
	result.SalesStats = salesTransformer.Stats()
	result.Metrics.RecordRows("sales", result.SalesStats)

	rawStudents := make([]model.RawStudent, 0, len(studentRows))
	for _, row := range studentRows {
		rawStudents = append(rawStudents, model.RawStudentFromRow(row))
	}
	studentTransformer := transform.NewStudentTransformer(p.cfg.ReferenceDate, logger)
	result.Students = studentTransformer.TransformAll(rawStudents)
	result.StudentStats = studentTransformer.Stats()
	result.Metrics.RecordRows("students", result.StudentStats)
	endStage()

	endStage = result.Metrics.StartStage("quality")
	salesAgg := quality.NewSalesAggregator()
	for _, rec := range result.Sales {
		salesAgg.Add(rec)
	}
	studentAgg := quality.NewStudentAggregator()
	for _, rec := range result.Students {
		studentAgg.Add(rec)
	}
	result.Report = model.QualityReport{
		Sales:    salesAgg.Summary(),
		Students: studentAgg.Summary(),
	}
	result.Scores = quality.ComputeScores(result.Report.Sales, result.Report.Students)
	endStage()

	endStage = result.Metrics.StartStage("analytics")
	result.SalesAnalytics = analytics.AnalyzeSales(result.Sales)
	result.StudentAnalytics = analytics.AnalyzeStudents(result.Students)
	endStage()

	endStage = result.Metrics.StartStage("star")
	result.SalesStar = star.BuildSalesStar(result.Sales, logger)
	result.StudentStar = star.BuildStudentStar(result.Students, logger)
	endStage()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	endStage = result.Metrics.StartStage("export")
	exporter := export.NewCSVExporter(p.cfg.OutputDir, logger)
	if err := exporter.ExportSales(result.Sales); err != nil {
		return nil, err
	}
	if err := exporter.ExportStudents(result.Students); err != nil {
		return nil, err
	}
	if err := exporter.ExportSalesStar(result.SalesStar); err != nil {
		return nil, err
	}
	if err := exporter.ExportStudentStar(result.StudentStar); err != nil {
		return nil, err
	}
	if err := export.WriteQualityReport(p.cfg.OutputDir, result.Report, logger); err != nil {
		return nil, err
	}
	endStage()

	result.Metrics.Complete()
	logger.Info("Pipeline stages finished", zap.String("timings", result.Metrics.Summary()))
	return result, nil
}

// LoadWarehouse pushes both star schemas into PostgreSQL.
func (p *Pipeline) LoadWarehouse(ctx context.Context, pgCfg *config.PostgresConfig, result *Result) error {
	wh, err := export.NewWarehouse(ctx, pgCfg, p.cfg.BatchSize)
	if err != nil {
		return err
	}
	defer wh.Close()

	if err := wh.EnsureSchema(ctx); err != nil {
		return err
	}
	if err := wh.CreateTables(ctx); err != nil {
		return err
	}
	if err := wh.LoadSalesStar(ctx, result.SalesStar); err != nil {
		return err
	}
	if err := wh.LoadStudentStar(ctx, result.StudentStar); err != nil {
		return err
	}

	p.logger.Info("Warehouse load completed",
		zap.String("runID", result.RunID.String()),
		zap.String("schema", pgCfg.Schema))
	return nil
}
