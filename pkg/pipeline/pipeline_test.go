// pkg/pipeline/pipeline_test.go
package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridian-data/starmart/pkg/config"
)

const salesCSV = `ItemID,ItemName,Quantity,Price,DateAdded,Supplier,Category
1,widget,5,10.50,2025-08-10,supplierA,tools
2,gadget,-3,,2026-13-01,,
abc,broken,1,2.00,2025-01-01,supplierB,tools
3,bolt,12.0,4.25,8/10/2025,supplierA,hardware
`

const studentCSV = `StudentID,Name,Age,Gender,Grade,EnrollmentDate,Major
101,ada lovelace,twenty,female,a+,2025-08-22,physics
102,alan turing,N/A,male,z,,
xyz,broken,20,male,B,2025-01-01,math
`

func writeInputs(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()

	salesPath := filepath.Join(dir, "sales.csv")
	require.NoError(t, os.WriteFile(salesPath, []byte(salesCSV), 0o644))
	studentsPath := filepath.Join(dir, "students.csv")
	require.NoError(t, os.WriteFile(studentsPath, []byte(studentCSV), 0o644))

	return &config.Config{
		SalesPath:     salesPath,
		StudentsPath:  studentsPath,
		OutputDir:     filepath.Join(dir, "out"),
		ReferenceDate: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
		BatchSize:     100,
	}
}

func TestPipelineRun(t *testing.T) {
	cfg := writeInputs(t)

	result, err := New(cfg, nil).Run(context.Background())

	require.NoError(t, err)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", result.RunID.String())

	// One sales row and one student row have unusable primary ids.
	assert.Equal(t, 4, result.SalesStats.Processed)
	assert.Equal(t, 3, result.SalesStats.Kept)
	assert.Equal(t, 1, result.SalesStats.Skipped)
	assert.Equal(t, 2, result.StudentStats.Kept)
	assert.Equal(t, 1, result.StudentStats.Skipped)

	assert.Equal(t, 3, result.Report.Sales.TotalRecords)
	assert.Equal(t, 1, result.Report.Sales.MissingDates)
	assert.Equal(t, 1, result.Report.Sales.ZeroPrices)
	assert.Equal(t, 2, result.Report.Students.TotalRecords)
	assert.Equal(t, 1, result.Report.Students.MissingAges)

	// Both kept sales rows with a supplier normalize to "Suppliera"; the
	// missing supplier becomes "Unknown".
	assert.Len(t, result.SalesStar.Suppliers, 2)
	assert.Len(t, result.SalesStar.Facts, 3)
	assert.Len(t, result.StudentStar.Students, 2)

	require.NotNil(t, result.Scores.Overall)
	assert.NotEmpty(t, result.Metrics.Summary())

	for _, name := range []string{
		"cleaned_sales_data.csv", "cleaned_student_data.csv",
		"dim_item.csv", "dim_supplier.csv", "dim_category.csv", "fact_inventory.csv",
		"dim_student.csv", "dim_major.csv", "fact_enrollment.csv",
		"data_quality_report.json",
	} {
		_, err := os.Stat(filepath.Join(cfg.OutputDir, name))
		assert.NoError(t, err, name)
	}
}

func TestPipelineRunMissingInputAborts(t *testing.T) {
	cfg := writeInputs(t)
	cfg.SalesPath = filepath.Join(t.TempDir(), "absent.csv")

	_, err := New(cfg, nil).Run(context.Background())

	require.Error(t, err)
	// No partial outputs on a failed load.
	_, statErr := os.Stat(cfg.OutputDir)
	assert.True(t, os.IsNotExist(statErr))
}

func TestPipelineRunCancelledContext(t *testing.T) {
	cfg := writeInputs(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(cfg, nil).Run(ctx)
	assert.Error(t, err)
}
