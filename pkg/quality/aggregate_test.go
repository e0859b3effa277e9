// pkg/quality/aggregate_test.go
package quality

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridian-data/starmart/pkg/model"
)

func TestSalesAggregatorCounts(t *testing.T) {
	agg := NewSalesAggregator()

	agg.Add(model.CanonicalSales{Quantity: 2, Price: 10, TotalValue: 20, HasValidDate: true, HasValidPrice: true})
	agg.Add(model.CanonicalSales{Quantity: 0, Price: 0, TotalValue: 0, HasValidDate: false, HasValidPrice: false})
	agg.Add(model.CanonicalSales{Quantity: 1, Price: 4, TotalValue: 4, HasValidDate: true, HasValidPrice: true})

	q := agg.Summary()
	assert.Equal(t, 3, q.TotalRecords)
	assert.Equal(t, 1, q.MissingDates)
	assert.Equal(t, 1, q.ZeroPrices)
	assert.Equal(t, 1, q.ZeroQuantity)
	require.NotNil(t, q.AvgTotalValue)
	assert.InDelta(t, 8.0, *q.AvgTotalValue, 1e-9)
}

func TestSalesAggregatorEmptyMeanIsNull(t *testing.T) {
	q := NewSalesAggregator().Summary()
	assert.Equal(t, 0, q.TotalRecords)
	assert.Nil(t, q.AvgTotalValue)
}

func TestStudentAggregatorCounts(t *testing.T) {
	agg := NewStudentAggregator()

	agg.Add(model.CanonicalStudent{
		Age:                    sql.NullInt64{Int64: 20, Valid: true},
		Major:                  sql.NullString{String: "Physics", Valid: true},
		HasValidAge:            true,
		HasValidEnrollmentDate: true,
	})
	agg.Add(model.CanonicalStudent{
		HasValidAge:            false,
		HasValidEnrollmentDate: false,
	})
	agg.Add(model.CanonicalStudent{
		Age:                    sql.NullInt64{Int64: 30, Valid: true},
		HasValidAge:            true,
		HasValidEnrollmentDate: true,
	})

	q := agg.Summary()
	assert.Equal(t, 3, q.TotalRecords)
	assert.Equal(t, 1, q.MissingAges)
	assert.Equal(t, 1, q.MissingEnrollmentDates)
	assert.Equal(t, 2, q.MissingMajors)
	require.NotNil(t, q.AverageAge)
	// Mean over the two valid ages only; the null age does not dilute it.
	assert.InDelta(t, 25.0, *q.AverageAge, 1e-9)
}

func TestStudentAggregatorNoValidAges(t *testing.T) {
	agg := NewStudentAggregator()
	agg.Add(model.CanonicalStudent{HasValidAge: false})

	q := agg.Summary()
	assert.Equal(t, 1, q.TotalRecords)
	assert.Nil(t, q.AverageAge)
}

func TestComputeScores(t *testing.T) {
	sales := model.SalesQuality{TotalRecords: 10, ZeroPrices: 2, MissingDates: 4}
	students := model.StudentQuality{TotalRecords: 10, MissingAges: 0, MissingEnrollmentDates: 2}

	scores := ComputeScores(sales, students)

	require.NotNil(t, scores.Sales)
	assert.InDelta(t, 70.0, *scores.Sales, 1e-9)
	require.NotNil(t, scores.Student)
	assert.InDelta(t, 90.0, *scores.Student, 1e-9)
	require.NotNil(t, scores.Overall)
	assert.InDelta(t, 80.0, *scores.Overall, 1e-9)
}

func TestComputeScoresEmptyDomains(t *testing.T) {
	scores := ComputeScores(model.SalesQuality{}, model.StudentQuality{})
	assert.Nil(t, scores.Sales)
	assert.Nil(t, scores.Student)
	assert.Nil(t, scores.Overall)
}

func TestRating(t *testing.T) {
	assert.Equal(t, "Excellent", Rating(95))
	assert.Equal(t, "Good", Rating(80))
	assert.Equal(t, "Fair", Rating(65))
	assert.Equal(t, "Needs Improvement", Rating(40))
}
