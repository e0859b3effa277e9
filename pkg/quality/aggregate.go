// pkg/quality/aggregate.go

// Package quality accumulates validation outcomes over a canonical record
// stream in a single pass. Aggregators are write-once-per-run: feed every
// record with Add, then call Summary exactly once. Means are computed only
// over non-null observations; a mean over zero observations is reported as
// nil, never as NaN.
package quality

import (
	"github.com/meridian-data/starmart/pkg/model"
)

// SalesAggregator accumulates quality counters over sales records.
type SalesAggregator struct {
	total         int
	missingDates  int
	zeroPrices    int
	zeroQuantity  int
	totalValueSum float64
}

// NewSalesAggregator creates an empty sales aggregator.
func NewSalesAggregator() *SalesAggregator {
	return &SalesAggregator{}
}

// Add accumulates one canonical sales record.
func (a *SalesAggregator) Add(rec model.CanonicalSales) {
	a.total++
	if !rec.HasValidDate {
		a.missingDates++
	}
	if rec.Price == 0 {
		a.zeroPrices++
	}
	if rec.Quantity == 0 {
		a.zeroQuantity++
	}
	a.totalValueSum += rec.TotalValue
}

// Summary finalizes the accumulated counters.
func (a *SalesAggregator) Summary() model.SalesQuality {
	q := model.SalesQuality{
		TotalRecords: a.total,
		MissingDates: a.missingDates,
		ZeroPrices:   a.zeroPrices,
		ZeroQuantity: a.zeroQuantity,
	}
	if a.total > 0 {
		avg := a.totalValueSum / float64(a.total)
		q.AvgTotalValue = &avg
	}
	return q
}

// StudentAggregator accumulates quality counters over student records.
type StudentAggregator struct {
	total                  int
	missingAges            int
	missingEnrollmentDates int
	missingMajors          int
	ageSum                 float64
	ageCount               int
}

// NewStudentAggregator creates an empty student aggregator.
func NewStudentAggregator() *StudentAggregator {
	return &StudentAggregator{}
}

// Add accumulates one canonical student record.
func (a *StudentAggregator) Add(rec model.CanonicalStudent) {
	a.total++
	if !rec.HasValidAge {
		a.missingAges++
	}
	if !rec.HasValidEnrollmentDate {
		a.missingEnrollmentDates++
	}
	if !rec.Major.Valid {
		a.missingMajors++
	}
	if rec.Age.Valid {
		a.ageSum += float64(rec.Age.Int64)
		a.ageCount++
	}
}

// Summary finalizes the accumulated counters.
func (a *StudentAggregator) Summary() model.StudentQuality {
	q := model.StudentQuality{
		TotalRecords:           a.total,
		MissingAges:            a.missingAges,
		MissingEnrollmentDates: a.missingEnrollmentDates,
		MissingMajors:          a.missingMajors,
	}
	if a.ageCount > 0 {
		avg := a.ageSum / float64(a.ageCount)
		q.AverageAge = &avg
	}
	return q
}
