// pkg/quality/score.go
package quality

import (
	"github.com/meridian-data/starmart/pkg/model"
)

// Scores grades overall data quality per domain as a percentage of records
// whose flags validated, averaged across the domain's flags. A score is nil
// when the domain produced no records.
type Scores struct {
	Sales   *float64 `json:"sales_quality_score"`
	Student *float64 `json:"student_quality_score"`
	Overall *float64 `json:"overall_quality_score"`
}

// Rating buckets a score into a human-readable label.
func Rating(score float64) string {
	switch {
	case score >= 90:
		return "Excellent"
	case score >= 75:
		return "Good"
	case score >= 60:
		return "Fair"
	default:
		return "Needs Improvement"
	}
}

// ComputeScores derives quality scores from the finalized summaries.
func ComputeScores(sales model.SalesQuality, students model.StudentQuality) Scores {
	var scores Scores

	if sales.TotalRecords > 0 {
		total := float64(sales.TotalRecords)
		validPrices := total - float64(sales.ZeroPrices)
		validDates := total - float64(sales.MissingDates)
		s := (validPrices/total + validDates/total) / 2 * 100
		scores.Sales = &s
	}

	if students.TotalRecords > 0 {
		total := float64(students.TotalRecords)
		validAges := total - float64(students.MissingAges)
		validDates := total - float64(students.MissingEnrollmentDates)
		s := (validAges/total + validDates/total) / 2 * 100
		scores.Student = &s
	}

	if scores.Sales != nil && scores.Student != nil {
		overall := (*scores.Sales + *scores.Student) / 2
		scores.Overall = &overall
	}

	return scores
}
