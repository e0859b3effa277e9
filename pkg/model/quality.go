// pkg/model/quality.go
package model

// SalesQuality summarizes validation outcomes over all kept sales records.
// AvgTotalValue is nil when no records were kept.
type SalesQuality struct {
	TotalRecords  int      `json:"total_records"`
	MissingDates  int      `json:"missing_dates"`
	ZeroPrices    int      `json:"zero_prices"`
	ZeroQuantity  int      `json:"zero_quantity"`
	AvgTotalValue *float64 `json:"avg_total_value"`
}

// StudentQuality summarizes validation outcomes over all kept student records.
// AverageAge is nil when no record carried a valid age.
type StudentQuality struct {
	TotalRecords           int      `json:"total_records"`
	MissingAges            int      `json:"missing_ages"`
	MissingEnrollmentDates int      `json:"missing_enrollment_dates"`
	MissingMajors          int      `json:"missing_majors"`
	AverageAge             *float64 `json:"average_age"`
}

// QualityReport is the per-run quality summary exported as JSON.
type QualityReport struct {
	Sales    SalesQuality   `json:"sales_quality"`
	Students StudentQuality `json:"student_quality"`
}
