// pkg/analytics/student.go
package analytics

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/meridian-data/starmart/pkg/model"
)

// AgeDistribution buckets valid ages into fixed bands.
type AgeDistribution struct {
	Under20 int `json:"under_20"`
	From20  int `json:"20_to_25"`
	From25  int `json:"25_to_30"`
	From30  int `json:"30_to_35"`
	Over35  int `json:"over_35"`
}

// EnrollmentStats summarizes tenure over valid days-enrolled values.
type EnrollmentStats struct {
	MeanDays         float64 `json:"mean_days"`
	MedianDays       float64 `json:"median_days"`
	MinDays          int64   `json:"min_days"`
	MaxDays          int64   `json:"max_days"`
	RecentlyEnrolled int     `json:"recently_enrolled"`
}

// GradeStats summarizes grades on a GPA scale.
type GradeStats struct {
	MeanGPA      float64 `json:"mean_gpa"`
	MedianGPA    float64 `json:"median_gpa"`
	FailingCount int     `json:"failing_count"`
}

// StudentAnalytics is the full descriptive view of one student run.
type StudentAnalytics struct {
	Ages            *DistributionStats `json:"age_statistics,omitempty"`
	AgeDistribution *AgeDistribution   `json:"age_distribution,omitempty"`
	AgeOutliers     *OutlierStats      `json:"age_outliers,omitempty"`
	Enrollment      *EnrollmentStats   `json:"enrollment_statistics,omitempty"`
	Grades          *GradeStats        `json:"grade_statistics,omitempty"`
	GenderCounts    map[string]int     `json:"gender_distribution,omitempty"`
}

// gpaScale maps letter grades to grade points. Grades outside the scale
// score 0.
var gpaScale = map[string]float64{
	"A+": 4.3, "A": 4.0, "A-": 3.7,
	"B+": 3.3, "B": 3.0, "B-": 2.7,
	"C+": 2.3, "C": 2.0, "C-": 1.7,
	"D": 1.0, "F": 0.0,
}

// AnalyzeStudents computes descriptive statistics over canonical student
// records. Null ages, dates, grades, and genders are excluded.
func AnalyzeStudents(records []model.CanonicalStudent) StudentAnalytics {
	var ages, days []float64
	var grades []string
	genders := make(map[string]int)

	for _, rec := range records {
		if rec.Age.Valid {
			ages = append(ages, float64(rec.Age.Int64))
		}
		if rec.DaysEnrolled.Valid {
			days = append(days, float64(rec.DaysEnrolled.Int64))
		}
		if rec.Grade.Valid {
			grades = append(grades, rec.Grade.String)
		}
		if rec.Gender.Valid {
			genders[rec.Gender.String]++
		}
	}

	a := StudentAnalytics{
		Ages:        describe(ages),
		AgeOutliers: outliers(ages),
	}

	if len(ages) > 0 {
		dist := &AgeDistribution{}
		for _, age := range ages {
			switch {
			case age < 20:
				dist.Under20++
			case age < 25:
				dist.From20++
			case age < 30:
				dist.From25++
			case age < 35:
				dist.From30++
			default:
				dist.Over35++
			}
		}
		a.AgeDistribution = dist
	}

	if stats := describe(days); stats != nil {
		recent := 0
		for _, d := range days {
			if d < 365 {
				recent++
			}
		}
		a.Enrollment = &EnrollmentStats{
			MeanDays:         stats.Mean,
			MedianDays:       stats.Median,
			MinDays:          int64(stats.Min),
			MaxDays:          int64(stats.Max),
			RecentlyEnrolled: recent,
		}
	}

	if len(grades) > 0 {
		points := make([]float64, len(grades))
		failing := 0
		for i, g := range grades {
			points[i] = gpaScale[g]
			if points[i] == 0 {
				failing++
			}
		}
		sorted := append([]float64(nil), points...)
		sort.Float64s(sorted)
		a.Grades = &GradeStats{
			MeanGPA:      stat.Mean(points, nil),
			MedianGPA:    percentile(sorted, 50),
			FailingCount: failing,
		}
	}

	if len(genders) > 0 {
		a.GenderCounts = genders
	}

	return a
}
