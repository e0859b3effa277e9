// pkg/analytics/analytics.go

// Package analytics computes descriptive statistics over canonical records:
// distribution summaries, 2-sigma outlier counts, value binning, and a GPA
// view of letter grades. All statistics are population statistics over the
// already-validated values; null observations are excluded before any math
// runs, so empty inputs simply leave the corresponding section nil.
package analytics

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// DistributionStats summarizes one numeric series.
type DistributionStats struct {
	Mean     float64 `json:"mean"`
	Median   float64 `json:"median"`
	StdDev   float64 `json:"std_dev"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	P25      float64 `json:"percentile_25"`
	P75      float64 `json:"percentile_75"`
	Variance float64 `json:"variance"`
}

// OutlierStats counts observations beyond two standard deviations.
type OutlierStats struct {
	Count         int     `json:"count"`
	ThresholdHigh float64 `json:"threshold_high"`
	ThresholdLow  float64 `json:"threshold_low"`
	Percentage    float64 `json:"percentage"`
}

// describe computes distribution statistics over a copy of values.
func describe(values []float64) *DistributionStats {
	if len(values) == 0 {
		return nil
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	return &DistributionStats{
		Mean:     stat.Mean(values, nil),
		Median:   percentile(sorted, 50),
		StdDev:   stat.PopStdDev(values, nil),
		Min:      floats.Min(sorted),
		Max:      floats.Max(sorted),
		P25:      percentile(sorted, 25),
		P75:      percentile(sorted, 75),
		Variance: stat.PopVariance(values, nil),
	}
}

// percentile computes the p-th percentile of sorted values with linear
// interpolation between the two nearest ranks.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}

	h := (float64(len(sorted)) - 1) * p / 100
	lower := int(math.Floor(h))
	upper := int(math.Ceil(h))
	if lower == upper {
		return sorted[lower]
	}
	return sorted[lower] + (h-float64(lower))*(sorted[upper]-sorted[lower])
}

// outliers counts values more than two standard deviations from the mean.
func outliers(values []float64) *OutlierStats {
	if len(values) == 0 {
		return nil
	}

	mean := stat.Mean(values, nil)
	sd := stat.PopStdDev(values, nil)
	high := mean + 2*sd
	low := mean - 2*sd

	count := 0
	for _, v := range values {
		if v > high || v < low {
			count++
		}
	}

	return &OutlierStats{
		Count:         count,
		ThresholdHigh: high,
		ThresholdLow:  low,
		Percentage:    float64(count) / float64(len(values)) * 100,
	}
}

// correlation computes the Pearson correlation of two equal-length series.
// Returns nil when either series is empty or the lengths differ.
func correlation(x, y []float64) *float64 {
	if len(x) == 0 || len(y) == 0 || len(x) != len(y) {
		return nil
	}
	r := stat.Correlation(x, y, nil)
	return &r
}
