// pkg/analytics/sales.go
package analytics

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/meridian-data/starmart/pkg/model"
)

// InventoryStats summarizes stock levels over positive quantities.
type InventoryStats struct {
	TotalItems     int64   `json:"total_items"`
	MeanQuantity   float64 `json:"mean_quantity"`
	MedianQuantity float64 `json:"median_quantity"`
	LowStockCount  int     `json:"low_stock_count"`
}

// ValueStats summarizes inventory value over positive total values.
type ValueStats struct {
	TotalValue     float64 `json:"total_value"`
	MeanValue      float64 `json:"mean_value"`
	HighValueItems int     `json:"high_value_items"`
}

// PriceDistribution buckets positive prices into fixed bands.
type PriceDistribution struct {
	Low     int `json:"low"`     // under 50
	Medium  int `json:"medium"`  // 50 to under 100
	High    int `json:"high"`    // 100 to under 200
	Premium int `json:"premium"` // 200 and up
}

// SalesAnalytics is the full descriptive view of one sales run. Sections are
// nil when no observations qualified.
type SalesAnalytics struct {
	Prices                   *DistributionStats `json:"price_statistics,omitempty"`
	PriceOutliers            *OutlierStats      `json:"outliers,omitempty"`
	Inventory                *InventoryStats    `json:"inventory_statistics,omitempty"`
	Value                    *ValueStats        `json:"value_statistics,omitempty"`
	PriceDistribution        *PriceDistribution `json:"price_distribution,omitempty"`
	PriceQuantityCorrelation *float64           `json:"price_quantity_correlation,omitempty"`
}

// AnalyzeSales computes descriptive statistics over canonical sales records.
// Only positive prices, quantities, and total values participate; defaulted
// zeros are treated as missing observations.
func AnalyzeSales(records []model.CanonicalSales) SalesAnalytics {
	var prices, quantities, totalValues []float64
	for _, rec := range records {
		if rec.Price > 0 {
			prices = append(prices, rec.Price)
		}
		if rec.Quantity > 0 {
			quantities = append(quantities, float64(rec.Quantity))
		}
		if rec.TotalValue > 0 {
			totalValues = append(totalValues, rec.TotalValue)
		}
	}

	a := SalesAnalytics{
		Prices:        describe(prices),
		PriceOutliers: outliers(prices),
	}

	if len(quantities) > 0 {
		var total int64
		lowStock := 0
		for _, q := range quantities {
			total += int64(q)
			if q < 10 {
				lowStock++
			}
		}
		sorted := append([]float64(nil), quantities...)
		sort.Float64s(sorted)
		a.Inventory = &InventoryStats{
			TotalItems:     total,
			MeanQuantity:   stat.Mean(quantities, nil),
			MedianQuantity: percentile(sorted, 50),
			LowStockCount:  lowStock,
		}
	}

	if len(totalValues) > 0 {
		sorted := append([]float64(nil), totalValues...)
		sort.Float64s(sorted)
		p75 := percentile(sorted, 75)
		var sum float64
		highValue := 0
		for _, v := range totalValues {
			sum += v
			if v > p75 {
				highValue++
			}
		}
		a.Value = &ValueStats{
			TotalValue:     sum,
			MeanValue:      stat.Mean(totalValues, nil),
			HighValueItems: highValue,
		}
	}

	if len(prices) > 0 {
		dist := &PriceDistribution{}
		for _, p := range prices {
			switch {
			case p < 50:
				dist.Low++
			case p < 100:
				dist.Medium++
			case p < 200:
				dist.High++
			default:
				dist.Premium++
			}
		}
		a.PriceDistribution = dist
	}

	a.PriceQuantityCorrelation = correlation(prices, quantities)

	return a
}
