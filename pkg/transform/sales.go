// pkg/transform/sales.go
package transform

import (
	"go.uber.org/zap"

	"github.com/meridian-data/starmart/pkg/field"
	"github.com/meridian-data/starmart/pkg/model"
)

// SalesTransformer validates and types raw sales inventory rows.
type SalesTransformer struct {
	logger *zap.Logger
	stats  Stats
}

// NewSalesTransformer creates a sales transformer.
func NewSalesTransformer(logger *zap.Logger) *SalesTransformer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SalesTransformer{logger: logger}
}

// Transform validates one raw sales row. The returned bool reports whether
// the row was kept; skipped rows produce no canonical record.
//
// Quality rules:
//   - ItemID must be a valid non-negative integer, otherwise the row is skipped.
//   - Quantity defaults to 0 when invalid.
//   - Price defaults to 0.0 when invalid; has_valid_price is computed from the
//     canonical price, so a defaulted price and a genuine zero are
//     indistinguishable downstream. That is the documented behavior.
//   - Supplier defaults to "Unknown" when missing.
func (t *SalesTransformer) Transform(row model.RawSales, index int) (model.CanonicalSales, bool) {
	t.stats.Processed++

	if row.Empty() {
		t.stats.Skipped++
		t.logger.Debug("Skipping empty sales row", zap.Int("row", index))
		return model.CanonicalSales{}, false
	}

	itemID, idCause := field.Integer(row.ItemID, false)
	if !idCause.Valid() {
		t.stats.Skipped++
		t.logger.Debug("Skipping sales row without valid ItemID",
			zap.Int("row", index),
			zap.String("itemID", row.ItemID),
			zap.String("cause", idCause.String()))
		return model.CanonicalSales{}, false
	}

	quantity, qCause := field.Integer(row.Quantity, false)
	if !qCause.Valid() {
		quantity = 0
	}

	price, pCause := field.Float(row.Price, false)
	if !pCause.Valid() {
		price = 0.0
	}

	dateAdded, dateCause := field.Date(row.DateAdded)

	supplier, supplierCause := field.Text(row.Supplier)
	if !supplierCause.Valid() {
		supplier = "Unknown"
	}

	itemName, nameCause := field.Text(row.ItemName)
	category, categoryCause := field.Text(row.Category)

	rec := model.CanonicalSales{
		ItemID:        itemID,
		ItemName:      nullString(itemName, nameCause),
		Category:      nullString(category, categoryCause),
		Quantity:      quantity,
		Price:         price,
		Supplier:      supplier,
		DateAdded:     nullTime(dateAdded, dateCause),
		TotalValue:    round2(float64(quantity) * price),
		HasValidDate:  dateCause.Valid(),
		HasValidPrice: price > 0,
	}

	t.stats.Kept++
	return rec, true
}

// TransformAll runs Transform over a batch in input order and logs a summary.
func (t *SalesTransformer) TransformAll(rows []model.RawSales) []model.CanonicalSales {
	records := make([]model.CanonicalSales, 0, len(rows))
	for i, row := range rows {
		if rec, ok := t.Transform(row, i); ok {
			records = append(records, rec)
		}
	}

	t.logger.Info("Transformed sales rows",
		zap.Int("processed", t.stats.Processed),
		zap.Int("kept", t.stats.Kept),
		zap.Int("skipped", t.stats.Skipped))
	return records
}

// Stats returns the running row counts.
func (t *SalesTransformer) Stats() Stats {
	return t.stats
}
