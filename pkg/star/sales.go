// pkg/star/sales.go
package star

import (
	"database/sql"

	"go.uber.org/zap"

	"github.com/meridian-data/starmart/pkg/model"
)

// SalesStar is the assembled sales star schema for one run.
type SalesStar struct {
	Items      []model.DimItem
	Suppliers  []model.DimSupplier
	Categories []model.DimCategory
	Facts      []model.FactInventory
}

// BuildSalesStar walks canonical sales records in input order, deduplicates
// the item, supplier, and category dimensions, and emits one fact row per
// record. Items dedup on their source item id; the first occurrence supplies
// the descriptive attributes. A null category yields a null foreign key and
// no dimension entry.
func BuildSalesStar(records []model.CanonicalSales, logger *zap.Logger) SalesStar {
	if logger == nil {
		logger = zap.NewNop()
	}

	suppliers := NewDimension()
	categories := NewDimension()
	seenItems := make(map[int64]struct{})

	star := SalesStar{
		Facts: make([]model.FactInventory, 0, len(records)),
	}

	for _, rec := range records {
		if _, ok := seenItems[rec.ItemID]; !ok {
			seenItems[rec.ItemID] = struct{}{}
			star.Items = append(star.Items, model.DimItem{
				ItemID:   rec.ItemID,
				ItemName: rec.ItemName,
				Category: rec.Category,
			})
		}

		supplierID, added := suppliers.Resolve(rec.Supplier)
		if added {
			star.Suppliers = append(star.Suppliers, model.DimSupplier{
				SupplierID:   supplierID,
				SupplierName: rec.Supplier,
			})
		}

		var categoryID sql.NullInt64
		if rec.Category.Valid {
			id, added := categories.Resolve(rec.Category.String)
			if added {
				star.Categories = append(star.Categories, model.DimCategory{
					CategoryID:   id,
					CategoryName: rec.Category.String,
				})
			}
			categoryID = sql.NullInt64{Int64: id, Valid: true}
		}

		star.Facts = append(star.Facts, model.FactInventory{
			ItemID:        rec.ItemID,
			SupplierID:    supplierID,
			CategoryID:    categoryID,
			DateAdded:     rec.DateAdded,
			Quantity:      rec.Quantity,
			Price:         rec.Price,
			TotalValue:    rec.TotalValue,
			HasValidDate:  rec.HasValidDate,
			HasValidPrice: rec.HasValidPrice,
		})
	}

	logger.Info("Built sales star schema",
		zap.Int("items", len(star.Items)),
		zap.Int("suppliers", len(star.Suppliers)),
		zap.Int("categories", len(star.Categories)),
		zap.Int("facts", len(star.Facts)))
	return star
}
