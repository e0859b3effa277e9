// pkg/model/star.go
package model

import (
	"database/sql"
)

// Dimension and fact rows for the two star schemas. Surrogate ids on the
// supplier, category, and major dimensions are assigned in first-seen order
// during the run; item and student dimensions reuse the source primary key.

// DimItem describes one inventory item, captured from its first occurrence.
type DimItem struct {
	ItemID   int64          `db:"item_id"`
	ItemName sql.NullString `db:"item_name"`
	Category sql.NullString `db:"category"`
}

// DimSupplier maps a surrogate id to a normalized supplier name.
type DimSupplier struct {
	SupplierID   int64  `db:"supplier_id"`
	SupplierName string `db:"supplier_name"`
}

// DimCategory maps a surrogate id to a normalized category name.
type DimCategory struct {
	CategoryID   int64  `db:"category_id"`
	CategoryName string `db:"category_name"`
}

// FactInventory is one inventory measurement tied to its dimensions.
// CategoryID is null when the source row carried no category.
type FactInventory struct {
	ItemID        int64         `db:"item_id"`
	SupplierID    int64         `db:"supplier_id"`
	CategoryID    sql.NullInt64 `db:"category_id"`
	DateAdded     sql.NullTime  `db:"date_added"`
	Quantity      int64         `db:"quantity"`
	Price         float64       `db:"price"`
	TotalValue    float64       `db:"total_value"`
	HasValidDate  bool          `db:"has_valid_date"`
	HasValidPrice bool          `db:"has_valid_price"`
}

// DimStudent describes one student, captured from the first kept row.
type DimStudent struct {
	StudentID int64          `db:"student_id"`
	Name      sql.NullString `db:"name"`
	Age       sql.NullInt64  `db:"age"`
	Gender    sql.NullString `db:"gender"`
}

// DimMajor maps a surrogate id to a normalized major name.
type DimMajor struct {
	MajorID   int64  `db:"major_id"`
	MajorName string `db:"major_name"`
}

// FactEnrollment is one enrollment measurement tied to its dimensions.
// MajorID is null when the source row carried no major.
type FactEnrollment struct {
	StudentID              int64          `db:"student_id"`
	MajorID                sql.NullInt64  `db:"major_id"`
	Grade                  sql.NullString `db:"grade"`
	EnrollmentDate         sql.NullTime   `db:"enrollment_date"`
	DaysEnrolled           sql.NullInt64  `db:"days_enrolled"`
	HasValidAge            bool           `db:"has_valid_age"`
	HasValidEnrollmentDate bool           `db:"has_valid_enrollment_date"`
}
