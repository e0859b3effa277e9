// pkg/model/records.go
package model

import (
	"database/sql"
)

// RawSales is one unparsed row from the sales inventory feed. Every field is
// raw text exactly as the loader read it; empty string means absent.
type RawSales struct {
	ItemID    string
	ItemName  string
	Quantity  string
	Price     string
	DateAdded string
	Supplier  string
	Category  string
}

// RawSalesFromRow projects a header-keyed row onto the sales schema.
func RawSalesFromRow(row map[string]string) RawSales {
	return RawSales{
		ItemID:    row["ItemID"],
		ItemName:  row["ItemName"],
		Quantity:  row["Quantity"],
		Price:     row["Price"],
		DateAdded: row["DateAdded"],
		Supplier:  row["Supplier"],
		Category:  row["Category"],
	}
}

// Empty reports whether every field of the row is blank.
func (r RawSales) Empty() bool {
	return r.ItemID == "" && r.ItemName == "" && r.Quantity == "" &&
		r.Price == "" && r.DateAdded == "" && r.Supplier == "" && r.Category == ""
}

// RawStudent is one unparsed row from the student information feed.
type RawStudent struct {
	StudentID      string
	Name           string
	Age            string
	Gender         string
	Grade          string
	EnrollmentDate string
	Major          string
}

// RawStudentFromRow projects a header-keyed row onto the student schema.
func RawStudentFromRow(row map[string]string) RawStudent {
	return RawStudent{
		StudentID:      row["StudentID"],
		Name:           row["Name"],
		Age:            row["Age"],
		Gender:         row["Gender"],
		Grade:          row["Grade"],
		EnrollmentDate: row["EnrollmentDate"],
		Major:          row["Major"],
	}
}

// Empty reports whether every field of the row is blank.
func (r RawStudent) Empty() bool {
	return r.StudentID == "" && r.Name == "" && r.Age == "" &&
		r.Gender == "" && r.Grade == "" && r.EnrollmentDate == "" && r.Major == ""
}

// CanonicalSales is the validated, typed projection of one kept sales row.
// It is immutable after creation.
type CanonicalSales struct {
	ItemID        int64          `db:"item_id"`
	ItemName      sql.NullString `db:"item_name"`
	Category      sql.NullString `db:"category"`
	Quantity      int64          `db:"quantity"`
	Price         float64        `db:"price"`
	Supplier      string         `db:"supplier"`
	DateAdded     sql.NullTime   `db:"date_added"`
	TotalValue    float64        `db:"total_value"`
	HasValidDate  bool           `db:"has_valid_date"`
	HasValidPrice bool           `db:"has_valid_price"`
}

// CanonicalStudent is the validated, typed projection of one kept student row.
type CanonicalStudent struct {
	StudentID              int64          `db:"student_id"`
	Name                   sql.NullString `db:"name"`
	Age                    sql.NullInt64  `db:"age"`
	Gender                 sql.NullString `db:"gender"`
	Grade                  sql.NullString `db:"grade"`
	Major                  sql.NullString `db:"major"`
	EnrollmentDate         sql.NullTime   `db:"enrollment_date"`
	DaysEnrolled           sql.NullInt64  `db:"days_enrolled"`
	HasValidAge            bool           `db:"has_valid_age"`
	HasValidEnrollmentDate bool           `db:"has_valid_enrollment_date"`
}
