// pkg/export/csv.go

// Package export writes run outputs: cleaned record CSVs, star-schema table
// CSVs, the JSON quality report, and the PostgreSQL warehouse load.
package export

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"go.uber.org/zap"

	"github.com/meridian-data/starmart/pkg/model"
	"github.com/meridian-data/starmart/pkg/star"
)

const dateLayout = "2006-01-02"

// CSVExporter writes CSV outputs into a single output directory.
type CSVExporter struct {
	outputDir string
	logger    *zap.Logger
}

// NewCSVExporter creates a CSVExporter. A nil logger disables logging.
func NewCSVExporter(outputDir string, logger *zap.Logger) *CSVExporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CSVExporter{outputDir: outputDir, logger: logger}
}

// ExportSales writes the cleaned sales records to cleaned_sales_data.csv.
func (e *CSVExporter) ExportSales(records []model.CanonicalSales) error {
	header := []string{"item_id", "item_name", "category", "quantity", "price",
		"supplier", "date_added", "total_value", "has_valid_date", "has_valid_price"}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			strconv.FormatInt(r.ItemID, 10),
			nullString(r.ItemName),
			nullString(r.Category),
			strconv.FormatInt(r.Quantity, 10),
			money(r.Price),
			r.Supplier,
			nullDate(r.DateAdded),
			money(r.TotalValue),
			strconv.FormatBool(r.HasValidDate),
			strconv.FormatBool(r.HasValidPrice),
		})
	}

	return e.write("cleaned_sales_data.csv", header, rows)
}

// ExportStudents writes the cleaned student records to cleaned_student_data.csv.
func (e *CSVExporter) ExportStudents(records []model.CanonicalStudent) error {
	header := []string{"student_id", "name", "age", "gender", "grade", "major",
		"enrollment_date", "days_enrolled", "has_valid_age", "has_valid_enrollment_date"}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			strconv.FormatInt(r.StudentID, 10),
			nullString(r.Name),
			nullInt(r.Age),
			nullString(r.Gender),
			nullString(r.Grade),
			nullString(r.Major),
			nullDate(r.EnrollmentDate),
			nullInt(r.DaysEnrolled),
			strconv.FormatBool(r.HasValidAge),
			strconv.FormatBool(r.HasValidEnrollmentDate),
		})
	}

	return e.write("cleaned_student_data.csv", header, rows)
}

// ExportSalesStar writes the sales dimension and fact tables.
func (e *CSVExporter) ExportSalesStar(s star.SalesStar) error {
	itemRows := make([][]string, 0, len(s.Items))
	for _, d := range s.Items {
		itemRows = append(itemRows, []string{
			strconv.FormatInt(d.ItemID, 10),
			nullString(d.ItemName),
			nullString(d.Category),
		})
	}
	if err := e.write("dim_item.csv",
		[]string{"item_id", "item_name", "category"}, itemRows); err != nil {
		return err
	}

	supplierRows := make([][]string, 0, len(s.Suppliers))
	for _, d := range s.Suppliers {
		supplierRows = append(supplierRows, []string{
			strconv.FormatInt(d.SupplierID, 10),
			d.SupplierName,
		})
	}
	if err := e.write("dim_supplier.csv",
		[]string{"supplier_id", "supplier_name"}, supplierRows); err != nil {
		return err
	}

	categoryRows := make([][]string, 0, len(s.Categories))
	for _, d := range s.Categories {
		categoryRows = append(categoryRows, []string{
			strconv.FormatInt(d.CategoryID, 10),
			d.CategoryName,
		})
	}
	if err := e.write("dim_category.csv",
		[]string{"category_id", "category_name"}, categoryRows); err != nil {
		return err
	}

	factRows := make([][]string, 0, len(s.Facts))
	for _, f := range s.Facts {
		factRows = append(factRows, []string{
			strconv.FormatInt(f.ItemID, 10),
			strconv.FormatInt(f.SupplierID, 10),
			nullInt(f.CategoryID),
			nullDate(f.DateAdded),
			strconv.FormatInt(f.Quantity, 10),
			money(f.Price),
			money(f.TotalValue),
			strconv.FormatBool(f.HasValidDate),
			strconv.FormatBool(f.HasValidPrice),
		})
	}
	return e.write("fact_inventory.csv",
		[]string{"item_id", "supplier_id", "category_id", "date_added", "quantity",
			"price", "total_value", "has_valid_date", "has_valid_price"}, factRows)
}

// ExportStudentStar writes the student dimension and fact tables.
func (e *CSVExporter) ExportStudentStar(s star.StudentStar) error {
	studentRows := make([][]string, 0, len(s.Students))
	for _, d := range s.Students {
		studentRows = append(studentRows, []string{
			strconv.FormatInt(d.StudentID, 10),
			nullString(d.Name),
			nullInt(d.Age),
			nullString(d.Gender),
		})
	}
	if err := e.write("dim_student.csv",
		[]string{"student_id", "name", "age", "gender"}, studentRows); err != nil {
		return err
	}

	majorRows := make([][]string, 0, len(s.Majors))
	for _, d := range s.Majors {
		majorRows = append(majorRows, []string{
			strconv.FormatInt(d.MajorID, 10),
			d.MajorName,
		})
	}
	if err := e.write("dim_major.csv",
		[]string{"major_id", "major_name"}, majorRows); err != nil {
		return err
	}

	factRows := make([][]string, 0, len(s.Facts))
	for _, f := range s.Facts {
		factRows = append(factRows, []string{
			strconv.FormatInt(f.StudentID, 10),
			nullInt(f.MajorID),
			nullString(f.Grade),
			nullDate(f.EnrollmentDate),
			nullInt(f.DaysEnrolled),
			strconv.FormatBool(f.HasValidAge),
			strconv.FormatBool(f.HasValidEnrollmentDate),
		})
	}
	return e.write("fact_enrollment.csv",
		[]string{"student_id", "major_id", "grade", "enrollment_date", "days_enrolled",
			"has_valid_age", "has_valid_enrollment_date"}, factRows)
}

// write creates the output directory if needed and writes one CSV file.
func (e *CSVExporter) write(name string, header []string, rows [][]string) error {
	if err := os.MkdirAll(e.outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", e.outputDir, err)
	}

	path := filepath.Join(e.outputDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write header to %s: %w", path, err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write row to %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}

	e.logger.Info("Exported CSV file",
		zap.String("path", path),
		zap.Int("rows", len(rows)))
	return nil
}

// Null fields render as empty strings so spreadsheet tools and the warehouse
// loader both read them as missing.

func nullString(v sql.NullString) string {
	if !v.Valid {
		return ""
	}
	return v.String
}

func nullInt(v sql.NullInt64) string {
	if !v.Valid {
		return ""
	}
	return strconv.FormatInt(v.Int64, 10)
}

func nullDate(v sql.NullTime) string {
	if !v.Valid {
		return ""
	}
	return v.Time.Format(dateLayout)
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
