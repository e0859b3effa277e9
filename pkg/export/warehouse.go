// pkg/export/warehouse.go
package export

import (
	"context"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/meridian-data/starmart/pkg/config"
	"github.com/meridian-data/starmart/pkg/star"
)

// Warehouse loads star-schema tables into PostgreSQL. Surrogate ids assigned
// during the run are inserted verbatim; the database never reassigns them.
type Warehouse struct {
	db        *sqlx.DB
	cfg       *config.PostgresConfig
	batchSize int
	logger    *zap.Logger
}

// NewWarehouse opens and verifies a PostgreSQL connection.
func NewWarehouse(ctx context.Context, cfg *config.PostgresConfig, batchSize int) (*Warehouse, error) {
	logger := zap.L().Named("warehouse")

	logger.Info("Connecting to PostgreSQL",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("database", cfg.Database),
		zap.String("schema", cfg.Schema))

	db, err := sqlx.Open("pgx", cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize PostgreSQL connection: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if cfg.StatementTimeout > 0 {
		_, err = db.ExecContext(ctx,
			fmt.Sprintf("SET statement_timeout = %d", cfg.StatementTimeout.Milliseconds()))
		if err != nil {
			logger.Warn("Failed to set statement timeout", zap.Error(err))
		}
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	if batchSize <= 0 {
		batchSize = 1000
	}

	return &Warehouse{
		db:        db,
		cfg:       cfg,
		batchSize: batchSize,
		logger:    logger,
	}, nil
}

// Close closes the database connection.
func (w *Warehouse) Close() error {
	w.logger.Info("Closing PostgreSQL connection")
	return w.db.Close()
}

// EnsureSchema creates the target schema if it does not exist.
func (w *Warehouse) EnsureSchema(ctx context.Context) error {
	_, err := w.db.ExecContext(ctx,
		fmt.Sprintf("CREATE SCHEMA IF NOT EXISTS %s", w.cfg.Schema))
	if err != nil {
		return fmt.Errorf("failed to create schema %s: %w", w.cfg.Schema, err)
	}
	return nil
}

// CreateTables drops and recreates every star-schema table. Each run replaces
// the previous warehouse contents wholesale.
func (w *Warehouse) CreateTables(ctx context.Context) error {
	s := w.cfg.Schema

	drops := []string{
		fmt.Sprintf("DROP TABLE IF EXISTS %s.fact_inventory CASCADE", s),
		fmt.Sprintf("DROP TABLE IF EXISTS %s.fact_enrollment CASCADE", s),
		fmt.Sprintf("DROP TABLE IF EXISTS %s.dim_item CASCADE", s),
		fmt.Sprintf("DROP TABLE IF EXISTS %s.dim_supplier CASCADE", s),
		fmt.Sprintf("DROP TABLE IF EXISTS %s.dim_category CASCADE", s),
		fmt.Sprintf("DROP TABLE IF EXISTS %s.dim_student CASCADE", s),
		fmt.Sprintf("DROP TABLE IF EXISTS %s.dim_major CASCADE", s),
	}
	for _, stmt := range drops {
		if _, err := w.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to drop table: %w", err)
		}
	}

	creates := []string{
		fmt.Sprintf(`CREATE TABLE %s.dim_item (
			item_id INT PRIMARY KEY,
			item_name TEXT,
			category TEXT
		)`, s),
		fmt.Sprintf(`CREATE TABLE %s.dim_supplier (
			supplier_id INT PRIMARY KEY,
			supplier_name TEXT UNIQUE
		)`, s),
		fmt.Sprintf(`CREATE TABLE %s.dim_category (
			category_id INT PRIMARY KEY,
			category_name TEXT UNIQUE
		)`, s),
		fmt.Sprintf(`CREATE TABLE %s.fact_inventory (
			inventory_id SERIAL PRIMARY KEY,
			item_id INT,
			supplier_id INT,
			category_id INT,
			date_added DATE,
			quantity INT,
			price NUMERIC(10,2),
			total_value NUMERIC(10,2),
			has_valid_date BOOLEAN,
			has_valid_price BOOLEAN,
			FOREIGN KEY (item_id) REFERENCES %s.dim_item(item_id),
			FOREIGN KEY (supplier_id) REFERENCES %s.dim_supplier(supplier_id),
			FOREIGN KEY (category_id) REFERENCES %s.dim_category(category_id)
		)`, s, s, s, s),
		fmt.Sprintf(`CREATE TABLE %s.dim_student (
			student_id INT PRIMARY KEY,
			name TEXT,
			age INT,
			gender TEXT
		)`, s),
		fmt.Sprintf(`CREATE TABLE %s.dim_major (
			major_id INT PRIMARY KEY,
			major_name TEXT UNIQUE
		)`, s),
		fmt.Sprintf(`CREATE TABLE %s.fact_enrollment (
			enrollment_id SERIAL PRIMARY KEY,
			student_id INT,
			major_id INT,
			grade TEXT,
			enrollment_date DATE,
			days_enrolled INT,
			has_valid_age BOOLEAN,
			has_valid_enrollment_date BOOLEAN,
			FOREIGN KEY (student_id) REFERENCES %s.dim_student(student_id),
			FOREIGN KEY (major_id) REFERENCES %s.dim_major(major_id)
		)`, s, s, s),
	}
	for _, stmt := range creates {
		if _, err := w.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	w.logger.Info("Created star schema tables", zap.String("schema", s))
	return nil
}

// LoadSalesStar loads the sales dimensions and facts in one transaction.
func (w *Warehouse) LoadSalesStar(ctx context.Context, s star.SalesStar) error {
	tx, err := w.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := namedBatch(ctx, tx, w.batchSize, len(s.Items),
		fmt.Sprintf(`INSERT INTO %s.dim_item (item_id, item_name, category)
			VALUES (:item_id, :item_name, :category)`, w.cfg.Schema),
		func(lo, hi int) interface{} { return s.Items[lo:hi] }); err != nil {
		return fmt.Errorf("failed to load dim_item: %w", err)
	}

	if err := namedBatch(ctx, tx, w.batchSize, len(s.Suppliers),
		fmt.Sprintf(`INSERT INTO %s.dim_supplier (supplier_id, supplier_name)
			VALUES (:supplier_id, :supplier_name)`, w.cfg.Schema),
		func(lo, hi int) interface{} { return s.Suppliers[lo:hi] }); err != nil {
		return fmt.Errorf("failed to load dim_supplier: %w", err)
	}

	if err := namedBatch(ctx, tx, w.batchSize, len(s.Categories),
		fmt.Sprintf(`INSERT INTO %s.dim_category (category_id, category_name)
			VALUES (:category_id, :category_name)`, w.cfg.Schema),
		func(lo, hi int) interface{} { return s.Categories[lo:hi] }); err != nil {
		return fmt.Errorf("failed to load dim_category: %w", err)
	}

	if err := namedBatch(ctx, tx, w.batchSize, len(s.Facts),
		fmt.Sprintf(`INSERT INTO %s.fact_inventory (
			item_id, supplier_id, category_id, date_added, quantity,
			price, total_value, has_valid_date, has_valid_price
		) VALUES (
			:item_id, :supplier_id, :category_id, :date_added, :quantity,
			:price, :total_value, :has_valid_date, :has_valid_price
		)`, w.cfg.Schema),
		func(lo, hi int) interface{} { return s.Facts[lo:hi] }); err != nil {
		return fmt.Errorf("failed to load fact_inventory: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit sales load: %w", err)
	}

	w.logger.Info("Loaded sales star schema",
		zap.Int("items", len(s.Items)),
		zap.Int("suppliers", len(s.Suppliers)),
		zap.Int("categories", len(s.Categories)),
		zap.Int("facts", len(s.Facts)))
	return nil
}

// LoadStudentStar loads the student dimensions and facts in one transaction.
func (w *Warehouse) LoadStudentStar(ctx context.Context, s star.StudentStar) error {
	tx, err := w.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := namedBatch(ctx, tx, w.batchSize, len(s.Students),
		fmt.Sprintf(`INSERT INTO %s.dim_student (student_id, name, age, gender)
			VALUES (:student_id, :name, :age, :gender)`, w.cfg.Schema),
		func(lo, hi int) interface{} { return s.Students[lo:hi] }); err != nil {
		return fmt.Errorf("failed to load dim_student: %w", err)
	}

	if err := namedBatch(ctx, tx, w.batchSize, len(s.Majors),
		fmt.Sprintf(`INSERT INTO %s.dim_major (major_id, major_name)
			VALUES (:major_id, :major_name)`, w.cfg.Schema),
		func(lo, hi int) interface{} { return s.Majors[lo:hi] }); err != nil {
		return fmt.Errorf("failed to load dim_major: %w", err)
	}

	if err := namedBatch(ctx, tx, w.batchSize, len(s.Facts),
		fmt.Sprintf(`INSERT INTO %s.fact_enrollment (
			student_id, major_id, grade, enrollment_date, days_enrolled,
			has_valid_age, has_valid_enrollment_date
		) VALUES (
			:student_id, :major_id, :grade, :enrollment_date, :days_enrolled,
			:has_valid_age, :has_valid_enrollment_date
		)`, w.cfg.Schema),
		func(lo, hi int) interface{} { return s.Facts[lo:hi] }); err != nil {
		return fmt.Errorf("failed to load fact_enrollment: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit student load: %w", err)
	}

	w.logger.Info("Loaded student star schema",
		zap.Int("students", len(s.Students)),
		zap.Int("majors", len(s.Majors)),
		zap.Int("facts", len(s.Facts)))
	return nil
}

// namedBatch runs a named insert over row slices in batches. The slice
// function returns the rows in [lo, hi) as a value NamedExecContext accepts.
func namedBatch(
	ctx context.Context,
	tx *sqlx.Tx,
	batchSize int,
	total int,
	query string,
	slice func(lo, hi int) interface{},
) error {
	for lo := 0; lo < total; lo += batchSize {
		hi := lo + batchSize
		if hi > total {
			hi = total
		}
		if _, err := tx.NamedExecContext(ctx, query, slice(lo, hi)); err != nil {
			return err
		}
	}
	return nil
}
