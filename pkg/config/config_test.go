// pkg/config/config_test.go
package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("SALES_PATH", "")
	t.Setenv("STUDENTS_PATH", "")
	t.Setenv("OUTPUT_DIR", "")
	t.Setenv("REFERENCE_DATE", "")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "sales_inventory_dataset.csv", cfg.SalesPath)
	assert.Equal(t, "student_information_dataset.csv", cfg.StudentsPath)
	assert.Equal(t, "output_files", cfg.OutputDir)
	assert.Equal(t, 1000, cfg.BatchSize)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.ReferenceDate.IsZero())
}

func TestLoadConfigReferenceDate(t *testing.T) {
	t.Setenv("REFERENCE_DATE", "2025-09-01")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC), cfg.ReferenceDate)
}

func TestLoadConfigBadReferenceDate(t *testing.T) {
	t.Setenv("REFERENCE_DATE", "01/09/2025")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	cfg := &Config{SalesPath: "a.csv", StudentsPath: "b.csv", OutputDir: "out", BatchSize: 100}
	assert.NoError(t, cfg.Validate())

	cfg.BatchSize = 0
	assert.Error(t, cfg.Validate())

	cfg.BatchSize = 100
	cfg.OutputDir = ""
	assert.Error(t, cfg.Validate())
}

func TestLoadPostgresConfig(t *testing.T) {
	t.Setenv("POSTGRES_USER", "etl")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("POSTGRES_DB", "warehouse")
	t.Setenv("POSTGRES_SCHEMA", "")

	cfg, err := LoadPostgresConfig()

	require.NoError(t, err)
	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, 5432, cfg.Port)
	assert.Equal(t, "starmart", cfg.Schema)
	assert.Contains(t, cfg.ConnectionString(), "dbname=warehouse")
	assert.Contains(t, cfg.ConnectionString(), "sslmode=disable")
}

func TestLoadPostgresConfigMissingUser(t *testing.T) {
	t.Setenv("POSTGRES_USER", "")

	_, err := LoadPostgresConfig()
	assert.Error(t, err)
}
