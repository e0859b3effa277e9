// pkg/source/csv_test.go
package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "sales.csv",
		"item_id,item_name,price\n1,Widget,9.99\n2,Gadget,19.50\n")

	rows, err := NewLoader(nil).Load(path)

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "1", rows[0]["item_id"])
	assert.Equal(t, "Widget", rows[0]["item_name"])
	assert.Equal(t, "19.50", rows[1]["price"])
}

func TestLoadRaggedRows(t *testing.T) {
	path := writeFile(t, "ragged.csv",
		"a,b,c\n1,2\n1,2,3,4\n")

	rows, err := NewLoader(nil).Load(path)

	require.NoError(t, err)
	require.Len(t, rows, 2)
	// Short rows pad missing columns with empty strings.
	assert.Equal(t, "", rows[0]["c"])
	// Long rows drop the extra values.
	assert.Equal(t, "3", rows[1]["c"])
	assert.Len(t, rows[1], 3)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := NewLoader(nil).Load(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestLoadEmptyFile(t *testing.T) {
	path := writeFile(t, "empty.csv", "")
	_, err := NewLoader(nil).Load(path)
	assert.Error(t, err)
}

func TestLoadHeaderOnly(t *testing.T) {
	path := writeFile(t, "header.csv", "a,b\n")
	rows, err := NewLoader(nil).Load(path)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
