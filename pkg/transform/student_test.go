// pkg/transform/student_test.go
package transform

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridian-data/starmart/pkg/model"
)

var refDate = time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)

func TestStudentTransformAgeWord(t *testing.T) {
	tr := NewStudentTransformer(refDate, nil)

	rec, ok := tr.Transform(model.RawStudent{StudentID: "7", Age: "twenty"}, 0)
	require.True(t, ok)

	require.True(t, rec.Age.Valid)
	assert.Equal(t, int64(20), rec.Age.Int64)
	assert.True(t, rec.HasValidAge)
}

func TestStudentTransformInvalidAge(t *testing.T) {
	tr := NewStudentTransformer(refDate, nil)

	rec, ok := tr.Transform(model.RawStudent{StudentID: "7", Age: "-1"}, 0)
	require.True(t, ok)

	assert.False(t, rec.Age.Valid)
	assert.False(t, rec.HasValidAge)
}

func TestStudentTransformDaysEnrolled(t *testing.T) {
	tr := NewStudentTransformer(refDate, nil)

	rec, ok := tr.Transform(model.RawStudent{
		StudentID:      "7",
		EnrollmentDate: "2025-08-22",
	}, 0)
	require.True(t, ok)

	require.True(t, rec.DaysEnrolled.Valid)
	assert.Equal(t, int64(10), rec.DaysEnrolled.Int64)
	assert.True(t, rec.HasValidEnrollmentDate)
}

func TestStudentTransformNoDaysWithoutDate(t *testing.T) {
	tr := NewStudentTransformer(refDate, nil)

	rec, ok := tr.Transform(model.RawStudent{
		StudentID:      "7",
		EnrollmentDate: "not a date",
	}, 0)
	require.True(t, ok)

	assert.False(t, rec.EnrollmentDate.Valid)
	assert.False(t, rec.DaysEnrolled.Valid)
	assert.False(t, rec.HasValidEnrollmentDate)
}

func TestStudentTransformNormalization(t *testing.T) {
	tr := NewStudentTransformer(refDate, nil)

	rec, ok := tr.Transform(model.RawStudent{
		StudentID: "3",
		Name:      "  jane   doe ",
		Gender:    "female",
		Grade:     "z",
		Major:     "computer science",
	}, 0)
	require.True(t, ok)

	assert.Equal(t, "Jane Doe", rec.Name.String)
	assert.Equal(t, "F", rec.Gender.String)
	assert.Equal(t, "F", rec.Grade.String)
	assert.Equal(t, "Computer Science", rec.Major.String)
}

func TestStudentTransformSkips(t *testing.T) {
	tests := []struct {
		name string
		row  model.RawStudent
	}{
		{"entirely empty row", model.RawStudent{}},
		{"missing student id", model.RawStudent{Name: "jane"}},
		{"malformed student id", model.RawStudent{StudentID: "oops"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewStudentTransformer(refDate, nil)
			_, ok := tr.Transform(tt.row, 0)
			assert.False(t, ok)
			assert.Equal(t, Stats{Processed: 1, Skipped: 1}, tr.Stats())
		})
	}
}
