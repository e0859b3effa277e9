// pkg/transform/student.go
package transform

import (
	"time"

	"go.uber.org/zap"

	"github.com/meridian-data/starmart/pkg/field"
	"github.com/meridian-data/starmart/pkg/model"
)

// StudentTransformer validates and types raw student enrollment rows.
// referenceDate anchors the days_enrolled derivation so runs are
// reproducible.
type StudentTransformer struct {
	logger        *zap.Logger
	referenceDate time.Time
	stats         Stats
}

// NewStudentTransformer creates a student transformer. referenceDate is
// truncated to a calendar day.
func NewStudentTransformer(referenceDate time.Time, logger *zap.Logger) *StudentTransformer {
	if logger == nil {
		logger = zap.NewNop()
	}
	ref := time.Date(referenceDate.Year(), referenceDate.Month(), referenceDate.Day(), 0, 0, 0, 0, time.UTC)
	return &StudentTransformer{logger: logger, referenceDate: ref}
}

// Transform validates one raw student row. The returned bool reports whether
// the row was kept.
//
// Quality rules:
//   - StudentID must be a valid non-negative integer, otherwise the row is skipped.
//   - Age outside [1,120] is null, not clamped.
//   - Grades beyond F collapse to F.
//   - days_enrolled is derived only when the enrollment date validated.
func (t *StudentTransformer) Transform(row model.RawStudent, index int) (model.CanonicalStudent, bool) {
	t.stats.Processed++

	if row.Empty() {
		t.stats.Skipped++
		t.logger.Debug("Skipping empty student row", zap.Int("row", index))
		return model.CanonicalStudent{}, false
	}

	studentID, idCause := field.Integer(row.StudentID, false)
	if !idCause.Valid() {
		t.stats.Skipped++
		t.logger.Debug("Skipping student row without valid StudentID",
			zap.Int("row", index),
			zap.String("studentID", row.StudentID),
			zap.String("cause", idCause.String()))
		return model.CanonicalStudent{}, false
	}

	name, nameCause := field.Text(row.Name)
	age, ageCause := field.Age(row.Age)
	gender, genderCause := field.Gender(row.Gender)
	grade, gradeCause := field.Grade(row.Grade)
	major, majorCause := field.Text(row.Major)
	enrollmentDate, dateCause := field.Date(row.EnrollmentDate)

	var daysEnrolled int64
	if dateCause.Valid() {
		daysEnrolled = int64(t.referenceDate.Sub(enrollmentDate).Hours() / 24)
	}

	rec := model.CanonicalStudent{
		StudentID:              studentID,
		Name:                   nullString(name, nameCause),
		Age:                    nullInt(age, ageCause),
		Gender:                 nullString(gender, genderCause),
		Grade:                  nullString(grade, gradeCause),
		Major:                  nullString(major, majorCause),
		EnrollmentDate:         nullTime(enrollmentDate, dateCause),
		DaysEnrolled:           nullInt(daysEnrolled, dateCause),
		HasValidAge:            ageCause.Valid(),
		HasValidEnrollmentDate: dateCause.Valid(),
	}

	t.stats.Kept++
	return rec, true
}

// TransformAll runs Transform over a batch in input order and logs a summary.
func (t *StudentTransformer) TransformAll(rows []model.RawStudent) []model.CanonicalStudent {
	records := make([]model.CanonicalStudent, 0, len(rows))
	for i, row := range rows {
		if rec, ok := t.Transform(row, i); ok {
			records = append(records, rec)
		}
	}

	t.logger.Info("Transformed student rows",
		zap.Int("processed", t.stats.Processed),
		zap.Int("kept", t.stats.Kept),
		zap.Int("skipped", t.stats.Skipped))
	return records
}

// Stats returns the running row counts.
func (t *StudentTransformer) Stats() Stats {
	return t.stats
}
