// pkg/star/student.go
package star

import (
	"database/sql"

	"go.uber.org/zap"

	"github.com/meridian-data/starmart/pkg/model"
)

// StudentStar is the assembled student star schema for one run.
type StudentStar struct {
	Students []model.DimStudent
	Majors   []model.DimMajor
	Facts    []model.FactEnrollment
}

// BuildStudentStar walks canonical student records in input order,
// deduplicates the student and major dimensions, and emits one fact row per
// record. Students dedup on their source student id. A null major yields a
// null foreign key and no dimension entry.
func BuildStudentStar(records []model.CanonicalStudent, logger *zap.Logger) StudentStar {
	if logger == nil {
		logger = zap.NewNop()
	}

	majors := NewDimension()
	seenStudents := make(map[int64]struct{})

	star := StudentStar{
		Facts: make([]model.FactEnrollment, 0, len(records)),
	}

	for _, rec := range records {
		if _, ok := seenStudents[rec.StudentID]; !ok {
			seenStudents[rec.StudentID] = struct{}{}
			star.Students = append(star.Students, model.DimStudent{
				StudentID: rec.StudentID,
				Name:      rec.Name,
				Age:       rec.Age,
				Gender:    rec.Gender,
			})
		}

		var majorID sql.NullInt64
		if rec.Major.Valid {
			id, added := majors.Resolve(rec.Major.String)
			if added {
				star.Majors = append(star.Majors, model.DimMajor{
					MajorID:   id,
					MajorName: rec.Major.String,
				})
			}
			majorID = sql.NullInt64{Int64: id, Valid: true}
		}

		star.Facts = append(star.Facts, model.FactEnrollment{
			StudentID:              rec.StudentID,
			MajorID:                majorID,
			Grade:                  rec.Grade,
			EnrollmentDate:         rec.EnrollmentDate,
			DaysEnrolled:           rec.DaysEnrolled,
			HasValidAge:            rec.HasValidAge,
			HasValidEnrollmentDate: rec.HasValidEnrollmentDate,
		})
	}

	logger.Info("Built student star schema",
		zap.Int("students", len(star.Students)),
		zap.Int("majors", len(star.Majors)),
		zap.Int("facts", len(star.Facts)))
	return star
}
