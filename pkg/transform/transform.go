// pkg/transform/transform.go

// Package transform applies the field validators to raw rows and produces
// canonical records with quality flags. One transformer exists per domain;
// both share the same contract: a row is skipped when it is entirely empty or
// when its primary identifier fails validation, and a skipped row contributes
// to nothing downstream except the skipped count.
package transform

import (
	"database/sql"
	"math"
	"time"

	"github.com/meridian-data/starmart/pkg/field"
)

// Stats tracks row counts across one transformation pass.
type Stats struct {
	Processed int
	Kept      int
	Skipped   int
}

// round2 rounds a monetary value to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func nullString(s string, cause field.Cause) sql.NullString {
	return sql.NullString{String: s, Valid: cause.Valid()}
}

func nullInt(n int64, cause field.Cause) sql.NullInt64 {
	return sql.NullInt64{Int64: n, Valid: cause.Valid()}
}

func nullTime(t time.Time, cause field.Cause) sql.NullTime {
	return sql.NullTime{Time: t, Valid: cause.Valid()}
}
