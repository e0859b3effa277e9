// pkg/field/date_test.go
package field

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDateFormats(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want time.Time
	}{
		{"iso", "2025-01-15", date(2025, time.January, 15)},
		{"iso unpadded", "2025-1-5", date(2025, time.January, 5)},
		{"us slash", "8/10/2025", date(2025, time.August, 10)},
		{"us slash padded", "08/10/2025", date(2025, time.August, 10)},
		{"day first slash", "15/08/2025", date(2025, time.August, 15)},
		{"iso slash", "2025/08/10", date(2025, time.August, 10)},
		{"us dash", "08-10-2025", date(2025, time.August, 10)},
		{"day first dash", "25-12-2024", date(2024, time.December, 25)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, cause := Date(tt.raw)
			require.True(t, cause.Valid(), "expected %q to parse, got %s", tt.raw, cause)
			assert.True(t, got.Equal(tt.want), "got %s, want %s", got, tt.want)
		})
	}
}

func TestDateLayoutPriority(t *testing.T) {
	// Both the month-first and day-first layouts could read these digits; the
	// month-first layout is listed earlier so it wins.
	got, cause := Date("05-06-2025")
	require.True(t, cause.Valid())
	assert.True(t, got.Equal(date(2025, time.May, 6)))

	got, cause = Date("05/06/2025")
	require.True(t, cause.Valid())
	assert.True(t, got.Equal(date(2025, time.May, 6)))
}

func TestDateInvalid(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		cause Cause
	}{
		{"empty", "", CauseAbsent},
		{"na token", "N/A", CauseAbsent},
		{"month thirteen", "2026-13-01", CauseMalformed},
		{"month zero", "2025-00-10", CauseMalformed},
		{"day overflow for month", "2025-02-30", CauseMalformed},
		{"garbage", "someday", CauseMalformed},
		{"year below range", "1899-01-01", CauseOutOfRange},
		{"year above range", "2031-01-01", CauseOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, cause := Date(tt.raw)
			assert.Equal(t, tt.cause, cause)
			assert.False(t, cause.Valid())
		})
	}
}

func TestDateYearBounds(t *testing.T) {
	for _, raw := range []string{"1900-01-01", "2030-12-31"} {
		_, cause := Date(raw)
		require.True(t, cause.Valid(), "boundary year %q must be accepted", raw)
	}
}
