// pkg/field/field.go

// Package field implements the per-field validators that turn raw text from
// the source feeds into canonical typed values. Every validator is a pure
// function: the same input always produces the same value and Cause, and an
// invalid value is a terminal outcome, never an error to retry.
package field

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Cause classifies the outcome of validating one raw value. CauseNone means
// the value is valid; every other cause resolves to null downstream, but the
// distinction lets quality reporting tell absence from malformation.
type Cause int

const (
	CauseNone Cause = iota
	CauseAbsent
	CauseMalformed
	CauseOutOfRange
)

// Valid reports whether the validated value is usable.
func (c Cause) Valid() bool { return c == CauseNone }

func (c Cause) String() string {
	switch c {
	case CauseNone:
		return "valid"
	case CauseAbsent:
		return "absent"
	case CauseMalformed:
		return "malformed"
	case CauseOutOfRange:
		return "out_of_range"
	default:
		return "unknown"
	}
}

// nullTokens are the literal values the source feeds use for "no value".
var nullTokens = map[string]struct{}{
	"":     {},
	"N/A":  {},
	"n/a":  {},
	"NA":   {},
	"null": {},
	"None": {},
}

func isNullToken(raw string) bool {
	_, ok := nullTokens[strings.TrimSpace(raw)]
	return ok
}

// Integer validates raw text as an integer using float-then-truncate
// semantics, so "12.0" yields 12. Negative results are out of range unless
// allowNegative is set.
func Integer(raw string, allowNegative bool) (int64, Cause) {
	if isNullToken(raw) {
		return 0, CauseAbsent
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, CauseMalformed
	}

	n := int64(f)
	if !allowNegative && n < 0 {
		return 0, CauseOutOfRange
	}
	return n, CauseNone
}

// Float validates raw text as a floating value. Negative results are out of
// range unless allowNegative is set.
func Float(raw string, allowNegative bool) (float64, Cause) {
	if isNullToken(raw) {
		return 0, CauseAbsent
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, CauseMalformed
	}

	if !allowNegative && f < 0 {
		return 0, CauseOutOfRange
	}
	return f, CauseNone
}

// ageWords is the finite vocabulary of spelled-out ages the feeds contain.
var ageWords = map[string]int64{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	"eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14, "fifteen": 15,
	"sixteen": 16, "seventeen": 17, "eighteen": 18, "nineteen": 19, "twenty": 20,
	"twenty one": 21, "twenty two": 22, "twenty three": 23, "twenty four": 24,
	"twenty five": 25, "twenty six": 26, "twenty seven": 27, "twenty eight": 28,
	"twenty nine": 29, "thirty": 30,
}

// Age validates raw text as an age, accepting number words ("twenty") and
// numerals. Ages outside [1,120] are out of range, not clamped.
func Age(raw string) (int64, Cause) {
	if isNullToken(raw) {
		return 0, CauseAbsent
	}

	s := strings.ToLower(strings.TrimSpace(raw))
	if n, ok := ageWords[s]; ok {
		return n, CauseNone
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, CauseMalformed
	}

	n := int64(f)
	if n < 1 || n > 120 {
		return 0, CauseOutOfRange
	}
	return n, CauseNone
}

// Grade normalizes a letter grade. A grade whose base letter is A through F
// passes through uppercased with its +/- modifier intact; any other letter
// becomes the literal "F". Grade is idempotent.
func Grade(raw string) (string, Cause) {
	if isNullToken(raw) {
		return "", CauseAbsent
	}

	g := strings.ToUpper(strings.TrimSpace(raw))
	switch g[0] {
	case 'A', 'B', 'C', 'D', 'F':
		return g, CauseNone
	}
	return "F", CauseNone
}

// Gender maps free-text gender values onto M, F, or Other.
func Gender(raw string) (string, Cause) {
	if isNullToken(raw) {
		return "", CauseAbsent
	}

	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "M", "MALE", "MAN", "BOY":
		return "M", CauseNone
	case "F", "FEMALE", "WOMAN", "GIRL":
		return "F", CauseNone
	}
	return "Other", CauseNone
}

// Text normalizes a free-text field: surrounding whitespace trimmed, internal
// whitespace collapsed, title case. Values that are blank after trimming are
// absent.
func Text(raw string) (string, Cause) {
	if isNullToken(raw) {
		return "", CauseAbsent
	}

	s := strings.Join(strings.Fields(raw), " ")
	if s == "" {
		return "", CauseAbsent
	}
	return cases.Title(language.English).String(strings.ToLower(s)), CauseNone
}
