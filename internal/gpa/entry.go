package gpa

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/yigit/gpacalc/internal/pkg/apperrors"
)

// Field names reported on entry errors
const (
	FieldMarks   = "marks"
	FieldCredits = "credits"
)

const (
	marksMessage    = "Invalid marks: Please enter a value between 0 and 100."
	creditsMessage  = "Please enter a valid credit value (minimum 1)."
	overflowMessage = "Total credits are too large to compute a GPA."
)

// RawValue is a form value as the user typed it. It decodes from either a
// JSON number or a JSON string.
type RawValue string

// Number builds a RawValue from a float.
func Number(f float64) RawValue {
	return RawValue(strconv.FormatFloat(f, 'f', -1, 64))
}

// UnmarshalJSON implements json.Unmarshaler
func (v *RawValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*v = ""
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = RawValue(s)
	default:
		*v = RawValue(data)
	}
	return nil
}

// Float parses the value. Empty text, NaN and infinities are not numbers.
func (v RawValue) Float() (float64, bool) {
	s := strings.TrimSpace(string(v))
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// CourseEntry is one course's marks and credit weight as submitted.
type CourseEntry struct {
	Marks   RawValue `json:"marks" example:"90"`
	Credits RawValue `json:"credits" example:"3"`
}

// NewEntry builds an entry from numeric values.
func NewEntry(marks, credits float64) CourseEntry {
	return CourseEntry{Marks: Number(marks), Credits: Number(credits)}
}

// EntryError describes the first failed check on a course entry.
// Position is 1-based, or 0 when the entry was validated on its own.
type EntryError struct {
	Position int
	Field    string
	Err      error
}

// Error implements error interface
func (e *EntryError) Error() string {
	if e.Position > 0 {
		return fmt.Sprintf("entry %d: %s", e.Position, e.Message())
	}
	return e.Message()
}

// Unwrap exposes the apperrors sentinel.
func (e *EntryError) Unwrap() error {
	return e.Err
}

// Message is the user-facing text for the failing field.
func (e *EntryError) Message() string {
	if errors.Is(e.Err, apperrors.ErrCreditsOverflow) {
		return overflowMessage
	}
	if e.Field == FieldCredits {
		return creditsMessage
	}
	return marksMessage
}

// parse runs the entry checks in order and returns the parsed values.
func (e CourseEntry) parse() (marks, credits float64, err *EntryError) {
	marks, ok := e.Marks.Float()
	if !ok {
		return 0, 0, &EntryError{Field: FieldMarks, Err: apperrors.ErrInvalidMarks}
	}
	if marks < MinMarks || marks > MaxMarks {
		return 0, 0, &EntryError{Field: FieldMarks, Err: apperrors.ErrMarksOutOfRange}
	}

	credits, ok = e.Credits.Float()
	if !ok {
		return 0, 0, &EntryError{Field: FieldCredits, Err: apperrors.ErrInvalidCredits}
	}
	if credits < MinCredits {
		return 0, 0, &EntryError{Field: FieldCredits, Err: apperrors.ErrCreditsBelowMinimum}
	}

	return marks, credits, nil
}

// ValidateEntry checks a single entry. The returned error, if any, is an
// *EntryError wrapping one of the apperrors entry sentinels.
func ValidateEntry(e CourseEntry) error {
	if _, _, err := e.parse(); err != nil {
		return err
	}
	return nil
}

// ParseMarks validates a lone marks value the same way ValidateEntry does.
func ParseMarks(v RawValue) (float64, error) {
	marks, _, err := CourseEntry{Marks: v, Credits: Number(MinCredits)}.parse()
	if err != nil {
		return 0, err
	}
	return marks, nil
}
