// Package gpa computes a credit-weighted grade point average from course
// marks. Everything here is pure: no state survives a call.
package gpa

import (
	"math"
	"strconv"

	"github.com/yigit/gpacalc/internal/pkg/apperrors"
)

// EntryResult is the contribution of one valid entry.
type EntryResult struct {
	Position   int     `json:"position" example:"1"`
	Marks      float64 `json:"marks" example:"90"`
	Credits    float64 `json:"credits" example:"3"`
	GradePoint float64 `json:"gradePoint" example:"4"`
	Points     float64 `json:"points" example:"12"`
}

// Result is a finished calculation.
type Result struct {
	GPA          float64
	TotalPoints  float64
	TotalCredits float64
	Entries      []EntryResult
}

// Formatted renders the GPA with exactly two fractional digits.
func (r *Result) Formatted() string {
	return strconv.FormatFloat(r.GPA, 'f', 2, 64)
}

// String renders the result the way it is shown to the user.
func (r *Result) String() string {
	return "GPA: " + r.Formatted()
}

// Compute validates entries in order and returns their weighted GPA.
// It stops at the first invalid entry and returns an *EntryError carrying
// that entry's 1-based position. An entry whose credits push the running
// totals past float64 range fails the same way with ErrCreditsOverflow.
// No entries, or zero total credits, yields a GPA of 0.
func Compute(entries []CourseEntry) (*Result, error) {
	res := &Result{Entries: make([]EntryResult, 0, len(entries))}

	for i, e := range entries {
		marks, credits, err := e.parse()
		if err != nil {
			err.Position = i + 1
			return nil, err
		}

		gp := GradePoint(marks)
		points := gp * credits
		res.TotalPoints += points
		res.TotalCredits += credits
		if math.IsInf(res.TotalPoints, 0) || math.IsInf(res.TotalCredits, 0) {
			return nil, &EntryError{Position: i + 1, Field: FieldCredits, Err: apperrors.ErrCreditsOverflow}
		}
		res.Entries = append(res.Entries, EntryResult{
			Position:   i + 1,
			Marks:      marks,
			Credits:    credits,
			GradePoint: gp,
			Points:     points,
		})
	}

	if res.TotalCredits > 0 {
		res.GPA = Round2(res.TotalPoints / res.TotalCredits)
	}
	return res, nil
}

// maxRoundable is the magnitude past which float64 carries no fractional digits.
const maxRoundable = 1 << 52

// Round2 rounds half away from zero to two decimal places. Values too large
// to have a fractional part are returned as is.
func Round2(v float64) float64 {
	if math.Abs(v) >= maxRoundable {
		return v
	}
	return math.Round(v*100) / 100
}
