package gpa

import "fmt"

const (
	// MinMarks is the lowest accepted marks value
	MinMarks = 0.0
	// MaxMarks is the highest accepted marks value
	MaxMarks = 100.0
	// MinCredits is the smallest accepted credit weight for one course
	MinCredits = 1.0
)

// GradeBand maps every marks value at or above LowerBound (and below the
// previous band's bound) to Point.
type GradeBand struct {
	LowerBound float64 `json:"lowerBound" yaml:"lower_bound" example:"90"`
	Point      float64 `json:"gradePoint" yaml:"grade_point" example:"4.0"`
}

// bands is scanned top-down; the first band whose bound is <= marks wins.
var bands = [...]GradeBand{
	{LowerBound: 90, Point: 4.0},
	{LowerBound: 85, Point: 3.7},
	{LowerBound: 80, Point: 3.3},
	{LowerBound: 75, Point: 3.0},
	{LowerBound: 70, Point: 2.7},
	{LowerBound: 65, Point: 2.3},
	{LowerBound: 60, Point: 2.0},
	{LowerBound: 50, Point: 1.0},
	{LowerBound: 0, Point: 0.0},
}

// Scale returns a copy of the grade band table, highest band first.
func Scale() []GradeBand {
	out := make([]GradeBand, len(bands))
	copy(out, bands[:])
	return out
}

// BandFor returns the band that marks falls into. Marks outside
// [MinMarks, MaxMarks] must be rejected by the caller first; values below
// zero fall through to the lowest band.
func BandFor(marks float64) GradeBand {
	for _, b := range bands {
		if marks >= b.LowerBound {
			return b
		}
	}
	return bands[len(bands)-1]
}

// GradePoint maps a marks value to its grade point.
func GradePoint(marks float64) float64 {
	return BandFor(marks).Point
}

// CheckScale verifies that a band table is strictly descending by bound,
// ends at MinMarks and does not start above MaxMarks, so every value in
// [MinMarks, MaxMarks] matches exactly one band.
func CheckScale(scale []GradeBand) error {
	if len(scale) == 0 {
		return fmt.Errorf("grade scale is empty")
	}
	if scale[0].LowerBound > MaxMarks {
		return fmt.Errorf("highest band bound %.2f exceeds %.0f", scale[0].LowerBound, MaxMarks)
	}
	for i := 1; i < len(scale); i++ {
		if scale[i].LowerBound >= scale[i-1].LowerBound {
			return fmt.Errorf("band %d bound %.2f is not below band %d bound %.2f",
				i+1, scale[i].LowerBound, i, scale[i-1].LowerBound)
		}
		if scale[i].Point > scale[i-1].Point {
			return fmt.Errorf("band %d grade point %.2f is above band %d grade point %.2f",
				i+1, scale[i].Point, i, scale[i-1].Point)
		}
	}
	if last := scale[len(scale)-1]; last.LowerBound != MinMarks {
		return fmt.Errorf("lowest band bound is %.2f, want %.0f", last.LowerBound, MinMarks)
	}
	return nil
}

func init() {
	if err := CheckScale(bands[:]); err != nil {
		panic("gpa: invalid grade scale: " + err.Error())
	}
}
