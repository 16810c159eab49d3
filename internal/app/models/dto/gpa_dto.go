package dto

import "github.com/yigit/gpacalc/internal/gpa"

// CalculateGPARequest is the body of a GPA calculation. Each marks and
// credits value may be sent as a JSON number or string.
type CalculateGPARequest struct {
	Entries []gpa.CourseEntry `json:"entries" binding:"required"`
}

// GPAResponse is a successful calculation
type GPAResponse struct {
	GPA          float64           `json:"gpa" example:"3.72"`
	Formatted    string            `json:"formatted" example:"3.72"`
	Display      string            `json:"display" example:"GPA: 3.72"`
	TotalCredits float64           `json:"totalCredits" example:"5"`
	TotalPoints  float64           `json:"totalPoints" example:"18.6"`
	Entries      []gpa.EntryResult `json:"entries"`
}

// NewGPAResponse maps an engine result to its API representation
func NewGPAResponse(res *gpa.Result) GPAResponse {
	entries := res.Entries
	if entries == nil {
		entries = []gpa.EntryResult{}
	}
	return GPAResponse{
		GPA:          res.GPA,
		Formatted:    res.Formatted(),
		Display:      res.String(),
		TotalCredits: res.TotalCredits,
		TotalPoints:  gpa.Round2(res.TotalPoints),
		Entries:      entries,
	}
}

// GradePointQuery is the query string of a single marks lookup
type GradePointQuery struct {
	Marks string `form:"marks" binding:"required"`
}

// GradePointResponse is the band a single marks value falls into
type GradePointResponse struct {
	Marks      float64 `json:"marks" example:"87"`
	LowerBound float64 `json:"lowerBound" example:"85"`
	GradePoint float64 `json:"gradePoint" example:"3.7"`
}

// GradeScaleResponse lists the grade bands, highest first
type GradeScaleResponse struct {
	Bands []gpa.GradeBand `json:"bands"`
}
