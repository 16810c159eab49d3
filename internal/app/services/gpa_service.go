package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/gpacalc/internal/gpa"
	"github.com/yigit/gpacalc/internal/pkg/apperrors"
)

// GPAService defines the interface for GPA calculation operations
type GPAService interface {
	Calculate(ctx context.Context, entries []gpa.CourseEntry) (*gpa.Result, error)
	GradePoint(ctx context.Context, marks gpa.RawValue) (float64, gpa.GradeBand, error)
	Scale(ctx context.Context) []gpa.GradeBand
}

// gpaServiceImpl implements the GPAService interface
type gpaServiceImpl struct {
	maxEntries int
	logger     zerolog.Logger
}

// NewGPAService creates a new GPA service instance. maxEntries <= 0 disables the cap.
func NewGPAService(maxEntries int, logger zerolog.Logger) GPAService {
	return &gpaServiceImpl{
		maxEntries: maxEntries,
		logger:     logger.With().Str("service", "gpa").Logger(),
	}
}

// Calculate computes the weighted GPA of entries, failing on the first invalid one
func (s *gpaServiceImpl) Calculate(ctx context.Context, entries []gpa.CourseEntry) (*gpa.Result, error) {
	if s.maxEntries > 0 && len(entries) > s.maxEntries {
		s.logger.Warn().Int("entries", len(entries)).Int("max", s.maxEntries).Msg("Rejected oversized GPA calculation")
		return nil, apperrors.NewCustomError(apperrors.ErrTooManyEntries,
			fmt.Sprintf("at most %d course entries are allowed, got %d", s.maxEntries, len(entries)))
	}

	res, err := gpa.Compute(entries)
	if err != nil {
		var entryErr *gpa.EntryError
		if errors.As(err, &entryErr) {
			s.logger.Debug().
				Int("entry", entryErr.Position).
				Str("field", entryErr.Field).
				Str("reason", entryErr.Err.Error()).
				Msg("GPA calculation rejected")
		}
		return nil, err
	}

	s.logger.Info().
		Int("entries", len(entries)).
		Float64("totalCredits", res.TotalCredits).
		Str("gpa", res.Formatted()).
		Msg("GPA calculated")
	return res, nil
}

// GradePoint validates one marks value and returns it with its band
func (s *gpaServiceImpl) GradePoint(ctx context.Context, marks gpa.RawValue) (float64, gpa.GradeBand, error) {
	m, err := gpa.ParseMarks(marks)
	if err != nil {
		return 0, gpa.GradeBand{}, err
	}
	return m, gpa.BandFor(m), nil
}

// Scale returns the fixed grade band table
func (s *gpaServiceImpl) Scale(ctx context.Context) []gpa.GradeBand {
	return gpa.Scale()
}
