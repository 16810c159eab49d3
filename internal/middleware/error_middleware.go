package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/yigit/gpacalc/internal/app/models/dto"
	"github.com/yigit/gpacalc/internal/gpa"
	"github.com/yigit/gpacalc/internal/pkg/apperrors"
)

// entryErrorCodes maps each GPA entry sentinel to its API error code
var entryErrorCodes = []struct {
	err  error
	code dto.ErrorCode
}{
	{apperrors.ErrInvalidMarks, dto.ErrorCodeInvalidMarks},
	{apperrors.ErrMarksOutOfRange, dto.ErrorCodeMarksOutOfRange},
	{apperrors.ErrInvalidCredits, dto.ErrorCodeInvalidCredits},
	{apperrors.ErrCreditsBelowMinimum, dto.ErrorCodeCreditsBelowMinimum},
	{apperrors.ErrCreditsOverflow, dto.ErrorCodeCreditsOverflow},
}

// HandleAPIError handles common API errors and returns appropriate responses
func HandleAPIError(c *gin.Context, err error) {
	var entryErr *gpa.EntryError
	if errors.As(err, &entryErr) {
		detail := dto.NewErrorDetail(entryErrorCode(entryErr), entryErr.Message()).WithField(entryErr.Field)
		if entryErr.Position > 0 {
			detail = detail.WithDetails(dto.EntryErrorDetails{Entry: entryErr.Position})
		}
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrTooManyEntries):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeTooManyEntries, "Too many course entries").
				WithDetails(err.Error()).
				WithSeverity(dto.ErrorSeverityWarning),
		))
	case apperrors.IsEntryError(err):
		// entry sentinel without position context
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed").WithDetails(err.Error()),
		))
	default:
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled API error")
		detail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
		if gin.Mode() != gin.ReleaseMode {
			detail = detail.WithDebugInfo("%v", err)
		}
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(detail))
	}
}

func entryErrorCode(err *gpa.EntryError) dto.ErrorCode {
	for _, m := range entryErrorCodes {
		if errors.Is(err.Err, m.err) {
			return m.code
		}
	}
	return dto.ErrorCodeValidationFailed
}
