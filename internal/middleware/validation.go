package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/yigit/gpacalc/internal/app/models/dto"
)

// HandleBindingError writes a 400 for a failed ShouldBind* call. Validator
// errors are reported per field; anything else (malformed JSON, wrong types)
// is reported as an invalid request format.
func HandleBindingError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(HandleValidationError(err)))
}

// HandleValidationError converts a binding or validation error into an ErrorDetail
func HandleValidationError(err error) *dto.ErrorDetail {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())
	}

	fields := dto.NewValidationErrors()
	for _, fe := range verrs {
		fields.AddError(fe.Field(), formatValidationError(fe))
	}

	detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed").WithDetails(fields.Errors)
	if len(verrs) == 1 {
		detail = detail.WithField(verrs[0].Field())
	}
	return detail
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
