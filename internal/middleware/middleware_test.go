package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/gpacalc/internal/app/models/dto"
	"github.com/yigit/gpacalc/internal/gpa"
	"github.com/yigit/gpacalc/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorDetail {
	t.Helper()
	var resp struct {
		Error dto.ErrorDetail `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Error
}

func handleErr(err error) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/gpa/calculate", nil)
	HandleAPIError(c, err)
	return w
}

func TestHandleAPIErrorEntryErrors(t *testing.T) {
	tests := []struct {
		err   error
		code  dto.ErrorCode
		field string
	}{
		{apperrors.ErrInvalidMarks, dto.ErrorCodeInvalidMarks, gpa.FieldMarks},
		{apperrors.ErrMarksOutOfRange, dto.ErrorCodeMarksOutOfRange, gpa.FieldMarks},
		{apperrors.ErrInvalidCredits, dto.ErrorCodeInvalidCredits, gpa.FieldCredits},
		{apperrors.ErrCreditsBelowMinimum, dto.ErrorCodeCreditsBelowMinimum, gpa.FieldCredits},
		{apperrors.ErrCreditsOverflow, dto.ErrorCodeCreditsOverflow, gpa.FieldCredits},
	}

	for _, tt := range tests {
		w := handleErr(&gpa.EntryError{Position: 3, Field: tt.field, Err: tt.err})
		require.Equal(t, http.StatusBadRequest, w.Code)

		detail := decodeError(t, w)
		assert.Equal(t, tt.code, detail.Code)
		assert.Equal(t, tt.field, detail.Field)
		assert.Equal(t, map[string]interface{}{"entry": float64(3)}, detail.Details)
	}
}

func TestHandleAPIErrorOther(t *testing.T) {
	w := handleErr(apperrors.NewCustomError(apperrors.ErrTooManyEntries, "at most 1 course entries are allowed, got 2"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	detail := decodeError(t, w)
	assert.Equal(t, dto.ErrorCodeTooManyEntries, detail.Code)
	assert.Equal(t, dto.ErrorSeverityWarning, detail.Severity)

	w = handleErr(fmt.Errorf("wrapped: %w", apperrors.ErrInvalidCredits))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, dto.ErrorCodeValidationFailed, decodeError(t, w).Code)

	w = handleErr(errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	detail = decodeError(t, w)
	assert.Equal(t, dto.ErrorCodeInternalServer, detail.Code)
	assert.Equal(t, "boom", detail.DebugInfo)
}

func TestRequestIDAndLogger(t *testing.T) {
	var buf bytes.Buffer
	router := gin.New()
	router.Use(RequestID(), RequestLogger(zerolog.New(&buf)))
	router.GET("/missing-thing", func(c *gin.Context) {
		c.Status(http.StatusNotFound)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing-thing", nil))

	id := w.Header().Get(RequestIDHeader)
	require.NotEmpty(t, id)

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, id, line["requestId"])
	assert.Equal(t, "warn", line["level"])
	assert.EqualValues(t, 404, line["status"])
	assert.Equal(t, "/missing-thing", line["path"])
}

func TestRequestIDReuse(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, GetRequestID(c))
	})

	incoming := uuid.NewString()
	tests := []struct {
		name   string
		header string
		reused bool
	}{
		{"valid uuid", incoming, true},
		{"missing", "", false},
		{"not a uuid", "abc-123", false},
		{"oversized", strings.Repeat("a", 4096), false},
		{"log injection", incoming + "\nlevel=error", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if tt.header != "" {
				req.Header.Set(RequestIDHeader, tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			id := w.Header().Get(RequestIDHeader)
			assert.Equal(t, id, w.Body.String())
			if tt.reused {
				assert.Equal(t, tt.header, id)
				return
			}
			assert.NotEqual(t, tt.header, id)
			_, err := uuid.Parse(id)
			assert.NoError(t, err)
		})
	}
}

func TestHandleValidationError(t *testing.T) {
	type body struct {
		Entries []gpa.CourseEntry `json:"entries" binding:"required"`
	}

	router := gin.New()
	router.POST("/", func(c *gin.Context) {
		var b body
		if err := c.ShouldBindJSON(&b); err != nil {
			HandleBindingError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{}`)))
	require.Equal(t, http.StatusBadRequest, w.Code)
	detail := decodeError(t, w)
	assert.Equal(t, dto.ErrorCodeValidationFailed, detail.Code)
	assert.Equal(t, "Entries", detail.Field)
	assert.Contains(t, w.Body.String(), "Entries is required")

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`not json`)))
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request format", decodeError(t, w).Message)
}
