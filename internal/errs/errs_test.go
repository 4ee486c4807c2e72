package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	custom := "CLOTH_NOT_FOUND"

	tests := []struct {
		name       string
		err        *HTTPError
		wantStatus int
		wantCode   string
	}{
		{"unauthorized", NewUnauthorizedError("Unauthorized", false), http.StatusUnauthorized, "UNAUTHORIZED"},
		{"forbidden", NewForbiddenError("no", false), http.StatusForbidden, "FORBIDDEN"},
		{"bad request", NewBadRequestError("bad", false, nil, nil, nil), http.StatusBadRequest, "BAD_REQUEST"},
		{"not found", NewNotFoundError("missing", false, nil), http.StatusNotFound, "NOT_FOUND"},
		{"not found custom code", NewNotFoundError("missing", true, &custom), http.StatusNotFound, custom},
		{"internal", NewInternalServerError(), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, tt.err.Status)
			assert.Equal(t, tt.wantCode, tt.err.Code)
		})
	}
}

func TestHTTPErrorIsAndAs(t *testing.T) {
	wrapped := fmt.Errorf("loading cloth: %w", NewNotFoundError("Cloth not found", true, nil))

	var httpErr *HTTPError
	require.True(t, errors.As(wrapped, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.True(t, errors.Is(wrapped, &HTTPError{}))
	assert.Equal(t, "loading cloth: Cloth not found", wrapped.Error())
}

func TestWithMessage(t *testing.T) {
	base := NewBadRequestError("Validation failed", true, nil, []FieldError{{Field: "price", Error: "is required"}}, nil)
	copied := base.WithMessage("missing field(s)")

	assert.Equal(t, "missing field(s)", copied.Message)
	assert.Equal(t, "Validation failed", base.Message)
	assert.Equal(t, base.Errors, copied.Errors)
}

func TestValidationError(t *testing.T) {
	err := ValidationError(errors.New("limit must be a number"))
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, "Validation failed: limit must be a number", err.Message)
}
