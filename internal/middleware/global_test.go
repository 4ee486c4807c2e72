package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deppfellow/clothes-catalog/internal/errs"
	"github.com/deppfellow/clothes-catalog/internal/server"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer() *server.Server {
	log := zerolog.Nop()
	return &server.Server{Logger: &log}
}

func TestGlobalErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "http error passes through",
			err:        errs.NewBadRequestError("Validation failed", true, nil, []errs.FieldError{{Field: "name", Error: "is required"}}, nil),
			wantStatus: http.StatusBadRequest,
			wantCode:   "BAD_REQUEST",
		},
		{
			name:       "wrapped http error",
			err:        fmt.Errorf("service: %w", errs.NewNotFoundError("Cloth not found", true, nil)),
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
		},
		{
			name:       "unknown route",
			err:        echo.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
		},
		{
			name:       "method not allowed",
			err:        echo.ErrMethodNotAllowed,
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "METHOD_NOT_ALLOWED",
		},
		{
			name:       "check violation",
			err:        fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23514", TableName: "clothes", ConstraintName: "clothes_data_check"}),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "driver failure",
			err:        fmt.Errorf("query: %w", &pgconn.PgError{Code: "08006", Message: "connection failure at 10.0.0.5"}),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_SERVER_ERROR",
		},
		{
			name:       "plain error",
			err:        fmt.Errorf("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_SERVER_ERROR",
		},
	}

	global := NewGlobalMiddlewares(testServer())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			global.GlobalErrorHandler(tt.err, c)

			require.Equal(t, tt.wantStatus, rec.Code)

			var body errs.HTTPError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantStatus, body.Status)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, body.Code)
			}
			assert.NotContains(t, rec.Body.String(), "10.0.0.5")
		})
	}
}

func TestGlobalErrorHandlerSkipsCommittedResponse(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.String(http.StatusOK, "done"))

	NewGlobalMiddlewares(testServer()).GlobalErrorHandler(fmt.Errorf("late"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "done", rec.Body.String())
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusOK, statusOf(nil, http.StatusOK))
	assert.Equal(t, http.StatusUnauthorized, statusOf(errs.NewUnauthorizedError("no", false), http.StatusOK))
	assert.Equal(t, http.StatusNotFound, statusOf(echo.ErrNotFound, http.StatusOK))
	assert.Equal(t, http.StatusInternalServerError, statusOf(fmt.Errorf("boom"), http.StatusOK))
}

func TestRequestID(t *testing.T) {
	e := echo.New()
	var seen string
	e.GET("/", func(c echo.Context) error {
		seen = GetRequestID(c)
		return c.NoContent(http.StatusNoContent)
	}, RequestID())

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, "req-123", seen)
	assert.Equal(t, "req-123", rec.Header().Get(RequestIDHeader))
}

func TestWriteUnauthorized(t *testing.T) {
	auth := NewAuthMiddleware(testServer())

	rec := httptest.NewRecorder()
	auth.writeUnauthorized(rec, httptest.NewRequest(http.MethodPost, "/api/v1/clothes", nil))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{
		"code": "UNAUTHORIZED",
		"message": "Unauthorized",
		"status": 401,
		"override": false,
		"errors": null,
		"action": null
	}`, rec.Body.String())
}

func TestRequireAuthRejectsMissingToken(t *testing.T) {
	auth := NewAuthMiddleware(testServer())

	called := false
	e := echo.New()
	e.HTTPErrorHandler = NewGlobalMiddlewares(testServer()).GlobalErrorHandler
	e.POST("/clothes", func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusCreated)
	}, auth.RequireAuth)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/clothes", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}
