package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/socialserv/marketplace-api/internal/core/domain"
)

func serveWithError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())
	e.GET("/boom", func(c echo.Context) error { return err })

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"job not found", domain.ErrJobNotFound, http.StatusNotFound},
		{"worker not found", domain.ErrWorkerNotFound, http.StatusNotFound},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"job taken", domain.ErrJobNotAvailable, http.StatusConflict},
		{"service mismatch", domain.ErrServiceMismatch, http.StatusUnprocessableEntity},
		{"invalid transition", domain.ErrInvalidTransition, http.StatusUnprocessableEntity},
		{"invalid passcode", domain.ErrInvalidPasscode, http.StatusBadRequest},
		{"invalid rating", domain.ErrInvalidRating, http.StatusBadRequest},
		{"bad credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"email taken", domain.ErrEmailTaken, http.StatusConflict},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := serveWithError(t, tc.err)
			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}

			var resp map[string]any
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if resp["error"] == "" {
				t.Fatal("expected an error message in the envelope")
			}
		})
	}
}

func TestErrorHandler_UnexpectedErrorIsOpaque(t *testing.T) {
	rec := serveWithError(t, echo.NewHTTPError(http.StatusInternalServerError, "disk exploded"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestErrorHandler_UnknownRouteListsEndpoints(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var resp struct {
		Error     string   `json:"error"`
		Endpoints []string `json:"endpoints"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Endpoints) == 0 {
		t.Fatal("expected the supported endpoint list")
	}

	found := false
	for _, ep := range resp.Endpoints {
		if ep == "POST /v1/jobs/:id/accept" {
			found = true
		}
	}
	if !found {
		t.Fatalf("endpoint list incomplete: %v", resp.Endpoints)
	}
}
