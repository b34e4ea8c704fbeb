package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

type stubIssuer struct {
	token string
	err   error
}

func (s stubIssuer) Issue(time.Time) (string, error) { return s.token, s.err }

func newRouter(h Handlers) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/token", h.Token)
	r.GET("/health", h.Health)
	r.NoRoute(NotFound)
	return r
}

func TestTokenEndpoint(t *testing.T) {
	r := newRouter(Handlers{Issuer: stubIssuer{token: "eyJ.abc.def"}})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/token", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("json: %v", err)
	}
	if resp["token"] != "eyJ.abc.def" {
		t.Fatalf("unexpected token: %q", resp["token"])
	}
}

func TestTokenEndpointSigningFailure(t *testing.T) {
	r := newRouter(Handlers{Issuer: stubIssuer{err: errors.New("token: signing key material is empty")}})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/token", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("json: %v", err)
	}
	if resp["error"] == "" {
		t.Fatalf("expected error field")
	}
	if strings.Contains(w.Body.String(), "s3cr3t") {
		t.Fatalf("secret leaked: %s", w.Body.String())
	}
}

func TestHealth(t *testing.T) {
	fixed := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	r := newRouter(Handlers{Now: func() time.Time { return fixed }})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("json: %v", err)
	}
	if resp["status"] != "healthy" {
		t.Fatalf("unexpected status: %q", resp["status"])
	}
	ts, err := time.Parse(time.RFC3339, resp["timestamp"])
	if err != nil {
		t.Fatalf("timestamp not RFC3339: %v", err)
	}
	if !ts.Equal(fixed) {
		t.Fatalf("unexpected timestamp: %v", ts)
	}
}

func TestNotFound(t *testing.T) {
	r := newRouter(Handlers{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/unknown/path", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("json: %v", err)
	}
	if resp["path"] != "/unknown/path" {
		t.Fatalf("unexpected path: %q", resp["path"])
	}
}

func TestNotFoundCoversWrongMethod(t *testing.T) {
	r := newRouter(Handlers{Issuer: stubIssuer{token: "t"}})

	// /token only accepts GET; other methods fall through to NoRoute.
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/token", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
