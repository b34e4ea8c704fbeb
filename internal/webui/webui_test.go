package webui

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestIndexRendersTarget(t *testing.T) {
	h, err := New("sip:alice@example.com")
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", h.Index)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("unexpected content type: %q", ct)
	}
	body := w.Body.String()
	if !strings.Contains(body, "sip:alice@example.com") {
		t.Fatalf("expected target address in page: %s", body)
	}
	for _, script := range []string{"/static/twilio.min.js", "/assets/app.js"} {
		if !strings.Contains(body, script) {
			t.Fatalf("expected %s script tag in page", script)
		}
	}
}

func TestAssetsServeDialerScript(t *testing.T) {
	fsys, err := Assets()
	if err != nil {
		t.Fatalf("assets: %v", err)
	}
	f, err := fsys.Open("app.js")
	if err != nil {
		t.Fatalf("open app.js: %v", err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if st.Size() == 0 {
		t.Fatalf("expected non-empty dialer script")
	}
}
