package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/tidwall/gjson"
)

func newTestRouter() *mux.Router {
	h := New(nil)
	r := mux.NewRouter()
	h.Register(r)
	return r
}

func TestReadyHandlerReportsOK(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/ready", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestSolveHandlerSolvesJSONDocument(t *testing.T) {
	r := newTestRouter()

	body := `{
		"equations": ["x + w - y"],
		"assignments": [{"symbol": "w", "value": 10}, {"symbol": "y", "value": 100}]
	}`

	req := httptest.NewRequest(http.MethodPost, "/solve", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	resp := gjson.ParseBytes(rec.Body.Bytes())
	if !resp.Get("success").Bool() {
		t.Fatalf("success = false, want true; body: %s", rec.Body.String())
	}
	if got := resp.Get("symbols.x.value").Float(); got != 90 {
		t.Fatalf("symbols.x.value = %v, want 90", got)
	}
}

func TestSolveHandlerReturnsUnprocessableOnUnsolvedSystem(t *testing.T) {
	r := newTestRouter()

	body := `{"equations": ["x1 + w1 - x2"], "assignments": [{"symbol": "x2", "value": 100}]}`

	req := httptest.NewRequest(http.MethodPost, "/solve", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422; body: %s", rec.Code, rec.Body.String())
	}

	resp := gjson.ParseBytes(rec.Body.Bytes())
	if resp.Get("success").Bool() {
		t.Fatalf("success = true, want false")
	}
	if len(resp.Get("diagnostics").Array()) == 0 {
		t.Fatalf("expected non-empty diagnostics array")
	}
}

func TestSolveHandlerRejectsMalformedYAML(t *testing.T) {
	r := newTestRouter()

	// Unbalanced flow-sequence: a genuine YAML syntax error, unlike the
	// JSON path's gjson-based decoder, which degrades instead of failing.
	req := httptest.NewRequest(http.MethodPost, "/solve", strings.NewReader("rectangles: [ref: r1"))
	req.Header.Set("Content-Type", "application/yaml")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400; body: %s", rec.Code, rec.Body.String())
	}
}
