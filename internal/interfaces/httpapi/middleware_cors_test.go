package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCORS(t *testing.T) {
	const dashboard = "https://fpl-live.example.com"

	tests := []struct {
		name       string
		allowed    []string
		method     string
		origin     string
		preflight  string
		wantOrigin string
		wantCode   int
	}{
		{name: "configured origin", allowed: []string{dashboard}, method: http.MethodGet, origin: dashboard, wantOrigin: dashboard, wantCode: http.StatusOK},
		{name: "blank entries are ignored", allowed: []string{" ", " " + dashboard + " "}, method: http.MethodGet, origin: dashboard, wantOrigin: dashboard, wantCode: http.StatusOK},
		{name: "unconfigured origin", allowed: []string{"https://allowed.example.com"}, method: http.MethodGet, origin: dashboard, wantOrigin: "", wantCode: http.StatusOK},
		{name: "wildcard preflight", allowed: []string{"*"}, method: http.MethodOptions, origin: dashboard, preflight: http.MethodGet, wantOrigin: "*", wantCode: http.StatusNoContent},
		{name: "preflight for refresh", allowed: []string{dashboard}, method: http.MethodOptions, origin: dashboard, preflight: http.MethodPost, wantOrigin: dashboard, wantCode: http.StatusNoContent},
		{name: "preflight for unsupported method", allowed: []string{dashboard}, method: http.MethodOptions, origin: dashboard, preflight: http.MethodDelete, wantOrigin: "", wantCode: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
			handler := CORS(tt.allowed, next)

			req := httptest.NewRequest(tt.method, "/v1/standings", nil)
			req.Header.Set("Origin", tt.origin)
			if tt.preflight != "" {
				req.Header.Set("Access-Control-Request-Method", tt.preflight)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantCode {
				t.Fatalf("expected status %d, got %d", tt.wantCode, rec.Code)
			}
			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.wantOrigin {
				t.Fatalf("unexpected Access-Control-Allow-Origin: %q want %q", got, tt.wantOrigin)
			}
		})
	}
}

func TestCORS_ExposesRequestID(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := CORS([]string{"*"}, next)

	req := httptest.NewRequest(http.MethodGet, "/v1/activity", nil)
	req.Header.Set("Origin", "https://fpl-live.example.com")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Expose-Headers"); got != requestIDHeader {
		t.Fatalf("expected %s to be exposed, got %q", requestIDHeader, got)
	}
}
