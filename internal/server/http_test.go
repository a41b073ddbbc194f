package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func TestHTTPHandlerAuth(t *testing.T) {
	logger := zap.NewNop().Sugar()
	h := HTTPHandler(New(nil, logger), "s3cret", logger)

	tests := []struct {
		name   string
		path   string
		auth   string
		status func(int) bool
	}{
		{"health needs no token", "/healthz", "", func(c int) bool { return c == http.StatusOK }},
		{"missing token", "/", "", func(c int) bool { return c == http.StatusUnauthorized }},
		{"wrong token", "/", "Bearer nope", func(c int) bool { return c == http.StatusUnauthorized }},
		{"good token", "/", "Bearer s3cret", func(c int) bool { return c != http.StatusUnauthorized }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.auth != "" {
				req.Header.Set("Authorization", tt.auth)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			if !tt.status(rec.Code) {
				t.Errorf("status = %d", rec.Code)
			}
		})
	}
}

func TestHTTPHandlerNoToken(t *testing.T) {
	logger := zap.NewNop().Sugar()
	h := HTTPHandler(New(nil, logger), "", logger)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code == http.StatusUnauthorized {
		t.Error("no token configured should not require auth")
	}
}
