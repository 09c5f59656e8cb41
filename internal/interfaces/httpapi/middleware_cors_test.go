package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestCORS(t *testing.T) {
	tests := []struct {
		name        string
		allowed     []string
		method      string
		origin      string
		preflight   string
		wantOrigin  string
		wantStatus  int
		wantReached bool
	}{
		{
			name:        "configured origin",
			allowed:     []string{"http://localhost:5173"},
			method:      http.MethodGet,
			origin:      "http://localhost:5173",
			wantOrigin:  "http://localhost:5173",
			wantStatus:  http.StatusOK,
			wantReached: true,
		},
		{
			name:        "unconfigured origin",
			allowed:     []string{"https://allowed.example.com"},
			method:      http.MethodGet,
			origin:      "https://not-allowed.example.com",
			wantOrigin:  "",
			wantStatus:  http.StatusOK,
			wantReached: true,
		},
		{
			name:       "preflight for team delete",
			allowed:    []string{"*"},
			method:     http.MethodOptions,
			origin:     "http://localhost:5173",
			preflight:  http.MethodDelete,
			wantOrigin: "*",
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reached := false
			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				reached = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(tt.method, "/api/squadre/1", nil)
			req.Header.Set("Origin", tt.origin)
			if tt.preflight != "" {
				req.Header.Set("Access-Control-Request-Method", tt.preflight)
			}
			rec := httptest.NewRecorder()
			CORS(tt.allowed, next).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status=%d want=%d", rec.Code, tt.wantStatus)
			}
			if reached != tt.wantReached {
				t.Fatalf("wrapped handler reached=%t want=%t", reached, tt.wantReached)
			}
			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.wantOrigin {
				t.Fatalf("Access-Control-Allow-Origin=%q want=%q", got, tt.wantOrigin)
			}
		})
	}
}

func TestCORS_ExposesDownloadHeaders(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/backup/download", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	CORS([]string{"*"}, next).ServeHTTP(rec, req)

	exposed := rec.Header().Get("Access-Control-Expose-Headers")
	if !strings.Contains(exposed, "Content-Disposition") {
		t.Fatalf("expected Content-Disposition to be exposed, got %q", exposed)
	}
}
