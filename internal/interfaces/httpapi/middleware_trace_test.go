package httpapi

import "testing"

func TestShouldTraceRequest(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{path: "/healthz", want: false},
		{path: " /healthz ", want: false},
		{path: "/readyz", want: false},
		{path: "/api/giocatori", want: true},
		{path: "/api/squadre/assegna-giocatore", want: true},
		{path: "/api/backup/restore", want: true},
		{path: "/docs", want: true},
	}

	for _, tt := range tests {
		if got := shouldTraceRequest(tt.path); got != tt.want {
			t.Fatalf("shouldTraceRequest(%q)=%t want=%t", tt.path, got, tt.want)
		}
	}
}
