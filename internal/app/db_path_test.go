package app

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestNormalizeDBPath(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "relative path", in: "./data/fantacalcio.db", want: filepath.Clean("data/fantacalcio.db")},
		{name: "file uri with query", in: "file:/var/lib/fanta.db?_busy_timeout=10", want: filepath.Clean("/var/lib/fanta.db")},
		{name: "surrounding spaces", in: "  /tmp/x.db ", want: filepath.Clean("/tmp/x.db")},
		{name: "empty", in: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeDBPath(tt.in); got != tt.want {
				t.Fatalf("normalizeDBPath(%q)=%q want=%q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDBNameFromPath(t *testing.T) {
	if got := dbNameFromPath("/var/lib/fantacalcio.db"); got != "fantacalcio" {
		t.Fatalf("unexpected db name: %q", got)
	}
	if got := dbNameFromPath(""); got != "" {
		t.Fatalf("expected empty db name, got %q", got)
	}
}

func TestFormatDBQueryForTrace(t *testing.T) {
	got := formatDBQueryForTrace(" SELECT   *\nFROM giocatori \t WHERE ruolo = ? ")
	want := "SELECT * FROM giocatori WHERE ruolo = ?"
	if got != want {
		t.Fatalf("unexpected formatted query: %q", got)
	}
}

func TestFormatDBQueryForTrace_Truncates(t *testing.T) {
	got := formatDBQueryForTrace("SELECT " + strings.Repeat("x, ", 400))
	if len(got) != maxTracedQueryLength+3 || !strings.HasSuffix(got, "...") {
		t.Fatalf("expected truncated query, got length %d", len(got))
	}
}
