package csvrows

import (
	"errors"
	"strings"
	"testing"
)

func TestRead_CommaDelimited(t *testing.T) {
	input := "Nome,Squadra,Fantagazzetta\nRossi,Inter,85\n\nBianchi , Milan ,\n"
	records, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	if v, ok := records[0].Get("fantagazzetta"); !ok || v != "85" {
		t.Fatalf("unexpected valuation: %q %t", v, ok)
	}
	if v, _ := records[1].Get("Nome"); v != "Bianchi" {
		t.Fatalf("expected trimmed name, got %q", v)
	}
	if v, ok := records[1].Get("Fantagazzetta"); !ok || v != "" {
		t.Fatalf("expected present blank cell, got %q %t", v, ok)
	}
	if _, ok := records[1].Get("Gazzetta"); ok {
		t.Fatalf("expected absent column")
	}
	if records[1].Row != 2 {
		t.Fatalf("unexpected row number: %d", records[1].Row)
	}
}

func TestRead_SemicolonWithBOM(t *testing.T) {
	input := "\xEF\xBB\xBFNome;Squadra;Quotazione\n\"Martínez, L.\";Inter;40,5\n"
	records, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if v, _ := records[0].Get("nome"); v != "Martínez, L." {
		t.Fatalf("unexpected name: %q", v)
	}
	if v, _ := records[0].Get("Quotazione"); v != "40,5" {
		t.Fatalf("unexpected valuation: %q", v)
	}
}

func TestRead_ShortRowsFillBlank(t *testing.T) {
	records, err := Read(strings.NewReader("Nome,Squadra,Note\nRossi,Inter\n"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if v, ok := records[0].Get("Note"); !ok || v != "" {
		t.Fatalf("expected blank note, got %q %t", v, ok)
	}
}

func TestRead_Empty(t *testing.T) {
	if _, err := Read(strings.NewReader("")); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
}
