package quotation

import (
	"strings"
	"testing"
)

type mapRecord map[string]string

func (m mapRecord) Get(column string) (string, bool) {
	for k, v := range m {
		if strings.EqualFold(k, column) {
			return v, true
		}
	}
	return "", false
}

func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }
func intPtr(v int) *int           { return &v }

func TestMerge_PreservesBlankCells(t *testing.T) {
	existing := Quotation{
		PlayerID:  "rossi_inter",
		Gazzetta:  floatPtr(50),
		Fascia:    strPtr("A"),
		Note:      strPtr("titolare"),
		Voto:      floatPtr(6.5),
		MyRating:  intPtr(8),
		Favourite: true,
	}

	merged, err := Merge(existing, mapRecord{"Nome": "Rossi", "Squadra": "Inter", "Fantagazzetta": "  ", "Note": ""})
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	if merged.Gazzetta == nil || *merged.Gazzetta != 50 {
		t.Fatalf("expected gazzetta preserved, got %v", merged.Gazzetta)
	}
	if merged.Note == nil || *merged.Note != "titolare" {
		t.Fatalf("expected note preserved, got %v", merged.Note)
	}
	if merged.Voto == nil || *merged.Voto != 6.5 || merged.MyRating == nil || *merged.MyRating != 8 {
		t.Fatalf("expected non-imported fields untouched")
	}
	if !merged.Favourite {
		t.Fatalf("expected preferito preserved")
	}
}

func TestMerge_OverwritesNonBlankCells(t *testing.T) {
	existing := Quotation{PlayerID: "rossi_inter", Gazzetta: floatPtr(50), Fascia: strPtr("B")}

	merged, err := Merge(existing, mapRecord{"Fantagazzetta": "85,5", "fascia": "A"})
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	if merged.Gazzetta == nil || *merged.Gazzetta != 85.5 {
		t.Fatalf("expected gazzetta=85.5, got %v", merged.Gazzetta)
	}
	if merged.Fascia == nil || *merged.Fascia != "A" {
		t.Fatalf("expected fascia=A, got %v", merged.Fascia)
	}
	if *existing.Gazzetta != 50 {
		t.Fatalf("existing quotation must not be modified")
	}
}

func TestMerge_ValuationAliasPriority(t *testing.T) {
	tests := []struct {
		name string
		rec  mapRecord
		want float64
	}{
		{name: "primary wins", rec: mapRecord{"Fantagazzetta": "30", "Gazzetta": "20", "Quotazione": "10"}, want: 30},
		{name: "first alias when primary blank", rec: mapRecord{"Fantagazzetta": "", "Gazzetta": "20", "Quotazione": "10"}, want: 20},
		{name: "second alias when others absent", rec: mapRecord{"Quotazione": "10"}, want: 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			merged, err := Merge(Quotation{PlayerID: "p"}, tc.rec)
			if err != nil {
				t.Fatalf("merge: %v", err)
			}
			if merged.Gazzetta == nil || *merged.Gazzetta != tc.want {
				t.Fatalf("expected gazzetta=%v, got %v", tc.want, merged.Gazzetta)
			}
		})
	}
}

func TestMerge_NewRecordLeavesMissingFieldsNull(t *testing.T) {
	merged, err := Merge(Quotation{PlayerID: "p"}, mapRecord{"Gazzetta": "12"})
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	if merged.Fascia != nil || merged.Consiglio != nil || merged.Note != nil {
		t.Fatalf("expected absent fields to stay null")
	}
}

func TestMerge_InvalidNumber(t *testing.T) {
	existing := Quotation{PlayerID: "p", Gazzetta: floatPtr(3)}
	got, err := Merge(existing, mapRecord{"Fantagazzetta": "abc"})
	if err == nil {
		t.Fatalf("expected error for non-numeric valuation")
	}
	if got.Gazzetta == nil || *got.Gazzetta != 3 {
		t.Fatalf("expected existing returned on error")
	}
}

func TestMerge_FavouriteFlag(t *testing.T) {
	merged, err := Merge(Quotation{PlayerID: "p"}, mapRecord{"Preferito": "sì"})
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	if !merged.Favourite {
		t.Fatalf("expected preferito=true")
	}

	merged, err = Merge(Quotation{PlayerID: "p", Favourite: true}, mapRecord{"Preferito": "no"})
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	if merged.Favourite {
		t.Fatalf("expected preferito=false")
	}
}

func TestValidateRating(t *testing.T) {
	if err := ValidateRating(nil); err != nil {
		t.Fatalf("nil rating must be valid: %v", err)
	}
	for _, v := range []int{0, 11, -1} {
		if err := ValidateRating(intPtr(v)); err == nil {
			t.Fatalf("expected error for rating %d", v)
		}
	}
	for _, v := range []int{1, 5, 10} {
		if err := ValidateRating(intPtr(v)); err != nil {
			t.Fatalf("rating %d must be valid: %v", v, err)
		}
	}
}

func TestRowFavourite(t *testing.T) {
	tests := []struct {
		name string
		rec  mapRecord
		want bool
	}{
		{name: "primary column truthy", rec: mapRecord{"Preferito": "si"}, want: true},
		{name: "alias column truthy", rec: mapRecord{"Wishlist": "x"}, want: true},
		{name: "explicit false", rec: mapRecord{"Preferito": "0"}, want: false},
		{name: "blank cell", rec: mapRecord{"Preferito": " "}, want: false},
		{name: "column absent", rec: mapRecord{"Fantagazzetta": "30"}, want: false},
		{name: "unparseable", rec: mapRecord{"Preferito": "forse"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RowFavourite(tt.rec); got != tt.want {
				t.Fatalf("RowFavourite(%v) = %v, want %v", tt.rec, got, tt.want)
			}
		})
	}
}
