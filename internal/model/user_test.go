package model

import "testing"

func TestParseDiabetesType(t *testing.T) {
	t.Parallel()

	valid := []string{"", "type 1", "type 2", "gestational", "other"}
	for _, s := range valid {
		if _, err := ParseDiabetesType(s); err != nil {
			t.Fatalf("ParseDiabetesType(%q) error: %v", s, err)
		}
	}
	for _, s := range []string{"type 3", "TYPE 1", "none", "diabetes"} {
		if _, err := ParseDiabetesType(s); err == nil {
			t.Fatalf("ParseDiabetesType(%q): expected error, got nil", s)
		}
	}
}

func TestDiabetesType_ScanValue(t *testing.T) {
	t.Parallel()

	var d DiabetesType
	if err := d.Scan(nil); err != nil {
		t.Fatalf("Scan(nil) error: %v", err)
	}
	if d != DiabetesUnset {
		t.Fatalf("NULL scanned to %q, want unset", d)
	}

	if err := d.Scan([]byte("gestational")); err != nil {
		t.Fatalf("Scan error: %v", err)
	}
	if d != DiabetesGestational {
		t.Fatalf("scanned %q, want gestational", d)
	}

	if err := d.Scan("type 3"); err == nil {
		t.Fatalf("expected error scanning unknown variant")
	}

	v, err := DiabetesUnset.Value()
	if err != nil {
		t.Fatalf("Value error: %v", err)
	}
	if v != nil {
		t.Fatalf("unset must store as NULL, got %v", v)
	}
	v, err = DiabetesType2.Value()
	if err != nil {
		t.Fatalf("Value error: %v", err)
	}
	if v != "type 2" {
		t.Fatalf("Value = %v, want %q", v, "type 2")
	}
	if _, err := DiabetesType("bogus").Value(); err == nil {
		t.Fatalf("expected error valuing unknown variant")
	}
}
