package element

import "testing"

func TestCatalogIntegrity(t *testing.T) {
	all := All()
	if len(all) != 118 {
		t.Fatalf("catalog has %d elements, want 118", len(all))
	}

	symbols := make(map[string]bool, len(all))
	names := make(map[string]bool, len(all))
	for i, e := range all {
		if e.Number != i+1 {
			t.Errorf("catalog[%d] = %s has number %d, want %d", i, e.Symbol, e.Number, i+1)
		}
		if symbols[e.Symbol] {
			t.Errorf("duplicate symbol %q", e.Symbol)
		}
		symbols[e.Symbol] = true
		if names[e.Name] {
			t.Errorf("duplicate name %q", e.Name)
		}
		names[e.Name] = true
		if e.Group < 1 || e.Group > 18 {
			t.Errorf("%s has group %d, want 1..18", e.Symbol, e.Group)
		}
		if e.Period < 1 || e.Period > 7 {
			t.Errorf("%s has period %d, want 1..7", e.Symbol, e.Period)
		}
		if e.AtomicMass <= 0 {
			t.Errorf("%s has atomic mass %v", e.Symbol, e.AtomicMass)
		}
	}
}

func TestAllReturnsCopy(t *testing.T) {
	a := All()
	a[0].Symbol = "XX"
	if b := All(); b[0].Symbol != "H" {
		t.Errorf("mutating All() result leaked into the catalog: got %q", b[0].Symbol)
	}
}

func TestFromSymbol(t *testing.T) {
	tests := []struct {
		symbol string
		number int
		ok     bool
	}{
		{"H", 1, true},
		{"He", 2, true},
		{"Fe", 26, true},
		{"Og", 118, true},
		{"fe", 0, false}, // symbols are case-sensitive
		{"Xx", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		e, ok := FromSymbol(tt.symbol)
		if ok != tt.ok || e.Number != tt.number {
			t.Errorf("FromSymbol(%q) = (%d, %v), want (%d, %v)", tt.symbol, e.Number, ok, tt.number, tt.ok)
		}
	}
}

func TestFromName(t *testing.T) {
	tests := []struct {
		name   string
		symbol string
		ok     bool
	}{
		{"Iron", "Fe", true},
		{"iron", "Fe", true},
		{"CAESIUM", "Cs", true},
		{"Aluminium", "Al", true},
		{"Unobtainium", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		e, ok := FromName(tt.name)
		if ok != tt.ok || e.Symbol != tt.symbol {
			t.Errorf("FromName(%q) = (%q, %v), want (%q, %v)", tt.name, e.Symbol, ok, tt.symbol, tt.ok)
		}
	}
}

func TestFromNumber(t *testing.T) {
	tests := []struct {
		z      int
		symbol string
		ok     bool
	}{
		{1, "H", true},
		{118, "Og", true},
		{0, "", false},
		{-4, "", false},
		{119, "", false},
	}
	for _, tt := range tests {
		e, ok := FromNumber(tt.z)
		if ok != tt.ok || e.Symbol != tt.symbol {
			t.Errorf("FromNumber(%d) = (%q, %v), want (%q, %v)", tt.z, e.Symbol, ok, tt.symbol, tt.ok)
		}
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		id     string
		symbol string
		ok     bool
	}{
		{"He", "He", true},
		{"Helium", "He", true},
		{"helium", "He", true},
		{"tin", "Sn", true},
		{"Xx", "", false},
		{"42", "", false},
	}
	for _, tt := range tests {
		e, ok := Resolve(tt.id)
		if ok != tt.ok || e.Symbol != tt.symbol {
			t.Errorf("Resolve(%q) = (%q, %v), want (%q, %v)", tt.id, e.Symbol, ok, tt.symbol, tt.ok)
		}
	}
}
