package catalog

import "testing"

func TestMapFuel(t *testing.T) {
	tests := []struct {
		in   string
		want FuelCategory
	}{
		{"Diesel Turbo", FuelDiesel},
		{"Mild Hybrid Petrol", FuelHybrid},
		{"", FuelPetrol},
		{"CNG+Petrol", FuelCNG},
		{"PHEV", FuelHybrid},
		{"Plug-in Hybrid", FuelHybrid},
		{"plug in hybrid", FuelHybrid},
		{"Deisel", FuelDiesel},
		{"Gasoline", FuelPetrol},
		{"1.5 Turbo GDI", FuelPetrol},
		{"Electric", FuelPetrol}, // unrecognized falls back to Petrol
	}
	for _, tt := range tests {
		if got := MapFuel(tt.in); got != tt.want {
			t.Errorf("MapFuel(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestParseFuelCategory(t *testing.T) {
	if c, ok := ParseFuelCategory("diesel"); !ok || c != FuelDiesel {
		t.Errorf("got %s ok=%v", c, ok)
	}
	if _, ok := ParseFuelCategory("electric"); ok {
		t.Error("electric is not in the taxonomy")
	}
	if _, ok := ParseFuelCategory(""); ok {
		t.Error("empty input is no selection")
	}
}
