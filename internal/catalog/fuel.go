package catalog

import "strings"

// FuelCategory is the fixed taxonomy manufacturer fuel strings map into.
type FuelCategory string

const (
	FuelPetrol FuelCategory = "Petrol"
	FuelDiesel FuelCategory = "Diesel"
	FuelHybrid FuelCategory = "Hybrid"
	FuelCNG    FuelCategory = "CNG"
)

// FuelCategories lists the taxonomy in display order.
var FuelCategories = []FuelCategory{FuelPetrol, FuelDiesel, FuelHybrid, FuelCNG}

// fuelMarkers maps each category to the substrings that identify it. Checked
// in order; "deisel" covers a misspelling seen in manufacturer data.
var fuelMarkers = []struct {
	category FuelCategory
	markers  []string
}{
	{FuelCNG, []string{"cng"}},
	{FuelDiesel, []string{"diesel", "deisel"}},
	{FuelHybrid, []string{"hybrid", "phev", "plug-in", "plug in", "mild"}},
	{FuelPetrol, []string{"petrol", "gasoline", "turbo"}},
}

// MapFuel maps a free-text fuel string to its category. Matching is a
// case-insensitive substring check in marker order; anything unrecognized,
// including the empty string, falls back to Petrol.
func MapFuel(s string) FuelCategory {
	lower := strings.ToLower(s)
	for _, entry := range fuelMarkers {
		for _, m := range entry.markers {
			if strings.Contains(lower, m) {
				return entry.category
			}
		}
	}
	return FuelPetrol
}

// ParseFuelCategory validates user-supplied category text against the
// taxonomy. Empty input means no selection.
func ParseFuelCategory(s string) (FuelCategory, bool) {
	if s == "" {
		return "", false
	}
	for _, c := range FuelCategories {
		if strings.EqualFold(string(c), s) {
			return c, true
		}
	}
	return "", false
}

// FuelCategoryAt maps the fuel cell of one row. Rows with no fuel column or
// an empty cell default to Petrol.
func FuelCategoryAt(t *Table, i int) FuelCategory {
	return MapFuel(t.Cell(ColFuelType, i))
}
