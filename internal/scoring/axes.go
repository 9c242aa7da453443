package scoring

import "github.com/motorwala/motorwala/internal/catalog"

// Derived axis column names.
const (
	AxisPerformance = "axis_performance"
	AxisEconomy     = "axis_economy"
	AxisSafety      = "axis_safety"
	AxisComfort     = "axis_comfort"
	AxisOwnership   = "axis_ownership"
	AxisPrice       = "axis_price"

	AxisFuelPref = "axis_fuel_pref"
	AxisBodyPref = "axis_body_pref"
)

// AxisSpec describes how one scoring axis is derived: which raw columns feed
// it and whether the normalized value is inverted (for axes where a lower
// raw value is more desirable, like price).
type AxisSpec struct {
	Name      string
	WeightKey string
	Columns   []string
	Invert    bool
}

// BaseAxisSpecs returns the six-axis derivation table. Seating capacity is
// deliberately absent: it is an eligibility filter, not a ranking signal.
func BaseAxisSpecs() []AxisSpec {
	return []AxisSpec{
		{Name: AxisPerformance, WeightKey: "performance", Columns: []string{catalog.ColPowerBHP, catalog.ColTorqueNM, catalog.ColTopSpeed}},
		{Name: AxisEconomy, WeightKey: "economy", Columns: []string{catalog.ColMileage, catalog.ColRangeKM}},
		{Name: AxisSafety, WeightKey: "safety", Columns: []string{catalog.ColAirbags, catalog.ColADASLevel}},
		{Name: AxisComfort, WeightKey: "comfort", Columns: []string{catalog.ColSunroof, catalog.ColCruiseControl, catalog.ColGroundClear}},
		{Name: AxisOwnership, WeightKey: "ownership", Columns: []string{catalog.ColServiceCost}, Invert: true},
		{Name: AxisPrice, WeightKey: "price", Columns: []string{catalog.ColPrice}, Invert: true},
	}
}

// ComputeAxes derives the six base axis columns on t in place, overwriting
// any existing axis columns. Recomputing on a table that already carries
// axes yields identical values, since only raw columns feed the derivation.
func ComputeAxes(t *catalog.Table) {
	ComputeAxesWith(t, BaseAxisSpecs())
}

// ComputeAxesWith derives axis columns per the given spec table. For each
// axis, every contributing column that exists in the catalog is normalized
// independently and the axis value is the per-record mean across them. An
// axis with no contributing columns present is constant zero.
func ComputeAxesWith(t *catalog.Table, specs []AxisSpec) {
	n := t.Len()
	for _, spec := range specs {
		var normalized [][]float64
		for _, col := range spec.Columns {
			values, ok := t.Numeric(col)
			if !ok {
				continue
			}
			normalized = append(normalized, Normalize(values))
		}

		axis := make([]float64, n)
		if len(normalized) > 0 {
			for i := 0; i < n; i++ {
				var sum float64
				for _, col := range normalized {
					sum += col[i]
				}
				axis[i] = sum / float64(len(normalized))
				if spec.Invert {
					axis[i] = 1 - axis[i]
				}
			}
		}
		t.SetDerived(spec.Name, axis)
	}
}
