package catalog

import (
	"strconv"
	"strings"
)

// Well-known catalog column names. The loader exposes whatever columns the
// source actually has; these are the ones the rest of the service looks up.
const (
	ColBrand     = "brand"
	ColModelName = "model_name"
	ColVariant   = "variant"

	ColPrice         = "price_inr"
	ColPowerBHP      = "power_bhp"
	ColTorqueNM      = "torque_nm"
	ColTopSpeed      = "top_speed_kmph"
	ColMileage       = "mileage_value"
	ColRangeKM       = "range_km_est"
	ColAirbags       = "airbags_num"
	ColADASLevel     = "adas_level_num"
	ColSunroof       = "sunroof_yes"
	ColCruiseControl = "cruise_control_yes"
	ColGroundClear   = "ground_clearance_mm"
	ColServiceCost   = "service_cost_per_year_avg"
	ColSeating       = "seating_capacity_num"

	ColFuelType = "fuel_type"
	ColBodyType = "body_type"
)

// Table is a schema-flexible, column-oriented snapshot of the car catalog.
// Columns are addressed by name and may be absent; raw cells are text and
// numeric access coerces per cell, treating non-coercible values as missing.
// Derived columns (axes, scores) are float-valued and fully defined.
type Table struct {
	n       int
	order   []string
	text    map[string][]string
	derived map[string][]float64
}

// NewTable builds a table from a header row and data records. Header names
// are whitespace-trimmed; records shorter than the header are padded with
// empty (missing) cells.
func NewTable(columns []string, records [][]string) *Table {
	t := &Table{
		n:       len(records),
		text:    make(map[string][]string, len(columns)),
		derived: make(map[string][]float64),
	}
	for j, name := range columns {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, dup := t.text[name]; dup {
			continue
		}
		col := make([]string, len(records))
		for i, rec := range records {
			if j < len(rec) {
				col[i] = strings.TrimSpace(rec[j])
			}
		}
		t.text[name] = col
		t.order = append(t.order, name)
	}
	return t
}

// Len returns the number of rows.
func (t *Table) Len() int { return t.n }

// Columns returns all column names in order, raw columns first.
func (t *Table) Columns() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Has reports whether the named column exists, raw or derived.
func (t *Table) Has(name string) bool {
	if _, ok := t.text[name]; ok {
		return true
	}
	_, ok := t.derived[name]
	return ok
}

// Cell returns the raw text cell, or "" when the column or value is absent.
func (t *Table) Cell(name string, i int) string {
	col, ok := t.text[name]
	if !ok || i < 0 || i >= len(col) {
		return ""
	}
	return col[i]
}

// Numeric returns the named column coerced to numbers. A nil entry means the
// cell is missing or not coercible. The second return is false when the
// column does not exist at all.
func (t *Table) Numeric(name string) ([]*float64, bool) {
	if col, ok := t.derived[name]; ok {
		out := make([]*float64, len(col))
		for i := range col {
			v := col[i]
			out[i] = &v
		}
		return out, true
	}
	col, ok := t.text[name]
	if !ok {
		return nil, false
	}
	out := make([]*float64, len(col))
	for i, cell := range col {
		if v, ok := parseNumber(cell); ok {
			vv := v
			out[i] = &vv
		}
	}
	return out, true
}

// Derived returns a previously computed float column.
func (t *Table) Derived(name string) ([]float64, bool) {
	col, ok := t.derived[name]
	if !ok {
		return nil, false
	}
	out := make([]float64, len(col))
	copy(out, col)
	return out, true
}

// SetDerived stores (or overwrites) a computed float column. The slice must
// match the table length.
func (t *Table) SetDerived(name string, values []float64) {
	if len(values) != t.n {
		return
	}
	if _, exists := t.derived[name]; !exists {
		if _, raw := t.text[name]; !raw {
			t.order = append(t.order, name)
		}
	}
	col := make([]float64, t.n)
	copy(col, values)
	t.derived[name] = col
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	idx := make([]int, t.n)
	for i := range idx {
		idx[i] = i
	}
	return t.Select(idx)
}

// Select returns a new table containing the given rows, in the given order.
// Indices may repeat; out-of-range indices are skipped.
func (t *Table) Select(indices []int) *Table {
	var keep []int
	for _, i := range indices {
		if i >= 0 && i < t.n {
			keep = append(keep, i)
		}
	}
	out := &Table{
		n:       len(keep),
		order:   append([]string(nil), t.order...),
		text:    make(map[string][]string, len(t.text)),
		derived: make(map[string][]float64, len(t.derived)),
	}
	for name, col := range t.text {
		nc := make([]string, len(keep))
		for i, src := range keep {
			nc[i] = col[src]
		}
		out.text[name] = nc
	}
	for name, col := range t.derived {
		nc := make([]float64, len(keep))
		for i, src := range keep {
			nc[i] = col[src]
		}
		out.derived[name] = nc
	}
	return out
}

// Filter returns a new table holding only rows for which keep returns true.
// Relative row order is preserved.
func (t *Table) Filter(keep func(i int) bool) *Table {
	var idx []int
	for i := 0; i < t.n; i++ {
		if keep(i) {
			idx = append(idx, i)
		}
	}
	return t.Select(idx)
}

// Record materializes one row as a map: raw columns as strings (missing cells
// as ""), derived columns as floats.
func (t *Table) Record(i int) map[string]interface{} {
	rec := make(map[string]interface{}, len(t.order))
	for _, name := range t.order {
		if col, ok := t.derived[name]; ok {
			rec[name] = col[i]
			continue
		}
		rec[name] = t.text[name][i]
	}
	return rec
}

// Records materializes every row. Used to serve JSON responses.
func (t *Table) Records() []map[string]interface{} {
	out := make([]map[string]interface{}, t.n)
	for i := 0; i < t.n; i++ {
		out[i] = t.Record(i)
	}
	return out
}

// parseNumber coerces a raw cell to a float. Empty cells and common textual
// null markers are missing, as is anything strconv cannot parse.
func parseNumber(cell string) (float64, bool) {
	s := strings.TrimSpace(cell)
	if s == "" {
		return 0, false
	}
	switch strings.ToLower(s) {
	case "na", "n/a", "nan", "null", "none", "-":
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
