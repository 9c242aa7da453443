package catalog

import "strings"

// HardFilter is the set of eligibility constraints applied before scoring.
// Rows that fail a hard filter never reach the ranking engine. Nil / empty
// fields mean the constraint is not applied.
type HardFilter struct {
	MinPrice *int64
	MaxPrice *int64
	Seats    *int
	Fuel     FuelCategory
	Body     string
}

// Apply returns a new table holding only the eligible rows, in their
// original order.
func (f HardFilter) Apply(t *Table) *Table {
	prices, hasPrice := t.Numeric(ColPrice)
	seats, hasSeats := t.Numeric(ColSeating)

	return t.Filter(func(i int) bool {
		if f.MinPrice != nil && hasPrice {
			// A missing price counts as 0 against a minimum.
			p := 0.0
			if prices[i] != nil {
				p = *prices[i]
			}
			if p < float64(*f.MinPrice) {
				return false
			}
		}
		if f.MaxPrice != nil && hasPrice {
			// A missing price never satisfies a maximum.
			if prices[i] == nil || *prices[i] > float64(*f.MaxPrice) {
				return false
			}
		}
		if f.Seats != nil && hasSeats {
			if seats[i] == nil || int(*seats[i]) != *f.Seats {
				return false
			}
		}
		if f.Fuel != "" {
			if FuelCategoryAt(t, i) != f.Fuel {
				return false
			}
		}
		if f.Body != "" {
			body := strings.ToLower(strings.TrimSpace(t.Cell(ColBodyType, i)))
			if !strings.Contains(body, strings.ToLower(strings.TrimSpace(f.Body))) {
				return false
			}
		}
		return true
	})
}
