package catalog

import "sort"

// SeatOption is one seating capacity present in the catalog, with the number
// of cars offering it.
type SeatOption struct {
	Seats int `json:"seats"`
	Count int `json:"count"`
}

// Summary describes the catalog for filter-building UIs: distinct body
// types, available seating capacities, and fuel category counts.
type Summary struct {
	Cars       int                  `json:"cars"`
	BodyTypes  []string             `json:"body_types"`
	Seating    []SeatOption         `json:"seating"`
	FuelCounts map[FuelCategory]int `json:"fuel_counts"`
}

// Summarize scans the catalog once and builds its Summary.
func Summarize(t *Table) Summary {
	s := Summary{
		Cars:       t.Len(),
		FuelCounts: make(map[FuelCategory]int, len(FuelCategories)),
	}

	bodies := make(map[string]struct{})
	for i := 0; i < t.Len(); i++ {
		if b := t.Cell(ColBodyType, i); b != "" {
			bodies[b] = struct{}{}
		}
		s.FuelCounts[FuelCategoryAt(t, i)]++
	}
	for b := range bodies {
		s.BodyTypes = append(s.BodyTypes, b)
	}
	sort.Strings(s.BodyTypes)

	if seats, ok := t.Numeric(ColSeating); ok {
		counts := make(map[int]int)
		for _, v := range seats {
			if v != nil {
				counts[int(*v)]++
			}
		}
		for n, count := range counts {
			s.Seating = append(s.Seating, SeatOption{Seats: n, Count: count})
		}
		sort.Slice(s.Seating, func(i, j int) bool { return s.Seating[i].Seats < s.Seating[j].Seats })
	}

	return s
}
