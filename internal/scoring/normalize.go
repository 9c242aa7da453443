package scoring

import "sort"

// Normalize rescales a numeric column to [0,1]. A nil entry is a missing
// value. Missing entries are filled with the median of the present values;
// an all-missing or constant column comes back as all zeros. The output is
// always fully defined and deterministic.
func Normalize(values []*float64) []float64 {
	out := make([]float64, len(values))

	med, ok := median(values)
	if !ok {
		return out
	}

	filled := make([]float64, len(values))
	mn, mx := med, med
	for i, v := range values {
		x := med
		if v != nil {
			x = *v
		}
		filled[i] = x
		if x < mn {
			mn = x
		}
		if x > mx {
			mx = x
		}
	}

	if mx == mn {
		return out
	}
	for i, x := range filled {
		out[i] = (x - mn) / (mx - mn)
	}
	return out
}

// median returns the median of the present values, false when every value is
// missing. Even-length inputs use the mean of the two middle values.
func median(values []*float64) (float64, bool) {
	var present []float64
	for _, v := range values {
		if v != nil {
			present = append(present, *v)
		}
	}
	if len(present) == 0 {
		return 0, false
	}
	sort.Float64s(present)
	mid := len(present) / 2
	if len(present)%2 == 1 {
		return present[mid], true
	}
	return (present[mid-1] + present[mid]) / 2, true
}
