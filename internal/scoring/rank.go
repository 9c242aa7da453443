package scoring

import (
	"sort"
	"strings"

	"github.com/motorwala/motorwala/internal/catalog"
)

// Derived result column names.
const (
	ColFinalScore    = "final_score"
	ColBudgetPenalty = "budget_penalty"
)

// penaltyFactor scales the budget-overage penalty subtracted from the final
// score. Fixed for compatibility with historical rankings.
const penaltyFactor = 0.5

// Soft-preference weight keys.
const (
	WeightFuelPref = "fuel_pref"
	WeightBodyPref = "body_pref"
)

// Request is one ranking invocation. Weights are keyed by axis name
// ("performance" ... "price", plus "fuel_pref"/"body_pref" when the matching
// soft preference is set); missing keys weigh 0 and an all-zero map means
// uniform weighting. MaxBudget, when set, applies a soft over-budget penalty
// rather than excluding records — hard exclusion is the caller's job, before
// Rank is invoked.
type Request struct {
	Weights   map[string]float64
	TopN      int
	MaxBudget *int64
	SoftFuel  catalog.FuelCategory
	SoftBody  string
}

// Rank scores the catalog and returns a new table of the top-N records,
// sorted by descending final score. The input table is never mutated. Ties
// keep their original relative order. TopN <= 0 yields an empty table.
//
// Every record in the input appears in the scoring: a record missing an axis
// input simply contributes 0 on that axis. Rank never fails on data quality.
func Rank(t *catalog.Table, req Request) *catalog.Table {
	d := t.Clone()

	for _, spec := range BaseAxisSpecs() {
		if !d.Has(spec.Name) {
			ComputeAxes(d)
			break
		}
	}

	type activeAxis struct {
		column    string
		weightKey string
	}
	var active []activeAxis
	for _, spec := range BaseAxisSpecs() {
		active = append(active, activeAxis{column: spec.Name, weightKey: spec.WeightKey})
	}

	n := d.Len()
	if req.SoftFuel != "" {
		axis := make([]float64, n)
		for i := 0; i < n; i++ {
			if catalog.FuelCategoryAt(d, i) == req.SoftFuel {
				axis[i] = 1.0
			}
		}
		d.SetDerived(AxisFuelPref, axis)
		active = append(active, activeAxis{column: AxisFuelPref, weightKey: WeightFuelPref})
	}
	if req.SoftBody != "" {
		// Literal substring match on the cleaned body text; the selection is
		// never treated as pattern syntax.
		sel := strings.ToLower(strings.TrimSpace(req.SoftBody))
		axis := make([]float64, n)
		for i := 0; i < n; i++ {
			body := strings.ToLower(strings.TrimSpace(d.Cell(catalog.ColBodyType, i)))
			if strings.Contains(body, sel) {
				axis[i] = 1.0
			}
		}
		d.SetDerived(AxisBodyPref, axis)
		active = append(active, activeAxis{column: AxisBodyPref, weightKey: WeightBodyPref})
	}

	weights := make([]float64, len(active))
	var sum float64
	for i, ax := range active {
		weights[i] = req.Weights[ax.weightKey]
		sum += weights[i]
	}
	if sum == 0 {
		for i := range weights {
			weights[i] = 1.0
		}
		sum = float64(len(weights))
	}
	for i := range weights {
		weights[i] /= sum
	}

	scores := make([]float64, n)
	for i, ax := range active {
		col, ok := d.Derived(ax.column)
		if !ok {
			continue
		}
		for r := 0; r < n; r++ {
			scores[r] += weights[i] * col[r]
		}
	}

	if req.MaxBudget != nil {
		maxb := float64(*req.MaxBudget)
		penalties := make([]float64, n)
		prices, hasPrice := d.Numeric(catalog.ColPrice)
		if hasPrice {
			for r := 0; r < n; r++ {
				if prices[r] == nil {
					continue
				}
				if over := (*prices[r] - maxb) / (maxb + 1); over > 0 {
					penalties[r] = over
				}
			}
		}
		for r := 0; r < n; r++ {
			scores[r] -= penaltyFactor * penalties[r]
		}
		d.SetDerived(ColBudgetPenalty, penalties)
	}

	d.SetDerived(ColFinalScore, scores)

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return scores[idx[a]] > scores[idx[b]] })

	k := req.TopN
	if k < 0 {
		k = 0
	}
	if k > n {
		k = n
	}
	return d.Select(idx[:k])
}
