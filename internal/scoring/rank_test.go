package scoring

import (
	"math"
	"testing"

	"github.com/motorwala/motorwala/internal/catalog"
)

func int64Ptr(v int64) *int64 { return &v }

func threeCarTable() *catalog.Table {
	return newTestTable(
		[]string{"brand", "model_name", "price_inr"},
		[][]string{
			{"Alpha", "Hatch", "500000"},
			{"Beta", "Sedan", "1200000"},
			{"Gamma", "SUV", "2000000"},
		},
	)
}

func finalScores(t *testing.T, tab *catalog.Table) []float64 {
	t.Helper()
	scores, ok := tab.Derived(ColFinalScore)
	if !ok {
		t.Fatal("final_score column missing")
	}
	return scores
}

func TestRankLengthAndTruncation(t *testing.T) {
	tab := threeCarTable()

	t.Run("top_n larger than catalog", func(t *testing.T) {
		out := Rank(tab, Request{TopN: 10})
		if out.Len() != 3 {
			t.Errorf("got %d rows, want 3", out.Len())
		}
	})

	t.Run("top_n truncates", func(t *testing.T) {
		out := Rank(tab, Request{TopN: 2})
		if out.Len() != 2 {
			t.Errorf("got %d rows, want 2", out.Len())
		}
	})

	t.Run("top_n zero is empty", func(t *testing.T) {
		out := Rank(tab, Request{TopN: 0})
		if out.Len() != 0 {
			t.Errorf("got %d rows, want 0", out.Len())
		}
	})

	t.Run("negative top_n is empty", func(t *testing.T) {
		out := Rank(tab, Request{TopN: -5})
		if out.Len() != 0 {
			t.Errorf("got %d rows, want 0", out.Len())
		}
	})
}

func TestRankSortedDescending(t *testing.T) {
	out := Rank(threeCarTable(), Request{TopN: 3})
	scores := finalScores(t, out)
	for i := 1; i < len(scores); i++ {
		if scores[i] > scores[i-1] {
			t.Errorf("scores not non-increasing at %d: %f > %f", i, scores[i], scores[i-1])
		}
	}
}

func TestRankZeroWeightsEqualsUniform(t *testing.T) {
	tab := threeCarTable()

	zero := Rank(tab, Request{TopN: 3, Weights: map[string]float64{"performance": 0, "price": 0}})
	uniform := Rank(tab, Request{TopN: 3, Weights: map[string]float64{
		"performance": 1, "economy": 1, "safety": 1, "comfort": 1, "ownership": 1, "price": 1,
	}})

	zs := finalScores(t, zero)
	us := finalScores(t, uniform)
	for i := range zs {
		if math.Abs(zs[i]-us[i]) > 1e-12 {
			t.Errorf("score %d differs: zero-weights %f vs uniform %f", i, zs[i], us[i])
		}
		if zero.Cell("model_name", i) != uniform.Cell("model_name", i) {
			t.Errorf("order %d differs: %s vs %s", i, zero.Cell("model_name", i), uniform.Cell("model_name", i))
		}
	}
}

func TestRankWeightsNormalized(t *testing.T) {
	tab := threeCarTable()
	// Scaling every weight by a constant must not change any score.
	a := Rank(tab, Request{TopN: 3, Weights: map[string]float64{"price": 2, "safety": 4}})
	b := Rank(tab, Request{TopN: 3, Weights: map[string]float64{"price": 1, "safety": 2}})
	as := finalScores(t, a)
	bs := finalScores(t, b)
	for i := range as {
		if math.Abs(as[i]-bs[i]) > 1e-12 {
			t.Errorf("score %d changed under weight scaling: %f vs %f", i, as[i], bs[i])
		}
	}
}

func TestRankBudgetPenalty(t *testing.T) {
	tab := threeCarTable()
	maxBudget := int64(1_000_000)

	plain := Rank(tab, Request{TopN: 3})
	penalized := Rank(tab, Request{TopN: 3, MaxBudget: int64Ptr(maxBudget)})

	penalties, ok := penalized.Derived(ColBudgetPenalty)
	if !ok {
		t.Fatal("budget_penalty column missing when max budget supplied")
	}
	if _, ok := plain.Derived(ColBudgetPenalty); ok {
		t.Error("budget_penalty must only exist when a max budget is supplied")
	}

	plainByModel := make(map[string]float64)
	for i, s := range finalScores(t, plain) {
		plainByModel[plain.Cell("model_name", i)] = s
	}
	for i, s := range finalScores(t, penalized) {
		model := penalized.Cell("model_name", i)
		prices, _ := penalized.Numeric(catalog.ColPrice)
		price := *prices[i]
		switch {
		case price <= float64(maxBudget):
			if penalties[i] != 0 {
				t.Errorf("%s within budget, penalty = %f, want 0", model, penalties[i])
			}
			if math.Abs(s-plainByModel[model]) > 1e-12 {
				t.Errorf("%s within budget, score changed: %f vs %f", model, s, plainByModel[model])
			}
		default:
			if penalties[i] <= 0 {
				t.Errorf("%s over budget, penalty = %f, want > 0", model, penalties[i])
			}
			if s >= plainByModel[model] {
				t.Errorf("%s over budget, score %f not strictly below %f", model, s, plainByModel[model])
			}
			want := (price - float64(maxBudget)) / (float64(maxBudget) + 1)
			if math.Abs(penalties[i]-want) > 1e-9 {
				t.Errorf("%s penalty = %f, want %f", model, penalties[i], want)
			}
		}
	}
}

func TestRankUnknownPriceNoPenalty(t *testing.T) {
	tab := newTestTable(
		[]string{"model_name", "price_inr", "power_bhp"},
		[][]string{
			{"Priced", "2000000", "100"},
			{"Mystery", "", "200"},
		},
	)
	out := Rank(tab, Request{TopN: 2, MaxBudget: int64Ptr(1_000_000)})
	penalties, _ := out.Derived(ColBudgetPenalty)
	for i := 0; i < out.Len(); i++ {
		if out.Cell("model_name", i) == "Mystery" && penalties[i] != 0 {
			t.Errorf("unknown price must carry no penalty, got %f", penalties[i])
		}
	}
}

func TestRankEndToEndBudgetScenario(t *testing.T) {
	// Three cars priced 5L, 12L, 20L with a 10L budget: price axis plus
	// penalty must order them cheapest first.
	out := Rank(threeCarTable(), Request{TopN: 3, MaxBudget: int64Ptr(1_000_000)})
	wantOrder := []string{"Hatch", "Sedan", "SUV"}
	for i, want := range wantOrder {
		if got := out.Cell("model_name", i); got != want {
			t.Errorf("rank %d = %s, want %s", i+1, got, want)
		}
	}
}

func TestRankStableTies(t *testing.T) {
	tab := newTestTable(
		[]string{"model_name", "price_inr"},
		[][]string{
			{"First", "800000"},
			{"Second", "800000"},
			{"Third", "800000"},
		},
	)
	out := Rank(tab, Request{TopN: 3})
	for i, want := range []string{"First", "Second", "Third"} {
		if got := out.Cell("model_name", i); got != want {
			t.Errorf("tied rank %d = %s, want %s (input order must hold)", i+1, got, want)
		}
	}
}

func TestRankSoftFuelPreference(t *testing.T) {
	tab := newTestTable(
		[]string{"model_name", "fuel_type", "price_inr"},
		[][]string{
			{"Oil", "Diesel", "1000000"},
			{"Spark", "Petrol", "1000000"},
		},
	)
	out := Rank(tab, Request{
		TopN:     2,
		SoftFuel: catalog.FuelDiesel,
		Weights:  map[string]float64{"fuel_pref": 5},
	})
	if got := out.Cell("model_name", 0); got != "Oil" {
		t.Errorf("diesel preference should rank Oil first, got %s", got)
	}
	if axis, ok := out.Derived(AxisFuelPref); !ok {
		t.Error("fuel preference axis missing")
	} else if axis[0] != 1 || axis[1] != 0 {
		t.Errorf("fuel axis = %v, want [1 0]", axis)
	}
}

func TestRankSoftBodyPreference(t *testing.T) {
	tab := newTestTable(
		[]string{"model_name", "body_type", "price_inr"},
		[][]string{
			{"Boxy", "  Compact SUV ", "1000000"},
			{"Slim", "Sedan", "1000000"},
		},
	)
	out := Rank(tab, Request{
		TopN:     2,
		SoftBody: "suv",
		Weights:  map[string]float64{"body_pref": 5},
	})
	if got := out.Cell("model_name", 0); got != "Boxy" {
		t.Errorf("SUV preference should rank Boxy first, got %s", got)
	}
}

func TestRankBodyPreferenceIsLiteral(t *testing.T) {
	tab := newTestTable(
		[]string{"model_name", "body_type", "price_inr"},
		[][]string{
			{"Plus", "SUV (4+2)", "1000000"},
			{"Other", "SUV 4x2", "1000000"},
		},
	)
	// "(4+2)" would blow up a pattern matcher; it must match literally.
	out := Rank(tab, Request{
		TopN:     2,
		SoftBody: "(4+2)",
		Weights:  map[string]float64{"body_pref": 5},
	})
	axis, ok := out.Derived(AxisBodyPref)
	if !ok {
		t.Fatal("body preference axis missing")
	}
	if out.Cell("model_name", 0) != "Plus" || axis[0] != 1 {
		t.Errorf("literal match failed: first=%s axis=%v", out.Cell("model_name", 0), axis)
	}
}

func TestRankDoesNotMutateInput(t *testing.T) {
	tab := threeCarTable()
	_ = Rank(tab, Request{TopN: 3, MaxBudget: int64Ptr(1_000_000)})
	if tab.Has(ColFinalScore) {
		t.Error("input table gained a final_score column")
	}
	if tab.Has(AxisPrice) {
		t.Error("input table gained axis columns")
	}
}

func TestRankAcceptsPrecomputedAxes(t *testing.T) {
	tab := threeCarTable()
	ComputeAxes(tab)
	withAxes := Rank(tab, Request{TopN: 3})
	fresh := Rank(threeCarTable(), Request{TopN: 3})
	a := finalScores(t, withAxes)
	b := finalScores(t, fresh)
	for i := range a {
		if math.Abs(a[i]-b[i]) > 1e-12 {
			t.Errorf("score %d differs with precomputed axes: %f vs %f", i, a[i], b[i])
		}
	}
}
