package scoring

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

const (
	// Crore and lakh in rupees.
	Crore = 10_000_000
	Lakh  = 100_000
)

var numberPattern = regexp.MustCompile(`[-+]?[0-9]*\.?[0-9]+`)

// ParseBudget converts free-form budget text ("10", "10.5", "1.2cr", "100k",
// "₹12.5") into whole rupees. The boolean is false when the text is empty or
// carries no number at all.
//
// Bare numbers are resolved by magnitude: at or above one lakh, or strictly
// between 1,000 and 100,000, the number is taken as an absolute rupee
// amount; anything at or below 1,000 is read as lakhs. So "10" means
// ₹10,00,000 while "50000" means ₹50,000. That ambiguity is a deliberate,
// long-standing input convention; callers presenting a budget field should
// document it.
func ParseBudget(text string) (int64, bool) {
	s := strings.ToLower(strings.TrimSpace(text))
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, "₹", "")
	if s == "" {
		return 0, false
	}

	if strings.Contains(s, "cr") {
		if v, ok := firstNumber(s); ok {
			return int64(math.Round(v * Crore)), true
		}
		return 0, false
	}

	if strings.Contains(s, "lakh") && !strings.HasSuffix(s, "k") {
		if v, ok := firstNumber(s); ok {
			return int64(math.Round(v * Lakh)), true
		}
		return 0, false
	}

	// Trailing bare "l" also means lakhs; if the prefix is not a clean
	// number this branch falls through rather than failing.
	if strings.HasSuffix(s, "l") && !strings.HasSuffix(s, "k") {
		if v, err := strconv.ParseFloat(strings.TrimSpace(s[:len(s)-1]), 64); err == nil {
			return int64(math.Round(v * Lakh)), true
		}
	}

	if strings.HasSuffix(s, "k") {
		if v, err := strconv.ParseFloat(strings.TrimSpace(s[:len(s)-1]), 64); err == nil {
			return int64(math.Round(v * 1000)), true
		}
		return 0, false
	}

	v, ok := firstNumber(s)
	if !ok {
		return 0, false
	}
	if v >= Lakh {
		return int64(math.Round(v)), true
	}
	if v > 1000 && v < Lakh {
		return int64(math.Round(v)), true
	}
	return int64(math.Round(v * Lakh)), true
}

// FormatINR renders a rupee amount using the same crore/lakh thresholds the
// parser uses, e.g. "₹1.2 Cr", "₹9.5 L", "₹900".
func FormatINR(amount int64) string {
	switch {
	case amount >= Crore:
		v := math.Round(float64(amount)/Crore*100) / 100
		return "₹" + strconv.FormatFloat(v, 'f', -1, 64) + " Cr"
	case amount >= Lakh:
		v := math.Round(float64(amount)/Lakh*10) / 10
		return "₹" + strconv.FormatFloat(v, 'f', -1, 64) + " L"
	default:
		return "₹" + strconv.FormatInt(amount, 10)
	}
}

func firstNumber(s string) (float64, bool) {
	m := numberPattern.FindString(s)
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
