// ABOUTME: Proportional scaling of nutritable macros to logged amounts.
// ABOUTME: Pure arithmetic; rounding happens only at presentation boundaries.
package nutrition

import "math"

// Scale converts a macro value defined per baseMeasure units into the
// contribution of amount units: value * amount / baseMeasure.
//
// A zero or otherwise degenerate base measure would produce NaN or Inf;
// those normalize to 0 so a bad table contributes nothing instead of
// poisoning a whole summary. The result is unrounded; callers round at the
// display boundary with Round2 to avoid compounding error across entries.
func Scale(value, amount, baseMeasure float64) float64 {
	result := value * amount / baseMeasure
	if math.IsNaN(result) || math.IsInf(result, 0) {
		return 0
	}
	return result
}

// Round2 rounds to two decimal places for display. The nudge is scaled to
// the value's magnitude so decimals like 2.675, whose nearest float sits
// just below the half boundary, still round half-up.
func Round2(v float64) float64 {
	return math.Round((v+math.Abs(v)*1e-13)*100) / 100
}

// CaloriesFromMacros derives calories from macro grams using the 4/4/9
// rule. NaN inputs count as zero.
func CaloriesFromMacros(protein, carbs, fat float64) float64 {
	safe := func(v float64) float64 {
		if math.IsNaN(v) {
			return 0
		}
		return v
	}
	return safe(protein)*4 + safe(carbs)*4 + safe(fat)*9
}
