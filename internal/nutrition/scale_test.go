// ABOUTME: Tests for proportional scaling and rounding helpers.
// ABOUTME: Covers degenerate base measures, linearity, and the 4/4/9 rule.
package nutrition

import (
	"math"
	"testing"
)

func TestScale(t *testing.T) {
	tests := []struct {
		name        string
		value       float64
		amount      float64
		baseMeasure float64
		want        float64
	}{
		{"half of base", 200, 50, 100, 100},
		{"equal to base", 10, 100, 100, 10},
		{"double base", 20, 200, 100, 40},
		{"fractional result", 5, 50, 100, 2.5},
		{"zero value", 0, 50, 100, 0},
		{"zero amount", 200, 0, 100, 0},
		{"zero base measure", 100, 50, 0, 0},
		{"zero value and base", 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Scale(tt.value, tt.amount, tt.baseMeasure)
			if got != tt.want {
				t.Errorf("Scale(%v, %v, %v) = %v, want %v", tt.value, tt.amount, tt.baseMeasure, got, tt.want)
			}
			if math.IsNaN(got) || math.IsInf(got, 0) {
				t.Errorf("Scale returned non-finite value %v", got)
			}
		})
	}
}

func TestScaleLinearity(t *testing.T) {
	// scale(v, a*k, b) == k * scale(v, a, b) within float tolerance
	const v, a, b = 389.0, 50.0, 100.0
	for _, k := range []float64{0.5, 2, 3, 10} {
		scaled := Scale(v, a*k, b)
		want := k * Scale(v, a, b)
		if math.Abs(scaled-want) > 1e-9 {
			t.Errorf("linearity broken for k=%v: got %v, want %v", k, scaled, want)
		}
	}
}

func TestScaleIsUnrounded(t *testing.T) {
	// 1/3 of the base must keep full precision; rounding is the caller's job.
	got := Scale(10, 1, 3)
	if got == Round2(got) {
		t.Errorf("expected unrounded result, got %v", got)
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{2.675, 2.68},
		{2.674, 2.67},
		{0, 0},
		{1.005, 1.01},
		{-1.234, -1.23},
		{100, 100},
		{12345.675, 12345.68},
		{66.666666666666666, 66.67},
	}

	for _, tt := range tests {
		if got := Round2(tt.in); got != tt.want {
			t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCaloriesFromMacros(t *testing.T) {
	tests := []struct {
		name                string
		protein, carbs, fat float64
		want                float64
	}{
		{"all zero", 0, 0, 0, 0},
		{"protein only", 10, 0, 0, 40},
		{"carbs only", 0, 10, 0, 40},
		{"fat only", 0, 0, 10, 90},
		{"mixed", 17, 66, 7, 395},
		{"NaN counts as zero", math.NaN(), 10, 0, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CaloriesFromMacros(tt.protein, tt.carbs, tt.fat); got != tt.want {
				t.Errorf("CaloriesFromMacros(%v, %v, %v) = %v, want %v", tt.protein, tt.carbs, tt.fat, got, tt.want)
			}
		})
	}
}
