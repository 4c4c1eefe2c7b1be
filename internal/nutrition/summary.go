// ABOUTME: Meal summary aggregation: entries + nutritables to macro totals.
// ABOUTME: Pure computation; the day total is derived from the meal totals.
package nutrition

import (
	"github.com/harperreed/nosh/internal/models"
)

// MacroSummary holds aggregated macro totals for one meal slot, or for the
// whole day when MealID is models.MealDay.
type MacroSummary struct {
	MealID  models.MealID `json:"meal_id" yaml:"meal_id"`
	Kcals   float64       `json:"kcals" yaml:"kcals"`
	Protein float64       `json:"protein" yaml:"protein"`
	Fat     float64       `json:"fat" yaml:"fat"`
	Carbs   float64       `json:"carbs" yaml:"carbs"`
}

// add accumulates another summary's macros into this one.
func (s *MacroSummary) add(o MacroSummary) {
	s.Kcals += o.Kcals
	s.Protein += o.Protein
	s.Fat += o.Fat
	s.Carbs += o.Carbs
}

// Rounded returns a copy with every macro rounded to two decimals.
func (s MacroSummary) Rounded() MacroSummary {
	return MacroSummary{
		MealID:  s.MealID,
		Kcals:   Round2(s.Kcals),
		Protein: Round2(s.Protein),
		Fat:     Round2(s.Fat),
		Carbs:   Round2(s.Carbs),
	}
}

// MealSummaries holds one summary per meal slot plus the whole-day total.
//
// Day is always the element-wise sum of the five meal summaries; it is
// derived from them, never recomputed from the raw entries, so the two can
// not diverge.
type MealSummaries struct {
	Day       MacroSummary `json:"day" yaml:"day"`
	Breakfast MacroSummary `json:"breakfast" yaml:"breakfast"`
	Morning   MacroSummary `json:"morning" yaml:"morning"`
	Lunch     MacroSummary `json:"lunch" yaml:"lunch"`
	Afternoon MacroSummary `json:"afternoon" yaml:"afternoon"`
	Dinner    MacroSummary `json:"dinner" yaml:"dinner"`
}

// ByMeal returns the summary for a meal slot; models.MealDay returns the
// day total.
func (ms *MealSummaries) ByMeal(id models.MealID) MacroSummary {
	switch id {
	case models.MealBreakfast:
		return ms.Breakfast
	case models.MealMorning:
		return ms.Morning
	case models.MealLunch:
		return ms.Lunch
	case models.MealAfternoon:
		return ms.Afternoon
	case models.MealDinner:
		return ms.Dinner
	default:
		return ms.Day
	}
}

// Rounded returns a copy with every summary rounded for display.
func (ms MealSummaries) Rounded() MealSummaries {
	return MealSummaries{
		Day:       ms.Day.Rounded(),
		Breakfast: ms.Breakfast.Rounded(),
		Morning:   ms.Morning.Rounded(),
		Lunch:     ms.Lunch.Rounded(),
		Afternoon: ms.Afternoon.Rounded(),
		Dinner:    ms.Dinner.Rounded(),
	}
}

// emptySummaries returns six zeroed summaries with their meal ids set.
func emptySummaries() MealSummaries {
	return MealSummaries{
		Day:       MacroSummary{MealID: models.MealDay},
		Breakfast: MacroSummary{MealID: models.MealBreakfast},
		Morning:   MacroSummary{MealID: models.MealMorning},
		Lunch:     MacroSummary{MealID: models.MealLunch},
		Afternoon: MacroSummary{MealID: models.MealAfternoon},
		Dinner:    MacroSummary{MealID: models.MealDinner},
	}
}

// ComputeMealSummaries aggregates journal entries into per-meal and per-day
// macro totals.
//
// The caller supplies the entries for a single date (the engine does no
// date filtering) and the nutritables those entries reference. An entry
// whose nutritable is absent from the set, because it is still loading or
// was deleted without a resolvable record, contributes zero to its meal
// rather than failing the whole computation.
func ComputeMealSummaries(entries []models.Entry, nutritables []models.Nutritable) MealSummaries {
	summaries := emptySummaries()

	if len(entries) == 0 || len(nutritables) == 0 {
		return summaries
	}

	byID := make(map[int64]models.Nutritable, len(nutritables))
	for _, n := range nutritables {
		byID[n.ID] = n
	}

	meals := map[models.MealID]*MacroSummary{
		models.MealBreakfast: &summaries.Breakfast,
		models.MealMorning:   &summaries.Morning,
		models.MealLunch:     &summaries.Lunch,
		models.MealAfternoon: &summaries.Afternoon,
		models.MealDinner:    &summaries.Dinner,
	}

	for _, entry := range entries {
		table, ok := byID[entry.NutritableID]
		if !ok {
			continue
		}
		meal, ok := meals[entry.MealID]
		if !ok {
			continue
		}

		meal.add(MacroSummary{
			Kcals:   Scale(table.Kcals, entry.Amount, table.BaseMeasure),
			Protein: Scale(table.Protein, entry.Amount, table.BaseMeasure),
			Fat:     Scale(table.Fats, entry.Amount, table.BaseMeasure),
			Carbs:   Scale(table.Carbs, entry.Amount, table.BaseMeasure),
		})
	}

	for _, meal := range []MacroSummary{
		summaries.Breakfast, summaries.Morning, summaries.Lunch,
		summaries.Afternoon, summaries.Dinner,
	} {
		summaries.Day.add(meal)
	}

	return summaries
}
