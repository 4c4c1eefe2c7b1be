// ABOUTME: One-shot summary computation for a date.
// ABOUTME: Entries first, then their nutritables, then the aggregation.
package summaries

import (
	"fmt"
	"time"

	"github.com/harperreed/nosh/internal/models"
	"github.com/harperreed/nosh/internal/nutrition"
)

// ComputeForDate fetches a date's entries and the nutritables they
// reference, then aggregates them into meal summaries. The nutritable fetch
// only happens once the entries are known; with no entries it is skipped
// entirely.
func ComputeForDate(store Store, date time.Time) (nutrition.MealSummaries, error) {
	entries, err := store.ListEntriesByDate(models.Day(date))
	if err != nil {
		return nutrition.MealSummaries{}, fmt.Errorf("fetch entries: %w", err)
	}

	var tables []models.Nutritable
	if len(entries) > 0 {
		resolved, err := store.GetNutritablesByIDs(distinctNutritableIDs(entries))
		if err != nil {
			return nutrition.MealSummaries{}, fmt.Errorf("fetch nutritables: %w", err)
		}
		for _, n := range resolved {
			tables = append(tables, *n)
		}
	}

	return nutrition.ComputeMealSummaries(entries, tables), nil
}

// distinctNutritableIDs collects the unique nutritable ids a set of entries
// references, in first-seen order.
func distinctNutritableIDs(entries []models.Entry) []int64 {
	ids := make([]int64, 0, len(entries))
	seen := make(map[int64]bool, len(entries))
	for _, e := range entries {
		if !seen[e.NutritableID] {
			seen[e.NutritableID] = true
			ids = append(ids, e.NutritableID)
		}
	}
	return ids
}
