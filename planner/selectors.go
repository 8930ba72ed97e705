// File: /planner/selectors.go
package planner

import (
	"sort"

	"safarplan-api/catalog"
)

// selectCheapestTransport picks the cheapest transport whose round-trip price
// (2x one-way) fits within maxRoundTrip. When nothing fits it falls back to
// the globally cheapest option so a trip still gets transport. Returns nil
// only when no option exists at all. Ties keep catalog order.
func selectCheapestTransport(options []catalog.Transport, maxRoundTrip float64) *catalog.Transport {
	if len(options) == 0 {
		return nil
	}

	sorted := make([]catalog.Transport, len(options))
	copy(sorted, options)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Price < sorted[j].Price
	})

	for i := range sorted {
		if float64(sorted[i].Price*2) <= maxRoundTrip {
			return &sorted[i]
		}
	}
	return &sorted[0]
}

// selectCheapestHotel picks the cheapest hotel at or under the per-night cap,
// falling back to the globally cheapest when none qualifies.
func selectCheapestHotel(options []catalog.Hotel, maxPerNight float64) *catalog.Hotel {
	if len(options) == 0 {
		return nil
	}

	sorted := make([]catalog.Hotel, len(options))
	copy(sorted, options)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PricePerNight < sorted[j].PricePerNight
	})

	for i := range sorted {
		if float64(sorted[i].PricePerNight) <= maxPerNight {
			return &sorted[i]
		}
	}
	return &sorted[0]
}

// selectActivities picks up to two activities for one day. Candidates already
// used on earlier days are excluded. Ranking: religious trips put
// religious-category items first, adventure trips put adventure items first,
// both tie-broken by ascending price; any other trip type ranks by price
// alone. A "low-cost" preference tag overrides the category bias and re-ranks
// purely by price. Items are taken greedily while the running total stays
// within maxBudget. If nothing affordable exists, up to two free activities
// are returned instead.
func selectActivities(options []catalog.Activity, maxBudget float64, preferences []string, tripType string, usedNames []string) []catalog.Activity {
	remaining := make([]catalog.Activity, 0, len(options))
	for _, a := range options {
		if !containsString(usedNames, a.Name) {
			remaining = append(remaining, a)
		}
	}

	prioritized := make([]catalog.Activity, len(remaining))
	copy(prioritized, remaining)

	switch tripType {
	case "religious":
		sortWithCategoryBias(prioritized, "religious")
	case "adventure":
		sortWithCategoryBias(prioritized, "adventure")
	default:
		sort.SliceStable(prioritized, func(i, j int) bool {
			return prioritized[i].Price < prioritized[j].Price
		})
	}

	if containsString(preferences, "low-cost") {
		sort.SliceStable(prioritized, func(i, j int) bool {
			return prioritized[i].Price < prioritized[j].Price
		})
	}

	var selected []catalog.Activity
	totalCost := 0
	for _, a := range prioritized {
		if float64(totalCost+a.Price) <= maxBudget && len(selected) < 2 {
			selected = append(selected, a)
			totalCost += a.Price
		}
	}

	// Every candidate priced itself out of the day budget: fall back to free
	// activities so the day is not left empty.
	if len(selected) == 0 {
		for _, a := range remaining {
			if a.Price == 0 {
				selected = append(selected, a)
				if len(selected) == 2 {
					break
				}
			}
		}
	}

	return selected
}

// sortWithCategoryBias ranks matching-category items first, then by ascending
// price within and across the groups. Stable so price ties keep catalog order.
func sortWithCategoryBias(items []catalog.Activity, category string) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Type == category && items[j].Type != category {
			return true
		}
		if items[j].Type == category && items[i].Type != category {
			return false
		}
		return items[i].Price < items[j].Price
	})
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
