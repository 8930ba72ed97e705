// File: /planner/selectors_test.go
package planner

import (
	"testing"

	"safarplan-api/catalog"
)

func TestSelectCheapestTransport(t *testing.T) {
	options := []catalog.Transport{
		{Type: "flight", From: "Islamabad", To: "Skardu", Price: 20000},
		{Type: "bus", From: "Islamabad", To: "Skardu", Price: 4000},
	}

	// 4000 x 2 fits under 10000.
	got := selectCheapestTransport(options, 10000)
	if got == nil || got.Price != 4000 {
		t.Fatalf("expected the 4000 bus, got %+v", got)
	}

	// Nothing fits round trip: fall back to the globally cheapest.
	got = selectCheapestTransport(options, 5000)
	if got == nil || got.Price != 4000 {
		t.Fatalf("expected fallback to cheapest, got %+v", got)
	}

	if selectCheapestTransport(nil, 10000) != nil {
		t.Error("expected nil for an empty list")
	}
}

func TestSelectCheapestTransportKeepsCatalogOrderOnTies(t *testing.T) {
	options := []catalog.Transport{
		{Type: "bus", From: "Islamabad", To: "Swat", Price: 1500},
		{Type: "van", From: "Islamabad", To: "Swat", Price: 1500},
	}

	got := selectCheapestTransport(options, 10000)
	if got == nil || got.Type != "bus" {
		t.Fatalf("expected the first catalog entry on a price tie, got %+v", got)
	}
}

func TestSelectCheapestHotel(t *testing.T) {
	options := []catalog.Hotel{
		{Name: "Serena", PricePerNight: 15000},
		{Name: "Guest House", PricePerNight: 3500},
		{Name: "Embassy", PricePerNight: 5000},
	}

	got := selectCheapestHotel(options, 4000)
	if got == nil || got.Name != "Guest House" {
		t.Fatalf("expected Guest House, got %+v", got)
	}

	// Under any cap, fall back to cheapest.
	got = selectCheapestHotel(options, 1000)
	if got == nil || got.Name != "Guest House" {
		t.Fatalf("expected fallback to Guest House, got %+v", got)
	}

	if selectCheapestHotel(nil, 4000) != nil {
		t.Error("expected nil for an empty list")
	}
}

func activityFixtures() []catalog.Activity {
	return []catalog.Activity{
		{Name: "Fort Tour", Type: "cultural", Price: 500},
		{Name: "Mosque Visit", Type: "religious", Price: 0},
		{Name: "Rafting", Type: "adventure", Price: 2000},
		{Name: "Street Food", Type: "food", Price: 300},
		{Name: "City Walk", Type: "sightseeing", Price: 0},
	}
}

func TestSelectActivitiesDefaultRanking(t *testing.T) {
	got := selectActivities(activityFixtures(), 1000, []string{"sightseeing"}, "leisure", nil)

	if len(got) != 2 {
		t.Fatalf("expected 2 activities, got %d", len(got))
	}
	// Price ascending, catalog order on the 0-price tie.
	if got[0].Name != "Mosque Visit" || got[1].Name != "City Walk" {
		t.Errorf("expected the free items in catalog order, got %+v", got)
	}
}

func TestSelectActivitiesReligiousBias(t *testing.T) {
	got := selectActivities(activityFixtures(), 1000, []string{"cultural"}, "religious", nil)

	if len(got) == 0 || got[0].Type != "religious" {
		t.Fatalf("expected a religious activity first, got %+v", got)
	}
}

func TestSelectActivitiesAdventureBias(t *testing.T) {
	got := selectActivities(activityFixtures(), 5000, []string{"nature"}, "adventure", nil)

	if len(got) == 0 || got[0].Name != "Rafting" {
		t.Fatalf("expected the adventure activity first, got %+v", got)
	}
}

func TestSelectActivitiesLowCostOverridesBias(t *testing.T) {
	got := selectActivities(activityFixtures(), 5000, []string{"low-cost"}, "adventure", nil)

	if len(got) == 0 || got[0].Price != 0 {
		t.Fatalf("expected the cheapest activity first under low-cost, got %+v", got)
	}
}

func TestSelectActivitiesExcludesUsed(t *testing.T) {
	used := []string{"Mosque Visit", "City Walk"}
	got := selectActivities(activityFixtures(), 1000, nil, "leisure", used)

	for _, a := range got {
		if a.Name == "Mosque Visit" || a.Name == "City Walk" {
			t.Errorf("used activity %q selected again", a.Name)
		}
	}
}

func TestSelectActivitiesFreeFallback(t *testing.T) {
	options := []catalog.Activity{
		{Name: "Expensive Trek", Type: "adventure", Price: 8000},
		{Name: "Viewpoint", Type: "sightseeing", Price: 0},
		{Name: "Old Town Walk", Type: "cultural", Price: 0},
	}

	// A negative cap defeats the greedy pass entirely, so only the free
	// fallback can fill the day.
	got := selectActivities(options, -1, nil, "leisure", nil)

	if len(got) != 2 {
		t.Fatalf("expected the two free activities, got %+v", got)
	}
	for _, a := range got {
		if a.Price != 0 {
			t.Errorf("fallback returned a priced activity: %+v", a)
		}
	}
}

func TestSelectActivitiesCapsAtTwo(t *testing.T) {
	got := selectActivities(activityFixtures(), 100000, nil, "leisure", nil)

	if len(got) > 2 {
		t.Errorf("expected at most 2 activities, got %d", len(got))
	}
}
