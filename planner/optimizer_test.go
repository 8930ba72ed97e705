// File: /planner/optimizer_test.go
package planner

import (
	"encoding/json"
	"testing"

	"safarplan-api/catalog"
	"safarplan-api/models"
)

func newTestOptimizer() *Optimizer {
	return NewOptimizer(catalog.New())
}

func murreeRequest() TripRequest {
	return TripRequest{
		Destination: "murree",
		StartDate:   "2025-04-10",
		EndDate:     "2025-04-12",
		Budget:      15000,
		TripType:    "leisure",
		Preferences: []string{"sightseeing"},
	}
}

func mustOptimize(t *testing.T, req TripRequest) OptimizationResult {
	t.Helper()
	result, err := newTestOptimizer().Optimize(req, "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return result
}

func TestOptimizeMurreeThreeDays(t *testing.T) {
	result := mustOptimize(t, murreeRequest())

	if !result.Success {
		t.Fatalf("expected success, got suggestions %+v", result.Suggestions)
	}
	trip := result.Trip

	if len(trip.Itinerary) != 3 {
		t.Fatalf("expected 3 itinerary days, got %d", len(trip.Itinerary))
	}

	// Transport cap is 25%% of 15000 = 3750; the 500 PKR Islamabad bus fits
	// round trip.
	day1 := trip.Itinerary[0]
	if day1.Transport == nil {
		t.Fatal("expected transport on day 1")
	}
	if day1.Transport.Price != 500 || day1.Transport.Type != "bus" {
		t.Errorf("expected the 500 PKR bus, got %+v", day1.Transport)
	}
	if day1.Transport.From != "Islamabad" || day1.Transport.To != "Murree" {
		t.Errorf("day 1 leg should be outbound, got %s -> %s", day1.Transport.From, day1.Transport.To)
	}

	last := trip.Itinerary[2]
	if last.Transport == nil {
		t.Fatal("expected return transport on the last day")
	}
	if last.Transport.From != "Murree" || last.Transport.To != "Islamabad" {
		t.Errorf("return leg should be inverted, got %s -> %s", last.Transport.From, last.Transport.To)
	}

	// Lodging on days 1 and 2 only, never on checkout day.
	for _, day := range trip.Itinerary {
		if day.Day < 3 && day.Hotel == nil {
			t.Errorf("expected lodging on day %d", day.Day)
		}
		if day.Day == 3 && day.Hotel != nil {
			t.Errorf("no lodging expected on the last day, got %+v", day.Hotel)
		}
	}

	if trip.TotalCost > trip.Budget {
		t.Errorf("total cost %d exceeds budget %d", trip.TotalCost, trip.Budget)
	}
	if result.Savings != trip.Budget-trip.TotalCost {
		t.Errorf("savings %d != budget - total cost %d", result.Savings, trip.Budget-trip.TotalCost)
	}
	if trip.Status != models.TripStatusOptimized {
		t.Errorf("expected status optimized, got %s", trip.Status)
	}
}

func TestOptimizeBudgetBelowMinimum(t *testing.T) {
	req := TripRequest{
		Destination: "skardu",
		StartDate:   "2025-06-01",
		EndDate:     "2025-06-05",
		Budget:      20000,
		TripType:    "leisure",
		Preferences: []string{"sightseeing"},
	}

	result := mustOptimize(t, req)

	if result.Success {
		t.Fatal("expected failure for budget below the destination minimum")
	}
	if result.Savings != 0 {
		t.Errorf("expected zero savings on failure, got %d", result.Savings)
	}
	if len(result.Suggestions) != 2 {
		t.Fatalf("expected budget-increase and alternative suggestions, got %+v", result.Suggestions)
	}

	increase := result.Suggestions[0]
	if increase.Type != SuggestionBudgetIncrease {
		t.Errorf("expected budget-increase first, got %s", increase.Type)
	}
	if increase.RequiredBudget != 55000 {
		t.Errorf("expected required budget 55000, got %d", increase.RequiredBudget)
	}

	// Lahore's 20000 minimum is the highest still within the 20000 budget.
	alternative := result.Suggestions[1]
	if alternative.Type != SuggestionAlternativeDestination {
		t.Errorf("expected alternative-destination second, got %s", alternative.Type)
	}
	if alternative.AlternativeDestination != "lahore" {
		t.Errorf("expected lahore as best fit, got %s", alternative.AlternativeDestination)
	}
}

func TestOptimizeUnknownDestination(t *testing.T) {
	req := murreeRequest()
	req.Destination = "atlantis"

	result := mustOptimize(t, req)

	if result.Success {
		t.Fatal("expected failure for unknown destination")
	}
	if len(result.Suggestions) != 1 || result.Suggestions[0].Type != SuggestionAlternativeDestination {
		t.Fatalf("expected a single alternative-destination suggestion, got %+v", result.Suggestions)
	}
}

func TestOptimizeInfeasibleFixedCosts(t *testing.T) {
	// 21 days in Skardu at the minimum budget: the cheapest hotel alone costs
	// 20 nights x 4000 = 80000, beyond the 55000 budget.
	req := TripRequest{
		Destination: "skardu",
		StartDate:   "2025-06-01",
		EndDate:     "2025-06-21",
		Budget:      55000,
		TripType:    "leisure",
		Preferences: []string{"sightseeing"},
	}

	result := mustOptimize(t, req)

	if result.Success {
		t.Fatal("expected failure when fixed costs exceed the budget")
	}
	if len(result.Suggestions) != 1 {
		t.Fatalf("expected one suggestion, got %+v", result.Suggestions)
	}

	shorter := result.Suggestions[0]
	if shorter.Type != SuggestionShorterTrip {
		t.Fatalf("expected shorter-trip, got %s", shorter.Type)
	}
	// max(2, floor(21 * 0.6)) = 12
	if shorter.SuggestedDays != 12 {
		t.Errorf("expected 12 suggested days, got %d", shorter.SuggestedDays)
	}
}

func TestOptimizeSingleDayTrip(t *testing.T) {
	req := murreeRequest()
	req.StartDate = "2025-04-10"
	req.EndDate = "2025-04-10"

	result := mustOptimize(t, req)

	if !result.Success {
		t.Fatalf("expected success, got %+v", result.Suggestions)
	}
	trip := result.Trip

	if len(trip.Itinerary) != 1 {
		t.Fatalf("expected a single day, got %d", len(trip.Itinerary))
	}

	day := trip.Itinerary[0]
	if day.Hotel != nil {
		t.Errorf("no lodging expected on a single-day trip, got %+v", day.Hotel)
	}

	// Both legs land on day 1: the cost doubles and the recorded leg is the
	// return one.
	if day.Transport == nil {
		t.Fatal("expected transport on day 1")
	}
	if day.Transport.From != "Murree" || day.Transport.To != "Islamabad" {
		t.Errorf("expected the return leg recorded, got %s -> %s", day.Transport.From, day.Transport.To)
	}

	transportShare := 0
	for _, a := range day.Activities {
		transportShare += a.Price
	}
	if day.DayCost-transportShare != 1000 {
		t.Errorf("expected 1000 PKR of transport in day cost, got %d", day.DayCost-transportShare)
	}
}

func TestOptimizeLowCostOverridesAdventureBias(t *testing.T) {
	req := murreeRequest()
	req.TripType = "adventure"

	// Without the low-cost tag the adventure bias wins.
	biased := mustOptimize(t, req)
	if !biased.Success {
		t.Fatalf("expected success, got %+v", biased.Suggestions)
	}
	day1 := biased.Trip.Itinerary[0]
	if len(day1.Activities) == 0 || day1.Activities[0].Name != "Pindi Point Cable Car" {
		t.Errorf("expected the cheapest adventure activity first, got %+v", day1.Activities)
	}

	// With low-cost the ranking must be strictly price ascending.
	req.Preferences = []string{"low-cost"}
	lowCost := mustOptimize(t, req)
	if !lowCost.Success {
		t.Fatalf("expected success, got %+v", lowCost.Suggestions)
	}
	day1 = lowCost.Trip.Itinerary[0]
	if len(day1.Activities) == 0 || day1.Activities[0].Name != "Mall Road Walk" {
		t.Errorf("expected the free activity first under low-cost, got %+v", day1.Activities)
	}
	for i := 1; i < len(day1.Activities); i++ {
		if day1.Activities[i].Price < day1.Activities[i-1].Price {
			t.Errorf("activities not price ascending: %+v", day1.Activities)
		}
	}
}

func TestOptimizeNoActivityRepeats(t *testing.T) {
	req := TripRequest{
		Destination: "lahore",
		StartDate:   "2025-11-01",
		EndDate:     "2025-11-07",
		Budget:      60000,
		TripType:    "leisure",
		Preferences: []string{"cultural"},
	}

	result := mustOptimize(t, req)
	if !result.Success {
		t.Fatalf("expected success, got %+v", result.Suggestions)
	}

	seen := map[string]int{}
	for _, day := range result.Trip.Itinerary {
		for _, a := range day.Activities {
			seen[a.Name]++
		}
	}
	for name, count := range seen {
		if count > 1 {
			t.Errorf("activity %q scheduled %d times", name, count)
		}
	}
}

func TestOptimizeActivityTimeSlots(t *testing.T) {
	result := mustOptimize(t, murreeRequest())
	if !result.Success {
		t.Fatalf("expected success, got %+v", result.Suggestions)
	}

	for _, day := range result.Trip.Itinerary {
		for i, a := range day.Activities {
			if i < len(activityTimes) && a.Time != activityTimes[i] {
				t.Errorf("day %d activity %d: expected slot %s, got %s", day.Day, i, activityTimes[i], a.Time)
			}
		}
	}
}

func TestOptimizeDayCostsSumToTotal(t *testing.T) {
	result := mustOptimize(t, murreeRequest())
	if !result.Success {
		t.Fatalf("expected success, got %+v", result.Suggestions)
	}

	sum := 0
	for _, day := range result.Trip.Itinerary {
		sum += day.DayCost
	}
	if sum != result.Trip.TotalCost {
		t.Errorf("day costs sum to %d, total cost is %d", sum, result.Trip.TotalCost)
	}
}

func TestOptimizeIsDeterministic(t *testing.T) {
	first := mustOptimize(t, murreeRequest())
	second := mustOptimize(t, murreeRequest())

	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	if string(a) != string(b) {
		t.Errorf("identical requests produced different results:\n%s\n%s", a, b)
	}
}

func TestOptimizeRejectsMalformedDates(t *testing.T) {
	req := murreeRequest()
	req.StartDate = "not-a-date"
	if _, err := newTestOptimizer().Optimize(req, "user-1"); err == nil {
		t.Error("expected error for malformed start date")
	}

	req = murreeRequest()
	req.StartDate = "2025-04-12"
	req.EndDate = "2025-04-10"
	if _, err := newTestOptimizer().Optimize(req, "user-1"); err == nil {
		t.Error("expected error for end date before start date")
	}
}

func TestInclusiveDayCount(t *testing.T) {
	cases := []struct {
		start, end string
		want       int
	}{
		{"2025-04-10", "2025-04-10", 1},
		{"2025-04-10", "2025-04-12", 3},
		{"2025-04-28", "2025-05-02", 5},
	}

	for _, tc := range cases {
		start, _ := parseDate(tc.start)
		end, _ := parseDate(tc.end)
		if got := inclusiveDayCount(start, end); got != tc.want {
			t.Errorf("inclusiveDayCount(%s, %s) = %d, want %d", tc.start, tc.end, got, tc.want)
		}
	}
}
