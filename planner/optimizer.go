// File: /planner/optimizer.go
package planner

import (
	"fmt"
	"math"
	"sort"
	"time"

	"safarplan-api/catalog"
	"safarplan-api/models"
)

const dateLayout = "2006-01-02"

// Fixed time slots activities are scheduled into, in order. A day never gets
// more than two activities, the overflow slot exists as a safety net.
var activityTimes = []string{"10:00 AM", "2:00 PM", "5:00 PM"}

const overflowTime = "4:00 PM"

// TripRequest is the optimizer input. Field validation (formats, enums,
// minimum budget of 5000) happens at the HTTP boundary; the optimizer only
// applies the business rules.
type TripRequest struct {
	Destination string   `json:"destination"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	Budget      int      `json:"budget"`
	TripType    string   `json:"trip_type"`
	Preferences []string `json:"preferences"`
}

// Optimizer builds budget-constrained itineraries against an injected
// catalog. It is pure and stateless: the same request against the same
// catalog always yields the same result, and concurrent calls are safe.
type Optimizer struct {
	catalog *catalog.Catalog
}

func NewOptimizer(c *catalog.Catalog) *Optimizer {
	return &Optimizer{catalog: c}
}

// Optimize runs the greedy allocation for one request. Business failures
// (unknown destination, budget too low, infeasible fixed costs) come back as
// an unsuccessful OptimizationResult with suggestions; the error return is
// reserved for malformed input the boundary should have rejected.
func (o *Optimizer) Optimize(req TripRequest, userID string) (OptimizationResult, error) {
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return OptimizationResult{}, fmt.Errorf("invalid start date: %w", err)
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return OptimizationResult{}, fmt.Errorf("invalid end date: %w", err)
	}

	tripDays := inclusiveDayCount(startDate, endDate)
	if tripDays < 1 {
		return OptimizationResult{}, fmt.Errorf("end date %s is before start date %s", req.EndDate, req.StartDate)
	}

	destination := o.catalog.FindDestination(req.Destination)
	if destination == nil {
		return failure(Suggestion{
			Type:    SuggestionAlternativeDestination,
			Message: "Invalid destination selected. Please choose from available destinations.",
		}), nil
	}

	if req.Budget < destination.MinBudget {
		return o.budgetTooLow(req, destination), nil
	}

	availableTransports := o.catalog.TransportsFor(req.Destination)
	availableHotels := o.catalog.HotelsFor(req.Destination)
	availableActivities := o.catalog.ActivitiesFor(req.Destination)

	// Transport gets at most 25% of the budget, round trip.
	transport := selectCheapestTransport(availableTransports, float64(req.Budget)*0.25)
	transportCost := 0
	if transport != nil {
		transportCost = transport.Price * 2
	}

	// Lodging gets at most half of what remains, spread over the nights.
	budgetAfterTransport := req.Budget - transportCost
	nights := tripDays - 1
	maxPerNight := 0.0
	if nights > 0 {
		maxPerNight = float64(budgetAfterTransport) * 0.5 / float64(nights)
	}

	var hotel *catalog.Hotel
	hotelCost := 0
	if nights > 0 {
		hotel = selectCheapestHotel(availableHotels, maxPerNight)
		if hotel != nil {
			hotelCost = hotel.PricePerNight * nights
		}
	}

	if transportCost+hotelCost > req.Budget {
		suggestedDays := tripDays * 6 / 10
		if suggestedDays < 2 {
			suggestedDays = 2
		}
		return failure(Suggestion{
			Type:          SuggestionShorterTrip,
			Message:       fmt.Sprintf("Cannot fit transport and accommodation within your budget. Try a %d-day trip instead.", suggestedDays),
			SuggestedDays: suggestedDays,
		}), nil
	}

	// Flat daily activity share, computed once up front.
	budgetForActivities := budgetAfterTransport - hotelCost
	dailyActivityBudget := float64(budgetForActivities) / float64(tripDays)

	state := allocationState{
		remainingBudget: req.Budget,
	}
	itinerary := make([]models.ItineraryDay, 0, tripDays)
	totalCost := 0

	for day := 1; day <= tripDays; day++ {
		entry, next := o.allocateDay(dayInput{
			day:                 day,
			tripDays:            tripDays,
			date:                startDate.AddDate(0, 0, day-1),
			transport:           transport,
			hotel:               hotel,
			dailyActivityBudget: dailyActivityBudget,
			activities:          availableActivities,
			request:             req,
		}, state)

		itinerary = append(itinerary, entry)
		totalCost += entry.DayCost
		state = next
	}

	// The per-step caps should make this impossible, checked anyway so an
	// over-budget itinerary can never be returned as a success.
	if totalCost > req.Budget {
		return failure(Suggestion{
			Type:           SuggestionBudgetIncrease,
			Message:        fmt.Sprintf("Unable to create an itinerary within your budget. Minimum required: PKR %d", totalCost),
			RequiredBudget: totalCost,
		}), nil
	}

	trip := &models.Trip{
		UserID:      userID,
		Destination: req.Destination,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Budget:      req.Budget,
		TripType:    req.TripType,
		Preferences: models.StringSliceType(req.Preferences),
		TotalCost:   totalCost,
		Itinerary:   models.ItineraryType(itinerary),
		Status:      models.TripStatusOptimized,
	}

	return OptimizationResult{
		Success: true,
		Trip:    trip,
		Savings: req.Budget - totalCost,
	}, nil
}

// budgetTooLow builds the failure for a budget under the destination minimum,
// including the best-fitting alternative destination when one exists.
func (o *Optimizer) budgetTooLow(req TripRequest, destination *catalog.Destination) OptimizationResult {
	suggestions := []Suggestion{{
		Type:           SuggestionBudgetIncrease,
		Message:        fmt.Sprintf("Your budget of PKR %d is below the minimum of PKR %d for %s.", req.Budget, destination.MinBudget, destination.Name),
		RequiredBudget: destination.MinBudget,
	}}

	var affordable []catalog.Destination
	for _, d := range o.catalog.Destinations() {
		if d.MinBudget <= req.Budget {
			affordable = append(affordable, d)
		}
	}
	// Highest minimum budget still within reach is the closest fit.
	sort.SliceStable(affordable, func(i, j int) bool {
		return affordable[i].MinBudget > affordable[j].MinBudget
	})

	if len(affordable) > 0 {
		best := affordable[0]
		suggestions = append(suggestions, Suggestion{
			Type:                   SuggestionAlternativeDestination,
			Message:                fmt.Sprintf("Consider %s which has a minimum budget of PKR %d.", best.Name, best.MinBudget),
			AlternativeDestination: best.ID,
		})
	}

	return failure(suggestions...)
}

// allocationState is the accumulator threaded through the day loop. Each day
// allocation takes the previous state and returns the next one, so no state
// is shared or mutated across days.
type allocationState struct {
	remainingBudget int
	usedActivities  []string
}

type dayInput struct {
	day                 int
	tripDays            int
	date                time.Time
	transport           *catalog.Transport
	hotel               *catalog.Hotel
	dailyActivityBudget float64
	activities          []catalog.Activity
	request             TripRequest
}

// allocateDay assembles a single itinerary day. Day 1 carries the outbound
// transport leg and the last day the inverted return leg; on a single-day
// trip both legs land on day 1. Lodging attaches to every day before the
// last. Activities are picked under the day cap and only committed while the
// overall remaining budget covers them.
func (o *Optimizer) allocateDay(in dayInput, state allocationState) (models.ItineraryDay, allocationState) {
	entry := models.ItineraryDay{
		Day:        in.day,
		Date:       in.date.Format(dateLayout),
		Activities: []models.ActivityEntry{},
	}

	next := allocationState{
		remainingBudget: state.remainingBudget,
		usedActivities:  state.usedActivities,
	}

	if in.day == 1 && in.transport != nil {
		entry.Transport = &models.TransportLeg{
			Type:     in.transport.Type,
			From:     in.transport.From,
			To:       in.transport.To,
			Price:    in.transport.Price,
			Duration: in.transport.Duration,
		}
		entry.DayCost += in.transport.Price
		next.remainingBudget -= in.transport.Price
	}

	if in.day == in.tripDays && in.transport != nil {
		entry.Transport = &models.TransportLeg{
			Type:     in.transport.Type,
			From:     in.transport.To,
			To:       in.transport.From,
			Price:    in.transport.Price,
			Duration: in.transport.Duration,
		}
		entry.DayCost += in.transport.Price
		next.remainingBudget -= in.transport.Price
	}

	if in.hotel != nil && in.day < in.tripDays {
		entry.Hotel = &models.HotelStay{
			Name:          in.hotel.Name,
			Type:          in.hotel.Type,
			PricePerNight: in.hotel.PricePerNight,
		}
		entry.DayCost += in.hotel.PricePerNight
		next.remainingBudget -= in.hotel.PricePerNight
	}

	// The flat daily share, further capped at 30% of whatever is left of the
	// whole trip budget at this point.
	maxActivityBudget := math.Min(in.dailyActivityBudget, float64(next.remainingBudget)*0.3)

	dayActivities := selectActivities(
		in.activities,
		maxActivityBudget,
		in.request.Preferences,
		in.request.TripType,
		next.usedActivities,
	)

	for i, activity := range dayActivities {
		// Stricter than the day cap: never commit past the trip budget.
		if next.remainingBudget < activity.Price {
			continue
		}

		slot := overflowTime
		if i < len(activityTimes) {
			slot = activityTimes[i]
		}

		entry.Activities = append(entry.Activities, models.ActivityEntry{
			Name:  activity.Name,
			Type:  activity.Type,
			Price: activity.Price,
			Time:  slot,
		})
		entry.DayCost += activity.Price
		next.remainingBudget -= activity.Price
		next.usedActivities = append(next.usedActivities, activity.Name)
	}

	return entry, next
}

// inclusiveDayCount counts calendar days between the endpoints, both
// inclusive: a trip starting and ending on the same date is 1 day.
func inclusiveDayCount(start, end time.Time) int {
	return int(math.Ceil(end.Sub(start).Hours()/24)) + 1
}

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
