// File: /planner/result.go
package planner

import (
	"safarplan-api/models"
)

// Suggestion kinds returned on a failed optimization.
const (
	SuggestionAlternativeDestination = "alternative-destination"
	SuggestionShorterTrip            = "shorter-trip"
	SuggestionBudgetIncrease         = "budget-increase"
)

// Suggestion is a corrective hint attached to a failed optimization. Type
// selects which payload fields are meaningful: RequiredBudget for
// budget-increase, SuggestedDays for shorter-trip, AlternativeDestination for
// alternative-destination.
type Suggestion struct {
	Type                   string `json:"type"`
	Message                string `json:"message"`
	AlternativeDestination string `json:"alternative_destination,omitempty"`
	SuggestedDays          int    `json:"suggested_days,omitempty"`
	RequiredBudget         int    `json:"required_budget,omitempty"`
}

// OptimizationResult is the outcome of a single optimizer run. Trip is only
// set when Success is true; Savings is budget minus total cost, zero on
// failure.
type OptimizationResult struct {
	Success     bool         `json:"success"`
	Trip        *models.Trip `json:"trip,omitempty"`
	Suggestions []Suggestion `json:"suggestions,omitempty"`
	Savings     int          `json:"savings"`
}

func failure(suggestions ...Suggestion) OptimizationResult {
	return OptimizationResult{
		Success:     false,
		Suggestions: suggestions,
		Savings:     0,
	}
}
