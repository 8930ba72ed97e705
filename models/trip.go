// File: /models/trip.go
package models

import (
	"time"
)

// Trip lifecycle statuses.
const (
	TripStatusDraft     = "draft"
	TripStatusOptimized = "optimized"
	TripStatusSaved     = "saved"
)

// Trip is an optimized itinerary owned by a user. The itinerary and the
// preference tags are stored as JSON columns.
type Trip struct {
	ID          string          `json:"id" gorm:"primaryKey;size:191"`
	UserID      string          `json:"user_id" gorm:"not null;size:191;index"`
	Destination string          `json:"destination" gorm:"not null;size:100"`
	StartDate   string          `json:"start_date" gorm:"not null;size:30"`
	EndDate     string          `json:"end_date" gorm:"not null;size:30"`
	Budget      int             `json:"budget" gorm:"not null"`
	TripType    string          `json:"trip_type" gorm:"not null;size:30"`
	Preferences StringSliceType `json:"preferences" gorm:"type:json"`
	TotalCost   int             `json:"total_cost" gorm:"not null"`
	Itinerary   ItineraryType   `json:"itinerary" gorm:"type:json"`
	Status      string          `json:"status" gorm:"not null;size:20;default:'draft'"`
	CreatedAt   time.Time       `json:"created_at"`

	User User `json:"-" gorm:"foreignKey:UserID"`
}

// TransportLeg is one leg of the trip's round-trip transport as placed on a
// specific itinerary day.
type TransportLeg struct {
	Type     string `json:"type"`
	From     string `json:"from"`
	To       string `json:"to"`
	Price    int    `json:"price"`
	Duration string `json:"duration"`
}

// HotelStay is the lodging assigned to a night of the trip.
type HotelStay struct {
	Name          string `json:"name"`
	Type          string `json:"type"`
	PricePerNight int    `json:"price_per_night"`
}

// ActivityEntry is an activity scheduled into one of the day's time slots.
type ActivityEntry struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Price int    `json:"price"`
	Time  string `json:"time"`
}

// ItineraryDay is one day of the assembled itinerary. Transport and Hotel are
// nil on days that carry neither.
type ItineraryDay struct {
	Day        int             `json:"day"`
	Date       string          `json:"date"`
	Transport  *TransportLeg   `json:"transport,omitempty"`
	Hotel      *HotelStay      `json:"hotel,omitempty"`
	Activities []ActivityEntry `json:"activities"`
	DayCost    int             `json:"day_cost"`
}
