// File: /catalog/catalog.go
package catalog

import (
	"strings"
)

// Destination is a supported trip destination with its minimum viable budget in PKR.
type Destination struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Province    string `json:"province"`
	Description string `json:"description,omitempty"`
	BestSeason  string `json:"best_season,omitempty"`
	MinBudget   int    `json:"min_budget"`
}

// Transport is a one-way transport leg between two cities.
type Transport struct {
	Type     string `json:"type"` // bus, train, flight, van
	From     string `json:"from"`
	To       string `json:"to"`
	Price    int    `json:"price"` // PKR, one-way
	Duration string `json:"duration"`
}

// Hotel is a lodging option priced per night.
type Hotel struct {
	Name          string `json:"name"`
	Destination   string `json:"destination"`
	Type          string `json:"type"` // guest-house, budget, 3-star, 4-star
	PricePerNight int    `json:"price_per_night"`
}

// Activity is a bookable activity at a destination.
type Activity struct {
	Name        string `json:"name"`
	Destination string `json:"destination"`
	Type        string `json:"type"` // sightseeing, food, adventure, cultural, religious
	Price       int    `json:"price"`
	Duration    string `json:"duration"`
}

// Catalog is an immutable, read-only snapshot of the reference data. It is
// constructed once at startup and injected wherever lookups are needed, so
// tests can substitute their own fixture data.
type Catalog struct {
	destinations []Destination
	transports   []Transport
	hotels       []Hotel
	activities   []Activity
}

// New returns a catalog backed by the built-in Pakistan travel data.
func New() *Catalog {
	return NewWithData(destinations, transports, hotels, activities)
}

// NewWithData builds a catalog from caller-supplied tables. Used by tests.
func NewWithData(d []Destination, t []Transport, h []Hotel, a []Activity) *Catalog {
	return &Catalog{
		destinations: d,
		transports:   t,
		hotels:       h,
		activities:   a,
	}
}

// Destinations returns all known destinations.
func (c *Catalog) Destinations() []Destination {
	out := make([]Destination, len(c.destinations))
	copy(out, c.destinations)
	return out
}

// FindDestination looks up a destination by its stable id. Returns nil when
// the id is unknown.
func (c *Catalog) FindDestination(id string) *Destination {
	for i := range c.destinations {
		if c.destinations[i].ID == id {
			d := c.destinations[i]
			return &d
		}
	}
	return nil
}

// destinationName resolves an id to the display name, falling back to the id
// itself for unknown ids.
func (c *Catalog) destinationName(id string) string {
	if d := c.FindDestination(id); d != nil {
		return d.Name
	}
	return id
}

// firstToken returns the lowercased first word of a destination name.
func firstToken(name string) string {
	fields := strings.Fields(strings.ToLower(name))
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// matchesDestination applies the tolerant name check used across the catalog:
// the candidate's recorded destination and the requested display name match
// when either contains the other's first token, case-insensitively. Catalog
// rows use free-text city names ("Gilgit" for Hunza flights, "Naran" for
// Naran Kaghan), so this is deliberately loose.
func matchesDestination(candidate, target string) bool {
	return strings.Contains(strings.ToLower(candidate), firstToken(target)) ||
		strings.Contains(strings.ToLower(target), firstToken(candidate))
}

// TransportsFor returns the transport legs arriving at the destination.
// An empty slice simply means no option is available.
func (c *Catalog) TransportsFor(destinationID string) []Transport {
	name := c.destinationName(destinationID)
	var out []Transport
	for _, t := range c.transports {
		if matchesDestination(t.To, name) {
			out = append(out, t)
		}
	}
	return out
}

// HotelsFor returns the lodging options at the destination.
func (c *Catalog) HotelsFor(destinationID string) []Hotel {
	name := c.destinationName(destinationID)
	var out []Hotel
	for _, h := range c.hotels {
		if matchesDestination(h.Destination, name) {
			out = append(out, h)
		}
	}
	return out
}

// ActivitiesFor returns the activities available at the destination.
func (c *Catalog) ActivitiesFor(destinationID string) []Activity {
	name := c.destinationName(destinationID)
	var out []Activity
	for _, a := range c.activities {
		if matchesDestination(a.Destination, name) {
			out = append(out, a)
		}
	}
	return out
}
