// Package trip defines the shared itinerary data model.
package trip

import "time"

// Activity is a single itinerary entry within a day. Time and Cost are
// display strings, not parsed values ("06:00", "₹200–400").
type Activity struct {
	Time        string `json:"time"`
	Place       string `json:"place"`
	Description string `json:"description"`
	// MapQuery is the raw query string for a maps search,
	// e.g. "Baga Beach Goa". Never empty when Place is non-empty.
	MapQuery string `json:"mapQuery"`
	Cost     string `json:"cost"`
	// PhotoSpot marks spots especially good for photos / reels.
	PhotoSpot bool `json:"photoSpot,omitempty"`
}

// TravelBreakdown holds one-way cost estimates to reach the destination.
// Values are looked up, not computed.
type TravelBreakdown struct {
	Flight string `json:"flight"`
	Train  string `json:"train"`
	Bus    string `json:"bus"`
	Notes  string `json:"notes,omitempty"`
}

// Day is one day of an itinerary. Day numbers are 1-based and contiguous
// within a trip. Activity order is chronological display order.
type Day struct {
	Day        int        `json:"day"`
	Title      string     `json:"title"`
	Activities []Activity `json:"activities"`
}

// Trip is the core entity used throughout the planner. ID, CreatedAt and
// Prompt are set once at creation and never regenerated on edit.
type Trip struct {
	ID        string `json:"id"`
	CreatedAt string `json:"createdAt"`
	Prompt    string `json:"prompt"`
	TripTitle string `json:"tripTitle"`
	// TotalBudget is a formatted string, e.g. "₹10,000". Empty means flexible.
	TotalBudget     string           `json:"totalBudget"`
	TravelBreakdown *TravelBreakdown `json:"travelBreakdown,omitempty"`
	Days            []Day            `json:"days"`
}

// Timestamp formats t the way trips store createdAt: UTC ISO-8601 with
// millisecond precision. Lexicographic comparison of these strings matches
// chronological order.
func Timestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}

// Clone returns a deep copy. Mutating state always edits a clone and swaps
// it in whole, never the checked-out value.
func (t Trip) Clone() Trip {
	out := t
	if t.TravelBreakdown != nil {
		tb := *t.TravelBreakdown
		out.TravelBreakdown = &tb
	}
	out.Days = make([]Day, len(t.Days))
	for i, d := range t.Days {
		out.Days[i] = d.Clone()
	}
	return out
}

// Clone returns a deep copy of the day.
func (d Day) Clone() Day {
	out := d
	out.Activities = make([]Activity, len(d.Activities))
	copy(out.Activities, d.Activities)
	return out
}
