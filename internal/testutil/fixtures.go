// Package testutil provides reusable fixtures for planner tests.
package testutil

import (
	"fmt"

	"github.com/yatrakit/yatrakit/internal/trip"
)

// Trip builds a minimal valid trip with one day and one activity.
func Trip(id, createdAt string) trip.Trip {
	return trip.Trip{
		ID:          id,
		CreatedAt:   createdAt,
		Prompt:      "2 days in goa",
		TripTitle:   "Trip " + id,
		TotalBudget: "Flexible Budget",
		Days: []trip.Day{
			{
				Day:   1,
				Title: "Day 1 in Goa",
				Activities: []trip.Activity{
					{Time: "09:00", Place: "Baga Beach", Description: "walk", Cost: "₹0", MapQuery: "Baga Beach Goa"},
				},
			},
		},
	}
}

// Trips builds n trips with ids t1..tn and strictly descending createdAt
// values (t1 is the newest).
func Trips(n int) []trip.Trip {
	out := make([]trip.Trip, 0, n)
	for i := 1; i <= n; i++ {
		createdAt := fmt.Sprintf("2025-06-01T10:%02d:00.000Z", 60-i)
		out = append(out, Trip(fmt.Sprintf("t%d", i), createdAt))
	}
	return out
}
