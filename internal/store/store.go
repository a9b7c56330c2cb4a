// Package store is the durable keyed-by-id trip collection with
// write-through upsert and cursor pagination.
package store

import (
	"encoding/json"
	"log"
	"sort"

	"github.com/samber/lo"

	"github.com/yatrakit/yatrakit/internal/trip"
)

// storageKey names the single slot the collection lives under.
const storageKey = "travelplanner_trips"

// Page is one pagination result. NextCursor is the createdAt of the last
// item in the page, nil when the collection is exhausted. Callers must
// treat the cursor as opaque. This wire shape is the one interface to keep
// bit-compatible when swapping persistence backends.
type Page struct {
	Trips      []trip.Trip `json:"trips"`
	NextCursor *string     `json:"nextCursor"`
}

// TripStore owns the durable collection. Trips are created elsewhere; the
// store only deduplicates by id and replaces wholesale.
type TripStore struct {
	kv KV
}

// New creates a TripStore over the given persistence boundary.
func New(kv KV) *TripStore {
	return &TripStore{kv: kv}
}

// tripProbe mirrors the minimum fields a stored entry must carry with the
// right types to be kept by ReadAll.
type tripProbe struct {
	ID          *string          `json:"id"`
	CreatedAt   *string          `json:"createdAt"`
	TripTitle   *string          `json:"tripTitle"`
	TotalBudget *string          `json:"totalBudget"`
	Days        *json.RawMessage `json:"days"`
}

// ReadAll returns the validated collection sorted descending by createdAt.
// Lexicographic ISO-8601 comparison is sufficient; timestamps are always
// written in UTC. Any malformed payload yields an empty collection, never
// an error.
func (s *TripStore) ReadAll() []trip.Trip {
	data, err := s.kv.Load()
	if err != nil || len(data) == 0 {
		return []trip.Trip{}
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return []trip.Trip{}
	}

	trips := make([]trip.Trip, 0, len(entries))
	for _, raw := range entries {
		var probe tripProbe
		if err := json.Unmarshal(raw, &probe); err != nil {
			continue
		}
		if probe.ID == nil || probe.CreatedAt == nil || probe.TripTitle == nil || probe.TotalBudget == nil || probe.Days == nil {
			continue
		}
		var days []json.RawMessage
		if err := json.Unmarshal(*probe.Days, &days); err != nil {
			continue
		}
		var t trip.Trip
		if err := json.Unmarshal(raw, &t); err != nil {
			continue
		}
		trips = append(trips, t)
	}

	sort.SliceStable(trips, func(i, j int) bool {
		return trips[i].CreatedAt > trips[j].CreatedAt
	})
	return trips
}

// Persist upserts the trip: any existing entry with the same id is
// replaced wholesale, and the trip moves to the front. This is the sole
// write path; every creation and edit goes through it.
func (s *TripStore) Persist(t trip.Trip) {
	existing := s.ReadAll()
	kept := lo.Filter(existing, func(e trip.Trip, _ int) bool {
		return e.ID != t.ID
	})
	updated := append([]trip.Trip{t}, kept...)

	data, err := json.Marshal(updated)
	if err != nil {
		log.Printf("store: marshal failed: %v", err)
		return
	}
	if err := s.kv.Save(data); err != nil {
		log.Printf("store: save failed: %v", err)
	}
}

// Paginate returns up to limit trips starting after cursor. A nil cursor
// starts at the newest trip. A cursor matching an item's createdAt exactly
// anchors immediately after it; otherwise the page starts at the first
// item strictly older than the cursor, or is empty when none exists.
func (s *TripStore) Paginate(cursor *string, limit int) Page {
	all := s.ReadAll()
	if len(all) == 0 || limit < 1 {
		return Page{Trips: []trip.Trip{}}
	}

	start := 0
	if cursor != nil && *cursor != "" {
		_, idx, found := lo.FindIndexOf(all, func(t trip.Trip) bool {
			return t.CreatedAt == *cursor
		})
		if found {
			start = idx + 1
		} else {
			_, older, ok := lo.FindIndexOf(all, func(t trip.Trip) bool {
				return t.CreatedAt < *cursor
			})
			if !ok {
				return Page{Trips: []trip.Trip{}}
			}
			start = older
		}
	}

	end := start + limit
	if end > len(all) {
		end = len(all)
	}
	if start >= end {
		return Page{Trips: []trip.Trip{}}
	}
	page := all[start:end]

	last := page[len(page)-1]
	_, lastIdx, _ := lo.FindIndexOf(all, func(t trip.Trip) bool {
		return t.ID == last.ID
	})
	if lastIdx < len(all)-1 {
		next := last.CreatedAt
		return Page{Trips: page, NextCursor: &next}
	}
	return Page{Trips: page}
}

// Latest returns the most recently created trip, if any.
func (s *TripStore) Latest() (trip.Trip, bool) {
	all := s.ReadAll()
	if len(all) == 0 {
		return trip.Trip{}, false
	}
	return all[0], true
}
