// Package state holds the two orchestration slices: the checked-out
// current trip and the incrementally paged history feed.
package state

import (
	"context"

	"github.com/yatrakit/yatrakit/internal/store"
	"github.com/yatrakit/yatrakit/internal/trip"
)

// Generator produces a trip from a free-text prompt.
// Implementations: engine.Engine (deterministic, never errors),
// llm.Client (remote, may error).
type Generator interface {
	Generate(ctx context.Context, prompt string) (trip.Trip, error)
}

// ActivityPatch is a field-level partial update for one activity. Nil
// fields are left unchanged.
type ActivityPatch struct {
	Time        *string
	Place       *string
	Description *string
	Cost        *string
	MapQuery    *string
	PhotoSpot   *bool
}

func (p ActivityPatch) apply(a trip.Activity) trip.Activity {
	if p.Time != nil {
		a.Time = *p.Time
	}
	if p.Place != nil {
		a.Place = *p.Place
	}
	if p.Description != nil {
		a.Description = *p.Description
	}
	if p.Cost != nil {
		a.Cost = *p.Cost
	}
	if p.MapQuery != nil {
		a.MapQuery = *p.MapQuery
	}
	if p.PhotoSpot != nil {
		a.PhotoSpot = *p.PhotoSpot
	}
	return a
}

// Session is the current-trip slice: at most one trip checked out for
// editing, kept in sync with the store on every mutation (write-through).
type Session struct {
	store   *store.TripStore
	gen     Generator
	current *trip.Trip
	loading bool
	err     string
}

// NewSession creates a session over the given store and generator.
func NewSession(st *store.TripStore, gen Generator) *Session {
	return &Session{store: st, gen: gen}
}

// Current returns the checked-out trip, if any.
func (s *Session) Current() (trip.Trip, bool) {
	if s.current == nil {
		return trip.Trip{}, false
	}
	return *s.current, true
}

// Loading reports whether a generation is in flight.
func (s *Session) Loading() bool { return s.loading }

// Err returns the last user-visible error message, empty when none.
func (s *Session) Err() string { return s.err }

// SetError records a user-visible error message.
func (s *Session) SetError(msg string) { s.err = msg }

// SetTrip persists the trip, then checks it out and clears any error.
func (s *Session) SetTrip(t trip.Trip) {
	s.store.Persist(t)
	checked := t.Clone()
	s.current = &checked
	s.err = ""
}

// ClearTrip drops the checked-out trip without touching the store.
func (s *Session) ClearTrip() { s.current = nil }

// Plan runs a generation end to end: the loading flag is set before the
// generator is invoked and cleared after completion or failure, matched
// 1:1 on every path. A failing generation surfaces its message and applies
// no partial state. In-flight generations cannot be aborted; callers may
// only ignore the result.
func (s *Session) Plan(ctx context.Context, prompt string) (trip.Trip, error) {
	s.loading = true
	t, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		s.loading = false
		s.err = err.Error()
		return trip.Trip{}, err
	}
	s.SetTrip(t)
	s.loading = false
	return t, nil
}

// UpdateActivity applies a field-level patch to one activity, persists the
// entire updated trip and swaps it in. No-op when no trip is loaded or the
// coordinates do not resolve to an activity.
func (s *Session) UpdateActivity(dayNumber, activityIndex int, patch ActivityPatch) {
	if s.current == nil {
		return
	}
	updated := s.current.Clone()
	for i := range updated.Days {
		d := &updated.Days[i]
		if d.Day != dayNumber {
			continue
		}
		if activityIndex < 0 || activityIndex >= len(d.Activities) {
			continue
		}
		d.Activities[activityIndex] = patch.apply(d.Activities[activityIndex])
	}
	s.store.Persist(updated)
	s.current = &updated
}

// ReplaceDay swaps a whole day in place, persists the entire updated trip
// and swaps it in. No-op when no trip is loaded.
func (s *Session) ReplaceDay(dayNumber int, newDay trip.Day) {
	if s.current == nil {
		return
	}
	updated := s.current.Clone()
	for i := range updated.Days {
		if updated.Days[i].Day == dayNumber {
			updated.Days[i] = newDay.Clone()
		}
	}
	s.store.Persist(updated)
	s.current = &updated
}
