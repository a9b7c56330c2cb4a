package state

import (
	"github.com/samber/lo"

	"github.com/yatrakit/yatrakit/internal/store"
	"github.com/yatrakit/yatrakit/internal/trip"
)

// History is the history slice: an accumulated, incrementally paged list
// of trips, newest first.
type History struct {
	store      *store.TripStore
	trips      []trip.Trip
	hasMore    bool
	nextCursor *string
	fetching   bool
}

// NewHistory creates an empty history over the given store.
func NewHistory(st *store.TripStore) *History {
	return &History{store: st, hasMore: true}
}

// Trips returns the accumulated list.
func (h *History) Trips() []trip.Trip { return h.trips }

// HasMore reports whether more pages are known to exist.
func (h *History) HasMore() bool { return h.hasMore }

// Fetching reports whether a page fetch is in flight.
func (h *History) Fetching() bool { return h.fetching }

// SetFetching marks a fetch in flight; FetchNext is gated on it.
func (h *History) SetFetching(v bool) { h.fetching = v }

// LoadInitial replaces the list with the first page.
func (h *History) LoadInitial(limit int) {
	page := h.store.Paginate(nil, limit)
	h.trips = page.Trips
	h.nextCursor = page.NextCursor
	h.hasMore = page.NextCursor != nil
}

// FetchNext appends the next page. Called when the consumer signals it is
// near the end of the current list; a trigger while a fetch is already in
// flight, or once the collection is exhausted, is ignored. Reports whether
// a fetch ran.
func (h *History) FetchNext(limit int) bool {
	if h.fetching || !h.hasMore {
		return false
	}
	h.fetching = true
	page := h.store.Paginate(h.nextCursor, limit)
	h.trips = append(h.trips, page.Trips...)
	h.nextCursor = page.NextCursor
	h.hasMore = page.NextCursor != nil
	h.fetching = false
	return true
}

// AddTripToTop upserts the trip at the front of the list: an existing
// entry with the same id moves from its old position, so recently-touched
// trips surface without a reload. List length is unchanged on duplicates.
func (h *History) AddTripToTop(t trip.Trip) {
	rest := lo.Filter(h.trips, func(e trip.Trip, _ int) bool {
		return e.ID != t.ID
	})
	h.trips = append([]trip.Trip{t}, rest...)
}

// Reset clears the accumulated list and pagination state.
func (h *History) Reset() {
	h.trips = []trip.Trip{}
	h.hasMore = true
	h.nextCursor = nil
}
