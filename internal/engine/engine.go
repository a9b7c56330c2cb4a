// Package engine turns a free-text travel prompt into a structured Trip.
//
// The engine is a deterministic rule-based classifier over regex matches:
// it never calls out and never fails. Absence of signal degrades to
// defaults (3 days, "Your Destination", flexible budget, general vibe).
package engine

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/yatrakit/yatrakit/internal/trip"
)

const (
	defaultDayCount = 3
	maxDayCount     = 10
)

var (
	dayCountPattern = regexp.MustCompile(`(\d+)\s*day`)
	// Destination follows "in" or "to" and ends before a budget or
	// companion clause, or at end of prompt.
	destinationPattern = regexp.MustCompile(`\b(?:in|to)\s+([a-z\s]+?)(?:\s+under|\s+with|\s*$)`)
	knownPlacePattern  = regexp.MustCompile(`goa|manali|rishikesh|pondicherry|pondi|kerala|shimla|munnar|leh|udaipur|jaipur|darjeeling|mumbai|delhi|bangalore|ooty|gokarna|andaman|varanasi|haridwar|mussoorie|kasol|spiti|mahabalipuram|kovalam|varkala`)
	budgetPattern      = regexp.MustCompile(`under\s*([\d,]+)`)
	// Greedy destination capture can drag a "under..." fragment along.
	trailingUnderPattern = regexp.MustCompile(`\s+under.*$`)
)

// fallbackDestination is used when no destination can be extracted.
const fallbackDestination = "Your Destination"

// Engine generates trips. Deterministic except for id and timestamp
// generation, which are injectable for tests.
type Engine struct {
	now   func() time.Time
	newID func() string
}

// New creates an Engine with the default clock and id source.
func New() *Engine {
	return &Engine{
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
	}
}

// Generate builds a fully-populated Trip from a free-text prompt.
// It always succeeds; the error return exists only to satisfy the
// Generator contract shared with remote backends.
func (e *Engine) Generate(_ context.Context, prompt string) (trip.Trip, error) {
	lower := strings.ToLower(prompt)

	dayCount := extractDayCount(lower)
	destination := extractDestination(lower)
	totalBudget := extractBudget(lower)
	vibe := classifyVibe(lower)
	breakdown := lookupTravelBreakdown(destination)

	days := make([]trip.Day, 0, dayCount)
	for n := 1; n <= dayCount; n++ {
		days = append(days, trip.Day{
			Day:        n,
			Title:      dayTitle(vibe, n, destination),
			Activities: buildDayActivities(destination, vibe),
		})
	}

	return trip.Trip{
		ID:              e.newID(),
		CreatedAt:       trip.Timestamp(e.now()),
		Prompt:          prompt,
		TripTitle:       fmt.Sprintf("%d-day trip to %s", dayCount, destination),
		TotalBudget:     totalBudget,
		TravelBreakdown: &breakdown,
		Days:            days,
	}, nil
}

func extractDayCount(lower string) int {
	m := dayCountPattern.FindStringSubmatch(lower)
	if m == nil {
		return defaultDayCount
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n <= 0 {
		return defaultDayCount
	}
	if n > maxDayCount {
		return maxDayCount
	}
	return n
}

func extractDestination(lower string) string {
	var dest string
	if m := destinationPattern.FindStringSubmatch(lower); m != nil {
		dest = strings.TrimSpace(m[1])
	} else if m := knownPlacePattern.FindString(lower); m != "" {
		dest = m
	} else {
		return fallbackDestination
	}

	dest = strings.TrimSpace(trailingUnderPattern.ReplaceAllString(dest, ""))
	if dest == "" {
		return fallbackDestination
	}
	return cases.Title(language.English).String(dest)
}

func extractBudget(lower string) string {
	m := budgetPattern.FindStringSubmatch(lower)
	if m == nil {
		return "Flexible Budget"
	}
	return "₹" + m[1]
}
