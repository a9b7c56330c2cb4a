// Package normalize coerces untrusted structured payloads into valid trips.
//
// It is the defensive adapter boundary between an external generation
// source (a real model, a pasted JSON blob) and the rest of the system:
// every malformed or missing field coerces to a safe default, and the
// result is always a usable Trip.
package normalize

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yatrakit/yatrakit/internal/trip"
)

const untitledTrip = "Untitled Trip"

// Normalize converts an arbitrary decoded JSON value into a Trip stamped
// with a fresh id/timestamp and the originating prompt. It never fails:
// a value that is not a keyed-field structure yields a minimal empty trip.
func Normalize(raw any, prompt string) trip.Trip {
	t := trip.Trip{
		ID:        uuid.New().String(),
		CreatedAt: trip.Timestamp(time.Now()),
		Prompt:    prompt,
		TripTitle: untitledTrip,
		Days:      []trip.Day{},
	}

	fields, ok := raw.(map[string]any)
	if !ok {
		return t
	}

	if title := coerceString(fields["tripTitle"]); title != "" {
		t.TripTitle = title
	}
	t.TotalBudget = coerceString(fields["totalBudget"])
	t.Days = coerceDays(fields["days"])
	return t
}

func coerceDays(raw any) []trip.Day {
	items, ok := raw.([]any)
	if !ok {
		return []trip.Day{}
	}

	days := make([]trip.Day, 0, len(items))
	for _, item := range items {
		fields, ok := item.(map[string]any)
		if !ok {
			// Entries that are not keyed-field structures are dropped,
			// not defaulted.
			continue
		}
		day := trip.Day{
			Day:        coerceInt(fields["day"]),
			Activities: coerceActivities(fields["activities"]),
		}
		if title, present := fields["title"]; present && title != nil {
			day.Title = coerceString(title)
		} else {
			day.Title = defaultDayTitle(day.Day)
		}
		days = append(days, day)
	}
	return days
}

func coerceActivities(raw any) []trip.Activity {
	items, ok := raw.([]any)
	if !ok {
		return []trip.Activity{}
	}

	activities := make([]trip.Activity, 0, len(items))
	for _, item := range items {
		fields, ok := item.(map[string]any)
		if !ok {
			continue
		}
		a := trip.Activity{
			Time:        coerceString(fields["time"]),
			Place:       coerceString(fields["place"]),
			Description: coerceString(fields["description"]),
			Cost:        coerceString(fields["cost"]),
			MapQuery:    coerceString(fields["mapQuery"]),
		}
		// MapQuery must never be empty when Place is set.
		if a.MapQuery == "" {
			a.MapQuery = a.Place
		}
		activities = append(activities, a)
	}
	return activities
}

func defaultDayTitle(n int) string {
	if n == 0 {
		return "Day"
	}
	return fmt.Sprintf("Day %d", n)
}

func coerceString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	default:
		return ""
	}
}

func coerceInt(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	case bool:
		if n {
			return 1
		}
		return 0
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return int(f)
	default:
		return 0
	}
}
