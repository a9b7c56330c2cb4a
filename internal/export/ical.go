// Package export renders trips as iCalendar feeds.
package export

import (
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/yatrakit/yatrakit/internal/trip"
)

const defaultActivityLength = 90 * time.Minute

// Calendar renders one VEVENT per activity, with day N scheduled on
// start + (N-1) days. Activity times are display strings; ones that parse
// as a clock become timed events, the rest become all-day entries.
func Calendar(t trip.Trip, start time.Time) *ics.Calendar {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//yatrakit//itinerary//EN")
	cal.SetDescription(t.TripTitle)

	for _, day := range t.Days {
		dayStart := start.AddDate(0, 0, day.Day-1)
		for i, a := range day.Activities {
			ev := cal.AddEvent(fmt.Sprintf("%s-day%d-%d", t.ID, day.Day, i))
			ev.SetCreatedTime(start)

			if hour, min, ok := parseClock(a.Time); ok {
				at := time.Date(dayStart.Year(), dayStart.Month(), dayStart.Day(), hour, min, 0, 0, start.Location())
				ev.SetStartAt(at)
				ev.SetEndAt(at.Add(defaultActivityLength))
			} else {
				ev.SetAllDayStartAt(dayStart)
				ev.SetAllDayEndAt(dayStart.AddDate(0, 0, 1))
			}

			summary := a.Place
			if summary == "" {
				summary = day.Title
			}
			ev.SetSummary(summary)
			if a.MapQuery != "" {
				ev.SetLocation(a.MapQuery)
			}

			desc := a.Description
			if a.Cost != "" {
				desc = strings.TrimSpace(desc + " (" + a.Cost + ")")
			}
			if desc != "" {
				ev.SetDescription(desc)
			}
		}
	}
	return cal
}

// parseClock reads a "HH:MM" display time.
func parseClock(s string) (hour, min int, ok bool) {
	parsed, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return 0, 0, false
	}
	return parsed.Hour(), parsed.Minute(), true
}
