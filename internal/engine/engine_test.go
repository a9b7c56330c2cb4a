package engine

import (
	"context"
	"testing"
	"time"
)

func testEngine() *Engine {
	fixed := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	return &Engine{
		now:   func() time.Time { return fixed },
		newID: func() string { return "fixed-id" },
	}
}

func TestGenerate_GoaBeachTrip(t *testing.T) {
	e := testEngine()

	got, err := e.Generate(context.Background(), "3 days in Goa under 10000 with beaches")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	if len(got.Days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(got.Days))
	}
	if got.TotalBudget != "₹10000" {
		t.Errorf("expected budget ₹10000, got %q", got.TotalBudget)
	}
	if got.TripTitle != "3-day trip to Goa" {
		t.Errorf("unexpected trip title %q", got.TripTitle)
	}
	if got.Days[0].Activities[0].Place != "Sunrise on the beach" {
		t.Errorf("expected beach template, first activity was %q", got.Days[0].Activities[0].Place)
	}
	if got.TravelBreakdown == nil || got.TravelBreakdown.Flight != "₹3k–8k" {
		t.Errorf("expected Goa travel estimates, got %+v", got.TravelBreakdown)
	}
}

func TestGenerate_DefaultsWithoutDayCount(t *testing.T) {
	e := testEngine()

	got, err := e.Generate(context.Background(), "weekend in Bangalore")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	if len(got.Days) != 3 {
		t.Errorf("expected default of 3 days, got %d", len(got.Days))
	}
	if got.Days[0].Title != "Day 1: Exploring Bangalore" {
		t.Errorf("expected city day title, got %q", got.Days[0].Title)
	}
}

func TestGenerate_DayNumbersAreDense(t *testing.T) {
	prompts := []string{
		"",
		"3 days in Goa under 10000 with beaches",
		"2 day yoga retreat in rishikesh",
		"15 days in Manali",
		"0 days in Delhi",
		"just somewhere quiet",
		"trip to kasol with friends",
	}

	e := testEngine()
	for _, prompt := range prompts {
		t.Run(prompt, func(t *testing.T) {
			got, err := e.Generate(context.Background(), prompt)
			if err != nil {
				t.Fatalf("Generate returned error: %v", err)
			}
			if len(got.Days) < 1 || len(got.Days) > 10 {
				t.Fatalf("day count %d out of [1,10]", len(got.Days))
			}
			for i, d := range got.Days {
				if d.Day != i+1 {
					t.Errorf("days[%d].Day = %d, want %d", i, d.Day, i+1)
				}
				if len(d.Activities) == 0 {
					t.Errorf("days[%d] has no activities", i)
				}
			}
		})
	}
}

func TestExtractDayCount(t *testing.T) {
	cases := []struct {
		prompt string
		want   int
	}{
		{"5 days in goa", 5},
		{"12 days in goa", 10},
		{"0 days anywhere", 3},
		{"no count at all", 3},
		{"1 day in pondi", 1},
	}
	for _, tc := range cases {
		if got := extractDayCount(tc.prompt); got != tc.want {
			t.Errorf("extractDayCount(%q) = %d, want %d", tc.prompt, got, tc.want)
		}
	}
}

func TestExtractDestination(t *testing.T) {
	cases := []struct {
		prompt string
		want   string
	}{
		{"3 days in goa under 10000", "Goa"},
		{"trip to old manali with friends", "Old Manali"},
		{"varanasi on a budget", "Varanasi"},
		{"somewhere nice", "Your Destination"},
		// Greedy capture keeps the budget clause out of the name.
		{"a week in goa under ten grand", "Goa"},
	}
	for _, tc := range cases {
		if got := extractDestination(tc.prompt); got != tc.want {
			t.Errorf("extractDestination(%q) = %q, want %q", tc.prompt, got, tc.want)
		}
	}
}

func TestExtractBudget(t *testing.T) {
	if got := extractBudget("goa under 10,000"); got != "₹10,000" {
		t.Errorf("expected ₹10,000, got %q", got)
	}
	if got := extractBudget("goa sometime"); got != "Flexible Budget" {
		t.Errorf("expected Flexible Budget, got %q", got)
	}
}

func TestGenerate_UnknownDestinationGetsDefaults(t *testing.T) {
	e := testEngine()

	got, err := e.Generate(context.Background(), "4 days in timbuktu")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	if got.TravelBreakdown == nil || got.TravelBreakdown.Flight != "₹2k–6k (varies)" {
		t.Errorf("expected default travel estimates, got %+v", got.TravelBreakdown)
	}
	if got.Days[0].Title != "Day 1 in Timbuktu" {
		t.Errorf("expected general day title, got %q", got.Days[0].Title)
	}
}

func TestGenerate_StampsIdentityOnce(t *testing.T) {
	e := testEngine()

	got, _ := e.Generate(context.Background(), "2 days in goa")
	if got.ID != "fixed-id" {
		t.Errorf("unexpected id %q", got.ID)
	}
	if got.CreatedAt != "2025-06-01T10:00:00.000Z" {
		t.Errorf("unexpected createdAt %q", got.CreatedAt)
	}
	if got.Prompt != "2 days in goa" {
		t.Errorf("prompt not preserved: %q", got.Prompt)
	}
}
