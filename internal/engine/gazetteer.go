package engine

import (
	"strings"

	"github.com/yatrakit/yatrakit/internal/trip"
)

const travelKeyMaxLen = 20

type travelEstimate struct {
	key       string
	breakdown trip.TravelBreakdown
}

// travelEstimates maps destination name fragments to rough one-way cost
// estimates from major Indian cities. Ordered: lookup takes the first
// entry whose key substring-matches the normalized destination.
var travelEstimates = []travelEstimate{
	{"rishikesh", trip.TravelBreakdown{Flight: "N/A (nearest: Dehradun ~₹3–5k)", Train: "₹400–800", Bus: "₹500–1k", Notes: "Dehradun airport then cab/bus."}},
	{"haridwar", trip.TravelBreakdown{Flight: "N/A (Dehradun ~₹3–5k)", Train: "₹400–900", Bus: "₹500–1k"}},
	{"manali", trip.TravelBreakdown{Flight: "N/A (Bhuntar ~₹5–8k)", Train: "N/A", Bus: "₹1k–1.5k (overnight)", Notes: "Delhi–Manali bus ~12–14 hrs."}},
	{"shimla", trip.TravelBreakdown{Flight: "N/A", Train: "₹400–1k (Kalka Shatabdi)", Bus: "₹600–1.2k"}},
	{"mussoorie", trip.TravelBreakdown{Flight: "N/A (Dehradun ~₹3–5k)", Train: "₹400–800", Bus: "₹500–900"}},
	{"goa", trip.TravelBreakdown{Flight: "₹3k–8k", Train: "₹1k–2.5k", Bus: "₹1k–2k", Notes: "Flight to Goa (Dabolim/Mopa)."}},
	{"pondicherry", trip.TravelBreakdown{Flight: "N/A (Chennai ~₹2–4k)", Train: "₹500–1.2k", Bus: "₹400–800", Notes: "Chennai then 2–3 hr drive/bus."}},
	{"pondi", trip.TravelBreakdown{Flight: "N/A (Chennai ~₹2–4k)", Train: "₹500–1.2k", Bus: "₹400–800"}},
	{"kerala", trip.TravelBreakdown{Flight: "₹4k–10k (Kochi/Trivandrum)", Train: "₹1k–3k", Bus: "₹1k–2k"}},
	{"munnar", trip.TravelBreakdown{Flight: "N/A (Kochi ~₹4–8k)", Train: "N/A", Bus: "₹300–600 from Kochi"}},
	{"leh", trip.TravelBreakdown{Flight: "₹8k–15k", Train: "N/A", Bus: "N/A", Notes: "Flights from Delhi; road only in season."}},
	{"ladakh", trip.TravelBreakdown{Flight: "₹8k–15k (Leh)", Train: "N/A", Bus: "N/A"}},
	{"darjeeling", trip.TravelBreakdown{Flight: "N/A (Bagdogra ~₹4–7k)", Train: "₹600–1.5k", Bus: "₹800–1.5k"}},
	{"gangtok", trip.TravelBreakdown{Flight: "N/A (Bagdogra ~₹4–7k)", Train: "N/A", Bus: "₹600–1k"}},
	{"udaipur", trip.TravelBreakdown{Flight: "₹4k–9k", Train: "₹500–1.5k", Bus: "₹600–1.2k"}},
	{"jaipur", trip.TravelBreakdown{Flight: "₹3k–7k", Train: "₹400–1.2k", Bus: "₹500–1k"}},
}

var defaultTravelEstimate = trip.TravelBreakdown{Flight: "₹2k–6k (varies)", Train: "₹400–1.5k", Bus: "₹400–1.2k"}

// lookupTravelBreakdown normalizes the destination to a lower-cased,
// whitespace-stripped key capped at 20 chars and returns the first
// gazetteer entry matching it by substring in either direction.
func lookupTravelBreakdown(destination string) trip.TravelBreakdown {
	key := strings.Join(strings.Fields(strings.ToLower(destination)), "")
	if len(key) > travelKeyMaxLen {
		key = key[:travelKeyMaxLen]
	}
	for _, est := range travelEstimates {
		if strings.Contains(key, est.key) || strings.Contains(est.key, key) {
			return est.breakdown
		}
	}
	return defaultTravelEstimate
}
