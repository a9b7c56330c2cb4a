package engine

import (
	"fmt"

	"github.com/yatrakit/yatrakit/internal/trip"
)

// buildDayActivities returns the fixed activity template for the vibe with
// the destination substituted into place/description/map-query text. Every
// day of a trip currently gets the same template; only the day number and
// title differ.
func buildDayActivities(dest string, vibe Vibe) []trip.Activity {
	switch vibe {
	case VibeReligious:
		return []trip.Activity{
			{Time: "06:00", Place: "Morning Ganga Aarti / Temple visit", Description: "Start with sunrise aarti or temple darshan. Peaceful and photogenic.", Cost: "₹0", MapQuery: dest + " ghat temple", PhotoSpot: true},
			{Time: "09:30", Place: "Breakfast near ghats", Description: "Simple prasad or local breakfast with chai.", Cost: "₹100–200", MapQuery: dest + " breakfast"},
			{Time: "11:00", Place: "Ashram or yoga by the river", Description: "Yoga/meditation session; many free or donation-based.", Cost: "₹0–300", MapQuery: dest + " yoga ashram", PhotoSpot: true},
			{Time: "14:00", Place: "Local lunch + temple hopping", Description: "Visit 1–2 more temples; try local bhojanalay.", Cost: "₹150–400", MapQuery: dest + " temple"},
			{Time: "17:00", Place: "Evening ghat walk / sunset", Description: "Best time for photos and reels by the river.", Cost: "₹0", MapQuery: dest + " ghat sunset", PhotoSpot: true},
		}
	case VibeMountain:
		return []trip.Activity{
			{Time: "07:00", Place: "Early breakfast + trek start", Description: "Short trek or nature walk; carry water and layers.", Cost: "₹200–500", MapQuery: dest + " trek", PhotoSpot: true},
			{Time: "10:00", Place: "Viewpoint / meadow", Description: "Rest at a viewpoint; great for pictures.", Cost: "₹0", MapQuery: dest + " viewpoint", PhotoSpot: true},
			{Time: "13:00", Place: "Lunch at dhaba / cafe", Description: "Warm meal; try local chai and maggi.", Cost: "₹200–400", MapQuery: dest + " dhaba"},
			{Time: "15:00", Place: "Explore village / market", Description: "Local market or short walk in town.", Cost: "₹0–300", MapQuery: dest + " market"},
			{Time: "18:00", Place: "Sunset point", Description: "Golden hour photos; wrap up before dark.", Cost: "₹0", MapQuery: dest + " sunset point", PhotoSpot: true},
		}
	case VibeBeach:
		return []trip.Activity{
			{Time: "06:30", Place: "Sunrise on the beach", Description: "Early morning beach walk; best light for photos.", Cost: "₹0", MapQuery: dest + " beach", PhotoSpot: true},
			{Time: "09:00", Place: "Beachside breakfast / cafe", Description: "Chill breakfast with sea view.", Cost: "₹300–600", MapQuery: dest + " beach cafe", PhotoSpot: true},
			{Time: "11:00", Place: "Beach time / water sports", Description: "Swim, surf, or just relax. Optional water sports extra.", Cost: "₹0–1k", MapQuery: dest + " beach"},
			{Time: "14:00", Place: "Lunch at shack or town", Description: "Fresh seafood or local lunch.", Cost: "₹400–800", MapQuery: dest + " lunch"},
			{Time: "17:00", Place: "French Quarter / old town (if Pondy) or sunset beach", Description: "Colonial streets or sunset by the sea—great for reels.", Cost: "₹0", MapQuery: dest + " french quarter beach", PhotoSpot: true},
		}
	case VibeCity:
		return []trip.Activity{
			{Time: "08:00", Place: "Cafe / brunch spot", Description: "Start with good coffee and breakfast.", Cost: "₹400–700", MapQuery: dest + " cafe"},
			{Time: "10:30", Place: "Landmark or museum", Description: "One main attraction; book online if needed.", Cost: "₹0–500", MapQuery: dest + " landmark", PhotoSpot: true},
			{Time: "13:00", Place: "Local lunch", Description: "Famous local food or street food.", Cost: "₹200–500", MapQuery: dest + " food"},
			{Time: "15:00", Place: "Market / shopping street", Description: "Souvenirs or just walk around.", Cost: "₹0–1k", MapQuery: dest + " market"},
			{Time: "19:00", Place: "Rooftop or waterfront", Description: "Evening views; good for photos.", Cost: "₹500–1k", MapQuery: dest + " rooftop", PhotoSpot: true},
		}
	default:
		return []trip.Activity{
			{Time: "09:00", Place: "Morning spot in " + dest, Description: "Breakfast and a relaxed start.", Cost: "₹300–500", MapQuery: dest + " cafe"},
			{Time: "12:00", Place: "Main attraction", Description: "Explore a key place in " + dest + ".", Cost: "₹0–400", MapQuery: dest, PhotoSpot: true},
			{Time: "14:00", Place: "Lunch", Description: "Local lunch.", Cost: "₹250–500", MapQuery: dest + " restaurant"},
			{Time: "17:00", Place: "Viewpoint or walk", Description: "Evening stroll; good for photos.", Cost: "₹0", MapQuery: dest + " viewpoint", PhotoSpot: true},
		}
	}
}

// dayTitle is the fixed per-vibe title format parameterized by day number
// and destination.
func dayTitle(vibe Vibe, dayNumber int, dest string) string {
	switch vibe {
	case VibeReligious:
		return fmt.Sprintf("Day %d: Temples, ghats & yoga in %s", dayNumber, dest)
	case VibeMountain:
		return fmt.Sprintf("Day %d: Treks & views in %s", dayNumber, dest)
	case VibeBeach:
		return fmt.Sprintf("Day %d: Beaches & vibes in %s", dayNumber, dest)
	case VibeCity:
		return fmt.Sprintf("Day %d: Exploring %s", dayNumber, dest)
	case VibeHillStation:
		return fmt.Sprintf("Day %d: Hills & cool air in %s", dayNumber, dest)
	default:
		return fmt.Sprintf("Day %d in %s", dayNumber, dest)
	}
}
