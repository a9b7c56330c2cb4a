package engine

import "regexp"

// Vibe is a coarse destination category driving which activity template
// is used.
type Vibe string

const (
	VibeReligious   Vibe = "religious"
	VibeMountain    Vibe = "mountain"
	VibeBeach       Vibe = "beach"
	VibeCity        Vibe = "city"
	VibeHillStation Vibe = "hill_station"
	VibeGeneral     Vibe = "general"
)

type vibeRule struct {
	pattern *regexp.Regexp
	vibe    Vibe
}

// vibeRules is a fixed-priority decision list: specific place names before
// generic nouns, evaluated in order, first match wins. Do not reorder.
var vibeRules = []vibeRule{
	{regexp.MustCompile(`\b(rishikesh|haridwar|varanasi|ayodhya|tirupati|amritsar|dwarka)\b`), VibeReligious},
	{regexp.MustCompile(`\b(manali|shimla|mussoorie|nainital|darjeeling|munnar|ooty|leh|ladakh|spiti|kasol|bir)\b`), VibeMountain},
	{regexp.MustCompile(`\b(goa|pondi|pondicherry|kovalam|varkala|andaman|gokarna|mahabalipuram)\b`), VibeBeach},
	{regexp.MustCompile(`\b(bangalore|mumbai|delhi|hyderabad|chennai|kolkata|pune)\b`), VibeCity},
	{regexp.MustCompile(`\b(mountain|trek|trekking|hills|snow)\b`), VibeMountain},
	{regexp.MustCompile(`\b(beach|beaches|sea|coast)\b`), VibeBeach},
	{regexp.MustCompile(`\b(temple|holy|spiritual|yoga|meditation)\b`), VibeReligious},
}

// classifyVibe categorizes the lower-cased prompt (destination included)
// into exactly one vibe.
func classifyVibe(lower string) Vibe {
	for _, rule := range vibeRules {
		if rule.pattern.MatchString(lower) {
			return rule.vibe
		}
	}
	return VibeGeneral
}
