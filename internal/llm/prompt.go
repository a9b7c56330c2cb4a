package llm

import "strings"

// buildTripPrompt wraps the traveller's prompt with strict-JSON output
// instructions matching the trip schema.
func buildTripPrompt(userPrompt string) string {
	return strings.TrimSpace(`
You are a travel itinerary generator.

Your task:
- Convert the traveller's request into STRICT JSON.
- Output MUST be valid JSON.
- Output MUST start with { and end with }.
- Output MUST contain ONLY JSON.
- NO explanations.
- NO markdown.
- NO extra text.

Required JSON schema:
{
  "tripTitle": "string",
  "totalBudget": "string",
  "days": [
    {
      "day": number,
      "title": "string",
      "activities": [
        {
          "time": "string",
          "place": "string",
          "description": "string",
          "cost": "string",
          "mapQuery": "string"
        }
      ]
    }
  ]
}

TRAVELLER REQUEST:
`) + "\n" + userPrompt
}

// extractJSON returns the first balanced-looking JSON object in text, or
// "" when none is present. Models wrap output in prose or fences often
// enough that this salvage step is required.
func extractJSON(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return ""
	}
	return text[start : end+1]
}
