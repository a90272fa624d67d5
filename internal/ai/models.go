package ai

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Price-range tiers the extractor is allowed to return.
const (
	PriceBudget        = "budget"
	PriceModerate      = "moderate"
	PriceExpensive     = "expensive"
	PriceVeryExpensive = "very expensive"
)

// Coordinates is an optional geocoded point for the extracted location.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// ExtractedPreferences captures the structured output of one extraction turn.
// Fields the user never mentioned stay zero; the model is instructed to omit
// them rather than guess.
type ExtractedPreferences struct {
	Cuisine             []string     `json:"cuisine,omitempty"`
	Location            string       `json:"location,omitempty"`
	Coordinates         *Coordinates `json:"coordinates,omitempty"`
	PriceRange          string       `json:"priceRange,omitempty"`
	Occasion            string       `json:"occasion,omitempty"`
	DietaryRestrictions []string     `json:"dietaryRestrictions,omitempty"`
	OtherPreferences    []string     `json:"otherPreferences,omitempty"`
	SearchQuery         string       `json:"searchQuery,omitempty"`
}

// Fallback is the minimal preference object used when the extraction call fails
// for any reason. The raw message doubles as the search query.
func Fallback(message string) *ExtractedPreferences {
	return &ExtractedPreferences{SearchQuery: message}
}

// priceQueryPhrases maps each price tier to the phrase used in synthesized
// search queries.
var priceQueryPhrases = map[string]string{
	PriceBudget:        "cheap",
	PriceModerate:      "moderate",
	PriceExpensive:     "fine dining",
	PriceVeryExpensive: "upscale fine dining",
}

// BuildSearchQuery synthesizes a natural-language places query from the
// structured fields: cuisines, a price phrase, the literal "restaurant", then
// location and occasion clauses. Clauses for empty fields are skipped.
func BuildSearchQuery(p *ExtractedPreferences) string {
	var parts []string

	if len(p.Cuisine) > 0 {
		parts = append(parts, strings.Join(p.Cuisine, ", "))
	}

	if p.PriceRange != "" {
		phrase, ok := priceQueryPhrases[p.PriceRange]
		if !ok {
			phrase = p.PriceRange
		}
		parts = append(parts, phrase)
	}

	parts = append(parts, "restaurant")

	if p.Location != "" {
		parts = append(parts, "in "+p.Location)
	}

	if p.Occasion != "" {
		parts = append(parts, "for "+p.Occasion)
	}

	return strings.Join(parts, " ")
}

// ensureSearchQuery fills SearchQuery from the structured fields when the
// model did not provide one.
func (p *ExtractedPreferences) ensureSearchQuery() {
	if p.SearchQuery == "" {
		p.SearchQuery = BuildSearchQuery(p)
	}
}

// parsePreferences decodes the model's reply into preferences, stripping any
// markdown fencing first.
func parsePreferences(raw string) (*ExtractedPreferences, error) {
	clean := cleanJSONString(raw)

	var prefs ExtractedPreferences
	if err := json.Unmarshal([]byte(clean), &prefs); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w. Raw: %s", err, clean)
	}
	return &prefs, nil
}

// cleanJSONString removes markdown code blocks if present (e.g. ```json ... ```)
func cleanJSONString(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}

// extractionPrompt instructs the model which fields to extract and their
// allowed values. Both providers share it.
const extractionPrompt = `You are a restaurant recommendation assistant. Your task is to extract restaurant preferences from user conversations.

Extract the following information:
- cuisine: Array of cuisine types (e.g., ["Italian", "Japanese"])
- location: City, neighborhood, or area name (e.g., "Manhattan", "San Francisco")
- coordinates: If location can be geocoded, provide lat/lng (optional)
- priceRange: One of "budget", "moderate", "expensive", "very expensive"
- occasion: Special occasion or dining style (e.g., "romantic", "business dinner", "casual")
- dietaryRestrictions: Any dietary restrictions (e.g., ["vegetarian", "gluten-free"])
- otherPreferences: Any other preferences mentioned
- searchQuery: A natural language search query for a places search based on the preferences

Return a JSON object with the extracted preferences. If information is not mentioned, omit that field.
Use conversation history to maintain context about previously mentioned preferences.`
