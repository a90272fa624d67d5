// README: Dialogue policy; decides between clarifying questions and the places search.
package chat

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"scout/internal/ai"
	"scout/internal/maps"
)

// RestaurantSearcher is the places-search boundary.
type RestaurantSearcher interface {
	SearchRestaurants(ctx context.Context, query string, coords *maps.Coordinates) ([]maps.Restaurant, error)
}

// Service runs one chat turn: extraction, location resolution, then either a
// clarifying question or the restaurant search. It holds no per-conversation
// state; every turn is rebuilt from the client-supplied history.
type Service struct {
	extractor ai.PreferenceExtractor
	searcher  RestaurantSearcher
	log       *zap.Logger
}

func NewService(extractor ai.PreferenceExtractor, searcher RestaurantSearcher, log *zap.Logger) *Service {
	return &Service{
		extractor: extractor,
		searcher:  searcher,
		log:       log,
	}
}

// vaguePhrases are location strings that cannot be searched: the server never
// knows where "here" is.
var vaguePhrases = []string{"near me", "nearby", "around here"}

func isVagueLocation(location string) bool {
	lower := strings.ToLower(location)
	for _, phrase := range vaguePhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// Respond runs the decision chain for one user turn. It never fails: extraction
// errors were already absorbed by the extractor and search errors degrade to
// an acknowledgment without results.
func (s *Service) Respond(ctx context.Context, message string, history []ai.ChatMessage) *ChatResponse {
	prefs := s.extractor.ExtractPreferences(ctx, message, history)

	location := strings.TrimSpace(prefs.Location)

	// The extractor missed it: fall back to the regex, first on the current
	// message, then over prior user turns, most recent first.
	if location == "" {
		location = ExtractLocation(message)
	}
	if location == "" {
		for i := len(history) - 1; i >= 0; i-- {
			if history[i].Role != ai.RoleUser {
				continue
			}
			if loc := ExtractLocation(history[i].Content); loc != "" {
				location = loc
				break
			}
		}
	}

	if isVagueLocation(location) {
		return &ChatResponse{
			AssistantMessage: "I can't see where you are, so could you tell me a specific city or neighborhood to search in?",
			NeedsLocation:    true,
		}
	}

	if location == "" && prefs.Coordinates == nil {
		return &ChatResponse{
			AssistantMessage: clarifyingQuestion(prefs.Cuisine),
			NeedsLocation:    true,
		}
	}

	// The regex or history filled the location after extraction, so the
	// synthesized query may not mention it yet.
	if location != "" {
		prefs.Location = location
		if q := prefs.SearchQuery; q != "" && !strings.Contains(strings.ToLower(q), strings.ToLower(location)) {
			prefs.SearchQuery = q + " in " + location
		}
	}

	var coords *maps.Coordinates
	if prefs.Coordinates != nil {
		coords = &maps.Coordinates{Lat: prefs.Coordinates.Lat, Lng: prefs.Coordinates.Lng}
	}

	restaurants, err := s.searcher.SearchRestaurants(ctx, prefs.SearchQuery, coords)
	if err != nil {
		s.log.Warn("places search failed",
			zap.String("query", prefs.SearchQuery),
			zap.Error(err))
	}
	if err != nil || len(restaurants) == 0 {
		return &ChatResponse{AssistantMessage: acknowledgment(prefs.Cuisine, location)}
	}

	s.log.Info("returning recommendations",
		zap.String("query", prefs.SearchQuery),
		zap.Int("results", len(restaurants)))

	return &ChatResponse{
		AssistantMessage: resultMessage(prefs.Cuisine, location),
		Restaurants:      restaurants,
	}
}

// clarifyingQuestion asks for the missing location, acknowledging any cuisine
// already captured so the user knows they were heard.
func clarifyingQuestion(cuisines []string) string {
	if len(cuisines) > 0 {
		return fmt.Sprintf("%s sounds delicious! Which city or neighborhood should I search in?",
			strings.Join(cuisines, ", "))
	}
	return "I'd be happy to help you find a great restaurant! Which city or neighborhood should I search in?"
}

// resultMessage introduces a non-empty recommendation list.
func resultMessage(cuisines []string, location string) string {
	where := location
	if where == "" {
		where = "your area"
	}
	if len(cuisines) > 0 {
		return fmt.Sprintf("Great choice! Here are some %s spots I found in %s:",
			strings.Join(cuisines, ", "), where)
	}
	return fmt.Sprintf("Here are some restaurants I found in %s:", where)
}

// acknowledgment is the degraded reply when the search stage fails or comes
// back empty. It still echoes what was understood.
func acknowledgment(cuisines []string, location string) string {
	where := location
	if where == "" {
		where = "your area"
	}
	if len(cuisines) > 0 {
		return fmt.Sprintf("I'm looking for %s restaurants in %s, but I couldn't pull results just now. Please try again in a moment.",
			strings.Join(cuisines, ", "), where)
	}
	return fmt.Sprintf("I'm looking for restaurants in %s, but I couldn't pull results just now. Please try again in a moment.", where)
}
