package chat

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"scout/internal/ai"
	"scout/internal/maps"
)

// stubExtractor returns canned preferences, standing in for the model.
type stubExtractor struct {
	prefs *ai.ExtractedPreferences
}

func (s *stubExtractor) ExtractPreferences(_ context.Context, message string, _ []ai.ChatMessage) *ai.ExtractedPreferences {
	if s.prefs == nil {
		return ai.Fallback(message)
	}
	return s.prefs
}

// stubSearcher records the query it was given and returns canned results.
type stubSearcher struct {
	results   []maps.Restaurant
	err       error
	lastQuery string
}

func (s *stubSearcher) SearchRestaurants(_ context.Context, query string, _ *maps.Coordinates) ([]maps.Restaurant, error) {
	s.lastQuery = query
	return s.results, s.err
}

func sampleRestaurants() []maps.Restaurant {
	return []maps.Restaurant{
		{ID: "1", Name: "La Bella Notte", Cuisine: []string{"Italian"}, Rating: 4.7},
		{ID: "2", Name: "Trattoria Nina", Cuisine: []string{"Italian"}, Rating: 4.5},
	}
}

func newTestService(extractor ai.PreferenceExtractor, searcher RestaurantSearcher) *Service {
	return NewService(extractor, searcher, zap.NewNop())
}

func TestRespond_MissingLocationAsksGeneric(t *testing.T) {
	svc := newTestService(&stubExtractor{}, &stubSearcher{})

	resp := svc.Respond(context.Background(), "I want Italian food", nil)

	if !resp.NeedsLocation {
		t.Error("expected NeedsLocation")
	}
	if len(resp.Restaurants) != 0 {
		t.Errorf("clarifying turn must not carry restaurants, got %d", len(resp.Restaurants))
	}
}

func TestRespond_MissingLocationAcknowledgesCuisine(t *testing.T) {
	svc := newTestService(&stubExtractor{
		prefs: &ai.ExtractedPreferences{Cuisine: []string{"Sushi"}, SearchQuery: "Sushi restaurant"},
	}, &stubSearcher{})

	resp := svc.Respond(context.Background(), "I'm craving sushi", nil)

	if !resp.NeedsLocation {
		t.Error("expected NeedsLocation")
	}
	if !strings.Contains(resp.AssistantMessage, "Sushi") {
		t.Errorf("clarifying question should reference the cuisine: %q", resp.AssistantMessage)
	}
}

func TestRespond_VagueLocationAlwaysClarifies(t *testing.T) {
	for _, loc := range []string{"near me", "Near Me", "NEARBY", "somewhere around here"} {
		searcher := &stubSearcher{results: sampleRestaurants()}
		svc := newTestService(&stubExtractor{
			prefs: &ai.ExtractedPreferences{
				Cuisine:     []string{"Italian"},
				Location:    loc,
				PriceRange:  ai.PriceExpensive,
				SearchQuery: "Italian fine dining restaurant",
			},
		}, searcher)

		resp := svc.Respond(context.Background(), "fancy italian "+loc, nil)

		if !resp.NeedsLocation {
			t.Errorf("location %q: expected NeedsLocation", loc)
		}
		if len(resp.Restaurants) != 0 {
			t.Errorf("location %q: vague turn must not carry restaurants", loc)
		}
		if searcher.lastQuery != "" {
			t.Errorf("location %q: search must not run on a vague location", loc)
		}
	}
}

func TestRespond_RegexFillsLocationFromMessage(t *testing.T) {
	searcher := &stubSearcher{results: sampleRestaurants()}
	svc := newTestService(&stubExtractor{
		prefs: &ai.ExtractedPreferences{Cuisine: []string{"Italian"}, SearchQuery: "Italian restaurant"},
	}, searcher)

	resp := svc.Respond(context.Background(), "Italian food in Boston", nil)

	if resp.NeedsLocation {
		t.Error("location was present in the message; no clarification expected")
	}
	if !strings.Contains(resp.AssistantMessage, "Italian") || !strings.Contains(resp.AssistantMessage, "Boston") {
		t.Errorf("reply should reference cuisine and location: %q", resp.AssistantMessage)
	}
	if !strings.Contains(searcher.lastQuery, "Boston") {
		t.Errorf("search query should include the resolved location: %q", searcher.lastQuery)
	}
	if len(resp.Restaurants) != 2 {
		t.Errorf("expected 2 restaurants, got %d", len(resp.Restaurants))
	}
}

func TestRespond_LocationCarriedForwardFromHistory(t *testing.T) {
	searcher := &stubSearcher{results: sampleRestaurants()}
	svc := newTestService(&stubExtractor{
		prefs: &ai.ExtractedPreferences{Cuisine: []string{"Ramen"}, SearchQuery: "Ramen restaurant"},
	}, searcher)

	history := []ai.ChatMessage{
		{Role: ai.RoleUser, Content: "I was in Osaka last year"},
		{Role: ai.RoleAssistant, Content: "Which city should I search in?"},
		{Role: ai.RoleUser, Content: "We're staying in Kyoto this week"},
	}
	resp := svc.Respond(context.Background(), "something with good broth", history)

	if resp.NeedsLocation {
		t.Error("history held a location; no clarification expected")
	}
	// Most recent user turn wins.
	if !strings.Contains(resp.AssistantMessage, "Kyoto") {
		t.Errorf("reply should use the most recent history location: %q", resp.AssistantMessage)
	}
}

func TestRespond_SearchFailureDegradesToAcknowledgment(t *testing.T) {
	svc := newTestService(&stubExtractor{
		prefs: &ai.ExtractedPreferences{
			Cuisine:     []string{"Italian"},
			Location:    "Boston",
			SearchQuery: "Italian restaurant in Boston",
		},
	}, &stubSearcher{err: errors.New("places api down")})

	resp := svc.Respond(context.Background(), "Italian in Boston", nil)

	if resp.NeedsLocation {
		t.Error("search failure is not a location problem")
	}
	if len(resp.Restaurants) != 0 {
		t.Error("failed search must not attach restaurants")
	}
	if !strings.Contains(resp.AssistantMessage, "Italian") || !strings.Contains(resp.AssistantMessage, "Boston") {
		t.Errorf("acknowledgment should echo cuisine and location: %q", resp.AssistantMessage)
	}
}

func TestRespond_EmptySearchDegradesToAcknowledgment(t *testing.T) {
	svc := newTestService(&stubExtractor{
		prefs: &ai.ExtractedPreferences{Location: "Boston", SearchQuery: "restaurant in Boston"},
	}, &stubSearcher{})

	resp := svc.Respond(context.Background(), "anywhere in Boston", nil)

	if len(resp.Restaurants) != 0 {
		t.Error("empty search must not attach restaurants")
	}
	if resp.AssistantMessage == "" {
		t.Error("expected an acknowledgment message")
	}
}

func TestRespond_CoordinatesWithoutLocationStillSearch(t *testing.T) {
	searcher := &stubSearcher{results: sampleRestaurants()}
	svc := newTestService(&stubExtractor{
		prefs: &ai.ExtractedPreferences{
			Coordinates: &ai.Coordinates{Lat: 42.36, Lng: -71.06},
			SearchQuery: "restaurant",
		},
	}, searcher)

	resp := svc.Respond(context.Background(), "food close to these coordinates", nil)

	if resp.NeedsLocation {
		t.Error("coordinates satisfy the location requirement")
	}
	if len(resp.Restaurants) == 0 {
		t.Error("expected restaurants from the coordinate-biased search")
	}
}

func TestRespond_ModelFallbackStillWorks(t *testing.T) {
	// Extractor in fallback mode: only the raw message as query.
	searcher := &stubSearcher{results: sampleRestaurants()}
	svc := newTestService(&stubExtractor{}, searcher)

	resp := svc.Respond(context.Background(), "Italian food in Boston", nil)

	if resp.NeedsLocation {
		t.Error("regex should resolve the location even in fallback mode")
	}
	// The raw message already names Boston; the query must not double it.
	if searcher.lastQuery != "Italian food in Boston" {
		t.Errorf("fallback query = %q, want the raw message untouched", searcher.lastQuery)
	}
}
