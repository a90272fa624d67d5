package maps

import (
	"context"
	"fmt"
	"strings"

	"googlemaps.github.io/maps"
)

// Coordinates is a latitude/longitude pair used to bias searches and compute
// display distances.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Restaurant is the display shape returned to the chat client.
type Restaurant struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Cuisine      []string `json:"cuisine"`
	Rating       float32  `json:"rating"`
	ReviewCount  int      `json:"reviewCount"`
	Price        string   `json:"price"`
	Distance     string   `json:"distance"`
	Availability string   `json:"availability"`
	Image        string   `json:"image"`
	Highlights   []string `json:"highlights"`
}

const (
	// maxResults caps how many restaurants one response carries.
	maxResults = 5
	// minRating filters out poorly reviewed places.
	minRating = 3.5
	// searchRadiusMeters is the bias radius applied when coordinates are known.
	searchRadiusMeters = 5000
)

// PlacesService handles interactions with Google Places API.
type PlacesService struct {
	client *maps.Client
}

// NewPlacesService creates a new PlacesService with the given API Key.
func NewPlacesService(apiKey string) (*PlacesService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &PlacesService{client: client}, nil
}

// SearchRestaurants runs a text search for the synthesized query and maps the
// results into the Restaurant display shape. coords, when present, biases the
// search and enables the distance string.
func (s *PlacesService) SearchRestaurants(ctx context.Context, query string, coords *Coordinates) ([]Restaurant, error) {
	r := &maps.TextSearchRequest{
		Query: query,
		Type:  maps.PlaceTypeRestaurant,
	}
	if coords != nil {
		r.Location = &maps.LatLng{Lat: coords.Lat, Lng: coords.Lng}
		r.Radius = searchRadiusMeters
	}

	resp, err := s.client.TextSearch(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("places api error: %w", err)
	}

	var results []Restaurant
	for _, place := range resp.Results {
		if place.PermanentlyClosed {
			continue
		}
		if place.Rating < minRating {
			continue
		}
		results = append(results, mapRestaurant(place, coords))
		if len(results) >= maxResults {
			break
		}
	}
	return results, nil
}

// mapRestaurant converts one Places result into the display shape.
func mapRestaurant(place maps.PlacesSearchResult, origin *Coordinates) Restaurant {
	rest := Restaurant{
		ID:          place.PlaceID,
		Name:        place.Name,
		Cuisine:     cuisineFromTypes(place.Types),
		Rating:      place.Rating,
		ReviewCount: place.UserRatingsTotal,
		Price:       priceLabel(place.PriceLevel),
		Highlights:  highlightsFor(place),
	}

	if origin != nil {
		km := haversineKm(origin.Lat, origin.Lng, place.Geometry.Location.Lat, place.Geometry.Location.Lng)
		rest.Distance = fmt.Sprintf("%.1f km away", km)
	}

	if place.OpeningHours != nil && place.OpeningHours.OpenNow != nil && *place.OpeningHours.OpenNow {
		rest.Availability = "Open now"
	}

	if len(place.Photos) > 0 {
		rest.Image = place.Photos[0].PhotoReference
	}

	return rest
}

// genericTypes are Places types that say nothing about the cuisine.
var genericTypes = map[string]struct{}{
	"restaurant":        {},
	"food":              {},
	"point_of_interest": {},
	"establishment":     {},
	"meal_takeaway":     {},
	"meal_delivery":     {},
}

// cuisineFromTypes turns Places type tags like "italian_restaurant" into
// display labels like "Italian".
func cuisineFromTypes(types []string) []string {
	var cuisines []string
	for _, t := range types {
		if _, generic := genericTypes[t]; generic {
			continue
		}
		label := strings.TrimSuffix(t, "_restaurant")
		label = strings.ReplaceAll(label, "_", " ")
		cuisines = append(cuisines, titleCase(label))
		if len(cuisines) >= 3 {
			break
		}
	}
	return cuisines
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// priceLabel renders the Places price level as the familiar dollar-sign tier.
// Level 0 means "not reported"; show the middle tier rather than nothing.
func priceLabel(level int) string {
	if level <= 0 {
		return "$$"
	}
	if level > 4 {
		level = 4
	}
	return strings.Repeat("$", level)
}

// highlightsFor derives short display badges from the result's signals.
func highlightsFor(place maps.PlacesSearchResult) []string {
	var highlights []string
	if place.Rating >= 4.5 {
		highlights = append(highlights, "Highly rated")
	}
	if place.UserRatingsTotal >= 500 {
		highlights = append(highlights, "Local favorite")
	}
	if place.PriceLevel == 1 {
		highlights = append(highlights, "Great value")
	}
	if place.FormattedAddress != "" {
		highlights = append(highlights, place.FormattedAddress)
	}
	if len(highlights) > 3 {
		highlights = highlights[:3]
	}
	return highlights
}
