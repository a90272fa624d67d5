package maps

import (
	"reflect"
	"testing"

	"googlemaps.github.io/maps"
)

func TestPriceLabel(t *testing.T) {
	tests := []struct {
		level int
		want  string
	}{
		{0, "$$"},
		{1, "$"},
		{2, "$$"},
		{3, "$$$"},
		{4, "$$$$"},
		{7, "$$$$"},
	}
	for _, tt := range tests {
		if got := priceLabel(tt.level); got != tt.want {
			t.Errorf("priceLabel(%d) = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestCuisineFromTypes(t *testing.T) {
	tests := []struct {
		name  string
		types []string
		want  []string
	}{
		{
			name:  "strips restaurant suffix and generics",
			types: []string{"italian_restaurant", "restaurant", "food", "point_of_interest"},
			want:  []string{"Italian"},
		},
		{
			name:  "multi word type",
			types: []string{"middle_eastern_restaurant", "establishment"},
			want:  []string{"Middle Eastern"},
		},
		{
			name:  "caps at three labels",
			types: []string{"sushi_restaurant", "japanese_restaurant", "bar", "cafe", "bakery"},
			want:  []string{"Sushi", "Japanese", "Bar"},
		},
		{
			name:  "all generic yields none",
			types: []string{"restaurant", "food", "establishment"},
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cuisineFromTypes(tt.types); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("cuisineFromTypes(%v) = %v, want %v", tt.types, got, tt.want)
			}
		})
	}
}

func TestMapRestaurant(t *testing.T) {
	openNow := true
	place := maps.PlacesSearchResult{
		PlaceID:          "place-1",
		Name:             "La Bella Notte",
		Types:            []string{"italian_restaurant", "restaurant"},
		Rating:           4.7,
		UserRatingsTotal: 521,
		PriceLevel:       2,
		FormattedAddress: "15 Hanover St, Boston",
		OpeningHours:     &maps.OpeningHours{OpenNow: &openNow},
		Photos:           []maps.Photo{{PhotoReference: "photo-ref-1"}},
	}
	place.Geometry.Location = maps.LatLng{Lat: 42.3634, Lng: -71.0546}

	got := mapRestaurant(place, &Coordinates{Lat: 42.3601, Lng: -71.0589})

	if got.ID != "place-1" || got.Name != "La Bella Notte" {
		t.Errorf("identity fields wrong: %+v", got)
	}
	if got.Price != "$$" {
		t.Errorf("price = %q, want $$", got.Price)
	}
	if got.Availability != "Open now" {
		t.Errorf("availability = %q, want Open now", got.Availability)
	}
	if got.Image != "photo-ref-1" {
		t.Errorf("image = %q", got.Image)
	}
	if got.Distance == "" {
		t.Error("distance should be populated when origin coordinates are given")
	}
	if len(got.Highlights) == 0 {
		t.Error("expected at least one highlight")
	}
}

func TestMapRestaurant_NoOrigin(t *testing.T) {
	got := mapRestaurant(maps.PlacesSearchResult{PlaceID: "p", Name: "X", Rating: 4.0}, nil)
	if got.Distance != "" {
		t.Errorf("distance = %q, want empty without origin", got.Distance)
	}
	if got.Availability != "" {
		t.Errorf("availability = %q, want empty without opening hours", got.Availability)
	}
}
