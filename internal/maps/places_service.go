package maps

import (
	"context"
	"fmt"
	"strings"
	"time"

	"googlemaps.github.io/maps"
)

const (
	// MaxPlaces caps how many text-search results are returned.
	MaxPlaces = 5
	// searchRadiusMeters applies when the caller supplies coordinates.
	searchRadiusMeters = 50000
)

// PlacesService handles interactions with Google Places API.
type PlacesService struct {
	client  *maps.Client
	timeout time.Duration
}

// NewPlacesService wraps a shared maps client.
func NewPlacesService(client *maps.Client, timeout time.Duration) *PlacesService {
	return &PlacesService{client: client, timeout: timeout}
}

// SearchPlaces runs a text search for query. location is optional: a "lat,lng"
// pair biases results within 50 km; any other text is folded into the query
// as "near <location>". An empty slice means no matches.
func (s *PlacesService) SearchPlaces(ctx context.Context, query, location string) ([]Place, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	r := &maps.TextSearchRequest{Query: query}
	if location = strings.TrimSpace(location); location != "" {
		if ll, ok := parseLatLng(location); ok {
			r.Location = &ll
			r.Radius = searchRadiusMeters
		} else {
			r.Query = fmt.Sprintf("%s near %s", query, location)
		}
	}

	resp, err := s.client.TextSearch(ctx, r)
	if err != nil {
		return nil, classifyError("places api error", err)
	}

	results := make([]Place, 0, min(len(resp.Results), MaxPlaces))
	for _, result := range resp.Results {
		if len(results) >= MaxPlaces {
			break
		}
		results = append(results, toPlace(result))
	}
	return results, nil
}

func toPlace(r maps.PlacesSearchResult) Place {
	p := Place{Name: r.Name, Address: r.FormattedAddress}
	if r.Rating > 0 {
		rating := r.Rating
		p.Rating = &rating
	}
	if loc := r.Geometry.Location; loc.Lat != 0 || loc.Lng != 0 {
		p.Location = &LatLng{Lat: loc.Lat, Lng: loc.Lng}
	}
	return p
}

// parseLatLng guards maps.ParseLatLng, which indexes without checking.
func parseLatLng(s string) (maps.LatLng, bool) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return maps.LatLng{}, false
	}
	ll, err := maps.ParseLatLng(strings.TrimSpace(parts[0]) + "," + strings.TrimSpace(parts[1]))
	if err != nil {
		return maps.LatLng{}, false
	}
	return ll, true
}
