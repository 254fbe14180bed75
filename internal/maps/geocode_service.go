package maps

import (
	"context"
	"time"

	"googlemaps.github.io/maps"
)

// GeocodeService resolves free-text addresses to coordinates.
type GeocodeService struct {
	client  *maps.Client
	timeout time.Duration
}

func NewGeocodeService(client *maps.Client, timeout time.Duration) *GeocodeService {
	return &GeocodeService{client: client, timeout: timeout}
}

// Geocode returns the first match for address, or ErrNoResults.
func (s *GeocodeService) Geocode(ctx context.Context, address string) (*Location, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	results, err := s.client.Geocode(ctx, &maps.GeocodingRequest{Address: address})
	if err != nil {
		return nil, classifyError("geocoding api error", err)
	}
	if len(results) == 0 {
		return nil, ErrNoResults
	}

	first := results[0]
	return &Location{
		Address: first.FormattedAddress,
		Lat:     first.Geometry.Location.Lat,
		Lng:     first.Geometry.Location.Lng,
	}, nil
}
