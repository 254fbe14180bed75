package maps

import (
	"context"
	"fmt"
	"strings"
	"time"

	"googlemaps.github.io/maps"
)

var boldTags = strings.NewReplacer("<b>", "", "</b>", "")

// RouteService handles interactions with Google Directions API.
type RouteService struct {
	client  *maps.Client
	timeout time.Duration
}

// NewRouteService wraps a shared maps client.
func NewRouteService(client *maps.Client, timeout time.Duration) *RouteService {
	return &RouteService{client: client, timeout: timeout}
}

// GetDirections returns the first leg of the first driving route. Any status
// other than OK, ZERO_RESULTS included, is reported as *StatusError.
func (s *RouteService) GetDirections(ctx context.Context, origin, destination string) (*Route, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	r := &maps.DirectionsRequest{
		Origin:      origin,
		Destination: destination,
		Mode:        maps.TravelModeDriving,
	}

	routes, _, err := s.client.Directions(ctx, r)
	if err != nil {
		return nil, classifyError("maps api error", err)
	}
	// The client library folds ZERO_RESULTS into an empty, error-free reply.
	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return nil, &StatusError{Status: "ZERO_RESULTS"}
	}

	primary := routes[0]
	leg := primary.Legs[0]

	steps := make([]RouteStep, 0, len(leg.Steps))
	for _, step := range leg.Steps {
		steps = append(steps, RouteStep{
			Instruction: boldTags.Replace(step.HTMLInstructions),
			Distance:    step.Distance.HumanReadable,
			Duration:    humanDuration(step.Duration),
		})
	}

	return &Route{
		Distance:     leg.Distance.HumanReadable,
		Duration:     humanDuration(leg.Duration),
		StartAddress: leg.StartAddress,
		EndAddress:   leg.EndAddress,
		Steps:        steps,
		Polyline:     primary.OverviewPolyline.Points,
	}, nil
}

// humanDuration renders d the way the Directions API text fields do,
// e.g. "1 hour 5 mins" or "1 day 3 hours". The client library decodes
// durations to seconds and drops the server's text.
func humanDuration(d time.Duration) string {
	mins := int(d.Round(time.Minute) / time.Minute)
	if mins < 1 {
		mins = 1
	}
	days, hours, m := mins/(24*60), (mins%(24*60))/60, mins%60

	switch {
	case days > 0:
		if hours > 0 {
			return unit(days, "day") + " " + unit(hours, "hour")
		}
		return unit(days, "day")
	case hours > 0:
		if m > 0 {
			return unit(hours, "hour") + " " + unit(m, "min")
		}
		return unit(hours, "hour")
	default:
		return unit(m, "min")
	}
}

func unit(n int, name string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", name)
	}
	return fmt.Sprintf("%d %ss", n, name)
}
