package maps

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"googlemaps.github.io/maps"
)

// fakeMaps serves canned JSON per API path and records the last query seen.
type fakeMaps struct {
	bodies    map[string]string
	lastQuery url.Values
	calls     int
}

func newFakeMaps(t *testing.T, bodies map[string]string) (*fakeMaps, *maps.Client) {
	t.Helper()
	f := &fakeMaps{bodies: bodies}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.calls++
		f.lastQuery = r.URL.Query()
		body, ok := f.bodies[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	client, err := NewClient("test-key", maps.WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return f, client
}

const (
	textSearchPath = "/maps/api/place/textsearch/json"
	directionsPath = "/maps/api/directions/json"
	geocodePath    = "/maps/api/geocode/json"
)

func placesBody(n int) string {
	results := make([]string, 0, n)
	for i := 0; i < n; i++ {
		results = append(results, fmt.Sprintf(`{
			"name": "Cafe %d",
			"formatted_address": "Street %d, Kochi",
			"rating": 4.%d,
			"geometry": {"location": {"lat": 9.9%d, "lng": 76.2%d}}
		}`, i, i, i, i, i))
	}
	return fmt.Sprintf(`{"status": "OK", "results": [%s]}`, strings.Join(results, ","))
}

func TestSearchPlacesCapsAtFive(t *testing.T) {
	_, client := newFakeMaps(t, map[string]string{textSearchPath: placesBody(12)})
	svc := NewPlacesService(client, time.Second)

	got, err := svc.SearchPlaces(context.Background(), "cafes in Kochi", "")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != MaxPlaces {
		t.Fatalf("expected %d places, got %d", MaxPlaces, len(got))
	}
	if got[0].Name != "Cafe 0" || got[0].Address != "Street 0, Kochi" {
		t.Errorf("unexpected first place: %+v", got[0])
	}
	if got[1].Rating == nil || *got[1].Rating < 4.0 {
		t.Errorf("expected rating on second place, got %v", got[1].Rating)
	}
	if got[2].Location == nil || got[2].Location.Lat != 9.92 {
		t.Errorf("unexpected location: %+v", got[2].Location)
	}
}

func TestSearchPlacesZeroResults(t *testing.T) {
	_, client := newFakeMaps(t, map[string]string{textSearchPath: `{"status": "ZERO_RESULTS", "results": []}`})
	svc := NewPlacesService(client, time.Second)

	got, err := svc.SearchPlaces(context.Background(), "unicorn stables", "")
	if err != nil {
		t.Fatalf("expected no error on zero results, got %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestSearchPlacesOptionalFields(t *testing.T) {
	_, client := newFakeMaps(t, map[string]string{textSearchPath: `{"status": "OK", "results": [{"name": "Unrated"}]}`})
	svc := NewPlacesService(client, time.Second)

	got, err := svc.SearchPlaces(context.Background(), "q", "")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if got[0].Rating != nil || got[0].Location != nil {
		t.Errorf("expected nil rating and location, got %+v", got[0])
	}
}

func TestSearchPlacesLocationHint(t *testing.T) {
	f, client := newFakeMaps(t, map[string]string{textSearchPath: placesBody(1)})
	svc := NewPlacesService(client, time.Second)

	if _, err := svc.SearchPlaces(context.Background(), "hospitals", "9.93, 76.26"); err != nil {
		t.Fatalf("search: %v", err)
	}
	if f.lastQuery.Get("radius") != "50000" {
		t.Errorf("expected radius 50000, got %q", f.lastQuery.Get("radius"))
	}
	if f.lastQuery.Get("location") != "9.93,76.26" {
		t.Errorf("expected location 9.93,76.26, got %q", f.lastQuery.Get("location"))
	}
	if f.lastQuery.Get("query") != "hospitals" {
		t.Errorf("query should be unchanged, got %q", f.lastQuery.Get("query"))
	}

	if _, err := svc.SearchPlaces(context.Background(), "hospitals", "Kochi"); err != nil {
		t.Fatalf("search: %v", err)
	}
	if f.lastQuery.Get("query") != "hospitals near Kochi" {
		t.Errorf("expected named location folded into query, got %q", f.lastQuery.Get("query"))
	}
	if f.lastQuery.Get("radius") != "" {
		t.Errorf("radius must not be sent without coordinates")
	}
}

func TestSearchPlacesStatusError(t *testing.T) {
	_, client := newFakeMaps(t, map[string]string{textSearchPath: `{"status": "REQUEST_DENIED", "error_message": "bad key"}`})
	svc := NewPlacesService(client, time.Second)

	_, err := svc.SearchPlaces(context.Background(), "q", "")
	var se *StatusError
	if !errors.As(err, &se) || se.Status != "REQUEST_DENIED" {
		t.Fatalf("expected REQUEST_DENIED status error, got %v", err)
	}
}

const directionsOK = `{
	"status": "OK",
	"routes": [
		{
			"overview_polyline": {"points": "abc~def"},
			"legs": [
				{
					"distance": {"text": "205 km", "value": 205000},
					"duration": {"text": "4 hours 30 mins", "value": 16200},
					"start_address": "Kochi, Kerala, India",
					"end_address": "Thiruvananthapuram, Kerala, India",
					"steps": [
						{
							"html_instructions": "Head <b>south</b> on <b>MG Road</b>",
							"distance": {"text": "1.2 km", "value": 1200},
							"duration": {"text": "4 mins", "value": 240}
						},
						{
							"html_instructions": "Turn <b>left</b>",
							"distance": {"text": "200 km", "value": 200000},
							"duration": {"text": "4 hours 26 mins", "value": 15960}
						}
					]
				},
				{
					"distance": {"text": "1 km", "value": 1000},
					"duration": {"text": "1 min", "value": 60},
					"start_address": "ignored",
					"end_address": "ignored",
					"steps": []
				}
			]
		},
		{"legs": [{"start_address": "alternate", "steps": []}]}
	]
}`

func TestGetDirectionsPrimaryLeg(t *testing.T) {
	f, client := newFakeMaps(t, map[string]string{directionsPath: directionsOK})
	svc := NewRouteService(client, time.Second)

	got, err := svc.GetDirections(context.Background(), "Kochi", "Trivandrum")
	if err != nil {
		t.Fatalf("directions: %v", err)
	}
	if f.lastQuery.Get("mode") != "driving" {
		t.Errorf("expected driving mode, got %q", f.lastQuery.Get("mode"))
	}
	if got.Distance != "205 km" || got.Duration != "4 hours 30 mins" {
		t.Errorf("unexpected totals: %s / %s", got.Distance, got.Duration)
	}
	if got.StartAddress != "Kochi, Kerala, India" || got.EndAddress != "Thiruvananthapuram, Kerala, India" {
		t.Errorf("unexpected addresses: %+v", got)
	}
	if len(got.Steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(got.Steps))
	}
	if got.Steps[0].Instruction != "Head south on MG Road" {
		t.Errorf("bold tags not stripped: %q", got.Steps[0].Instruction)
	}
	if got.Steps[0].Distance != "1.2 km" || got.Steps[0].Duration != "4 mins" {
		t.Errorf("unexpected step: %+v", got.Steps[0])
	}
	if got.Polyline != "abc~def" {
		t.Errorf("expected polyline, got %q", got.Polyline)
	}
}

func TestGetDirectionsNonOKStatus(t *testing.T) {
	for _, status := range []string{"NOT_FOUND", "ZERO_RESULTS", "OVER_QUERY_LIMIT"} {
		t.Run(status, func(t *testing.T) {
			body := fmt.Sprintf(`{"status": %q, "routes": []}`, status)
			_, client := newFakeMaps(t, map[string]string{directionsPath: body})
			svc := NewRouteService(client, time.Second)

			got, err := svc.GetDirections(context.Background(), "Nowhere", "Elsewhere")
			if got != nil {
				t.Errorf("expected nil route, got %+v", got)
			}
			var se *StatusError
			if !errors.As(err, &se) {
				t.Fatalf("expected *StatusError, got %v", err)
			}
			if se.Status != status || se.Error() != status {
				t.Errorf("expected status %s, got %s", status, se.Status)
			}
		})
	}
}

func TestGeocodeFirstResult(t *testing.T) {
	_, client := newFakeMaps(t, map[string]string{geocodePath: `{
		"status": "OK",
		"results": [
			{"formatted_address": "Kochi, Kerala, India", "geometry": {"location": {"lat": 9.9312, "lng": 76.2673}}},
			{"formatted_address": "Kochi, Japan", "geometry": {"location": {"lat": 33.5, "lng": 133.5}}}
		]
	}`})
	svc := NewGeocodeService(client, time.Second)

	got, err := svc.Geocode(context.Background(), "Kochi")
	if err != nil {
		t.Fatalf("geocode: %v", err)
	}
	if got.Address != "Kochi, Kerala, India" || got.Lat != 9.9312 || got.Lng != 76.2673 {
		t.Errorf("unexpected location: %+v", got)
	}
}

func TestGeocodeNoResults(t *testing.T) {
	_, client := newFakeMaps(t, map[string]string{geocodePath: `{"status": "ZERO_RESULTS", "results": []}`})
	svc := NewGeocodeService(client, time.Second)

	got, err := svc.Geocode(context.Background(), "Atlantis")
	if !errors.Is(err, ErrNoResults) {
		t.Fatalf("expected ErrNoResults, got %v", err)
	}
	if got != nil || err.Error() != "No results" {
		t.Errorf("unexpected result %+v / %q", got, err.Error())
	}
}

func TestHumanDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{10 * time.Second, "1 min"},
		{4 * time.Minute, "4 mins"},
		{time.Hour, "1 hour"},
		{65 * time.Minute, "1 hour 5 mins"},
		{2*time.Hour + time.Minute, "2 hours 1 min"},
		{24 * time.Hour, "1 day"},
		{27*time.Hour + 10*time.Minute, "1 day 3 hours"},
	}
	for _, tc := range tests {
		if got := humanDuration(tc.in); got != tc.want {
			t.Errorf("humanDuration(%s) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestStatusFromError(t *testing.T) {
	if s, ok := statusFromError(errors.New("maps: INVALID_REQUEST - missing param")); !ok || s != "INVALID_REQUEST" {
		t.Errorf("expected INVALID_REQUEST, got %q %v", s, ok)
	}
	if _, ok := statusFromError(errors.New("maps: origin missing")); ok {
		t.Error("validation errors are not statuses")
	}
	if _, ok := statusFromError(errors.New("dial tcp: connection refused")); ok {
		t.Error("transport errors are not statuses")
	}
}
