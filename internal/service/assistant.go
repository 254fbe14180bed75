package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"compass/internal/ai"
	"compass/internal/maps"
)

// ErrMissingQuery rejects requests without query text.
var ErrMissingQuery = errors.New("Missing 'query' field")

type IntentClassifier interface {
	Classify(ctx context.Context, query string) (ai.Classification, error)
}

type LocationExtractor interface {
	ExtractLocations(ctx context.Context, query string) (ai.Locations, error)
}

type PlacesSearcher interface {
	SearchPlaces(ctx context.Context, query, location string) ([]maps.Place, error)
}

type DirectionsFinder interface {
	GetDirections(ctx context.Context, origin, destination string) (*maps.Route, error)
}

type Geocoder interface {
	Geocode(ctx context.Context, address string) (*maps.Location, error)
}

// IntentRecorder receives every classification outcome.
type IntentRecorder interface {
	Record(ctx context.Context, c ai.Classification, err error) error
}

type AssistantDeps struct {
	LLM        ai.LLMProvider
	Classifier IntentClassifier
	Extractor  LocationExtractor
	Places     PlacesSearcher
	Routes     DirectionsFinder
	Geocoder   Geocoder
	Stats      IntentRecorder // optional
	Logger     *zap.Logger    // optional
}

// Assistant orchestrates intent classification and the maps lookups.
type Assistant struct {
	llm        ai.LLMProvider
	classifier IntentClassifier
	extractor  LocationExtractor
	places     PlacesSearcher
	routes     DirectionsFinder
	geocoder   Geocoder
	stats      IntentRecorder
	log        *zap.Logger
}

func NewAssistant(deps AssistantDeps) *Assistant {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Assistant{
		llm:        deps.LLM,
		classifier: deps.Classifier,
		extractor:  deps.Extractor,
		places:     deps.Places,
		routes:     deps.Routes,
		geocoder:   deps.Geocoder,
		stats:      deps.Stats,
		log:        log,
	}
}

// Handle classifies q and dispatches it. Backend and maps failures become
// user-facing replies; only ErrMissingQuery and unanticipated failures are
// returned as errors.
func (a *Assistant) Handle(ctx context.Context, q Query) (*Envelope, error) {
	if strings.TrimSpace(q.Text) == "" {
		return nil, ErrMissingQuery
	}

	c, err := a.classifier.Classify(ctx, q.Text)
	a.record(ctx, c, err)
	if err != nil {
		a.log.Warn("intent classification failed, using fallback reply", zap.Error(err))
		return &Envelope{Intent: ai.IntentGeneral, Reply: replyIntro}, nil
	}
	if !c.Matched {
		a.log.Warn("classifier reply matched no label, defaulting to general", zap.String("raw", c.Raw))
	}
	a.log.Debug("query classified", zap.String("intent", string(c.Intent)))

	switch c.Intent {
	case ai.IntentPlacesSearch:
		return a.searchPlaces(ctx, q), nil
	case ai.IntentDirections:
		return a.directions(ctx, q), nil
	case ai.IntentGeocode:
		return a.geocode(ctx, q), nil
	case ai.IntentGeneral:
		return a.chat(ctx, q), nil
	default:
		return nil, fmt.Errorf("unhandled intent %q", c.Intent)
	}
}

func (a *Assistant) record(ctx context.Context, c ai.Classification, err error) {
	if a.stats == nil {
		return
	}
	if recErr := a.stats.Record(ctx, c, err); recErr != nil {
		a.log.Warn("record intent stats", zap.Error(recErr))
	}
}

func (a *Assistant) searchPlaces(ctx context.Context, q Query) *Envelope {
	env := &Envelope{Intent: ai.IntentPlacesSearch}

	places, err := a.places.SearchPlaces(ctx, q.Text, q.Location)
	var statusErr *maps.StatusError
	switch {
	case errors.As(err, &statusErr):
		a.log.Warn("places search rejected", zap.String("status", statusErr.Status))
		env.Reply = replyNoPlaces
	case err != nil:
		a.log.Error("places search failed", zap.Error(err))
		env.Reply = fmt.Sprintf("Error searching for places: %v", err)
	case len(places) == 0:
		env.Reply = replyNoPlaces
	default:
		env.Places = places
		env.Reply = fmt.Sprintf("Found %d places matching your search.", len(places))
		env.Suggestions = []Suggestion{suggestPlaces}
	}
	return env
}

func (a *Assistant) directions(ctx context.Context, q Query) *Envelope {
	env := &Envelope{Intent: ai.IntentDirections}

	origin, destination := strings.TrimSpace(q.Origin), strings.TrimSpace(q.Destination)
	if origin == "" || destination == "" {
		locs, err := a.extractor.ExtractLocations(ctx, q.Text)
		switch {
		case errors.Is(err, ai.ErrLocationsNotFound):
			a.log.Debug("no origin/destination in query")
		case err != nil:
			a.log.Warn("location extraction failed", zap.Error(err))
		default:
			if origin == "" {
				origin = locs.Origin
			}
			if destination == "" {
				destination = locs.Destination
			}
		}
	}
	if origin == "" || destination == "" {
		env.Reply = replyNeedEndpoints
		return env
	}

	route, err := a.routes.GetDirections(ctx, origin, destination)
	var statusErr *maps.StatusError
	switch {
	case errors.As(err, &statusErr):
		env.Reply = fmt.Sprintf("Sorry, I couldn't find directions: %s", statusErr.Status)
	case err != nil:
		a.log.Error("directions lookup failed", zap.Error(err))
		env.Reply = fmt.Sprintf("Error getting directions: %v", err)
	default:
		env.Directions = route
		env.Reply = fmt.Sprintf("Found route from %s to %s", origin, destination)
		env.Suggestions = []Suggestion{suggestDirections}
	}
	return env
}

func (a *Assistant) geocode(ctx context.Context, q Query) *Envelope {
	env := &Envelope{Intent: ai.IntentGeocode}

	loc, err := a.geocoder.Geocode(ctx, q.Text)
	var statusErr *maps.StatusError
	switch {
	case errors.Is(err, maps.ErrNoResults), errors.As(err, &statusErr):
		env.Reply = fmt.Sprintf("Sorry, I couldn't find that location: %v", err)
	case err != nil:
		a.log.Error("geocode failed", zap.Error(err))
		env.Reply = fmt.Sprintf("Error finding location: %v", err)
	default:
		env.Locations = []maps.Location{*loc}
		env.Reply = fmt.Sprintf("Found location: %s", loc.Address)
		env.Suggestions = []Suggestion{suggestGeocode}
	}
	return env
}

// chat forwards the raw query as a fresh conversational turn.
func (a *Assistant) chat(ctx context.Context, q Query) *Envelope {
	reply, err := a.llm.Send(ctx, q.Text)
	if err != nil {
		a.log.Warn("general chat failed, using intro reply", zap.Error(err))
		return &Envelope{Intent: ai.IntentGeneral, Reply: replyIntro}
	}
	return &Envelope{
		Intent:      ai.IntentGeneral,
		Reply:       reply,
		Suggestions: []Suggestion{suggestGeneral},
	}
}
