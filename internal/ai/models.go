package ai

// Intent is the dispatch category inferred for a user query.
type Intent string

const (
	IntentPlacesSearch Intent = "places_search"
	IntentDirections   Intent = "directions"
	IntentGeocode      Intent = "geocode"
	IntentGeneral      Intent = "general"
)

// Classification captures the outcome of one classification round trip.
type Classification struct {
	Intent Intent

	// Raw is the trimmed, lowercased model reply.
	Raw string

	// Matched is false when no label was found in Raw and Intent fell back
	// to IntentGeneral.
	Matched bool
}

// Locations holds the directions slots extracted from a query.
type Locations struct {
	Origin      string
	Destination string
}
