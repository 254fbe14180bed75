package maps

// LatLng is a coordinate pair as returned to API callers.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Place represents a simplified text-search result.
type Place struct {
	Name     string   `json:"name"`
	Address  string   `json:"address"`
	Rating   *float32 `json:"rating"`
	Location *LatLng  `json:"location"`
}

// RouteStep is one maneuver with plain-text instructions.
type RouteStep struct {
	Instruction string `json:"instruction"`
	Distance    string `json:"distance"`
	Duration    string `json:"duration"`
}

// Route is the primary leg of the primary route for a directions query.
type Route struct {
	Distance     string      `json:"distance"`
	Duration     string      `json:"duration"`
	StartAddress string      `json:"start_address"`
	EndAddress   string      `json:"end_address"`
	Steps        []RouteStep `json:"steps"`
	Polyline     string      `json:"polyline,omitempty"`
}

// Location is a single geocoding match.
type Location struct {
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}
