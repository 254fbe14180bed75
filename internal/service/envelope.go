package service

import (
	"compass/internal/ai"
	"compass/internal/maps"
)

// Query is one assistant request. Location, Origin and Destination are
// optional hints.
type Query struct {
	Text        string
	Location    string
	Origin      string
	Destination string
}

// Suggestion is a UI hint attached to a reply.
type Suggestion struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Envelope is the uniform response for every dispatched query. At most one
// of Places, Directions and Locations is set.
type Envelope struct {
	Intent      ai.Intent       `json:"intent"`
	Reply       string          `json:"reply"`
	Places      []maps.Place    `json:"places,omitempty"`
	Directions  *maps.Route     `json:"directions,omitempty"`
	Locations   []maps.Location `json:"locations,omitempty"`
	Suggestions []Suggestion    `json:"suggestions,omitempty"`
}

const (
	replyIntro = "Hello! I'm your Google Maps AI Assistant. I can help you find places, get directions, " +
		"and answer questions about locations. How can I help you today?"
	replyNoPlaces = "Sorry, I couldn't find any places matching your search. " +
		"Try a different location or search term."
	replyNeedEndpoints = "I need both origin and destination to provide directions. " +
		"Please specify where you want to go from and to. For example: 'How to get from Kochi to Trivandrum?'"
)

var (
	suggestPlaces     = Suggestion{Type: string(ai.IntentPlacesSearch), Message: "Click on any place to see it on the map!"}
	suggestDirections = Suggestion{Type: string(ai.IntentDirections), Message: "Route displayed on map with turn-by-turn directions!"}
	suggestGeocode    = Suggestion{Type: string(ai.IntentGeocode), Message: "Location marked on the map!"}
	suggestGeneral    = Suggestion{Type: string(ai.IntentGeneral), Message: "Ask me about places, directions, or locations for map features!"}
)
