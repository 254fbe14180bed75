package ai

import "fmt"

// buildClassificationPrompt embeds the query verbatim into the labelling instructions.
func buildClassificationPrompt(query string) string {
	return fmt.Sprintf(`You are a Google Maps AI Assistant.
The user asked: "%s"

Classify this query as one of the following:
1. 'places_search' - if the user wants to find nearby locations (like restaurants, cafes, hospitals)
2. 'directions' - if the user wants directions or a route between two places
3. 'geocode' - if the user wants to know coordinates or address info
4. 'general' - if it's a general question not needing a Maps API call

Return ONLY the classification word.`, query)
}

func buildExtractionPrompt(query string) string {
	return fmt.Sprintf(`Extract the origin and destination from this directions query: "%s"

Return in this exact format:
Origin: [location name]
Destination: [location name]

If you can't find both locations, return "%s"`, query, notFoundMarker)
}
