package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

const (
	notFoundMarker    = "Not found"
	originPrefix      = "Origin:"
	destinationPrefix = "Destination:"
)

// ErrLocationsNotFound is the model's explicit "Not found" answer.
var ErrLocationsNotFound = errors.New("locations not found")

// Extractor pulls origin and destination out of a directions query.
type Extractor struct {
	llm LLMProvider
}

func NewExtractor(llm LLMProvider) *Extractor {
	return &Extractor{llm: llm}
}

// ExtractLocations makes a single best-effort model call. Either field of the
// result may be empty when the model omitted that line.
func (e *Extractor) ExtractLocations(ctx context.Context, query string) (Locations, error) {
	reply, err := e.llm.Send(ctx, buildExtractionPrompt(query))
	if err != nil {
		return Locations{}, fmt.Errorf("extract locations: %w", err)
	}
	return ParseLocations(reply)
}

// ParseLocations reads "Origin:" and "Destination:" lines. A reply that
// contains "Not found" anywhere yields ErrLocationsNotFound.
func ParseLocations(reply string) (Locations, error) {
	text := strings.TrimSpace(reply)
	if strings.Contains(text, notFoundMarker) {
		return Locations{}, ErrLocationsNotFound
	}

	var locs Locations
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, originPrefix):
			locs.Origin = strings.TrimSpace(strings.TrimPrefix(line, originPrefix))
		case strings.HasPrefix(line, destinationPrefix):
			locs.Destination = strings.TrimSpace(strings.TrimPrefix(line, destinationPrefix))
		}
	}
	return locs, nil
}
