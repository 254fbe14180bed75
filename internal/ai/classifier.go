package ai

import (
	"context"
	"fmt"
	"strings"
)

// labelOrder is checked top to bottom; the first substring hit wins.
var labelOrder = []struct {
	needle string
	intent Intent
}{
	{"place", IntentPlacesSearch},
	{"direction", IntentDirections},
	{"geocode", IntentGeocode},
}

// Classifier maps free-text queries onto an Intent with one model call.
type Classifier struct {
	llm LLMProvider
}

func NewClassifier(llm LLMProvider) *Classifier {
	return &Classifier{llm: llm}
}

// Classify asks the model for a label and parses its reply with ParseIntent.
// Backend errors are wrapped and returned; callers decide how to degrade.
func (c *Classifier) Classify(ctx context.Context, query string) (Classification, error) {
	reply, err := c.llm.Send(ctx, buildClassificationPrompt(query))
	if err != nil {
		return Classification{}, fmt.Errorf("classify intent: %w", err)
	}
	return ParseIntent(reply), nil
}

// ParseIntent normalizes a model reply and maps it to an Intent by
// priority-ordered substring match. Replies with no label default to
// IntentGeneral with Matched=false.
func ParseIntent(reply string) Classification {
	raw := strings.ToLower(strings.TrimSpace(reply))
	for _, l := range labelOrder {
		if strings.Contains(raw, l.needle) {
			return Classification{Intent: l.intent, Raw: raw, Matched: true}
		}
	}
	// "general" is a real label; anything else is a silent fallback.
	return Classification{Intent: IntentGeneral, Raw: raw, Matched: strings.Contains(raw, string(IntentGeneral))}
}
