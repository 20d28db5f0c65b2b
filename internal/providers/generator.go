// Package providers holds the clients for the three external services the
// trip pipeline depends on: the LLM itinerary generator, the place search
// API and the image search API. Each has a live implementation and a
// static one returning fixed responses, selected by configuration.
package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// GenerationRequest is the validated trip request handed to a generator.
type GenerationRequest struct {
	Destination string
	Budget      string
	StartDate   string
	EndDate     string
	Interests   []string
	Currency    string
}

type SkeletonActivity struct {
	Time          string `json:"time"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Category      string `json:"category"`
	SuggestedArea string `json:"suggestedArea"`
}

type SkeletonDay struct {
	Date       string             `json:"date"`
	Activities []SkeletonActivity `json:"activities"`
}

// ItineraryGenerator produces a day-by-day skeleton itinerary. It is the
// one blocking call the whole pipeline waits on; enrichment starts only
// after it returns.
type ItineraryGenerator interface {
	Generate(ctx context.Context, req GenerationRequest) ([]SkeletonDay, error)
}

func buildItineraryPrompt(req GenerationRequest) string {
	return fmt.Sprintf(`
You are a travel planner. Generate a day-by-day itinerary in strict JSON for:

destination: %s

dates: %s to %s

budget: %s

interests: %s

currency: %s

JSON schema:
{
  "itinerary": [
    {
      "date": "YYYY-MM-DD",
      "activities": [
        {
          "time": "HH:MM",
          "title": "string",
          "description": "string",
          "category": "sightseeing|food|museum|outdoors|nightlife|shopping|cafe|other",
          "suggestedArea": "string neighborhood/area"
        }
      ]
    }
  ],
  "notes": "string with brief tips"
}
Respond ONLY with JSON, no extra text.
`, req.Destination, req.StartDate, req.EndDate, req.Budget, strings.Join(req.Interests, ", "), req.Currency)
}

// parseItinerary decodes a model response into the skeleton. Markdown
// fences are stripped first since some models wrap JSON in them.
func parseItinerary(text string) ([]SkeletonDay, error) {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	text = strings.TrimSpace(text)

	var payload struct {
		Itinerary []SkeletonDay `json:"itinerary"`
		Notes     string        `json:"notes"`
	}
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return nil, fmt.Errorf("model response is not valid JSON: %w", err)
	}
	if payload.Itinerary == nil {
		return nil, fmt.Errorf("model response missing itinerary array")
	}
	return payload.Itinerary, nil
}
