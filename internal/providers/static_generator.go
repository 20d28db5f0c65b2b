package providers

import (
	"context"
	"fmt"
	"strings"
)

// StaticGenerator returns a fixed single-day itinerary without any
// network call. It keeps the pipeline fully exercisable in tests and
// local development where no model credentials exist.
type StaticGenerator struct{}

func NewStaticGenerator() *StaticGenerator {
	return &StaticGenerator{}
}

func (g *StaticGenerator) Generate(_ context.Context, req GenerationRequest) ([]SkeletonDay, error) {
	return []SkeletonDay{
		{
			Date: req.StartDate,
			Activities: []SkeletonActivity{
				{
					Time:          "09:00",
					Title:         fmt.Sprintf("Welcome to %s", req.Destination),
					Description:   fmt.Sprintf("Start your %s budget adventure in %s", req.Budget, req.Destination),
					Category:      "sightseeing",
					SuggestedArea: "City Center",
				},
				{
					Time:          "14:00",
					Title:         "Local Cuisine Experience",
					Description:   fmt.Sprintf("Try authentic local food that matches your interests: %s", strings.Join(req.Interests, ", ")),
					Category:      "food",
					SuggestedArea: "Restaurant District",
				},
				{
					Time:          "19:00",
					Title:         "Evening Exploration",
					Description:   fmt.Sprintf("Explore the nightlife and culture of %s", req.Destination),
					Category:      "nightlife",
					SuggestedArea: "Entertainment District",
				},
			},
		},
	}, nil
}
