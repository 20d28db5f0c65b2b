package response_models

import (
	"tripwise/internal/models/db_models"
)

type ActivityResponse struct {
	Time          string   `json:"time"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	SuggestedArea string   `json:"suggestedArea"`
	PlaceID       *string  `json:"placeId,omitempty"`
	Address       *string  `json:"address,omitempty"`
	Lat           *float64 `json:"lat,omitempty"`
	Lng           *float64 `json:"lng,omitempty"`
	Rating        *float64 `json:"rating,omitempty"`
	PriceLevel    *int     `json:"priceLevel,omitempty"`
	ImageURL      *string  `json:"imageUrl,omitempty"`
}

type DayResponse struct {
	Date       string             `json:"date"`
	Activities []ActivityResponse `json:"activities"`
}

type TripResponse struct {
	ID          string        `json:"id"`
	Destination string        `json:"destination"`
	Budget      string        `json:"budget"`
	StartDate   string        `json:"startDate"`
	EndDate     string        `json:"endDate"`
	Interests   []string      `json:"interests"`
	Currency    string        `json:"currency"`
	ShareID     string        `json:"shareId"`
	Itinerary   []DayResponse `json:"itinerary"`
	CreatedAt   int64         `json:"createdAt"`
	UpdatedAt   int64         `json:"updatedAt"`
}

// TripSummaryResponse is the list-view shape; it omits the itinerary.
type TripSummaryResponse struct {
	ID          string   `json:"id"`
	Destination string   `json:"destination"`
	Budget      string   `json:"budget"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Interests   []string `json:"interests"`
	Currency    string   `json:"currency"`
	ShareID     string   `json:"shareId"`
	CreatedAt   int64    `json:"createdAt"`
}

func BuildTripResponse(trip *db_models.Trip) *TripResponse {
	out := &TripResponse{
		ID:          trip.ID.String(),
		Destination: trip.Destination,
		Budget:      trip.Budget,
		StartDate:   trip.StartDate,
		EndDate:     trip.EndDate,
		Interests:   append([]string{}, trip.Interests...),
		Currency:    trip.Currency,
		ShareID:     trip.ShareID,
		Itinerary:   make([]DayResponse, 0, len(trip.Days)),
		CreatedAt:   trip.CreatedAt,
		UpdatedAt:   trip.UpdatedAt,
	}

	for _, day := range trip.Days {
		dr := DayResponse{
			Date:       day.Date,
			Activities: make([]ActivityResponse, 0, len(day.Activities)),
		}
		for _, act := range day.Activities {
			dr.Activities = append(dr.Activities, ActivityResponse{
				Time:          act.Time,
				Title:         act.Title,
				Description:   act.Description,
				Category:      act.Category,
				SuggestedArea: act.SuggestedArea,
				PlaceID:       act.PlaceID,
				Address:       act.Address,
				Lat:           act.Lat,
				Lng:           act.Lng,
				Rating:        act.Rating,
				PriceLevel:    act.PriceLevel,
				ImageURL:      act.ImageURL,
			})
		}
		out.Itinerary = append(out.Itinerary, dr)
	}

	return out
}

func BuildTripSummaryResponse(trip *db_models.Trip) TripSummaryResponse {
	return TripSummaryResponse{
		ID:          trip.ID.String(),
		Destination: trip.Destination,
		Budget:      trip.Budget,
		StartDate:   trip.StartDate,
		EndDate:     trip.EndDate,
		Interests:   append([]string{}, trip.Interests...),
		Currency:    trip.Currency,
		ShareID:     trip.ShareID,
		CreatedAt:   trip.CreatedAt,
	}
}
