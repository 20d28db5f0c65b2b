package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"tripwise/internal/models/db_models"
	"tripwise/internal/models/request_models"
	"tripwise/internal/models/response_models"
	"tripwise/internal/providers"
	"tripwise/internal/repositories"
	"tripwise/pkg/utils"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"golang.org/x/sync/errgroup"
)

// enrichWorkers bounds the per-trip fan-out of place and image lookups.
const enrichWorkers = 4

// maxTripDays caps how long an itinerary the generator is asked for.
const maxTripDays = 30

var validBudgets = map[string]bool{"low": true, "medium": true, "high": true}

type TripServiceInterface interface {
	CreateTrip(ctx context.Context, userID string, req request_models.CreateTripRequest) (*response_models.TripResponse, error)
	ListTrips(ctx context.Context, userID string) ([]response_models.TripSummaryResponse, error)
	GetTrip(ctx context.Context, userID string, tripID string) (*response_models.TripResponse, error)
	UpdateTrip(ctx context.Context, userID string, tripID string, req request_models.UpdateTripRequest) (*response_models.TripResponse, error)
	DeleteTrip(ctx context.Context, userID string, tripID string) error
	GetSharedTrip(ctx context.Context, shareID string) (*response_models.TripResponse, error)
}

type TripService struct {
	tripRepo  repositories.TripRepository
	generator providers.ItineraryGenerator
	places    providers.PlaceResolver
	images    providers.ImageResolver
}

func NewTripService(
	tripRepo repositories.TripRepository,
	generator providers.ItineraryGenerator,
	places providers.PlaceResolver,
	images providers.ImageResolver,
) TripServiceInterface {
	return &TripService{
		tripRepo:  tripRepo,
		generator: generator,
		places:    places,
		images:    images,
	}
}

// CreateTrip runs the full pipeline: generate the skeleton itinerary,
// enrich every activity with place and image data, attach a share id and
// persist the result. Nothing is stored unless the whole pass completes.
func (s *TripService) CreateTrip(ctx context.Context, userID string, req request_models.CreateTripRequest) (*response_models.TripResponse, error) {
	ownerID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: bad user id", utils.ErrInvalidInput)
	}

	genReq, err := validateCreateRequest(req)
	if err != nil {
		return nil, err
	}

	skeleton, err := s.generator.Generate(ctx, genReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrGenerationFailed, err)
	}

	trip := buildTripEntity(ownerID, genReq, skeleton)

	s.enrichItinerary(ctx, genReq.Destination, trip.Days)

	shareID, err := utils.GenerateShareID()
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	trip.ShareID = shareID

	if err := s.tripRepo.Create(ctx, trip); err != nil {
		log.Printf("Failed to persist trip: %v", err)
		return nil, utils.ErrDatabaseError
	}

	return response_models.BuildTripResponse(trip), nil
}

// enrichItinerary fans the per-activity lookups out over a bounded
// worker group. Targets are distinct slice elements, so workers never
// share mutable state, and the original day/activity order is untouched.
// A failed lookup degrades that one activity to unenriched; it never
// aborts the rest of the pass.
func (s *TripService) enrichItinerary(ctx context.Context, destination string, days []db_models.TripDay) {
	g := new(errgroup.Group)
	g.SetLimit(enrichWorkers)

	for di := range days {
		for ai := range days[di].Activities {
			act := &days[di].Activities[ai]
			g.Go(func() error {
				s.enrichActivity(ctx, destination, act)
				return nil
			})
		}
	}

	// Workers always return nil; Wait is just the join point.
	_ = g.Wait()
}

func (s *TripService) enrichActivity(ctx context.Context, destination string, act *db_models.TripActivity) {
	query := strings.TrimSpace(act.Title + " " + destination)

	place, err := s.places.Resolve(ctx, query, nil)
	switch {
	case err != nil:
		log.Printf("Place lookup failed for %q: %v", query, err)
	case place != nil:
		act.PlaceID = &place.ID
		act.Address = &place.FormattedAddress
		act.Lat = &place.Lat
		act.Lng = &place.Lng
		act.Rating = &place.Rating
		act.PriceLevel = &place.PriceLevel
	}

	imageQuery := act.Title
	if imageQuery == "" {
		imageQuery = destination
	}
	imageURL, err := s.images.ResolveImage(ctx, imageQuery)
	if err != nil {
		log.Printf("Image lookup failed for %q: %v", imageQuery, err)
		return
	}
	if imageURL != "" {
		act.ImageURL = &imageURL
	}
}

func (s *TripService) ListTrips(ctx context.Context, userID string) ([]response_models.TripSummaryResponse, error) {
	ownerID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: bad user id", utils.ErrInvalidInput)
	}

	trips, err := s.tripRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.TripSummaryResponse, 0, len(trips))
	for i := range trips {
		out = append(out, response_models.BuildTripSummaryResponse(&trips[i]))
	}
	return out, nil
}

func (s *TripService) GetTrip(ctx context.Context, userID string, tripID string) (*response_models.TripResponse, error) {
	ownerID, id, err := parseTripIDs(userID, tripID)
	if err != nil {
		return nil, err
	}

	trip, err := s.tripRepo.FindByID(ctx, id, ownerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	return response_models.BuildTripResponse(trip), nil
}

func (s *TripService) UpdateTrip(ctx context.Context, userID string, tripID string, req request_models.UpdateTripRequest) (*response_models.TripResponse, error) {
	ownerID, id, err := parseTripIDs(userID, tripID)
	if err != nil {
		return nil, err
	}

	existing, err := s.tripRepo.FindByID(ctx, id, ownerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing == nil {
		return nil, utils.ErrTripNotFound
	}

	fields, err := buildUpdateFields(existing, req)
	if err != nil {
		return nil, err
	}

	if len(fields) > 0 {
		if _, err := s.tripRepo.UpdateFields(ctx, id, ownerID, fields); err != nil {
			return nil, utils.ErrDatabaseError
		}
	}

	updated, err := s.tripRepo.FindByID(ctx, id, ownerID)
	if err != nil || updated == nil {
		return nil, utils.ErrDatabaseError
	}
	return response_models.BuildTripResponse(updated), nil
}

func (s *TripService) DeleteTrip(ctx context.Context, userID string, tripID string) error {
	ownerID, id, err := parseTripIDs(userID, tripID)
	if err != nil {
		return err
	}

	rows, err := s.tripRepo.Delete(ctx, id, ownerID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if rows == 0 {
		return utils.ErrTripNotFound
	}
	return nil
}

func (s *TripService) GetSharedTrip(ctx context.Context, shareID string) (*response_models.TripResponse, error) {
	if shareID == "" {
		return nil, utils.ErrTripNotFound
	}

	trip, err := s.tripRepo.FindByShareID(ctx, shareID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	return response_models.BuildTripResponse(trip), nil
}

func parseTripIDs(userID, tripID string) (uuid.UUID, uuid.UUID, error) {
	ownerID, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("%w: bad user id", utils.ErrInvalidInput)
	}
	id, err := uuid.Parse(tripID)
	if err != nil {
		// A malformed id can never match a record; treat it as missing
		// rather than malformed so share-style probing gets one answer.
		return uuid.Nil, uuid.Nil, utils.ErrTripNotFound
	}
	return ownerID, id, nil
}

func validateCreateRequest(req request_models.CreateTripRequest) (providers.GenerationRequest, error) {
	out := providers.GenerationRequest{
		Destination: strings.TrimSpace(req.Destination),
		Budget:      req.Budget,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Interests:   req.Interests,
		Currency:    req.Currency,
	}

	if len(out.Destination) < 2 {
		return out, fmt.Errorf("%w: destination is required", utils.ErrInvalidInput)
	}
	if out.Budget == "" {
		out.Budget = "medium"
	}
	if !validBudgets[out.Budget] {
		return out, fmt.Errorf("%w: budget must be low, medium or high", utils.ErrInvalidInput)
	}
	start, err := utils.ParseDate(out.StartDate)
	if err != nil {
		return out, fmt.Errorf("%w: startDate must be YYYY-MM-DD", utils.ErrInvalidInput)
	}
	end, err := utils.ParseDate(out.EndDate)
	if err != nil {
		return out, fmt.Errorf("%w: endDate must be YYYY-MM-DD", utils.ErrInvalidInput)
	}
	if end.Before(start) {
		return out, fmt.Errorf("%w: endDate must not precede startDate", utils.ErrInvalidInput)
	}
	if len(utils.DateRange(start, end)) > maxTripDays {
		return out, fmt.Errorf("%w: trips are limited to %d days", utils.ErrInvalidInput, maxTripDays)
	}
	if out.Interests == nil {
		out.Interests = []string{}
	}
	if out.Currency == "" {
		out.Currency = "INR"
	}

	return out, nil
}

func buildTripEntity(ownerID uuid.UUID, req providers.GenerationRequest, skeleton []providers.SkeletonDay) *db_models.Trip {
	trip := &db_models.Trip{
		UserID:      ownerID,
		Destination: req.Destination,
		Budget:      req.Budget,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Interests:   req.Interests,
		Currency:    req.Currency,
		Days:        make([]db_models.TripDay, 0, len(skeleton)),
	}

	for di, day := range skeleton {
		td := db_models.TripDay{
			Date:       day.Date,
			DayNumber:  di + 1,
			Activities: make([]db_models.TripActivity, 0, len(day.Activities)),
		}
		for ai, act := range day.Activities {
			td.Activities = append(td.Activities, db_models.TripActivity{
				Position:      ai,
				Time:          act.Time,
				Title:         act.Title,
				Description:   act.Description,
				Category:      act.Category,
				SuggestedArea: act.SuggestedArea,
			})
		}
		trip.Days = append(trip.Days, td)
	}

	return trip
}

func buildUpdateFields(existing *db_models.Trip, req request_models.UpdateTripRequest) (map[string]interface{}, error) {
	fields := map[string]interface{}{}

	startDate := existing.StartDate
	endDate := existing.EndDate

	if req.Destination != nil {
		d := strings.TrimSpace(*req.Destination)
		if len(d) < 2 {
			return nil, fmt.Errorf("%w: destination is required", utils.ErrInvalidInput)
		}
		fields["destination"] = d
	}
	if req.Budget != nil {
		if !validBudgets[*req.Budget] {
			return nil, fmt.Errorf("%w: budget must be low, medium or high", utils.ErrInvalidInput)
		}
		fields["budget"] = *req.Budget
	}
	if req.StartDate != nil {
		if _, err := utils.ParseDate(*req.StartDate); err != nil {
			return nil, fmt.Errorf("%w: startDate must be YYYY-MM-DD", utils.ErrInvalidInput)
		}
		startDate = *req.StartDate
		fields["start_date"] = startDate
	}
	if req.EndDate != nil {
		if _, err := utils.ParseDate(*req.EndDate); err != nil {
			return nil, fmt.Errorf("%w: endDate must be YYYY-MM-DD", utils.ErrInvalidInput)
		}
		endDate = *req.EndDate
		fields["end_date"] = endDate
	}

	start, _ := utils.ParseDate(startDate)
	end, _ := utils.ParseDate(endDate)
	if end.Before(start) {
		return nil, fmt.Errorf("%w: endDate must not precede startDate", utils.ErrInvalidInput)
	}

	if req.Interests != nil {
		fields["interests"] = pq.StringArray(*req.Interests)
	}
	if req.Currency != nil {
		if *req.Currency == "" {
			return nil, fmt.Errorf("%w: currency must not be empty", utils.ErrInvalidInput)
		}
		fields["currency"] = *req.Currency
	}

	return fields, nil
}
