package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gotrip/internal/models/db_models"
	req "gotrip/internal/models/request_models"
	resp "gotrip/internal/models/response_models"
	"gotrip/internal/repositories"
	"gotrip/pkg/utils"
)

type TripServiceInterface interface {
	SaveTrip(ctx context.Context, userId string, request req.SaveTripRequest) (*resp.TripResponse, error)
	ListTrips(ctx context.Context, userId string) ([]resp.TripResponse, error)
	DeleteTrip(ctx context.Context, userId string, tripId string) error
	// RegenerateTrip reloads a saved record into a fresh request and re-runs
	// generation. The result always has the save affordance suppressed.
	RegenerateTrip(ctx context.Context, userId string, tripId string) (*resp.TripDetailResponse, error)
}

type TripService struct {
	tripRepo repositories.TripRepository
	planner  PlannerServiceInterface
}

func NewTripService(tripRepo repositories.TripRepository, planner PlannerServiceInterface) TripServiceInterface {
	return &TripService{tripRepo: tripRepo, planner: planner}
}

func parseUserId(userId string) (uuid.UUID, error) {
	if userId == "" {
		return uuid.Nil, utils.ErrUnauthorized
	}
	owner, err := uuid.Parse(userId)
	if err != nil || owner == uuid.Nil {
		return uuid.Nil, utils.ErrUnauthorized
	}
	return owner, nil
}

func (s *TripService) SaveTrip(ctx context.Context, userId string, request req.SaveTripRequest) (*resp.TripResponse, error) {
	owner, err := parseUserId(userId)
	if err != nil {
		return nil, err
	}

	trip := &db_models.Trip{
		UserID:      owner,
		Destination: request.Destination,
		Days:        request.Days,
		Budget:      request.Budget,
		TravelWith:  request.TravelWith,
		TripPlan:    request.TripPlan,
		PhotoURLs:   request.PhotoURLs,
	}

	if err := s.tripRepo.CreateTrip(ctx, trip); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return toTripResponse(trip), nil
}

func (s *TripService) ListTrips(ctx context.Context, userId string) ([]resp.TripResponse, error) {
	owner, err := parseUserId(userId)
	if err != nil {
		return nil, err
	}

	trips, err := s.tripRepo.ListTripsByUserId(ctx, owner)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]resp.TripResponse, 0, len(trips))
	for i := range trips {
		out = append(out, *toTripResponse(&trips[i]))
	}
	return out, nil
}

func (s *TripService) DeleteTrip(ctx context.Context, userId string, tripId string) error {
	owner, err := parseUserId(userId)
	if err != nil {
		return err
	}

	if err := s.tripRepo.DeleteTripByIdForUser(ctx, tripId, owner); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrTripNotFound
		}
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *TripService) RegenerateTrip(ctx context.Context, userId string, tripId string) (*resp.TripDetailResponse, error) {
	owner, err := parseUserId(userId)
	if err != nil {
		return nil, err
	}

	trip, err := s.tripRepo.GetTripByIdForUser(ctx, tripId, owner)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	request := req.GenerateTripRequest{
		Destination: trip.Destination,
		Days:        trip.Days,
		Budget:      trip.Budget,
		TravelWith:  trip.TravelWith,
	}
	return s.planner.GenerateTripDetail(ctx, request, true)
}

func toTripResponse(trip *db_models.Trip) *resp.TripResponse {
	return &resp.TripResponse{
		ID:          trip.ID.String(),
		Destination: trip.Destination,
		Days:        trip.Days,
		Budget:      trip.Budget,
		TravelWith:  trip.TravelWith,
		TripPlan:    trip.TripPlan,
		PhotoURLs:   trip.PhotoURLs,
		CreatedAt:   trip.CreatedAt,
	}
}
