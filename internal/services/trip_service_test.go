package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gotrip/internal/models/db_models"
	req "gotrip/internal/models/request_models"
	resp "gotrip/internal/models/response_models"
	"gotrip/pkg/utils"
)

type fakeTripRepo struct {
	created   []*db_models.Trip
	trips     []db_models.Trip
	getResult *db_models.Trip
	deleteErr error
	err       error
}

func (f *fakeTripRepo) CreateTrip(_ context.Context, trip *db_models.Trip) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, trip)
	return nil
}

func (f *fakeTripRepo) ListTripsByUserId(_ context.Context, _ uuid.UUID) ([]db_models.Trip, error) {
	return f.trips, f.err
}

func (f *fakeTripRepo) GetTripByIdForUser(_ context.Context, _ string, _ uuid.UUID) (*db_models.Trip, error) {
	return f.getResult, f.err
}

func (f *fakeTripRepo) DeleteTripByIdForUser(_ context.Context, _ string, _ uuid.UUID) error {
	return f.deleteErr
}

type fakePlannerService struct {
	lastRequest      req.GenerateTripRequest
	lastRegenerating bool
	detail           *resp.TripDetailResponse
	err              error
}

func (f *fakePlannerService) GenerateTripDetail(_ context.Context, request req.GenerateTripRequest, regenerating bool) (*resp.TripDetailResponse, error) {
	f.lastRequest = request
	f.lastRegenerating = regenerating
	if f.err != nil {
		return nil, f.err
	}
	return &resp.TripDetailResponse{
		Destination: request.Destination,
		Days:        request.Days,
		Budget:      request.Budget,
		TravelWith:  request.TravelWith,
		SaveAllowed: !regenerating,
	}, nil
}

func TestSaveTrip(t *testing.T) {
	repo := &fakeTripRepo{}
	svc := NewTripService(repo, &fakePlannerService{})
	owner := uuid.New()

	saved, err := svc.SaveTrip(context.Background(), owner.String(), req.SaveTripRequest{
		Destination: "Tokyo, Japan",
		Days:        7,
		Budget:      req.BudgetLuxury,
		TravelWith:  req.TravelFamily,
		TripPlan:    "# Day 1",
		PhotoURLs:   []string{"https://img/1"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected one record created, got %d", len(repo.created))
	}
	record := repo.created[0]
	if record.UserID != owner {
		t.Errorf("trip owner = %v, want %v", record.UserID, owner)
	}
	if record.Destination != "Tokyo, Japan" || record.Days != 7 || record.Budget != req.BudgetLuxury {
		t.Errorf("trip fields not flattened: %+v", record)
	}
	if saved.Destination != "Tokyo, Japan" {
		t.Errorf("response destination = %q", saved.Destination)
	}
}

func TestSaveTripUnauthorized(t *testing.T) {
	repo := &fakeTripRepo{}
	svc := NewTripService(repo, &fakePlannerService{})

	for _, userId := range []string{"", "not-a-uuid", uuid.Nil.String()} {
		_, err := svc.SaveTrip(context.Background(), userId, req.SaveTripRequest{Destination: "Rome, Italy", Days: 3})
		if !errors.Is(err, utils.ErrUnauthorized) {
			t.Errorf("userId %q: expected ErrUnauthorized, got %v", userId, err)
		}
	}
	if len(repo.created) != 0 {
		t.Error("unauthorized save must not write")
	}
}

func TestDeleteTripNotFound(t *testing.T) {
	svc := NewTripService(&fakeTripRepo{deleteErr: gorm.ErrRecordNotFound}, &fakePlannerService{})

	err := svc.DeleteTrip(context.Background(), uuid.New().String(), uuid.New().String())
	if !errors.Is(err, utils.ErrTripNotFound) {
		t.Errorf("expected ErrTripNotFound, got %v", err)
	}
}

func TestRegenerateTrip(t *testing.T) {
	stored := &db_models.Trip{
		Destination: "Lima, Peru",
		Days:        4,
		Budget:      req.BudgetCheap,
		TravelWith:  req.TravelFriends,
	}
	planner := &fakePlannerService{}
	svc := NewTripService(&fakeTripRepo{getResult: stored}, planner)

	detail, err := svc.RegenerateTrip(context.Background(), uuid.New().String(), uuid.New().String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !planner.lastRegenerating {
		t.Error("regeneration must run with the save affordance suppressed")
	}
	if planner.lastRequest.Destination != "Lima, Peru" || planner.lastRequest.Days != 4 {
		t.Errorf("stored fields not reloaded into request: %+v", planner.lastRequest)
	}
	if detail.SaveAllowed {
		t.Error("regenerated detail must not allow saving")
	}
}

func TestRegenerateTripNotFound(t *testing.T) {
	svc := NewTripService(&fakeTripRepo{getResult: nil}, &fakePlannerService{})

	_, err := svc.RegenerateTrip(context.Background(), uuid.New().String(), uuid.New().String())
	if !errors.Is(err, utils.ErrTripNotFound) {
		t.Errorf("expected ErrTripNotFound, got %v", err)
	}
}
