package services

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"

	req "gotrip/internal/models/request_models"
	resp "gotrip/internal/models/response_models"
	"gotrip/pkg/utils"
)

type PlannerServiceInterface interface {
	// GenerateTripDetail runs the photo search and the itinerary generation
	// concurrently and joins both before returning. Either failure fails the
	// whole call; no partial detail is ever produced.
	GenerateTripDetail(ctx context.Context, request req.GenerateTripRequest, regenerating bool) (*resp.TripDetailResponse, error)
}

type PlannerService struct {
	photos  PhotoServiceInterface
	planner utils.PlannerClientInterface
}

func NewPlannerService(photos PhotoServiceInterface, planner utils.PlannerClientInterface) PlannerServiceInterface {
	return &PlannerService{photos: photos, planner: planner}
}

func (s *PlannerService) GenerateTripDetail(ctx context.Context, request req.GenerateTripRequest, regenerating bool) (*resp.TripDetailResponse, error) {
	var (
		photos   []resp.Photo
		planText string
	)

	// The two fetches have no ordering dependency; the group joins both
	// outcomes so neither result is silently dropped.
	var g errgroup.Group
	g.Go(func() error {
		var err error
		photos, err = s.photos.SearchPhotos(ctx, request.Destination)
		if err != nil {
			return fmt.Errorf("%w: %v", utils.ErrPhotoSearch, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		planText, err = s.planner.GenerateItinerary(ctx, request.Days, request.Destination, request.Budget, request.TravelWith)
		if err != nil {
			return fmt.Errorf("%w: %v", utils.ErrPlanGeneration, err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Printf("Trip detail generation for %q failed: %v", request.Destination, err)
		return nil, err
	}

	planHTML, err := utils.RenderMarkdown(planText)
	if err != nil {
		return nil, fmt.Errorf("%w: render: %v", utils.ErrPlanGeneration, err)
	}

	return &resp.TripDetailResponse{
		Destination:  request.Destination,
		Days:         request.Days,
		Budget:       request.Budget,
		TravelWith:   request.TravelWith,
		Photos:       photos,
		TripPlan:     planText,
		TripPlanHTML: planHTML,
		SaveAllowed:  !regenerating,
	}, nil
}
