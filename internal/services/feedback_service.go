package services

import (
	"context"

	"gotrip/internal/models/db_models"
	req "gotrip/internal/models/request_models"
	resp "gotrip/internal/models/response_models"
	"gotrip/internal/repositories"
	"gotrip/pkg/utils"
)

// AnonymousUser marks feedback submitted without a signed-in account.
const AnonymousUser = "anonymous"

type FeedbackServiceInterface interface {
	// SubmitFeedback appends a record and returns the refreshed full list,
	// newest first.
	SubmitFeedback(ctx context.Context, userId string, request req.AddFeedbackRequest) ([]resp.FeedbackResponse, error)
	ListFeedback(ctx context.Context) ([]resp.FeedbackResponse, error)
}

type FeedbackService struct {
	feedbackRepo repositories.FeedbackRepositoryInterface
}

func NewFeedbackService(feedbackRepo repositories.FeedbackRepositoryInterface) FeedbackServiceInterface {
	return &FeedbackService{feedbackRepo: feedbackRepo}
}

func (s *FeedbackService) SubmitFeedback(ctx context.Context, userId string, request req.AddFeedbackRequest) ([]resp.FeedbackResponse, error) {
	rating := request.Rating
	if rating == 0 {
		rating = 5
	}
	if rating < 1 || rating > 5 {
		return nil, utils.ErrInvalidInput
	}

	if userId == "" {
		userId = AnonymousUser
	}

	feedback := &db_models.Feedback{
		UserID:      userId,
		Name:        request.Name,
		Email:       request.Email,
		Rating:      rating,
		Feedback:    request.Feedback,
		Suggestions: request.Suggestions,
	}

	if err := s.feedbackRepo.CreateFeedback(ctx, feedback); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return s.ListFeedback(ctx)
}

func (s *FeedbackService) ListFeedback(ctx context.Context) ([]resp.FeedbackResponse, error) {
	feedbacks, err := s.feedbackRepo.ListFeedback(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]resp.FeedbackResponse, 0, len(feedbacks))
	for _, f := range feedbacks {
		out = append(out, resp.FeedbackResponse{
			ID:          f.ID.String(),
			UserID:      f.UserID,
			Name:        f.Name,
			Email:       f.Email,
			Rating:      f.Rating,
			Feedback:    f.Feedback,
			Suggestions: f.Suggestions,
			CreatedAt:   f.CreatedAt,
		})
	}
	return out, nil
}
