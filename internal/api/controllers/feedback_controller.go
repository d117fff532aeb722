package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"

	"gotrip/internal/models/request_models"
	"gotrip/internal/services"
	"gotrip/pkg/utils"
)

type FeedbackController struct {
	feedbackService services.FeedbackServiceInterface
}

func NewFeedbackController(feedbackService services.FeedbackServiceInterface) *FeedbackController {
	return &FeedbackController{feedbackService: feedbackService}
}

// AddFeedback godoc
// @Summary Submit feedback
// @Description Append a feedback record and return the refreshed list, newest first
// @Tags Feedback
// @Accept json
// @Produce json
// @Param request body request_models.AddFeedbackRequest true "Feedback payload"
// @Success 200 {array} response_models.FeedbackResponse
// @Failure 400 {object} utils.APIResponse
// @Router /feedback/add [post]
func (f *FeedbackController) AddFeedback(c *gin.Context) {
	var req request_models.AddFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Name, email and feedback are required")
		return
	}

	feedbacks, err := f.feedbackService.SubmitFeedback(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, feedbacks, "Feedback submitted successfully")
}

// ListFeedback godoc
// @Summary List feedback
// @Tags Feedback
// @Produce json
// @Success 200 {array} response_models.FeedbackResponse
// @Router /feedback/list [get]
func (f *FeedbackController) ListFeedback(c *gin.Context) {
	feedbacks, err := f.feedbackService.ListFeedback(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, feedbacks, "Feedback fetched successfully")
}
