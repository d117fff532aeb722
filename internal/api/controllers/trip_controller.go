package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"

	"gotrip/internal/models/request_models"
	"gotrip/internal/services"
	"gotrip/pkg/utils"
)

type TripController struct {
	plannerService services.PlannerServiceInterface
	tripService    services.TripServiceInterface
}

func NewTripController(plannerService services.PlannerServiceInterface, tripService services.TripServiceInterface) *TripController {
	return &TripController{
		plannerService: plannerService,
		tripService:    tripService,
	}
}

// GenerateTrip godoc
// @Summary Generate a trip itinerary
// @Description Fetch destination photos and generate a markdown itinerary for the given trip request
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body request_models.GenerateTripRequest true "Trip request payload"
// @Success 200 {object} response_models.TripDetailResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/generate [post]
func (t *TripController) GenerateTrip(c *gin.Context) {
	var req request_models.GenerateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Please fill in all fields")
		return
	}

	detail, err := t.plannerService.GenerateTripDetail(c.Request.Context(), req, false)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, detail, "Trip generated successfully")
}

// SaveTrip godoc
// @Summary Save a generated trip
// @Description Persist a generated itinerary for the authenticated user
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body request_models.SaveTripRequest true "Trip payload"
// @Success 200 {object} response_models.TripResponse
// @Failure 401 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/save [post]
func (t *TripController) SaveTrip(c *gin.Context) {
	var req request_models.SaveTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid trip payload")
		return
	}

	trip, err := t.tripService.SaveTrip(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip saved successfully")
}

// ListTrips godoc
// @Summary List saved trips
// @Description Fetch the authenticated user's saved trips, newest first
// @Tags Trips
// @Produce json
// @Success 200 {array} response_models.TripResponse
// @Security BearerAuth
// @Router /trips [get]
func (t *TripController) ListTrips(c *gin.Context) {
	trips, err := t.tripService.ListTrips(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trips, "Trips fetched successfully")
}

// RegenerateTrip godoc
// @Summary Regenerate a saved trip
// @Description Re-run generation from a saved trip's fields; the result cannot be saved again
// @Tags Trips
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} response_models.TripDetailResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId}/regenerate [get]
func (t *TripController) RegenerateTrip(c *gin.Context) {
	tripId := c.Param("tripId")
	if tripId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	detail, err := t.tripService.RegenerateTrip(c.Request.Context(), c.GetString("user_id"), tripId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, detail, "Trip regenerated successfully")
}

// DeleteTrip godoc
// @Summary Delete a saved trip
// @Tags Trips
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId} [delete]
func (t *TripController) DeleteTrip(c *gin.Context) {
	tripId := c.Param("tripId")
	if tripId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	if err := t.tripService.DeleteTrip(c.Request.Context(), c.GetString("user_id"), tripId); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Trip deleted successfully")
}
