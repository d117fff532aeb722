package controllers

import (
	"github.com/gin-gonic/gin"
	"log"

	resp "gotrip/internal/models/response_models"
	"gotrip/internal/services"
	"gotrip/pkg/utils"
)

type CityController struct {
	cityService services.CityServiceInterface
}

func NewCityController(cityService services.CityServiceInterface) *CityController {
	return &CityController{cityService: cityService}
}

// SuggestCities godoc
// @Summary Autocomplete destination cities
// @Description Return up to 10 city suggestions for a name prefix, most populous first
// @Tags Cities
// @Produce json
// @Param namePrefix query string true "Name prefix (at least 2 characters)"
// @Success 200 {array} response_models.CitySuggestion
// @Router /cities/suggest [get]
func (ct *CityController) SuggestCities(c *gin.Context) {
	prefix := c.Query("namePrefix")

	suggestions, err := ct.cityService.SuggestCities(c.Request.Context(), prefix)
	if err != nil {
		// Autocomplete degrades to an empty list rather than an error state.
		log.Printf("City suggestion lookup failed: %v", err)
		suggestions = []resp.CitySuggestion{}
	}

	utils.RespondSuccess(c, suggestions, "City suggestions fetched")
}
