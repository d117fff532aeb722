package city_fx

import (
	"go.uber.org/fx"

	"gotrip/internal/api/controllers"
	"gotrip/internal/services"
)

var Module = fx.Provide(
	provideSuggestionCache, provideCityService, provideCityController,
)

func provideSuggestionCache() services.SuggestionCache {
	return services.NewInMemorySuggestionCache()
}

func provideCityService(cache services.SuggestionCache) services.CityServiceInterface {
	return services.NewGeoDBCityClient(cache)
}

func provideCityController(cityService services.CityServiceInterface) *controllers.CityController {
	return controllers.NewCityController(cityService)
}
