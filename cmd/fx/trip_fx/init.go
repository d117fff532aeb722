package trip_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"gotrip/internal/api/controllers"
	"gotrip/internal/repositories"
	"gotrip/internal/services"
)

var Module = fx.Provide(
	provideTripRepo, provideTripService, provideTripController,
)

func provideTripRepo(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func provideTripService(tripRepo repositories.TripRepository, planner services.PlannerServiceInterface) services.TripServiceInterface {
	return services.NewTripService(tripRepo, planner)
}

func provideTripController(planner services.PlannerServiceInterface, tripService services.TripServiceInterface) *controllers.TripController {
	return controllers.NewTripController(planner, tripService)
}
