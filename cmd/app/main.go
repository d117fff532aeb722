package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"gotrip/cmd/fx/account_fx"
	"gotrip/cmd/fx/city_fx"
	"gotrip/cmd/fx/db_fx"
	"gotrip/cmd/fx/feedback_fx"
	"gotrip/cmd/fx/mail_fx"
	"gotrip/cmd/fx/planner_fx"
	"gotrip/cmd/fx/trip_fx"
	"gotrip/internal/api/controllers"
	"gotrip/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	app := fx.New(
		db_fx.Module,
		mail_fx.Module,
		account_fx.Module,
		planner_fx.Module,
		trip_fx.Module,
		city_fx.Module,
		feedback_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	tripController *controllers.TripController,
	cityController *controllers.CityController,
	feedbackController *controllers.FeedbackController,
	accountController *controllers.AccountController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, tripController, cityController, feedbackController, accountController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	tripController *controllers.TripController,
	cityController *controllers.CityController,
	feedbackController *controllers.FeedbackController,
	accountController *controllers.AccountController) {

	accountsGroup := r.Group("/accounts")
	accountsGroup.POST("/register", accountController.Register)
	accountsGroup.POST("/login", accountController.Login)
	accountsGroup.POST("/forgot-password", accountController.ForgotPassword)
	accountsGroup.POST("/reset-password", accountController.ResetPassword)

	citiesGroup := r.Group("/cities")
	citiesGroup.GET("/suggest", cityController.SuggestCities)

	tripsGroup := r.Group("/trips")
	tripsGroup.Use(middleware.JWTAuthMiddleware())
	tripsGroup.POST("/generate", tripController.GenerateTrip)
	tripsGroup.POST("/save", tripController.SaveTrip)
	tripsGroup.GET("", tripController.ListTrips)
	tripsGroup.GET("/:tripId/regenerate", tripController.RegenerateTrip)
	tripsGroup.DELETE("/:tripId", tripController.DeleteTrip)

	feedbackGroup := r.Group("/feedback")
	feedbackGroup.POST("/add", middleware.OptionalAuthMiddleware(), feedbackController.AddFeedback)
	feedbackGroup.GET("/list", feedbackController.ListFeedback)
}
