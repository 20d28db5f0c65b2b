package main

import (
	"context"
	"log"
	"net/http"

	"tripwise/cmd/fx/account_fx"
	"tripwise/cmd/fx/controllers_fx"
	"tripwise/cmd/fx/db_fx"
	"tripwise/cmd/fx/providers_fx"
	"tripwise/cmd/fx/trip_fx"
	"tripwise/internal/api/controllers"
	"tripwise/internal/config"
	"tripwise/pkg/middleware"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		fx.Provide(config.Load),
		db_fx.Module,
		providers_fx.Module,
		account_fx.Module,
		trip_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
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
	cfg *config.Config,
	accountController *controllers.AccountController,
	tripController *controllers.TripController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware(cfg.ClientURL))
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, accountController, tripController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	tripController *controllers.TripController) {

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authGroup := r.Group("/api/auth")
	authGroup.POST("/register", accountController.Register)
	authGroup.POST("/login", accountController.Login)

	// Share lookup is deliberately outside the auth group.
	r.GET("/api/trips/share/:shareId", tripController.GetSharedTrip)

	tripsGroup := r.Group("/api/trips")
	tripsGroup.Use(middleware.JWTAuthMiddleware())
	tripsGroup.POST("", tripController.CreateTrip)
	tripsGroup.GET("", tripController.ListTrips)
	tripsGroup.GET("/:id", tripController.GetTrip)
	tripsGroup.PUT("/:id", tripController.UpdateTrip)
	tripsGroup.DELETE("/:id", tripController.DeleteTrip)
	tripsGroup.GET("/:id/pdf", tripController.ExportTripPdf)
}
