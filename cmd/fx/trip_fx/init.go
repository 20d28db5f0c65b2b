package trip_fx

import (
	"tripwise/internal/providers"
	"tripwise/internal/repositories"
	"tripwise/internal/services"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(provideTripRepo, provideTripService, providePdfService)

func provideTripRepo(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func provideTripService(
	tripRepo repositories.TripRepository,
	generator providers.ItineraryGenerator,
	places providers.PlaceResolver,
	images providers.ImageResolver,
) services.TripServiceInterface {
	return services.NewTripService(tripRepo, generator, places, images)
}

func providePdfService() services.PdfServiceInterface {
	return services.NewPdfService()
}
