package booking_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tuliptour/internal/api/controllers"
	"tuliptour/internal/repositories"
	"tuliptour/internal/services"
)

var Module = fx.Provide(
	provideBookingRepo, provideBookingService, provideBookingController,
)

func provideBookingRepo(db *gorm.DB) repositories.BookingRepositoryInterface {
	return repositories.NewBookingRepository(db)
}

func provideBookingService(
	bookingRepo repositories.BookingRepositoryInterface,
	packageRepo repositories.PackageRepositoryInterface,
	accountRepo repositories.AccountRepositoryInterface,
) services.BookingServiceInterface {
	return services.NewBookingService(bookingRepo, packageRepo, accountRepo)
}

func provideBookingController(bookingService services.BookingServiceInterface) *controllers.BookingController {
	return controllers.NewBookingController(bookingService)
}
