package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tuliptour/internal/models/request_models"
	"tuliptour/internal/services"
	"tuliptour/pkg/utils"
)

type BookingController struct {
	bookingService services.BookingServiceInterface
}

func NewBookingController(bookingService services.BookingServiceInterface) *BookingController {
	return &BookingController{bookingService: bookingService}
}

// ListBookings godoc
// @Summary List bookings
// @Description Get bookings joined with their package summary, optionally for one user
// @Tags Bookings
// @Produce json
// @Param user_id query string false "Filter to one user's bookings"
// @Success 200 {object} utils.APIResponse
// @Router /resources/bookings [get]
func (b *BookingController) ListBookings(c *gin.Context) {
	bookings, err := b.bookingService.ListBookings(c.Request.Context(), c.Query("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, bookings, "Bookings fetched successfully")
}

// CreateBooking godoc
// @Summary Create a booking
// @Description Book a package for a user; the package must exist
// @Tags Bookings
// @Accept json
// @Produce json
// @Param request body request_models.CreateBookingRequest true "Booking payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /resources/bookings [post]
func (b *BookingController) CreateBooking(c *gin.Context) {
	var req request_models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "user_id and package_id are required")
		return
	}

	packageID, err := uuid.Parse(req.PackageID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid package ID")
		return
	}

	booking, svcErr := b.bookingService.CreateBooking(c.Request.Context(), req.UserID, packageID)
	if svcErr != nil {
		utils.HandleServiceError(c, svcErr)
		return
	}
	utils.RespondCreated(c, booking, "Booking created successfully")
}
