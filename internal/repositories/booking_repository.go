package repositories

import (
	"context"

	"gorm.io/gorm"

	"tuliptour/internal/models/db_models"
)

type BookingRepositoryInterface interface {
	CreateBooking(ctx context.Context, booking *db_models.Booking) error
	// ListBookings returns bookings with their package preloaded,
	// optionally filtered to one user.
	ListBookings(ctx context.Context, userID string) ([]db_models.Booking, error)
}

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) CreateBooking(ctx context.Context, booking *db_models.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *BookingRepository) ListBookings(ctx context.Context, userID string) ([]db_models.Booking, error) {
	var bookings []db_models.Booking
	tx := r.db.WithContext(ctx).
		Preload("Package").
		Order("created_at DESC")
	if userID != "" {
		tx = tx.Where("user_id = ?", userID)
	}
	err := tx.Find(&bookings).Error
	return bookings, err
}
