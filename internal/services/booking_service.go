package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tuliptour/internal/models/db_models"
	resp "tuliptour/internal/models/response_models"
	"tuliptour/internal/repositories"
	"tuliptour/pkg/utils"
)

const unknownUserEmail = "Unknown"

type BookingServiceInterface interface {
	CreateBooking(ctx context.Context, userID string, packageID uuid.UUID) (*db_models.Booking, error)
	ListBookings(ctx context.Context, userID string) ([]resp.BookingResponse, error)
}

type BookingService struct {
	bookingRepo repositories.BookingRepositoryInterface
	packageRepo repositories.PackageRepositoryInterface
	accountRepo repositories.AccountRepositoryInterface
}

func NewBookingService(
	bookingRepo repositories.BookingRepositoryInterface,
	packageRepo repositories.PackageRepositoryInterface,
	accountRepo repositories.AccountRepositoryInterface,
) BookingServiceInterface {
	return &BookingService{
		bookingRepo: bookingRepo,
		packageRepo: packageRepo,
		accountRepo: accountRepo,
	}
}

func (s *BookingService) CreateBooking(ctx context.Context, userID string, packageID uuid.UUID) (*db_models.Booking, error) {
	// A booking must reference an existing package.
	if _, err := s.packageRepo.GetPackageByID(ctx, packageID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrPackageNotFound
		}
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	booking := &db_models.Booking{
		UserID:    userID,
		PackageID: packageID,
	}
	if err := s.bookingRepo.CreateBooking(ctx, booking); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return booking, nil
}

func (s *BookingService) ListBookings(ctx context.Context, userID string) ([]resp.BookingResponse, error) {
	bookings, err := s.bookingRepo.ListBookings(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	emails, err := s.lookupEmails(ctx, bookings)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	responses := make([]resp.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		email, ok := emails[b.UserID]
		if !ok {
			email = unknownUserEmail
		}

		response := resp.BookingResponse{
			ID:        b.ID,
			CreatedAt: time.Unix(b.CreatedAt, 0).UTC(),
			UserID:    b.UserID,
			UserEmail: email,
		}
		if b.Package != nil {
			response.Package = &resp.PackageSummary{
				ID:        b.Package.ID,
				Title:     b.Package.Title,
				ImageURL:  b.Package.ImageURL,
				StartDate: b.Package.StartDate.Format(dateLayout),
				EndDate:   b.Package.EndDate.Format(dateLayout),
			}
		}
		responses = append(responses, response)
	}
	return responses, nil
}

// lookupEmails resolves booking user ids to account emails in one query.
// Ids that are not uuids belong to external identities and stay unresolved.
func (s *BookingService) lookupEmails(ctx context.Context, bookings []db_models.Booking) (map[string]string, error) {
	seen := make(map[string]bool)
	ids := make([]string, 0)
	for _, b := range bookings {
		if seen[b.UserID] {
			continue
		}
		seen[b.UserID] = true
		if _, err := uuid.Parse(b.UserID); err == nil {
			ids = append(ids, b.UserID)
		}
	}
	return s.accountRepo.FindEmailsByIDs(ctx, ids)
}
