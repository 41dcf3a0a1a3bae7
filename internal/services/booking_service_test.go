package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tuliptour/internal/models/db_models"
	"tuliptour/pkg/utils"
)

type fakePackageRepo struct {
	packages map[uuid.UUID]*db_models.Package
}

func (f *fakePackageRepo) CreatePackage(ctx context.Context, pkg *db_models.Package) error {
	if f.packages == nil {
		f.packages = make(map[uuid.UUID]*db_models.Package)
	}
	if pkg.ID == uuid.Nil {
		pkg.ID = uuid.New()
	}
	f.packages[pkg.ID] = pkg
	return nil
}

func (f *fakePackageRepo) ListPackages(ctx context.Context) ([]db_models.Package, error) {
	var out []db_models.Package
	for _, pkg := range f.packages {
		out = append(out, *pkg)
	}
	return out, nil
}

func (f *fakePackageRepo) GetPackageByID(ctx context.Context, id uuid.UUID) (*db_models.Package, error) {
	pkg, ok := f.packages[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return pkg, nil
}

type fakeBookingRepo struct {
	bookings []db_models.Booking
}

func (f *fakeBookingRepo) CreateBooking(ctx context.Context, booking *db_models.Booking) error {
	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}
	f.bookings = append(f.bookings, *booking)
	return nil
}

func (f *fakeBookingRepo) ListBookings(ctx context.Context, userID string) ([]db_models.Booking, error) {
	if userID == "" {
		return f.bookings, nil
	}
	var out []db_models.Booking
	for _, b := range f.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeAccountRepo struct {
	emails map[string]string
}

func (f *fakeAccountRepo) CreateAccount(ctx context.Context, account *db_models.Account) error {
	return nil
}

func (f *fakeAccountRepo) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	return nil, nil
}

func (f *fakeAccountRepo) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Account, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAccountRepo) FindEmailsByIDs(ctx context.Context, ids []string) (map[string]string, error) {
	out := make(map[string]string)
	for _, id := range ids {
		if email, ok := f.emails[id]; ok {
			out[id] = email
		}
	}
	return out, nil
}

func (f *fakeAccountRepo) UpdatePassword(ctx context.Context, email string, passwordHash string) error {
	return nil
}

func TestCreateBookingRequiresExistingPackage(t *testing.T) {
	svc := NewBookingService(&fakeBookingRepo{}, &fakePackageRepo{}, &fakeAccountRepo{})

	_, err := svc.CreateBooking(context.Background(), "user-1", uuid.New())
	if !errors.Is(err, utils.ErrPackageNotFound) {
		t.Errorf("err = %v, want ErrPackageNotFound", err)
	}
}

func TestCreateBookingStoresBooking(t *testing.T) {
	pkgID := uuid.New()
	packageRepo := &fakePackageRepo{packages: map[uuid.UUID]*db_models.Package{}}
	packageRepo.packages[pkgID] = &db_models.Package{Title: "Alps Tour"}
	bookingRepo := &fakeBookingRepo{}
	svc := NewBookingService(bookingRepo, packageRepo, &fakeAccountRepo{})

	booking, err := svc.CreateBooking(context.Background(), "user-1", pkgID)
	if err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}
	if booking.UserID != "user-1" || booking.PackageID != pkgID {
		t.Errorf("stored booking = %+v", booking)
	}
	if len(bookingRepo.bookings) != 1 {
		t.Errorf("repo has %d bookings, want 1", len(bookingRepo.bookings))
	}
}

func TestListBookingsResolvesEmails(t *testing.T) {
	accountID := uuid.New()
	pkg := &db_models.Package{Title: "Rome"}
	pkg.ID = uuid.New()

	bookingRepo := &fakeBookingRepo{bookings: []db_models.Booking{
		{UserID: accountID.String(), PackageID: pkg.ID, Package: pkg},
		{UserID: "external-identity", PackageID: pkg.ID, Package: pkg},
	}}
	accountRepo := &fakeAccountRepo{emails: map[string]string{
		accountID.String(): "alice@example.com",
	}}
	svc := NewBookingService(bookingRepo, &fakePackageRepo{}, accountRepo)

	bookings, err := svc.ListBookings(context.Background(), "")
	if err != nil {
		t.Fatalf("ListBookings failed: %v", err)
	}
	if len(bookings) != 2 {
		t.Fatalf("got %d bookings, want 2", len(bookings))
	}
	if bookings[0].UserEmail != "alice@example.com" {
		t.Errorf("resolved email = %q, want alice@example.com", bookings[0].UserEmail)
	}
	if bookings[1].UserEmail != "Unknown" {
		t.Errorf("external identity email = %q, want Unknown", bookings[1].UserEmail)
	}
	if bookings[0].Package == nil || bookings[0].Package.Title != "Rome" {
		t.Errorf("package summary missing from booking response: %+v", bookings[0].Package)
	}
}
