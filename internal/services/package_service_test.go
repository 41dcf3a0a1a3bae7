package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"tuliptour/internal/models/db_models"
	"tuliptour/internal/models/request_models"
	"tuliptour/pkg/utils"
)

func datePackage(title string, start, end time.Time) *db_models.Package {
	return &db_models.Package{Title: title, StartDate: start, EndDate: end}
}

func TestListPackagesDerivesExpired(t *testing.T) {
	now := time.Date(2026, time.August, 30, 15, 0, 0, 0, time.UTC)

	// The driver hands date columns back as midnight instants in a fixed
	// zone; only the calendar components may influence the result.
	repo := &fakePackageRepo{}
	for _, pkg := range []*db_models.Package{
		datePackage("Started years ago",
			time.Date(2020, time.March, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2020, time.March, 10, 0, 0, 0, 0, time.UTC)),
		datePackage("Starts today",
			time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC),
			time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC)),
		datePackage("Starts tomorrow",
			time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC),
			time.Date(2026, time.September, 12, 0, 0, 0, 0, time.UTC)),
	} {
		if err := repo.CreatePackage(context.Background(), pkg); err != nil {
			t.Fatal(err)
		}
	}

	svc := &PackageService{
		packageRepo: repo,
		loc:         time.UTC,
		now:         func() time.Time { return now },
	}

	packages, err := svc.ListPackages(context.Background())
	if err != nil {
		t.Fatalf("ListPackages failed: %v", err)
	}

	expired := make(map[string]bool, len(packages))
	for _, p := range packages {
		expired[p.Title] = p.Expired
	}

	if !expired["Started years ago"] {
		t.Error("package that started years ago must be expired")
	}
	if !expired["Starts today"] {
		t.Error("package starting today is expired (start <= today)")
	}
	if expired["Starts tomorrow"] {
		t.Error("package starting tomorrow must not be expired")
	}
}

func TestIsExpiredIgnoresScanZone(t *testing.T) {
	// A stored 2026-08-31 arrives as midnight UTC. In a zone behind UTC
	// that instant is still Aug 30 on the clock, but the calendar date of
	// the column is what counts.
	loc := time.FixedZone("UTC-5", -5*3600)
	now := time.Date(2026, time.August, 30, 23, 0, 0, 0, loc)
	svc := &PackageService{loc: loc, now: func() time.Time { return now }}

	tomorrow := time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC)
	if svc.isExpired(tomorrow) {
		t.Error("start date after today must not be expired, whatever zone the driver used")
	}

	today := time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC)
	if !svc.isExpired(today) {
		t.Error("start date equal to today must be expired")
	}
}

func TestCreatePackageDates(t *testing.T) {
	repo := &fakePackageRepo{}
	now := time.Date(2026, time.August, 30, 15, 0, 0, 0, time.UTC)
	svc := &PackageService{
		packageRepo: repo,
		loc:         time.UTC,
		now:         func() time.Time { return now },
	}

	created, err := svc.CreatePackage(context.Background(), request_models.CreatePackageRequest{
		Title:     "Alps Tour",
		StartDate: "2026-09-01",
		EndDate:   "2026-09-08",
	})
	if err != nil {
		t.Fatalf("CreatePackage failed: %v", err)
	}
	if created.StartDate != "2026-09-01" || created.EndDate != "2026-09-08" {
		t.Errorf("created dates = %s..%s, want plain YYYY-MM-DD", created.StartDate, created.EndDate)
	}

	listed, err := svc.ListPackages(context.Background())
	if err != nil {
		t.Fatalf("ListPackages failed: %v", err)
	}
	if len(listed) != 1 || listed[0].StartDate != created.StartDate {
		t.Errorf("listed dates must match create response, got %+v", listed)
	}

	_, err = svc.CreatePackage(context.Background(), request_models.CreatePackageRequest{
		Title:     "Bad dates",
		StartDate: "01/09/2026",
		EndDate:   "2026-09-08",
	})
	if !errors.Is(err, utils.ErrInvalidDate) {
		t.Errorf("err = %v, want ErrInvalidDate", err)
	}
}
