package services

import (
	"context"
	"fmt"
	"time"

	"tuliptour/internal/models/db_models"
	"tuliptour/internal/models/request_models"
	resp "tuliptour/internal/models/response_models"
	"tuliptour/internal/repositories"
	"tuliptour/pkg/utils"
)

const dateLayout = "2006-01-02"

type PackageServiceInterface interface {
	CreatePackage(ctx context.Context, req request_models.CreatePackageRequest) (*resp.PackageResponse, error)
	ListPackages(ctx context.Context) ([]resp.PackageResponse, error)
}

type PackageService struct {
	packageRepo repositories.PackageRepositoryInterface
	loc         *time.Location
	now         func() time.Time
}

func NewPackageService(packageRepo repositories.PackageRepositoryInterface) PackageServiceInterface {
	return &PackageService{
		packageRepo: packageRepo,
		loc:         utils.ResolveLocation(""),
		now:         time.Now,
	}
}

func (s *PackageService) CreatePackage(ctx context.Context, req request_models.CreatePackageRequest) (*resp.PackageResponse, error) {
	startDate, err := time.ParseInLocation(dateLayout, req.StartDate, s.loc)
	if err != nil {
		return nil, utils.ErrInvalidDate
	}
	endDate, err := time.ParseInLocation(dateLayout, req.EndDate, s.loc)
	if err != nil {
		return nil, utils.ErrInvalidDate
	}

	pkg := &db_models.Package{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		StartDate:   startDate,
		EndDate:     endDate,
	}

	if err := s.packageRepo.CreatePackage(ctx, pkg); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return s.toResponse(pkg), nil
}

func (s *PackageService) ListPackages(ctx context.Context) ([]resp.PackageResponse, error) {
	packages, err := s.packageRepo.ListPackages(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	responses := make([]resp.PackageResponse, 0, len(packages))
	for i := range packages {
		responses = append(responses, *s.toResponse(&packages[i]))
	}
	return responses, nil
}

func (s *PackageService) toResponse(pkg *db_models.Package) *resp.PackageResponse {
	return &resp.PackageResponse{
		ID:          pkg.ID,
		Title:       pkg.Title,
		Description: pkg.Description,
		ImageURL:    pkg.ImageURL,
		StartDate:   pkg.StartDate.Format(dateLayout),
		EndDate:     pkg.EndDate.Format(dateLayout),
		Expired:     s.isExpired(pkg.StartDate),
	}
}

// isExpired reports whether the package's start date has passed:
// start <= today, compared at day granularity in the canonical timezone.
// Only the calendar components of start matter; the driver may hand the
// date column back in any fixed zone.
func (s *PackageService) isExpired(start time.Time) bool {
	startDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, s.loc)
	today := utils.StartOfDay(s.now(), s.loc)
	return !startDay.After(today)
}
