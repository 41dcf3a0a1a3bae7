package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tuliptour/internal/models/db_models"
)

type PackageRepositoryInterface interface {
	CreatePackage(ctx context.Context, pkg *db_models.Package) error
	ListPackages(ctx context.Context) ([]db_models.Package, error)
	GetPackageByID(ctx context.Context, id uuid.UUID) (*db_models.Package, error)
}

type PackageRepository struct {
	db *gorm.DB
}

func NewPackageRepository(db *gorm.DB) *PackageRepository {
	return &PackageRepository{db: db}
}

func (r *PackageRepository) CreatePackage(ctx context.Context, pkg *db_models.Package) error {
	return r.db.WithContext(ctx).Create(pkg).Error
}

func (r *PackageRepository) ListPackages(ctx context.Context) ([]db_models.Package, error) {
	var packages []db_models.Package
	err := r.db.WithContext(ctx).
		Order("start_date ASC").
		Find(&packages).Error
	return packages, err
}

func (r *PackageRepository) GetPackageByID(ctx context.Context, id uuid.UUID) (*db_models.Package, error) {
	var pkg db_models.Package
	err := r.db.WithContext(ctx).First(&pkg, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &pkg, nil
}
