package repositories

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tuliptour/internal/models/db_models"
)

type FamilyRepositoryInterface interface {
	// UpsertFamily inserts or, when a row for the same user_id exists,
	// overwrites the composition in a single statement. Concurrent
	// submissions for one user are last-write-wins.
	UpsertFamily(ctx context.Context, info *db_models.FamilyInfo) error
	ListFamilies(ctx context.Context) ([]db_models.FamilyInfo, error)
	GetFamilyByUserID(ctx context.Context, userID string) (*db_models.FamilyInfo, error)
}

type FamilyRepository struct {
	db *gorm.DB
}

func NewFamilyRepository(db *gorm.DB) *FamilyRepository {
	return &FamilyRepository{db: db}
}

func (r *FamilyRepository) UpsertFamily(ctx context.Context, info *db_models.FamilyInfo) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"user_email", "adults", "children", "babies", "special_requests", "updated_at"}),
		}).
		Create(info).Error
}

func (r *FamilyRepository) ListFamilies(ctx context.Context) ([]db_models.FamilyInfo, error) {
	var families []db_models.FamilyInfo
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&families).Error
	return families, err
}

func (r *FamilyRepository) GetFamilyByUserID(ctx context.Context, userID string) (*db_models.FamilyInfo, error) {
	var info db_models.FamilyInfo
	err := r.db.WithContext(ctx).First(&info, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &info, nil
}
