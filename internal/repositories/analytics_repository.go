package repositories

import (
	"context"

	"gorm.io/gorm"

	"tuliptour/internal/models/db_models"
)

type AnalyticsRepositoryInterface interface {
	CountPackages(ctx context.Context) (int64, error)

	// BookingRows returns one row per booking with the package title
	// denormalized; bookings whose package is missing come back with an
	// empty title and are still included.
	BookingRows(ctx context.Context) ([]BookingRow, error)

	// MessageRows returns the replied flag of every message.
	MessageRows(ctx context.Context) ([]MessageRow, error)
}

type analyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepositoryInterface {
	return &analyticsRepository{db: db}
}

// ---------- Row helpers ----------

type BookingRow struct {
	CreatedAt int64  `gorm:"column:created_at"`
	Title     string `gorm:"column:title"`
}

type MessageRow struct {
	IsReplied bool `gorm:"column:is_replied"`
}

func (r *analyticsRepository) CountPackages(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.Package{}).Count(&n).Error
	return n, err
}

func (r *analyticsRepository) BookingRows(ctx context.Context) ([]BookingRow, error) {
	var rows []BookingRow
	err := r.db.WithContext(ctx).
		Table("bookings b").
		Select("b.created_at, COALESCE(p.title, '') AS title").
		Joins("LEFT JOIN packages p ON p.id = b.package_id").
		Where("b.deleted_at IS NULL").
		Order("b.created_at ASC").
		Find(&rows).Error
	return rows, err
}

func (r *analyticsRepository) MessageRows(ctx context.Context) ([]MessageRow, error) {
	var rows []MessageRow
	err := r.db.WithContext(ctx).
		Model(&db_models.Message{}).
		Select("is_replied").
		Find(&rows).Error
	return rows, err
}
