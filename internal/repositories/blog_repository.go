package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tuliptour/internal/models/db_models"
)

type BlogRepositoryInterface interface {
	CreateBlog(ctx context.Context, post *db_models.BlogPost) error
	// ListBlogs returns posts newest first; limit <= 0 means no limit.
	ListBlogs(ctx context.Context, limit int) ([]db_models.BlogPost, error)
	GetBlogByID(ctx context.Context, id uuid.UUID) (*db_models.BlogPost, error)
	UpdateBlog(ctx context.Context, post *db_models.BlogPost) error
	DeleteBlog(ctx context.Context, id uuid.UUID) error
}

type BlogRepository struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) *BlogRepository {
	return &BlogRepository{db: db}
}

func (r *BlogRepository) CreateBlog(ctx context.Context, post *db_models.BlogPost) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *BlogRepository) ListBlogs(ctx context.Context, limit int) ([]db_models.BlogPost, error) {
	var posts []db_models.BlogPost
	tx := r.db.WithContext(ctx).Order("posted_at DESC")
	if limit > 0 {
		tx = tx.Limit(limit)
	}
	err := tx.Find(&posts).Error
	return posts, err
}

func (r *BlogRepository) GetBlogByID(ctx context.Context, id uuid.UUID) (*db_models.BlogPost, error) {
	var post db_models.BlogPost
	err := r.db.WithContext(ctx).First(&post, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *BlogRepository) UpdateBlog(ctx context.Context, post *db_models.BlogPost) error {
	return r.db.WithContext(ctx).
		Model(&db_models.BlogPost{}).
		Where("id = ?", post.ID).
		Updates(map[string]interface{}{
			"title":      post.Title,
			"subtitle":   post.Subtitle,
			"content":    post.Content,
			"image_urls": post.ImageURLs,
		}).Error
}

func (r *BlogRepository) DeleteBlog(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.BlogPost{}, "id = ?", id).Error
}
