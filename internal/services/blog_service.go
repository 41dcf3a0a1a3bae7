package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tuliptour/internal/models/db_models"
	"tuliptour/internal/models/request_models"
	resp "tuliptour/internal/models/response_models"
	"tuliptour/internal/repositories"
	"tuliptour/pkg/utils"
)

type BlogServiceInterface interface {
	CreateBlog(ctx context.Context, req request_models.CreateBlogRequest) (*resp.BlogResponse, error)
	ListBlogs(ctx context.Context, limit int) ([]resp.BlogResponse, error)
	GetBlog(ctx context.Context, id uuid.UUID) (*resp.BlogResponse, error)
	UpdateBlog(ctx context.Context, id uuid.UUID, req request_models.UpdateBlogRequest) error
	DeleteBlog(ctx context.Context, id uuid.UUID) error
}

type BlogService struct {
	blogRepo repositories.BlogRepositoryInterface
	now      func() time.Time
}

func NewBlogService(blogRepo repositories.BlogRepositoryInterface) BlogServiceInterface {
	return &BlogService{blogRepo: blogRepo, now: time.Now}
}

func (s *BlogService) CreateBlog(ctx context.Context, req request_models.CreateBlogRequest) (*resp.BlogResponse, error) {
	postedAt := s.now().Unix()
	if req.PostedAt != "" {
		t, err := time.Parse(time.RFC3339, req.PostedAt)
		if err != nil {
			return nil, utils.ErrInvalidPostedAt
		}
		postedAt = t.Unix()
	}

	post := &db_models.BlogPost{
		Title:     req.Title,
		Subtitle:  req.Subtitle,
		Content:   req.Content,
		ImageURLs: db_models.ImageURLs(req.ImageURLs),
		PostedAt:  postedAt,
	}
	if err := s.blogRepo.CreateBlog(ctx, post); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return toBlogResponse(post), nil
}

func (s *BlogService) ListBlogs(ctx context.Context, limit int) ([]resp.BlogResponse, error) {
	posts, err := s.blogRepo.ListBlogs(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	responses := make([]resp.BlogResponse, 0, len(posts))
	for i := range posts {
		responses = append(responses, *toBlogResponse(&posts[i]))
	}
	return responses, nil
}

func (s *BlogService) GetBlog(ctx context.Context, id uuid.UUID) (*resp.BlogResponse, error) {
	post, err := s.blogRepo.GetBlogByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrBlogNotFound
		}
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return toBlogResponse(post), nil
}

func (s *BlogService) UpdateBlog(ctx context.Context, id uuid.UUID, req request_models.UpdateBlogRequest) error {
	if _, err := s.blogRepo.GetBlogByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrBlogNotFound
		}
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	post := &db_models.BlogPost{
		Title:     req.Title,
		Subtitle:  req.Subtitle,
		Content:   req.Content,
		ImageURLs: db_models.ImageURLs(req.ImageURLs),
	}
	post.ID = id
	if err := s.blogRepo.UpdateBlog(ctx, post); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return nil
}

func (s *BlogService) DeleteBlog(ctx context.Context, id uuid.UUID) error {
	if _, err := s.blogRepo.GetBlogByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrBlogNotFound
		}
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if err := s.blogRepo.DeleteBlog(ctx, id); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return nil
}

func toBlogResponse(post *db_models.BlogPost) *resp.BlogResponse {
	urls := []string(post.ImageURLs)
	if urls == nil {
		urls = []string{}
	}
	return &resp.BlogResponse{
		ID:        post.ID,
		Title:     post.Title,
		Subtitle:  post.Subtitle,
		Content:   post.Content,
		ImageURLs: urls,
		PostedAt:  time.Unix(post.PostedAt, 0).UTC(),
	}
}
