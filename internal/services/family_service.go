package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"tuliptour/internal/models/db_models"
	"tuliptour/internal/models/request_models"
	"tuliptour/internal/repositories"
	"tuliptour/pkg/utils"
)

type FamilyServiceInterface interface {
	// SaveFamily upserts one composition record per user; a later
	// submission for the same user overwrites the earlier one.
	SaveFamily(ctx context.Context, req request_models.SaveFamilyRequest) (*db_models.FamilyInfo, error)
	ListFamilies(ctx context.Context) ([]db_models.FamilyInfo, error)
	GetFamily(ctx context.Context, userID string) (*db_models.FamilyInfo, error)
}

type FamilyService struct {
	familyRepo repositories.FamilyRepositoryInterface
}

func NewFamilyService(familyRepo repositories.FamilyRepositoryInterface) FamilyServiceInterface {
	return &FamilyService{familyRepo: familyRepo}
}

func (s *FamilyService) SaveFamily(ctx context.Context, req request_models.SaveFamilyRequest) (*db_models.FamilyInfo, error) {
	info := &db_models.FamilyInfo{
		UserID:          req.UserID,
		UserEmail:       req.UserEmail,
		Adults:          req.Adults,
		Children:        req.Children,
		Babies:          req.Babies,
		SpecialRequests: req.SpecialRequests,
	}
	if err := s.familyRepo.UpsertFamily(ctx, info); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return info, nil
}

func (s *FamilyService) ListFamilies(ctx context.Context) ([]db_models.FamilyInfo, error) {
	families, err := s.familyRepo.ListFamilies(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return families, nil
}

func (s *FamilyService) GetFamily(ctx context.Context, userID string) (*db_models.FamilyInfo, error) {
	info, err := s.familyRepo.GetFamilyByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrFamilyNotFound
		}
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return info, nil
}
