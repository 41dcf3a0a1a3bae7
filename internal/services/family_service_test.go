package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tuliptour/internal/models/db_models"
	"tuliptour/internal/models/request_models"
	"tuliptour/pkg/utils"
)

// fakeFamilyRepo mirrors the store-level upsert: one row per user_id.
type fakeFamilyRepo struct {
	byUser map[string]*db_models.FamilyInfo
}

func newFakeFamilyRepo() *fakeFamilyRepo {
	return &fakeFamilyRepo{byUser: make(map[string]*db_models.FamilyInfo)}
}

func (f *fakeFamilyRepo) UpsertFamily(ctx context.Context, info *db_models.FamilyInfo) error {
	if existing, ok := f.byUser[info.UserID]; ok {
		existing.UserEmail = info.UserEmail
		existing.Adults = info.Adults
		existing.Children = info.Children
		existing.Babies = info.Babies
		existing.SpecialRequests = info.SpecialRequests
		return nil
	}
	if info.ID == uuid.Nil {
		info.ID = uuid.New()
	}
	stored := *info
	f.byUser[info.UserID] = &stored
	return nil
}

func (f *fakeFamilyRepo) ListFamilies(ctx context.Context) ([]db_models.FamilyInfo, error) {
	var out []db_models.FamilyInfo
	for _, info := range f.byUser {
		out = append(out, *info)
	}
	return out, nil
}

func (f *fakeFamilyRepo) GetFamilyByUserID(ctx context.Context, userID string) (*db_models.FamilyInfo, error) {
	info, ok := f.byUser[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return info, nil
}

func TestSaveFamilyUpsertsByUser(t *testing.T) {
	repo := newFakeFamilyRepo()
	svc := NewFamilyService(repo)

	_, err := svc.SaveFamily(context.Background(), request_models.SaveFamilyRequest{
		UserID: "u1", UserEmail: "u1@example.com", Adults: 2,
	})
	if err != nil {
		t.Fatalf("first SaveFamily failed: %v", err)
	}

	_, err = svc.SaveFamily(context.Background(), request_models.SaveFamilyRequest{
		UserID: "u1", UserEmail: "u1@example.com", Adults: 4, Children: 1,
	})
	if err != nil {
		t.Fatalf("second SaveFamily failed: %v", err)
	}

	families, err := svc.ListFamilies(context.Background())
	if err != nil {
		t.Fatalf("ListFamilies failed: %v", err)
	}
	if len(families) != 1 {
		t.Fatalf("got %d records for one user, want exactly 1", len(families))
	}
	if families[0].Adults != 4 || families[0].Children != 1 {
		t.Errorf("stored counts = adults:%d children:%d, want 4/1 (last write wins)", families[0].Adults, families[0].Children)
	}
}

func TestGetFamilyNotFound(t *testing.T) {
	svc := NewFamilyService(newFakeFamilyRepo())

	_, err := svc.GetFamily(context.Background(), "nobody")
	if !errors.Is(err, utils.ErrFamilyNotFound) {
		t.Errorf("err = %v, want ErrFamilyNotFound", err)
	}
}

type failingFamilyRepo struct{}

func (failingFamilyRepo) UpsertFamily(ctx context.Context, info *db_models.FamilyInfo) error {
	return errors.New("connection refused")
}

func (failingFamilyRepo) ListFamilies(ctx context.Context) ([]db_models.FamilyInfo, error) {
	return nil, errors.New("connection refused")
}

func (failingFamilyRepo) GetFamilyByUserID(ctx context.Context, userID string) (*db_models.FamilyInfo, error) {
	return nil, errors.New("connection refused")
}

func TestStoreFailureKeepsCause(t *testing.T) {
	svc := NewFamilyService(failingFamilyRepo{})

	_, err := svc.SaveFamily(context.Background(), request_models.SaveFamilyRequest{
		UserID: "u1", UserEmail: "u1@example.com", Adults: 2,
	})
	if !errors.Is(err, utils.ErrDatabaseError) {
		t.Fatalf("err = %v, want it to match ErrDatabaseError", err)
	}
	// The underlying cause must survive for server-side logging.
	if !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("err = %q, want the store error preserved in the chain", err)
	}
}
