package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tuliptour/internal/models/db_models"
	"tuliptour/internal/models/request_models"
	"tuliptour/pkg/mem"
	"tuliptour/pkg/utils"
)

type stubAccountRepo struct {
	accounts map[string]*db_models.Account
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{accounts: make(map[string]*db_models.Account)}
}

func (s *stubAccountRepo) CreateAccount(ctx context.Context, account *db_models.Account) error {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	s.accounts[account.Email] = account
	return nil
}

func (s *stubAccountRepo) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	return s.accounts[email], nil
}

func (s *stubAccountRepo) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Account, error) {
	for _, account := range s.accounts {
		if account.ID == id {
			return account, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubAccountRepo) FindEmailsByIDs(ctx context.Context, ids []string) (map[string]string, error) {
	return nil, nil
}

func (s *stubAccountRepo) UpdatePassword(ctx context.Context, email string, passwordHash string) error {
	account, ok := s.accounts[email]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	account.PasswordHash = passwordHash
	return nil
}

func TestCreateAccountRejectsDuplicateEmail(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewAccountService(repo, mem.NewResetTokens(), nil)

	req := request_models.SignUpRequest{
		DisplayName: "Alice",
		Email:       "alice@example.com",
		Password:    "correct-horse",
	}
	if err := svc.CreateAccount(context.Background(), req); err != nil {
		t.Fatalf("first CreateAccount failed: %v", err)
	}
	if err := svc.CreateAccount(context.Background(), req); !errors.Is(err, utils.ErrEmailAlreadyExists) {
		t.Errorf("err = %v, want ErrEmailAlreadyExists", err)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewAccountService(repo, mem.NewResetTokens(), nil)

	if err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Alice",
		Email:       "alice@example.com",
		Password:    "correct-horse",
	}); err != nil {
		t.Fatal(err)
	}

	_, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong-horse",
	})
	if !errors.Is(err, utils.ErrInvalidCredentials) {
		t.Errorf("wrong password: err = %v, want ErrInvalidCredentials", err)
	}

	_, err = svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "correct-horse",
	})
	if !errors.Is(err, utils.ErrInvalidCredentials) {
		t.Errorf("unknown email: err = %v, want ErrInvalidCredentials", err)
	}
}

func TestPasswordResetFlow(t *testing.T) {
	repo := newStubAccountRepo()
	tokens := mem.NewResetTokens()
	svc := NewAccountService(repo, tokens, nil)

	if err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Alice",
		Email:       "alice@example.com",
		Password:    "correct-horse",
	}); err != nil {
		t.Fatal(err)
	}

	// Unknown emails must not be distinguishable from known ones.
	if err := svc.ForgotPassword(context.Background(), "nobody@example.com"); err != nil {
		t.Errorf("ForgotPassword for unknown email: %v", err)
	}

	if err := svc.ResetPassword(context.Background(), "bogus-token", "new-password"); !errors.Is(err, utils.ErrInvalidResetToken) {
		t.Errorf("bogus token: err = %v, want ErrInvalidResetToken", err)
	}

	tokens.Set("known-token", "alice@example.com", resetTokenTTL)
	if err := svc.ResetPassword(context.Background(), "known-token", "new-password"); err != nil {
		t.Fatalf("ResetPassword failed: %v", err)
	}

	if _, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "alice@example.com",
		Password: "new-password",
	}); err != nil {
		t.Errorf("login with new password failed: %v", err)
	}
	if _, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "alice@example.com",
		Password: "correct-horse",
	}); !errors.Is(err, utils.ErrInvalidCredentials) {
		t.Errorf("old password still accepted: err = %v", err)
	}
}
