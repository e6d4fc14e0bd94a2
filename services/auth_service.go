package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Aruzhan01/academy-system/models"
	"github.com/Aruzhan01/academy-system/repositories"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Login(ctx context.Context, input LoginInput) (*models.Admin, error)
	// EnsureDefaultAdmin seeds the configured admin account when the admins
	// table is empty. A no-op otherwise.
	EnsureDefaultAdmin(ctx context.Context, username, password string) error
}

type LoginInput struct {
	Username string
	Password string
}

type authService struct {
	adminRepo repositories.AdminRepository
}

func NewAuthService(adminRepo repositories.AdminRepository) AuthService {
	return &authService{
		adminRepo: adminRepo,
	}
}

func (s *authService) Login(ctx context.Context, input LoginInput) (*models.Admin, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" || input.Password == "" {
		return nil, ErrAuthInvalidCredentials
	}

	admin, err := s.adminRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrAdminNotFound) {
			return nil, ErrAuthInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find admin by username: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(input.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, ErrAuthInvalidCredentials
		}
		return nil, fmt.Errorf("failed to compare password hash: %w", err)
	}

	admin.PasswordHash = ""
	return admin, nil
}

func (s *authService) EnsureDefaultAdmin(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return nil
	}

	count, err := s.adminRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count admins: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &models.Admin{
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		// A concurrent seeder may have won the race; that is fine.
		if errors.Is(err, repositories.ErrAdminUsernameTaken) {
			return nil
		}
		return fmt.Errorf("failed to create default admin: %w", err)
	}
	return nil
}
