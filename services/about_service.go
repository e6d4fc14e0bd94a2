package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Aruzhan01/academy-system/models"
	"github.com/Aruzhan01/academy-system/repositories"
	"github.com/go-playground/validator/v10"
)

type AboutService interface {
	GetAbout(ctx context.Context) (*models.About, error)
	UpdateAbout(ctx context.Context, input UpdateAboutInput) (*models.About, error)
}

type UpdateAboutInput struct {
	CompanyName     *string `json:"company_name" validate:"omitempty,min=1"`
	Location        *string `json:"location" validate:"omitempty,min=1"`
	EstablishedYear *int    `json:"established_year"`
	Email           *string `json:"email" validate:"omitempty,email"`
	ContactPhone    *string `json:"contact_phone" validate:"omitempty,min=1"`
}

type aboutService struct {
	aboutRepo repositories.AboutRepository
	validate  *validator.Validate
}

func NewAboutService(aboutRepo repositories.AboutRepository) AboutService {
	return &aboutService{
		aboutRepo: aboutRepo,
		validate:  validator.New(),
	}
}

func (s *aboutService) GetAbout(ctx context.Context) (*models.About, error) {
	about, err := s.aboutRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, repositories.ErrAboutNotFound) {
			return nil, ErrAboutNotFound
		}
		return nil, fmt.Errorf("failed to get about record: %w", err)
	}
	return about, nil
}

func (s *aboutService) UpdateAbout(ctx context.Context, input UpdateAboutInput) (*models.About, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}
	if input.EstablishedYear != nil {
		year := *input.EstablishedYear
		if year < 1900 || year > time.Now().Year() {
			return nil, ErrAboutInvalidYear
		}
	}

	about, err := s.aboutRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, repositories.ErrAboutNotFound) {
			return nil, ErrAboutNotFound
		}
		return nil, fmt.Errorf("failed to get about record: %w", err)
	}

	if input.CompanyName != nil {
		about.CompanyName = strings.TrimSpace(*input.CompanyName)
	}
	if input.Location != nil {
		about.Location = strings.TrimSpace(*input.Location)
	}
	if input.EstablishedYear != nil {
		about.EstablishedYear = *input.EstablishedYear
	}
	if input.Email != nil {
		about.Email = strings.TrimSpace(*input.Email)
	}
	if input.ContactPhone != nil {
		about.ContactPhone = strings.TrimSpace(*input.ContactPhone)
	}

	if err := s.aboutRepo.Update(ctx, about); err != nil {
		if errors.Is(err, repositories.ErrAboutNotFound) {
			return nil, ErrAboutNotFound
		}
		return nil, fmt.Errorf("failed to update about record: %w", err)
	}
	return about, nil
}
