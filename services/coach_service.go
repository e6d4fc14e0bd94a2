package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Aruzhan01/academy-system/models"
	"github.com/Aruzhan01/academy-system/repositories"
	"github.com/go-playground/validator/v10"
)

type CoachService interface {
	CreateCoach(ctx context.Context, input CreateCoachInput) (*models.Coach, error)
	GetCoachByID(ctx context.Context, id int) (*models.Coach, error)
	GetAllCoaches(ctx context.Context) ([]models.Coach, error)
	UpdateCoach(ctx context.Context, id int, input UpdateCoachInput) (*models.Coach, error)
	DeleteCoach(ctx context.Context, id int) error
}

type CreateCoachInput struct {
	FullName    string  `json:"full_name" validate:"required"`
	Role        string  `json:"role" validate:"required"`
	Phone       string  `json:"phone" validate:"required"`
	Description *string `json:"description"`
}

// UpdateCoachInput uses pointers so that omitted fields keep their prior
// values.
type UpdateCoachInput struct {
	FullName    *string `json:"full_name" validate:"omitempty,min=1"`
	Role        *string `json:"role" validate:"omitempty,min=1"`
	Phone       *string `json:"phone" validate:"omitempty,min=1"`
	Description *string `json:"description"`
}

type coachService struct {
	coachRepo repositories.CoachRepository
	validate  *validator.Validate
}

func NewCoachService(coachRepo repositories.CoachRepository) CoachService {
	return &coachService{
		coachRepo: coachRepo,
		validate:  validator.New(),
	}
}

func (s *coachService) CreateCoach(ctx context.Context, input CreateCoachInput) (*models.Coach, error) {
	input.FullName = strings.TrimSpace(input.FullName)
	input.Role = strings.TrimSpace(input.Role)
	input.Phone = strings.TrimSpace(input.Phone)
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	coach := &models.Coach{
		FullName:    input.FullName,
		Role:        input.Role,
		Phone:       input.Phone,
		Description: input.Description,
	}

	if err := s.coachRepo.Create(ctx, coach); err != nil {
		return nil, fmt.Errorf("failed to create coach: %w", err)
	}
	return coach, nil
}

func (s *coachService) GetCoachByID(ctx context.Context, id int) (*models.Coach, error) {
	coach, err := s.coachRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrCoachNotFound) {
			return nil, ErrCoachNotFound
		}
		return nil, fmt.Errorf("failed to get coach by id %d: %w", id, err)
	}
	return coach, nil
}

func (s *coachService) GetAllCoaches(ctx context.Context) ([]models.Coach, error) {
	coaches, err := s.coachRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all coaches: %w", err)
	}
	return coaches, nil
}

func (s *coachService) UpdateCoach(ctx context.Context, id int, input UpdateCoachInput) (*models.Coach, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	coach, err := s.coachRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrCoachNotFound) {
			return nil, ErrCoachNotFound
		}
		return nil, fmt.Errorf("failed to get coach by id %d: %w", id, err)
	}

	if input.FullName != nil {
		coach.FullName = strings.TrimSpace(*input.FullName)
	}
	if input.Role != nil {
		coach.Role = strings.TrimSpace(*input.Role)
	}
	if input.Phone != nil {
		coach.Phone = strings.TrimSpace(*input.Phone)
	}
	if input.Description != nil {
		coach.Description = input.Description
	}

	if err := s.coachRepo.Update(ctx, coach); err != nil {
		if errors.Is(err, repositories.ErrCoachNotFound) {
			return nil, ErrCoachNotFound
		}
		return nil, fmt.Errorf("failed to update coach %d: %w", id, err)
	}
	return coach, nil
}

func (s *coachService) DeleteCoach(ctx context.Context, id int) error {
	if err := s.coachRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrCoachNotFound) {
			return ErrCoachNotFound
		}
		return fmt.Errorf("failed to delete coach %d: %w", id, err)
	}
	return nil
}
