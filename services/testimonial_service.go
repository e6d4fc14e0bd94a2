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

type TestimonialService interface {
	CreateTestimonial(ctx context.Context, input CreateTestimonialInput) (*models.Testimonial, error)
	GetAllTestimonials(ctx context.Context) ([]models.Testimonial, error)
	UpdateTestimonial(ctx context.Context, id int, input UpdateTestimonialInput) (*models.Testimonial, error)
	DeleteTestimonial(ctx context.Context, id int) error
}

type CreateTestimonialInput struct {
	Name        string `json:"name" validate:"required"`
	Role        string `json:"role" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type UpdateTestimonialInput struct {
	Name        *string `json:"name" validate:"omitempty,min=1"`
	Role        *string `json:"role" validate:"omitempty,min=1"`
	Description *string `json:"description" validate:"omitempty,min=1"`
}

type testimonialService struct {
	testimonialRepo repositories.TestimonialRepository
	validate        *validator.Validate
}

func NewTestimonialService(testimonialRepo repositories.TestimonialRepository) TestimonialService {
	return &testimonialService{
		testimonialRepo: testimonialRepo,
		validate:        validator.New(),
	}
}

func (s *testimonialService) CreateTestimonial(ctx context.Context, input CreateTestimonialInput) (*models.Testimonial, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Role = strings.TrimSpace(input.Role)
	input.Description = strings.TrimSpace(input.Description)
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	testimonial := &models.Testimonial{
		Name:        input.Name,
		Role:        input.Role,
		Description: input.Description,
	}

	if err := s.testimonialRepo.Create(ctx, testimonial); err != nil {
		return nil, fmt.Errorf("failed to create testimonial: %w", err)
	}
	return testimonial, nil
}

func (s *testimonialService) GetAllTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	testimonials, err := s.testimonialRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all testimonials: %w", err)
	}
	return testimonials, nil
}

func (s *testimonialService) UpdateTestimonial(ctx context.Context, id int, input UpdateTestimonialInput) (*models.Testimonial, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	testimonial, err := s.testimonialRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTestimonialNotFound) {
			return nil, ErrTestimonialNotFound
		}
		return nil, fmt.Errorf("failed to get testimonial by id %d: %w", id, err)
	}

	if input.Name != nil {
		testimonial.Name = strings.TrimSpace(*input.Name)
	}
	if input.Role != nil {
		testimonial.Role = strings.TrimSpace(*input.Role)
	}
	if input.Description != nil {
		testimonial.Description = strings.TrimSpace(*input.Description)
	}

	if err := s.testimonialRepo.Update(ctx, testimonial); err != nil {
		if errors.Is(err, repositories.ErrTestimonialNotFound) {
			return nil, ErrTestimonialNotFound
		}
		return nil, fmt.Errorf("failed to update testimonial %d: %w", id, err)
	}
	return testimonial, nil
}

func (s *testimonialService) DeleteTestimonial(ctx context.Context, id int) error {
	if err := s.testimonialRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrTestimonialNotFound) {
			return ErrTestimonialNotFound
		}
		return fmt.Errorf("failed to delete testimonial %d: %w", id, err)
	}
	return nil
}
