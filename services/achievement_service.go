package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Aruzhan01/academy-system/models"
	"github.com/Aruzhan01/academy-system/repositories"
	"github.com/Aruzhan01/academy-system/storage"
	"github.com/go-playground/validator/v10"
)

type AchievementService interface {
	CreateAchievement(ctx context.Context, input CreateAchievementInput, image, video *FileUpload) (*models.Achievement, error)
	GetAchievementByID(ctx context.Context, id int) (*models.Achievement, error)
	GetAllAchievements(ctx context.Context) ([]models.Achievement, error)
	UpdateAchievement(ctx context.Context, id int, input UpdateAchievementInput, image, video *FileUpload) (*models.Achievement, error)
	DeleteAchievement(ctx context.Context, id int) error
}

type CreateAchievementInput struct {
	Title       string  `validate:"required"`
	Category    *string `validate:"-"`
	Description *string `validate:"-"`
}

type UpdateAchievementInput struct {
	Title       *string `validate:"omitempty,min=1"`
	Category    *string `validate:"-"`
	Description *string `validate:"-"`
}

type achievementService struct {
	achievementRepo repositories.AchievementRepository
	uploader        storage.FileUploader
	validate        *validator.Validate
}

func NewAchievementService(achievementRepo repositories.AchievementRepository, uploader storage.FileUploader) AchievementService {
	return &achievementService{
		achievementRepo: achievementRepo,
		uploader:        uploader,
		validate:        validator.New(),
	}
}

func (s *achievementService) CreateAchievement(ctx context.Context, input CreateAchievementInput, image, video *FileUpload) (*models.Achievement, error) {
	input.Title = strings.TrimSpace(input.Title)
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	achievement := &models.Achievement{
		Title:       input.Title,
		Category:    input.Category,
		Description: input.Description,
	}

	if err := s.attachMedia(ctx, achievement, image, video); err != nil {
		return nil, err
	}

	if err := s.achievementRepo.Create(ctx, achievement); err != nil {
		return nil, fmt.Errorf("failed to create achievement: %w", err)
	}

	populateAchievementMediaURLs(achievement, s.uploader)
	return achievement, nil
}

func (s *achievementService) GetAchievementByID(ctx context.Context, id int) (*models.Achievement, error) {
	achievement, err := s.achievementRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrAchievementNotFound) {
			return nil, ErrAchievementNotFound
		}
		return nil, fmt.Errorf("failed to get achievement by id %d: %w", id, err)
	}
	populateAchievementMediaURLs(achievement, s.uploader)
	return achievement, nil
}

func (s *achievementService) GetAllAchievements(ctx context.Context) ([]models.Achievement, error) {
	achievements, err := s.achievementRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all achievements: %w", err)
	}
	for i := range achievements {
		populateAchievementMediaURLs(&achievements[i], s.uploader)
	}
	return achievements, nil
}

func (s *achievementService) UpdateAchievement(ctx context.Context, id int, input UpdateAchievementInput, image, video *FileUpload) (*models.Achievement, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	achievement, err := s.achievementRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrAchievementNotFound) {
			return nil, ErrAchievementNotFound
		}
		return nil, fmt.Errorf("failed to get achievement by id %d: %w", id, err)
	}

	if input.Title != nil {
		achievement.Title = strings.TrimSpace(*input.Title)
	}
	if input.Category != nil {
		achievement.Category = input.Category
	}
	if input.Description != nil {
		achievement.Description = input.Description
	}

	if err := s.attachMedia(ctx, achievement, image, video); err != nil {
		return nil, err
	}

	if err := s.achievementRepo.Update(ctx, achievement); err != nil {
		if errors.Is(err, repositories.ErrAchievementNotFound) {
			return nil, ErrAchievementNotFound
		}
		return nil, fmt.Errorf("failed to update achievement %d: %w", id, err)
	}

	populateAchievementMediaURLs(achievement, s.uploader)
	return achievement, nil
}

func (s *achievementService) DeleteAchievement(ctx context.Context, id int) error {
	if err := s.achievementRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrAchievementNotFound) {
			return ErrAchievementNotFound
		}
		return fmt.Errorf("failed to delete achievement %d: %w", id, err)
	}
	return nil
}

// attachMedia uploads whichever files were provided and points the record at
// the fresh keys. Replaced objects are orphaned, never deleted.
func (s *achievementService) attachMedia(ctx context.Context, achievement *models.Achievement, image, video *FileUpload) error {
	if image != nil {
		ext, err := imageExtensionFromContentType(image.ContentType)
		if err != nil {
			return err
		}
		key := newMediaKey("achievements", ext)
		if _, err := s.uploader.Upload(ctx, key, image.ContentType, image.Reader); err != nil {
			return fmt.Errorf("failed to upload achievement image: %w", err)
		}
		achievement.ImageKey = &key
	}
	if video != nil {
		ext, err := videoExtensionFromContentType(video.ContentType)
		if err != nil {
			return err
		}
		key := newMediaKey("achievements", ext)
		if _, err := s.uploader.Upload(ctx, key, video.ContentType, video.Reader); err != nil {
			return fmt.Errorf("failed to upload achievement video: %w", err)
		}
		achievement.VideoKey = &key
	}
	return nil
}
