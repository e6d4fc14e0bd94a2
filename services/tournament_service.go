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

type TournamentService interface {
	CreateTournament(ctx context.Context, input CreateTournamentInput, image *FileUpload) (*models.Tournament, error)
	GetTournamentByID(ctx context.Context, id int) (*models.Tournament, error)
	GetAllTournaments(ctx context.Context) ([]models.Tournament, error)
	UpdateTournament(ctx context.Context, id int, input UpdateTournamentInput, image *FileUpload) (*models.Tournament, error)
	DeleteTournament(ctx context.Context, id int) error
}

type CreateTournamentInput struct {
	Name        string  `validate:"required"`
	Description *string `validate:"-"`
}

type UpdateTournamentInput struct {
	Name        *string `validate:"omitempty,min=1"`
	Description *string `validate:"-"`
}

type tournamentService struct {
	tournamentRepo repositories.TournamentRepository
	uploader       storage.FileUploader
	validate       *validator.Validate
}

func NewTournamentService(tournamentRepo repositories.TournamentRepository, uploader storage.FileUploader) TournamentService {
	return &tournamentService{
		tournamentRepo: tournamentRepo,
		uploader:       uploader,
		validate:       validator.New(),
	}
}

func (s *tournamentService) CreateTournament(ctx context.Context, input CreateTournamentInput, image *FileUpload) (*models.Tournament, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	tournament := &models.Tournament{
		Name:        input.Name,
		Description: input.Description,
	}

	if image != nil {
		key, err := s.uploadTournamentImage(ctx, image)
		if err != nil {
			return nil, err
		}
		tournament.ImageKey = &key
	}

	if err := s.tournamentRepo.Create(ctx, tournament); err != nil {
		return nil, fmt.Errorf("failed to create tournament: %w", err)
	}

	populateTournamentImageURL(tournament, s.uploader)
	return tournament, nil
}

func (s *tournamentService) GetTournamentByID(ctx context.Context, id int) (*models.Tournament, error) {
	tournament, err := s.tournamentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to get tournament by id %d: %w", id, err)
	}
	populateTournamentImageURL(tournament, s.uploader)
	return tournament, nil
}

func (s *tournamentService) GetAllTournaments(ctx context.Context) ([]models.Tournament, error) {
	tournaments, err := s.tournamentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all tournaments: %w", err)
	}
	for i := range tournaments {
		populateTournamentImageURL(&tournaments[i], s.uploader)
	}
	return tournaments, nil
}

func (s *tournamentService) UpdateTournament(ctx context.Context, id int, input UpdateTournamentInput, image *FileUpload) (*models.Tournament, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	tournament, err := s.tournamentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to get tournament by id %d: %w", id, err)
	}

	if input.Name != nil {
		tournament.Name = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		tournament.Description = input.Description
	}

	if image != nil {
		key, uploadErr := s.uploadTournamentImage(ctx, image)
		if uploadErr != nil {
			return nil, uploadErr
		}
		tournament.ImageKey = &key
	}

	if err := s.tournamentRepo.Update(ctx, tournament); err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to update tournament %d: %w", id, err)
	}

	populateTournamentImageURL(tournament, s.uploader)
	return tournament, nil
}

func (s *tournamentService) DeleteTournament(ctx context.Context, id int) error {
	if err := s.tournamentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return ErrTournamentNotFound
		}
		return fmt.Errorf("failed to delete tournament %d: %w", id, err)
	}
	return nil
}

func (s *tournamentService) uploadTournamentImage(ctx context.Context, image *FileUpload) (string, error) {
	ext, err := imageExtensionFromContentType(image.ContentType)
	if err != nil {
		return "", err
	}
	key := newMediaKey("tournaments", ext)
	if _, err := s.uploader.Upload(ctx, key, image.ContentType, image.Reader); err != nil {
		return "", fmt.Errorf("failed to upload tournament image: %w", err)
	}
	return key, nil
}
