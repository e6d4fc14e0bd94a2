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

type PartnerService interface {
	CreatePartner(ctx context.Context, input CreatePartnerInput, logo *FileUpload) (*models.Partner, error)
	GetPartnerByID(ctx context.Context, id int) (*models.Partner, error)
	GetAllPartners(ctx context.Context) ([]models.Partner, error)
	UpdatePartner(ctx context.Context, id int, input UpdatePartnerInput, logo *FileUpload) (*models.Partner, error)
	DeletePartner(ctx context.Context, id int) error
}

type CreatePartnerInput struct {
	Name        string  `validate:"required"`
	Description *string `validate:"-"`
	Website     *string `validate:"omitempty,url"`
}

type UpdatePartnerInput struct {
	Name        *string `validate:"omitempty,min=1"`
	Description *string `validate:"-"`
	Website     *string `validate:"omitempty,url"`
}

type partnerService struct {
	partnerRepo repositories.PartnerRepository
	uploader    storage.FileUploader
	validate    *validator.Validate
}

func NewPartnerService(partnerRepo repositories.PartnerRepository, uploader storage.FileUploader) PartnerService {
	return &partnerService{
		partnerRepo: partnerRepo,
		uploader:    uploader,
		validate:    validator.New(),
	}
}

func (s *partnerService) CreatePartner(ctx context.Context, input CreatePartnerInput, logo *FileUpload) (*models.Partner, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	partner := &models.Partner{
		Name:        input.Name,
		Description: input.Description,
		Website:     input.Website,
	}

	// Upload precedes the row write: a failed insert after a successful
	// upload leaves an orphaned object, which is accepted (the media store is
	// never reconciled against the rows).
	if logo != nil {
		key, err := s.uploadPartnerLogo(ctx, logo)
		if err != nil {
			return nil, err
		}
		partner.LogoKey = &key
	}

	if err := s.partnerRepo.Create(ctx, partner); err != nil {
		return nil, fmt.Errorf("failed to create partner: %w", err)
	}

	populatePartnerLogoURL(partner, s.uploader)
	return partner, nil
}

func (s *partnerService) GetPartnerByID(ctx context.Context, id int) (*models.Partner, error) {
	partner, err := s.partnerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrPartnerNotFound) {
			return nil, ErrPartnerNotFound
		}
		return nil, fmt.Errorf("failed to get partner by id %d: %w", id, err)
	}
	populatePartnerLogoURL(partner, s.uploader)
	return partner, nil
}

func (s *partnerService) GetAllPartners(ctx context.Context) ([]models.Partner, error) {
	partners, err := s.partnerRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all partners: %w", err)
	}
	for i := range partners {
		populatePartnerLogoURL(&partners[i], s.uploader)
	}
	return partners, nil
}

func (s *partnerService) UpdatePartner(ctx context.Context, id int, input UpdatePartnerInput, logo *FileUpload) (*models.Partner, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	partner, err := s.partnerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrPartnerNotFound) {
			return nil, ErrPartnerNotFound
		}
		return nil, fmt.Errorf("failed to get partner by id %d: %w", id, err)
	}

	if input.Name != nil {
		partner.Name = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		partner.Description = input.Description
	}
	if input.Website != nil {
		partner.Website = input.Website
	}

	// A replacement logo goes under a fresh key; the previous object stays
	// behind as an orphan.
	if logo != nil {
		key, uploadErr := s.uploadPartnerLogo(ctx, logo)
		if uploadErr != nil {
			return nil, uploadErr
		}
		partner.LogoKey = &key
	}

	if err := s.partnerRepo.Update(ctx, partner); err != nil {
		if errors.Is(err, repositories.ErrPartnerNotFound) {
			return nil, ErrPartnerNotFound
		}
		return nil, fmt.Errorf("failed to update partner %d: %w", id, err)
	}

	populatePartnerLogoURL(partner, s.uploader)
	return partner, nil
}

func (s *partnerService) DeletePartner(ctx context.Context, id int) error {
	// Row delete only; the media object is not reclaimed.
	if err := s.partnerRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrPartnerNotFound) {
			return ErrPartnerNotFound
		}
		return fmt.Errorf("failed to delete partner %d: %w", id, err)
	}
	return nil
}

func (s *partnerService) uploadPartnerLogo(ctx context.Context, logo *FileUpload) (string, error) {
	ext, err := imageExtensionFromContentType(logo.ContentType)
	if err != nil {
		return "", err
	}
	key := newMediaKey("partners", ext)
	if _, err := s.uploader.Upload(ctx, key, logo.ContentType, logo.Reader); err != nil {
		return "", fmt.Errorf("failed to upload partner logo: %w", err)
	}
	return key, nil
}
