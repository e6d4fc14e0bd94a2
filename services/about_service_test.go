package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Aruzhan01/academy-system/models"
	"github.com/Aruzhan01/academy-system/repositories"
)

type fakeAboutRepo struct {
	about *models.About
}

func (f *fakeAboutRepo) Get(ctx context.Context) (*models.About, error) {
	if f.about == nil {
		return nil, repositories.ErrAboutNotFound
	}
	copied := *f.about
	return &copied, nil
}

func (f *fakeAboutRepo) Update(ctx context.Context, about *models.About) error {
	if f.about == nil {
		return repositories.ErrAboutNotFound
	}
	stored := *about
	f.about = &stored
	return nil
}

func seededAboutRepo() *fakeAboutRepo {
	return &fakeAboutRepo{about: &models.About{
		CompanyName:     "Academy",
		Location:        "Almaty",
		EstablishedYear: 2015,
		Email:           "info@academy.kz",
		ContactPhone:    "+7 727 000 0000",
	}}
}

func TestGetAbout(t *testing.T) {
	svc := NewAboutService(seededAboutRepo())

	about, err := svc.GetAbout(context.Background())
	if err != nil {
		t.Fatalf("get about: %v", err)
	}
	if about.CompanyName != "Academy" {
		t.Fatalf("unexpected company name: %q", about.CompanyName)
	}
}

func TestGetAbout_MissingRow(t *testing.T) {
	svc := NewAboutService(&fakeAboutRepo{})

	if _, err := svc.GetAbout(context.Background()); !errors.Is(err, ErrAboutNotFound) {
		t.Fatalf("expected ErrAboutNotFound, got %v", err)
	}
}

func TestUpdateAbout_RetainsOmittedFields(t *testing.T) {
	repo := seededAboutRepo()
	svc := NewAboutService(repo)

	location := "Astana"
	about, err := svc.UpdateAbout(context.Background(), UpdateAboutInput{Location: &location})
	if err != nil {
		t.Fatalf("update about: %v", err)
	}

	if about.Location != "Astana" {
		t.Fatalf("unexpected location: %q", about.Location)
	}
	if about.CompanyName != "Academy" || about.EstablishedYear != 2015 {
		t.Fatalf("omitted fields must be retained: %+v", about)
	}
}

func TestUpdateAbout_RejectsImplausibleYear(t *testing.T) {
	svc := NewAboutService(seededAboutRepo())

	for _, year := range []int{1899, time.Now().Year() + 1} {
		y := year
		if _, err := svc.UpdateAbout(context.Background(), UpdateAboutInput{EstablishedYear: &y}); !errors.Is(err, ErrAboutInvalidYear) {
			t.Fatalf("expected ErrAboutInvalidYear for %d, got %v", year, err)
		}
	}
}

func TestUpdateAbout_RejectsMalformedEmail(t *testing.T) {
	svc := NewAboutService(seededAboutRepo())

	email := "not-an-email"
	if _, err := svc.UpdateAbout(context.Background(), UpdateAboutInput{Email: &email}); !errors.Is(err, ErrValidationFailed) {
		t.Fatalf("expected ErrValidationFailed, got %v", err)
	}
}
