package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Aruzhan01/academy-system/models"
	"github.com/Aruzhan01/academy-system/repositories"
)

type fakeTournamentRepo struct {
	countVal int
	countErr error
}

func (f *fakeTournamentRepo) Create(ctx context.Context, tournament *models.Tournament) error {
	return nil
}

func (f *fakeTournamentRepo) GetByID(ctx context.Context, id int) (*models.Tournament, error) {
	return nil, repositories.ErrTournamentNotFound
}

func (f *fakeTournamentRepo) GetAll(ctx context.Context) ([]models.Tournament, error) {
	return nil, nil
}

func (f *fakeTournamentRepo) Update(ctx context.Context, tournament *models.Tournament) error {
	return repositories.ErrTournamentNotFound
}

func (f *fakeTournamentRepo) Delete(ctx context.Context, id int) error {
	return repositories.ErrTournamentNotFound
}

func (f *fakeTournamentRepo) Count(ctx context.Context) (int, error) {
	return f.countVal, f.countErr
}

type fakeTestimonialRepo struct {
	countVal int
	countErr error
}

func (f *fakeTestimonialRepo) Create(ctx context.Context, testimonial *models.Testimonial) error {
	return nil
}

func (f *fakeTestimonialRepo) GetByID(ctx context.Context, id int) (*models.Testimonial, error) {
	return nil, repositories.ErrTestimonialNotFound
}

func (f *fakeTestimonialRepo) GetAll(ctx context.Context) ([]models.Testimonial, error) {
	return nil, nil
}

func (f *fakeTestimonialRepo) Update(ctx context.Context, testimonial *models.Testimonial) error {
	return repositories.ErrTestimonialNotFound
}

func (f *fakeTestimonialRepo) Delete(ctx context.Context, id int) error {
	return repositories.ErrTestimonialNotFound
}

func (f *fakeTestimonialRepo) Count(ctx context.Context) (int, error) {
	return f.countVal, f.countErr
}

func TestGetStats_CollectsAllCounts(t *testing.T) {
	coachRepo := newFakeCoachRepo()
	coachRepo.countVal = 4
	partnerRepo := newFakePartnerRepo()
	partnerRepo.countVal = 3
	matchRepo := newFakeMatchRepo()
	matchRepo.countVal = 12
	matchRepo.countUpcomingVal = 2
	achievementRepo := newFakeAchievementRepo()
	achievementRepo.countVal = 7

	svc := NewDashboardService(
		coachRepo,
		partnerRepo,
		&fakeTournamentRepo{countVal: 5},
		achievementRepo,
		&fakeTestimonialRepo{countVal: 9},
		matchRepo,
	)

	stats, err := svc.GetStats(context.Background())
	if err != nil {
		t.Fatalf("get stats: %v", err)
	}

	want := models.DashboardStats{
		CoachesTotal:      4,
		PartnersTotal:     3,
		TournamentsTotal:  5,
		AchievementsTotal: 7,
		TestimonialsTotal: 9,
		MatchesTotal:      12,
		UpcomingMatches:   2,
	}
	if stats != want {
		t.Fatalf("unexpected stats: got=%+v want=%+v", stats, want)
	}
}

func TestGetStats_PropagatesCountError(t *testing.T) {
	countErr := errors.New("count failed")
	matchRepo := newFakeMatchRepo()
	matchRepo.countErr = countErr

	svc := NewDashboardService(
		newFakeCoachRepo(),
		newFakePartnerRepo(),
		&fakeTournamentRepo{},
		newFakeAchievementRepo(),
		&fakeTestimonialRepo{},
		matchRepo,
	)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if _, err := svc.GetStats(ctx); !errors.Is(err, countErr) {
		t.Fatalf("expected count error, got %v", err)
	}
}
