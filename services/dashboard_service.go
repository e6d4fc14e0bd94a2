package services

import (
	"context"

	"github.com/Aruzhan01/academy-system/models"
	"github.com/Aruzhan01/academy-system/repositories"
	"golang.org/x/sync/errgroup"
)

type DashboardService interface {
	GetStats(ctx context.Context) (models.DashboardStats, error)
}

type dashboardService struct {
	coachRepo       repositories.CoachRepository
	partnerRepo     repositories.PartnerRepository
	tournamentRepo  repositories.TournamentRepository
	achievementRepo repositories.AchievementRepository
	testimonialRepo repositories.TestimonialRepository
	matchRepo       repositories.MatchRepository
}

func NewDashboardService(
	coachRepo repositories.CoachRepository,
	partnerRepo repositories.PartnerRepository,
	tournamentRepo repositories.TournamentRepository,
	achievementRepo repositories.AchievementRepository,
	testimonialRepo repositories.TestimonialRepository,
	matchRepo repositories.MatchRepository,
) DashboardService {
	return &dashboardService{
		coachRepo:       coachRepo,
		partnerRepo:     partnerRepo,
		tournamentRepo:  tournamentRepo,
		achievementRepo: achievementRepo,
		testimonialRepo: testimonialRepo,
		matchRepo:       matchRepo,
	}
}

func (s *dashboardService) GetStats(ctx context.Context) (models.DashboardStats, error) {
	var stats models.DashboardStats

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.coachRepo.Count(gCtx)
		stats.CoachesTotal = n
		return err
	})
	g.Go(func() error {
		n, err := s.partnerRepo.Count(gCtx)
		stats.PartnersTotal = n
		return err
	})
	g.Go(func() error {
		n, err := s.tournamentRepo.Count(gCtx)
		stats.TournamentsTotal = n
		return err
	})
	g.Go(func() error {
		n, err := s.achievementRepo.Count(gCtx)
		stats.AchievementsTotal = n
		return err
	})
	g.Go(func() error {
		n, err := s.testimonialRepo.Count(gCtx)
		stats.TestimonialsTotal = n
		return err
	})
	g.Go(func() error {
		n, err := s.matchRepo.Count(gCtx)
		stats.MatchesTotal = n
		return err
	})
	g.Go(func() error {
		n, err := s.matchRepo.CountUpcoming(gCtx)
		stats.UpcomingMatches = n
		return err
	})

	if err := g.Wait(); err != nil {
		return models.DashboardStats{}, err
	}
	return stats, nil
}
