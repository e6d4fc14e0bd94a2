package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Aruzhan01/academy-system/live"
	"github.com/Aruzhan01/academy-system/models"
	"github.com/Aruzhan01/academy-system/repositories"
	"github.com/go-playground/validator/v10"
)

// MatchBroadcaster fans match mutations out to connected WebSocket clients.
// Satisfied by *live.Hub.
type MatchBroadcaster interface {
	BroadcastToRoom(room string, message interface{})
}

type MatchService interface {
	CreateMatch(ctx context.Context, input CreateMatchInput) (*models.Match, error)
	GetMatchByID(ctx context.Context, id int) (*models.Match, error)
	GetAllMatches(ctx context.Context) ([]models.Match, error)
	GetUpcomingMatches(ctx context.Context) ([]models.Match, error)
	UpdateMatch(ctx context.Context, id int, input UpdateMatchInput) (*models.Match, error)
	DeleteMatch(ctx context.Context, id int) error
}

type CreateMatchInput struct {
	HomeTeam    string    `json:"home_team" validate:"required"`
	AwayTeam    string    `json:"away_team" validate:"required"`
	Competition *string   `json:"competition"`
	Venue       *string   `json:"venue"`
	MatchTime   time.Time `json:"match_time"`
}

type UpdateMatchInput struct {
	HomeTeam    *string    `json:"home_team" validate:"omitempty,min=1"`
	AwayTeam    *string    `json:"away_team" validate:"omitempty,min=1"`
	Competition *string    `json:"competition"`
	Venue       *string    `json:"venue"`
	MatchTime   *time.Time `json:"match_time"`
	Status      *string    `json:"status"`
	HomeScore   *int       `json:"home_score"`
	AwayScore   *int       `json:"away_score"`
}

type matchService struct {
	matchRepo repositories.MatchRepository
	hub       MatchBroadcaster
	validate  *validator.Validate
}

func NewMatchService(matchRepo repositories.MatchRepository, hub MatchBroadcaster) MatchService {
	return &matchService{
		matchRepo: matchRepo,
		hub:       hub,
		validate:  validator.New(),
	}
}

func (s *matchService) CreateMatch(ctx context.Context, input CreateMatchInput) (*models.Match, error) {
	input.HomeTeam = strings.TrimSpace(input.HomeTeam)
	input.AwayTeam = strings.TrimSpace(input.AwayTeam)
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}
	if input.MatchTime.IsZero() {
		return nil, ErrMatchTimeRequired
	}

	match := &models.Match{
		HomeTeam:    input.HomeTeam,
		AwayTeam:    input.AwayTeam,
		Competition: input.Competition,
		Venue:       input.Venue,
		MatchTime:   input.MatchTime,
		Status:      models.MatchStatusScheduled,
	}

	if err := s.matchRepo.Create(ctx, match); err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	s.broadcast(live.EventMatchCreated, match)
	return match, nil
}

func (s *matchService) GetMatchByID(ctx context.Context, id int) (*models.Match, error) {
	match, err := s.matchRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match by id %d: %w", id, err)
	}
	return match, nil
}

func (s *matchService) GetAllMatches(ctx context.Context) ([]models.Match, error) {
	matches, err := s.matchRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all matches: %w", err)
	}
	return matches, nil
}

func (s *matchService) GetUpcomingMatches(ctx context.Context) ([]models.Match, error) {
	matches, err := s.matchRepo.GetUpcoming(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get upcoming matches: %w", err)
	}
	return matches, nil
}

func (s *matchService) UpdateMatch(ctx context.Context, id int, input UpdateMatchInput) (*models.Match, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	match, err := s.matchRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match by id %d: %w", id, err)
	}

	if input.HomeTeam != nil {
		match.HomeTeam = strings.TrimSpace(*input.HomeTeam)
	}
	if input.AwayTeam != nil {
		match.AwayTeam = strings.TrimSpace(*input.AwayTeam)
	}
	if input.Competition != nil {
		match.Competition = input.Competition
	}
	if input.Venue != nil {
		match.Venue = input.Venue
	}
	if input.MatchTime != nil {
		match.MatchTime = *input.MatchTime
	}
	if input.Status != nil {
		status := models.MatchStatus(*input.Status)
		if !status.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrInvalidMatchStatus, *input.Status)
		}
		match.Status = status
	}
	if input.HomeScore != nil {
		match.HomeScore = input.HomeScore
	}
	if input.AwayScore != nil {
		match.AwayScore = input.AwayScore
	}

	if err := s.matchRepo.Update(ctx, match); err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to update match %d: %w", id, err)
	}

	s.broadcast(live.EventMatchUpdated, match)
	return match, nil
}

func (s *matchService) DeleteMatch(ctx context.Context, id int) error {
	if err := s.matchRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return ErrMatchNotFound
		}
		return fmt.Errorf("failed to delete match %d: %w", id, err)
	}

	s.broadcast(live.EventMatchDeleted, map[string]int{"id": id})
	return nil
}

func (s *matchService) broadcast(eventType string, payload interface{}) {
	if s.hub == nil {
		return
	}
	s.hub.BroadcastToRoom(live.RoomMatches, live.Message{
		Type:    eventType,
		Payload: payload,
	})
}
