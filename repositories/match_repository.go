package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Aruzhan01/academy-system/models"
)

var ErrMatchNotFound = errors.New("match not found")

type MatchRepository interface {
	Create(ctx context.Context, match *models.Match) error
	GetByID(ctx context.Context, id int) (*models.Match, error)
	GetAll(ctx context.Context) ([]models.Match, error)
	GetUpcoming(ctx context.Context) ([]models.Match, error)
	Update(ctx context.Context, match *models.Match) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
	CountUpcoming(ctx context.Context) (int, error)
}

type postgresMatchRepository struct {
	db *sql.DB
}

func NewPostgresMatchRepository(db *sql.DB) MatchRepository {
	return &postgresMatchRepository{db: db}
}

const matchColumns = `id, home_team, away_team, competition, venue, match_time, status, home_score, away_score, created_at`

func scanMatch(row interface{ Scan(...any) error }, match *models.Match) error {
	return row.Scan(
		&match.ID, &match.HomeTeam, &match.AwayTeam, &match.Competition, &match.Venue,
		&match.MatchTime, &match.Status, &match.HomeScore, &match.AwayScore, &match.CreatedAt,
	)
}

func (r *postgresMatchRepository) Create(ctx context.Context, match *models.Match) error {
	query := `INSERT INTO matches (home_team, away_team, competition, venue, match_time, status, home_score, away_score)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	          RETURNING id, created_at`

	return r.db.QueryRowContext(ctx, query,
		match.HomeTeam, match.AwayTeam, match.Competition, match.Venue,
		match.MatchTime, match.Status, match.HomeScore, match.AwayScore,
	).Scan(&match.ID, &match.CreatedAt)
}

func (r *postgresMatchRepository) GetByID(ctx context.Context, id int) (*models.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE id = $1`

	var match models.Match
	err := scanMatch(r.db.QueryRowContext(ctx, query, id), &match)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	return &match, nil
}

func (r *postgresMatchRepository) GetAll(ctx context.Context) ([]models.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches ORDER BY match_time ASC`
	return r.queryMatches(ctx, query)
}

// GetUpcoming returns scheduled matches with a kickoff in the future,
// soonest first.
func (r *postgresMatchRepository) GetUpcoming(ctx context.Context) ([]models.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches
	          WHERE status = 'scheduled' AND match_time > now()
	          ORDER BY match_time ASC`
	return r.queryMatches(ctx, query)
}

func (r *postgresMatchRepository) queryMatches(ctx context.Context, query string, args ...any) ([]models.Match, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	matches := make([]models.Match, 0)
	for rows.Next() {
		var match models.Match
		if scanErr := scanMatch(rows, &match); scanErr != nil {
			return nil, scanErr
		}
		matches = append(matches, match)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return matches, nil
}

func (r *postgresMatchRepository) Update(ctx context.Context, match *models.Match) error {
	query := `UPDATE matches
	          SET home_team = $1, away_team = $2, competition = $3, venue = $4,
	              match_time = $5, status = $6, home_score = $7, away_score = $8
	          WHERE id = $9`

	result, err := r.db.ExecContext(ctx, query,
		match.HomeTeam, match.AwayTeam, match.Competition, match.Venue,
		match.MatchTime, match.Status, match.HomeScore, match.AwayScore, match.ID,
	)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *postgresMatchRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM matches WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *postgresMatchRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM matches`).Scan(&count)
	return count, err
}

func (r *postgresMatchRepository) CountUpcoming(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM matches WHERE status = 'scheduled' AND match_time > now()`,
	).Scan(&count)
	return count, err
}
