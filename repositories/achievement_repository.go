package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Aruzhan01/academy-system/models"
)

var ErrAchievementNotFound = errors.New("achievement not found")

type AchievementRepository interface {
	Create(ctx context.Context, achievement *models.Achievement) error
	GetByID(ctx context.Context, id int) (*models.Achievement, error)
	GetAll(ctx context.Context) ([]models.Achievement, error)
	Update(ctx context.Context, achievement *models.Achievement) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
}

type postgresAchievementRepository struct {
	db *sql.DB
}

func NewPostgresAchievementRepository(db *sql.DB) AchievementRepository {
	return &postgresAchievementRepository{db: db}
}

func (r *postgresAchievementRepository) Create(ctx context.Context, achievement *models.Achievement) error {
	query := `INSERT INTO achievements (title, category, description, image_key, video_key)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id, created_at`

	return r.db.QueryRowContext(ctx, query,
		achievement.Title, achievement.Category, achievement.Description,
		achievement.ImageKey, achievement.VideoKey,
	).Scan(&achievement.ID, &achievement.CreatedAt)
}

func (r *postgresAchievementRepository) GetByID(ctx context.Context, id int) (*models.Achievement, error) {
	query := `SELECT id, title, category, description, image_key, video_key, created_at
	          FROM achievements WHERE id = $1`

	var achievement models.Achievement
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&achievement.ID, &achievement.Title, &achievement.Category, &achievement.Description,
		&achievement.ImageKey, &achievement.VideoKey, &achievement.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAchievementNotFound
		}
		return nil, err
	}
	return &achievement, nil
}

func (r *postgresAchievementRepository) GetAll(ctx context.Context) ([]models.Achievement, error) {
	query := `SELECT id, title, category, description, image_key, video_key, created_at
	          FROM achievements ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	achievements := make([]models.Achievement, 0)
	for rows.Next() {
		var achievement models.Achievement
		if scanErr := rows.Scan(
			&achievement.ID, &achievement.Title, &achievement.Category, &achievement.Description,
			&achievement.ImageKey, &achievement.VideoKey, &achievement.CreatedAt,
		); scanErr != nil {
			return nil, scanErr
		}
		achievements = append(achievements, achievement)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return achievements, nil
}

func (r *postgresAchievementRepository) Update(ctx context.Context, achievement *models.Achievement) error {
	query := `UPDATE achievements SET title = $1, category = $2, description = $3, image_key = $4, video_key = $5
	          WHERE id = $6`

	result, err := r.db.ExecContext(ctx, query,
		achievement.Title, achievement.Category, achievement.Description,
		achievement.ImageKey, achievement.VideoKey, achievement.ID,
	)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrAchievementNotFound)
}

func (r *postgresAchievementRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM achievements WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrAchievementNotFound)
}

func (r *postgresAchievementRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM achievements`).Scan(&count)
	return count, err
}
