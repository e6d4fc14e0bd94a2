package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Aruzhan01/academy-system/models"
)

var ErrCoachNotFound = errors.New("coach not found")

type CoachRepository interface {
	Create(ctx context.Context, coach *models.Coach) error
	GetByID(ctx context.Context, id int) (*models.Coach, error)
	GetAll(ctx context.Context) ([]models.Coach, error)
	Update(ctx context.Context, coach *models.Coach) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
}

type postgresCoachRepository struct {
	db *sql.DB
}

func NewPostgresCoachRepository(db *sql.DB) CoachRepository {
	return &postgresCoachRepository{db: db}
}

func (r *postgresCoachRepository) Create(ctx context.Context, coach *models.Coach) error {
	query := `INSERT INTO coaches (full_name, role, phone, description)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id, created_at`

	return r.db.QueryRowContext(ctx, query,
		coach.FullName, coach.Role, coach.Phone, coach.Description,
	).Scan(&coach.ID, &coach.CreatedAt)
}

func (r *postgresCoachRepository) GetByID(ctx context.Context, id int) (*models.Coach, error) {
	query := `SELECT id, full_name, role, phone, description, created_at
	          FROM coaches WHERE id = $1`

	var coach models.Coach
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&coach.ID, &coach.FullName, &coach.Role, &coach.Phone, &coach.Description, &coach.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCoachNotFound
		}
		return nil, err
	}
	return &coach, nil
}

func (r *postgresCoachRepository) GetAll(ctx context.Context) ([]models.Coach, error) {
	query := `SELECT id, full_name, role, phone, description, created_at
	          FROM coaches ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	coaches := make([]models.Coach, 0)
	for rows.Next() {
		var coach models.Coach
		if scanErr := rows.Scan(
			&coach.ID, &coach.FullName, &coach.Role, &coach.Phone, &coach.Description, &coach.CreatedAt,
		); scanErr != nil {
			return nil, scanErr
		}
		coaches = append(coaches, coach)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return coaches, nil
}

func (r *postgresCoachRepository) Update(ctx context.Context, coach *models.Coach) error {
	query := `UPDATE coaches SET full_name = $1, role = $2, phone = $3, description = $4
	          WHERE id = $5`

	result, err := r.db.ExecContext(ctx, query,
		coach.FullName, coach.Role, coach.Phone, coach.Description, coach.ID,
	)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrCoachNotFound)
}

func (r *postgresCoachRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM coaches WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrCoachNotFound)
}

func (r *postgresCoachRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM coaches`).Scan(&count)
	return count, err
}
