package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Aruzhan01/academy-system/models"
)

var ErrTestimonialNotFound = errors.New("testimonial not found")

type TestimonialRepository interface {
	Create(ctx context.Context, testimonial *models.Testimonial) error
	GetByID(ctx context.Context, id int) (*models.Testimonial, error)
	GetAll(ctx context.Context) ([]models.Testimonial, error)
	Update(ctx context.Context, testimonial *models.Testimonial) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
}

type postgresTestimonialRepository struct {
	db *sql.DB
}

func NewPostgresTestimonialRepository(db *sql.DB) TestimonialRepository {
	return &postgresTestimonialRepository{db: db}
}

func (r *postgresTestimonialRepository) Create(ctx context.Context, testimonial *models.Testimonial) error {
	query := `INSERT INTO testimonials (name, role, description)
	          VALUES ($1, $2, $3)
	          RETURNING id, created_at`

	return r.db.QueryRowContext(ctx, query,
		testimonial.Name, testimonial.Role, testimonial.Description,
	).Scan(&testimonial.ID, &testimonial.CreatedAt)
}

func (r *postgresTestimonialRepository) GetByID(ctx context.Context, id int) (*models.Testimonial, error) {
	query := `SELECT id, name, role, description, created_at
	          FROM testimonials WHERE id = $1`

	var testimonial models.Testimonial
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&testimonial.ID, &testimonial.Name, &testimonial.Role, &testimonial.Description, &testimonial.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTestimonialNotFound
		}
		return nil, err
	}
	return &testimonial, nil
}

func (r *postgresTestimonialRepository) GetAll(ctx context.Context) ([]models.Testimonial, error) {
	query := `SELECT id, name, role, description, created_at
	          FROM testimonials ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	testimonials := make([]models.Testimonial, 0)
	for rows.Next() {
		var testimonial models.Testimonial
		if scanErr := rows.Scan(
			&testimonial.ID, &testimonial.Name, &testimonial.Role, &testimonial.Description, &testimonial.CreatedAt,
		); scanErr != nil {
			return nil, scanErr
		}
		testimonials = append(testimonials, testimonial)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return testimonials, nil
}

func (r *postgresTestimonialRepository) Update(ctx context.Context, testimonial *models.Testimonial) error {
	query := `UPDATE testimonials SET name = $1, role = $2, description = $3
	          WHERE id = $4`

	result, err := r.db.ExecContext(ctx, query,
		testimonial.Name, testimonial.Role, testimonial.Description, testimonial.ID,
	)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrTestimonialNotFound)
}

func (r *postgresTestimonialRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM testimonials WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrTestimonialNotFound)
}

func (r *postgresTestimonialRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM testimonials`).Scan(&count)
	return count, err
}
