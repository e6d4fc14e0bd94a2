package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Aruzhan01/academy-system/models"
)

var ErrPartnerNotFound = errors.New("partner not found")

type PartnerRepository interface {
	Create(ctx context.Context, partner *models.Partner) error
	GetByID(ctx context.Context, id int) (*models.Partner, error)
	GetAll(ctx context.Context) ([]models.Partner, error)
	Update(ctx context.Context, partner *models.Partner) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
}

type postgresPartnerRepository struct {
	db *sql.DB
}

func NewPostgresPartnerRepository(db *sql.DB) PartnerRepository {
	return &postgresPartnerRepository{db: db}
}

func (r *postgresPartnerRepository) Create(ctx context.Context, partner *models.Partner) error {
	query := `INSERT INTO partners (name, description, website, logo_key)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id, created_at`

	return r.db.QueryRowContext(ctx, query,
		partner.Name, partner.Description, partner.Website, partner.LogoKey,
	).Scan(&partner.ID, &partner.CreatedAt)
}

func (r *postgresPartnerRepository) GetByID(ctx context.Context, id int) (*models.Partner, error) {
	query := `SELECT id, name, description, website, logo_key, created_at
	          FROM partners WHERE id = $1`

	var partner models.Partner
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&partner.ID, &partner.Name, &partner.Description, &partner.Website, &partner.LogoKey, &partner.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPartnerNotFound
		}
		return nil, err
	}
	return &partner, nil
}

func (r *postgresPartnerRepository) GetAll(ctx context.Context) ([]models.Partner, error) {
	query := `SELECT id, name, description, website, logo_key, created_at
	          FROM partners ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	partners := make([]models.Partner, 0)
	for rows.Next() {
		var partner models.Partner
		if scanErr := rows.Scan(
			&partner.ID, &partner.Name, &partner.Description, &partner.Website, &partner.LogoKey, &partner.CreatedAt,
		); scanErr != nil {
			return nil, scanErr
		}
		partners = append(partners, partner)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return partners, nil
}

func (r *postgresPartnerRepository) Update(ctx context.Context, partner *models.Partner) error {
	query := `UPDATE partners SET name = $1, description = $2, website = $3, logo_key = $4
	          WHERE id = $5`

	result, err := r.db.ExecContext(ctx, query,
		partner.Name, partner.Description, partner.Website, partner.LogoKey, partner.ID,
	)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrPartnerNotFound)
}

func (r *postgresPartnerRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM partners WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrPartnerNotFound)
}

func (r *postgresPartnerRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM partners`).Scan(&count)
	return count, err
}
