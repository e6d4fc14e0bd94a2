package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Aruzhan01/academy-system/models"
)

var ErrAboutNotFound = errors.New("about record not found")

// AboutRepository manages the singleton academy profile row. The table has no
// primary key; the initial migration seeds exactly one row and Update touches
// the whole table.
type AboutRepository interface {
	Get(ctx context.Context) (*models.About, error)
	Update(ctx context.Context, about *models.About) error
}

type postgresAboutRepository struct {
	db *sql.DB
}

func NewPostgresAboutRepository(db *sql.DB) AboutRepository {
	return &postgresAboutRepository{db: db}
}

func (r *postgresAboutRepository) Get(ctx context.Context) (*models.About, error) {
	query := `SELECT company_name, location, established_year, email, contact_phone
	          FROM about LIMIT 1`

	var about models.About
	err := r.db.QueryRowContext(ctx, query).Scan(
		&about.CompanyName, &about.Location, &about.EstablishedYear, &about.Email, &about.ContactPhone,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAboutNotFound
		}
		return nil, err
	}
	return &about, nil
}

func (r *postgresAboutRepository) Update(ctx context.Context, about *models.About) error {
	query := `UPDATE about
	          SET company_name = $1, location = $2, established_year = $3, email = $4, contact_phone = $5`

	result, err := r.db.ExecContext(ctx, query,
		about.CompanyName, about.Location, about.EstablishedYear, about.Email, about.ContactPhone,
	)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrAboutNotFound)
}
