package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jezdibolt/backend-go/internal/domain/company"
	"github.com/jezdibolt/backend-go/internal/pkg/database"
)

type companyRepository struct {
	db *database.DB
}

func NewCompanyRepository(db *database.DB) company.Repository {
	return &companyRepository{db: db}
}

func (r *companyRepository) FindOrCreateByName(ctx context.Context, name string, city *string) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO companies (name, city)
		VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id, name, city, contact_email, phone
	`

	var c company.Company
	err := q.QueryRow(ctx, query, name, city).Scan(
		&c.ID, &c.Name, &c.City, &c.ContactEmail, &c.Phone,
	)
	if err != nil {
		return company.Company{}, fmt.Errorf("failed to find or create company: %w", err)
	}

	return c, nil
}

func (r *companyRepository) FindByID(ctx context.Context, id int) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	var c company.Company
	err := q.QueryRow(ctx,
		`SELECT id, name, city, contact_email, phone FROM companies WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name, &c.City, &c.ContactEmail, &c.Phone)
	if err != nil {
		if err == pgx.ErrNoRows {
			return company.Company{}, company.ErrCompanyNotFound
		}
		return company.Company{}, fmt.Errorf("failed to find company: %w", err)
	}

	return c, nil
}
