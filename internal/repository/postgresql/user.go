package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jezdibolt/backend-go/internal/domain/user"
	"github.com/jezdibolt/backend-go/internal/pkg/database"
)

type userRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.Repository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT u.id, u.name, u.email, u.contact, u.role, u.password_hash, u.company_id, c.name
		FROM users u
		LEFT JOIN companies c ON c.id = u.company_id
		WHERE LOWER(u.email) = LOWER($1)
	`

	var u user.User
	err := q.QueryRow(ctx, query, email).Scan(
		&u.ID, &u.Name, &u.Email, &u.Contact, &u.Role, &u.PasswordHash, &u.CompanyID, &u.CompanyName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to find user by email: %w", err)
	}

	return u, nil
}

func (r *userRepository) FindByID(ctx context.Context, id int) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT u.id, u.name, u.email, u.contact, u.role, u.password_hash, u.company_id, c.name
		FROM users u
		LEFT JOIN companies c ON c.id = u.company_id
		WHERE u.id = $1
	`

	var u user.User
	err := q.QueryRow(ctx, query, id).Scan(
		&u.ID, &u.Name, &u.Email, &u.Contact, &u.Role, &u.PasswordHash, &u.CompanyID, &u.CompanyName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to find user: %w", err)
	}

	return u, nil
}

func (r *userRepository) Create(ctx context.Context, u user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (name, email, contact, role, password_hash, company_id)
		VALUES ($1, LOWER($2), $3, $4, $5, $6)
		RETURNING id
	`

	err := q.QueryRow(ctx, query,
		u.Name, u.Email, u.Contact, u.Role, u.PasswordHash, u.CompanyID,
	).Scan(&u.ID)
	if err != nil {
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return u, nil
}

func (r *userRepository) GetRole(ctx context.Context, id int) (user.Role, error) {
	q := GetQuerier(ctx, r.db)

	var role user.Role
	err := q.QueryRow(ctx, `SELECT role FROM users WHERE id = $1`, id).Scan(&role)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", user.ErrUserNotFound
		}
		return "", fmt.Errorf("failed to get user role: %w", err)
	}

	return role, nil
}

func (r *userRepository) AttachCompany(ctx context.Context, userID, companyID int) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx,
		`UPDATE users SET company_id = $2 WHERE id = $1 AND company_id IS NULL`,
		userID, companyID,
	)
	if err != nil {
		return fmt.Errorf("failed to attach company: %w", err)
	}

	return nil
}
