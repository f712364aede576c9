package user

import "context"

// Repository is the narrow slice of the user directory the earnings core
// depends on. Emails are stored lower-cased, so FindByEmail expects a
// normalized address.
type Repository interface {
	FindByEmail(ctx context.Context, email string) (User, error)
	FindByID(ctx context.Context, id int) (User, error)
	Create(ctx context.Context, u User) (User, error)
	GetRole(ctx context.Context, id int) (Role, error)
	// AttachCompany sets the employer on accounts that have none yet.
	AttachCompany(ctx context.Context, userID, companyID int) error
}
