package company

import "context"

// Repository - employer directory, keyed by name.
type Repository interface {
	FindOrCreateByName(ctx context.Context, name string, city *string) (Company, error)
	FindByID(ctx context.Context, id int) (Company, error)
}
