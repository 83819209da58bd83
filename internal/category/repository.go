package category

import "context"

type Repository interface {
	// List returns every category ordered by sortOrder, then name.
	List(ctx context.Context) ([]Category, error)
	FindByID(ctx context.Context, id string) (*Category, error)
	FindBySlug(ctx context.Context, slug string) (*Category, error)
	FindByIDs(ctx context.Context, ids []string) ([]Category, error)

	// Create and Update return ErrDuplicateSlug when the slug is taken.
	Create(ctx context.Context, c *Category) error
	Update(ctx context.Context, c *Category) error

	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}
