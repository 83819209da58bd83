package menu

import (
	"context"

	"github.com/sirajbinsyed/silverstar-server-local/internal/core"
)

// Repository persists menu items. It also serves the category cascade
// through core.MenuItemDependents.
type Repository interface {
	// Find returns matching items sorted by sortOrder, then name. A zero
	// limit returns every match.
	Find(ctx context.Context, f Filter, skip, limit int64) ([]MenuItem, error)
	Count(ctx context.Context, f Filter) (int64, error)
	FindByID(ctx context.Context, id string) (*MenuItem, error)

	Create(ctx context.Context, item *MenuItem) error
	Update(ctx context.Context, item *MenuItem) error
	Delete(ctx context.Context, id string) error

	core.MenuItemDependents
}
