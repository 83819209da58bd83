// Package core holds the narrow contracts one domain package needs from
// another, so category, menu and restaurant never import each other.
package core

import (
	"context"

	"github.com/sirajbinsyed/silverstar-server-local/internal/storage"
)

// CategoryRef is the expanded form of a menu item's category reference.
// Listings expose only these fields.
type CategoryRef struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type CategoryReader interface {
	// FindRef returns a NotFound error when the category does not exist.
	FindRef(ctx context.Context, id string) (*CategoryRef, error)
	FindRefs(ctx context.Context, ids []string) (map[string]CategoryRef, error)
}

// DependentItem is what a category cascade needs to know about a menu item.
type DependentItem struct {
	ID            string
	ImagePublicID string
}

type MenuItemDependents interface {
	FindByCategory(ctx context.Context, categoryID string) ([]DependentItem, error)
	DeleteByIDs(ctx context.Context, ids []string) (int64, error)
}

// MediaStore is the remote image host.
type MediaStore interface {
	Upload(ctx context.Context, data []byte, folder string, t storage.Transform) (*storage.Asset, error)
	Delete(ctx context.Context, publicID string) error
	DeleteMany(ctx context.Context, publicIDs []string) error
}

// UserRef is the expanded form of a restaurant's owning admin.
type UserRef struct {
	ID    string `json:"_id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type UserReader interface {
	// FindUserRef returns a NotFound error when the user does not exist.
	FindUserRef(ctx context.Context, id string) (*UserRef, error)
}
