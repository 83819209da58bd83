package category

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	DefaultIcon  = "UtensilsCrossed"
	DefaultColor = "from-amber-400 to-orange-500"
)

type Category struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string        `bson:"name" json:"name" label:"Category name" validate:"required,max=50"`
	Slug        string        `bson:"slug" json:"slug"`
	Description string        `bson:"description" json:"description" label:"Description" validate:"max=200"`
	Icon        string        `bson:"icon" json:"icon"`
	Color       string        `bson:"color" json:"color"`
	IsActive    bool          `bson:"isActive" json:"isActive"`
	SortOrder   int           `bson:"sortOrder" json:"sortOrder"`
	CreatedAt   time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// Input carries the fields of a create or update request. Nil means the
// field was not supplied.
type Input struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	Color       *string `json:"color"`
	IsActive    *bool   `json:"isActive"`
	SortOrder   *int    `json:"sortOrder"`
}

// CascadeSummary reports what a category deletion removed.
type CascadeSummary struct {
	CategoryID         string `json:"categoryId"`
	ItemsDeleted       int64  `json:"itemsDeleted"`
	ImagesDeleted      int    `json:"imagesDeleted"`
	ImageCleanupFailed bool   `json:"imageCleanupFailed"`
}
