package menu

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/sirajbinsyed/silverstar-server-local/internal/core"
	"github.com/sirajbinsyed/silverstar-server-local/internal/storage"
)

const (
	DefaultPreparationTime = 15
	DefaultPageSize        = 50
	MaxPageSize            = 100
)

// Sizes holds the optional size-tiered prices. A zero tier is not offered.
type Sizes struct {
	Quarter  float64 `bson:"quarter" json:"quarter" label:"Price" validate:"gte=0"`
	Half     float64 `bson:"half" json:"half" label:"Price" validate:"gte=0"`
	Full     float64 `bson:"full" json:"full" label:"Price" validate:"gte=0"`
	Normal   float64 `bson:"normal" json:"normal" label:"Price" validate:"gte=0"`
	Schezwan float64 `bson:"schezwan" json:"schezwan" label:"Price" validate:"gte=0"`
}

type MenuItem struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string        `bson:"name" json:"name" label:"Menu item name" validate:"required,max=100"`
	Description string        `bson:"description" json:"description" label:"Description" validate:"max=500"`

	// Category is the stored reference. Responses carry CategoryRef in its
	// place, expanded to name and slug.
	Category    bson.ObjectID     `bson:"category" json:"-" label:"Category" validate:"required"`
	CategoryRef *core.CategoryRef `bson:"-" json:"category"`

	Price           float64       `bson:"price" json:"price" label:"Price" validate:"gte=0"`
	Sizes           Sizes         `bson:"sizes" json:"sizes"`
	Image           storage.Asset `bson:"image" json:"image"`
	IsAvailable     bool          `bson:"isAvailable" json:"isAvailable"`
	IsVegetarian    bool          `bson:"isVegetarian" json:"isVegetarian"`
	IsSpicy         bool          `bson:"isSpicy" json:"isSpicy"`
	PreparationTime int           `bson:"preparationTime" json:"preparationTime" label:"Preparation time" validate:"min=1"`
	SortOrder       int           `bson:"sortOrder" json:"sortOrder"`
	Tags            []string      `bson:"tags" json:"tags"`
	CreatedAt       time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// Input is a create or update request after transport decoding. Nil
// fields were not supplied.
//
// Sizes is either a decoded JSON object or its textual form. The flag
// fields keep the textual "true"/"false" the client sent.
type Input struct {
	Name            *string
	Description     *string
	Category        *string
	Price           *float64
	Sizes           any
	IsAvailable     *string
	IsVegetarian    *string
	IsSpicy         *string
	PreparationTime *int
	SortOrder       *int
	Tags            []string
}

// Filter narrows a listing. Empty fields do not restrict.
type Filter struct {
	Category    string
	Search      string
	IsAvailable *bool
}

type Pagination struct {
	Page  int
	Limit int
}

// Page is one page of a listing with the totals needed to render
// pagination controls.
type Page struct {
	Items []MenuItem `json:"data"`
	Total int64      `json:"total"`
	Page  int        `json:"page"`
	Pages int        `json:"pages"`
}
