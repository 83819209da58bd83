package restaurant

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/sirajbinsyed/silverstar-server-local/internal/core"
)

type Restaurant struct {
	ID             bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	RestaurantName string        `bson:"restaurantName" json:"restaurantName" label:"Restaurant name" validate:"required"`
	LogoImage      string        `bson:"logoImage,omitempty" json:"logoImage,omitempty"`

	// AdminID and PlanID are the stored references; responses carry the
	// expanded Admin and Plan under the same keys.
	AdminID bson.ObjectID  `bson:"adminId" json:"-" label:"Admin" validate:"required"`
	Admin   *core.UserRef  `bson:"-" json:"adminId"`
	PlanID  *bson.ObjectID `bson:"planId,omitempty" json:"-"`
	Plan    *PlanRef       `bson:"-" json:"planId,omitempty"`

	LocationLink   string     `bson:"locationLink,omitempty" json:"locationLink,omitempty"`
	WebsiteLink    string     `bson:"websiteLink,omitempty" json:"websiteLink,omitempty"`
	InstagramLink  string     `bson:"instagramLink,omitempty" json:"instagramLink,omitempty"`
	FacebookLink   string     `bson:"facebookLink,omitempty" json:"facebookLink,omitempty"`
	WhatsappNumber string     `bson:"whatsappNumber,omitempty" json:"whatsappNumber,omitempty"`
	PhoneNumber    string     `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
	IsActive       bool       `bson:"isActive" json:"isActive"`
	ValidityOfPlan *time.Time `bson:"validityOfPlan,omitempty" json:"validityOfPlan,omitempty"`
	CreatedAt      time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// PlanRef is the expanded subscription plan of a restaurant.
type PlanRef struct {
	ID       bson.ObjectID `bson:"_id" json:"_id"`
	PlanName string        `bson:"planName" json:"planName"`
	Validity any           `bson:"validity" json:"validity"`
}

// Input carries the fields of a create or update request. Nil means the
// field was not supplied; an empty PlanID or ValidityOfPlan clears it.
type Input struct {
	RestaurantName *string `json:"restaurantName"`
	LogoImage      *string `json:"logoImage"`
	AdminID        *string `json:"adminId"`
	LocationLink   *string `json:"locationLink"`
	WebsiteLink    *string `json:"websiteLink"`
	InstagramLink  *string `json:"instagramLink"`
	FacebookLink   *string `json:"facebookLink"`
	WhatsappNumber *string `json:"whatsappNumber"`
	PhoneNumber    *string `json:"phoneNumber"`
	IsActive       *bool   `json:"isActive"`
	ValidityOfPlan *string `json:"validityOfPlan"`
	PlanID         *string `json:"planId"`
}
