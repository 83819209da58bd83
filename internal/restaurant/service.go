package restaurant

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"

	"github.com/sirajbinsyed/silverstar-server-local/internal/apperr"
	"github.com/sirajbinsyed/silverstar-server-local/internal/core"
	"github.com/sirajbinsyed/silverstar-server-local/internal/validate"
)

var ErrNotFound = apperr.NotFound("Restaurant not found")

// Accepted forms of validityOfPlan.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

type Service struct {
	repo  Repository
	users core.UserReader
	plans PlanReader
	log   *zap.Logger
}

func NewService(
	repo Repository,
	users core.UserReader,
	plans PlanReader,
	log *zap.Logger,
) *Service {
	return &Service{
		repo:  repo,
		users: users,
		plans: plans,
		log:   log,
	}
}

// --------------------------------------------------
// Reads
// --------------------------------------------------

func (s *Service) List(ctx context.Context) ([]Restaurant, error) {
	restaurants, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	x := newExpander(s)
	for i := range restaurants {
		if err := x.expand(ctx, &restaurants[i]); err != nil {
			return nil, err
		}
	}
	return restaurants, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Restaurant, error) {
	restaurant, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := newExpander(s).expand(ctx, restaurant); err != nil {
		return nil, err
	}
	return restaurant, nil
}

// --------------------------------------------------
// Writes
// --------------------------------------------------

// Create stores a new restaurant. Without an explicit adminId the
// restaurant belongs to actorID, the authenticated user.
func (s *Service) Create(ctx context.Context, in Input, actorID string) (*Restaurant, error) {
	restaurant := &Restaurant{IsActive: true}
	if in.AdminID == nil || strings.TrimSpace(*in.AdminID) == "" {
		in.AdminID = &actorID
	}

	if err := applyInput(restaurant, in); err != nil {
		return nil, err
	}
	if err := validate.Struct(restaurant); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, restaurant); err != nil {
		return nil, err
	}

	s.log.Info("restaurant created",
		zap.String("restaurant_id", restaurant.ID.Hex()),
		zap.String("admin_id", restaurant.AdminID.Hex()),
	)
	s.expandAfterWrite(ctx, restaurant)
	return restaurant, nil
}

// Update merges the supplied fields into the stored restaurant.
func (s *Service) Update(ctx context.Context, id string, in Input) (*Restaurant, error) {
	restaurant, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := applyInput(restaurant, in); err != nil {
		return nil, err
	}
	if err := validate.Struct(restaurant); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, restaurant); err != nil {
		return nil, err
	}
	s.expandAfterWrite(ctx, restaurant)
	return restaurant, nil
}

// expandAfterWrite expands references on a record that is already stored.
// A lookup failure leaves the references unexpanded.
func (s *Service) expandAfterWrite(ctx context.Context, restaurant *Restaurant) {
	if err := newExpander(s).expand(ctx, restaurant); err != nil {
		s.log.Warn("expanding restaurant references failed",
			zap.String("restaurant_id", restaurant.ID.Hex()),
			zap.Error(err),
		)
	}
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// --------------------------------------------------
// Helpers
// --------------------------------------------------

func applyInput(r *Restaurant, in Input) error {
	setText(&r.RestaurantName, in.RestaurantName)
	setText(&r.LogoImage, in.LogoImage)
	setText(&r.LocationLink, in.LocationLink)
	setText(&r.WebsiteLink, in.WebsiteLink)
	setText(&r.InstagramLink, in.InstagramLink)
	setText(&r.FacebookLink, in.FacebookLink)
	setText(&r.WhatsappNumber, in.WhatsappNumber)
	setText(&r.PhoneNumber, in.PhoneNumber)

	if in.IsActive != nil {
		r.IsActive = *in.IsActive
	}

	if in.AdminID != nil {
		oid, err := bson.ObjectIDFromHex(strings.TrimSpace(*in.AdminID))
		if err != nil {
			return apperr.Invalid("Invalid admin id")
		}
		r.AdminID = oid
	}

	if in.PlanID != nil {
		if v := strings.TrimSpace(*in.PlanID); v == "" {
			r.PlanID = nil
		} else {
			oid, err := bson.ObjectIDFromHex(v)
			if err != nil {
				return apperr.Invalid("Invalid plan id")
			}
			r.PlanID = &oid
		}
	}

	if in.ValidityOfPlan != nil {
		if v := strings.TrimSpace(*in.ValidityOfPlan); v == "" {
			r.ValidityOfPlan = nil
		} else {
			t, err := parseDate(v)
			if err != nil {
				return err
			}
			r.ValidityOfPlan = &t
		}
	}
	return nil
}

func setText(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}

func parseDate(v string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, apperr.Invalid("Validity of plan must be a date")
}

// expander resolves admin and plan references, looking each id up once per
// request. A reference whose target no longer exists expands to nil.
type expander struct {
	s     *Service
	users map[bson.ObjectID]*core.UserRef
	plans map[bson.ObjectID]*PlanRef
}

func newExpander(s *Service) *expander {
	return &expander{
		s:     s,
		users: make(map[bson.ObjectID]*core.UserRef),
		plans: make(map[bson.ObjectID]*PlanRef),
	}
}

func (x *expander) expand(ctx context.Context, r *Restaurant) error {
	if !r.AdminID.IsZero() {
		ref, ok := x.users[r.AdminID]
		if !ok {
			var err error
			ref, err = x.s.users.FindUserRef(ctx, r.AdminID.Hex())
			if err != nil && !apperr.IsNotFound(err) {
				return err
			}
			x.users[r.AdminID] = ref
		}
		r.Admin = ref
	}

	if r.PlanID != nil {
		ref, ok := x.plans[*r.PlanID]
		if !ok {
			var err error
			ref, err = x.s.plans.FindPlanRef(ctx, r.PlanID.Hex())
			if err != nil && !apperr.IsNotFound(err) {
				return err
			}
			x.plans[*r.PlanID] = ref
		}
		r.Plan = ref
	}
	return nil
}
