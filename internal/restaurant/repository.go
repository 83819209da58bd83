package restaurant

import "context"

type Repository interface {
	List(ctx context.Context) ([]Restaurant, error)
	FindByID(ctx context.Context, id string) (*Restaurant, error)
	Create(ctx context.Context, r *Restaurant) error
	Update(ctx context.Context, r *Restaurant) error
	Delete(ctx context.Context, id string) error
}

// PlanReader looks up subscription plans. Plans are managed outside this
// service and only read here.
type PlanReader interface {
	// FindPlanRef returns a NotFound error when the plan does not exist.
	FindPlanRef(ctx context.Context, id string) (*PlanRef, error)
}
