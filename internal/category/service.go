package category

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/sirajbinsyed/silverstar-server-local/internal/apperr"
	"github.com/sirajbinsyed/silverstar-server-local/internal/core"
	"github.com/sirajbinsyed/silverstar-server-local/internal/metrics"
	"github.com/sirajbinsyed/silverstar-server-local/internal/validate"
)

const listCacheKey = "categories:all"

var (
	ErrNotFound      = apperr.NotFound("Category not found")
	ErrDuplicateSlug = apperr.Invalid("Category with this name already exists")
)

// Cache stores the rendered category listing.
type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) (bool, error)
	SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

type Service struct {
	repo     Repository
	items    core.MenuItemDependents
	media    core.MediaStore
	cache    Cache
	cacheTTL time.Duration
	metrics  *metrics.Metrics
	log      *zap.Logger
}

func NewService(
	repo Repository,
	items core.MenuItemDependents,
	media core.MediaStore,
	log *zap.Logger,
) *Service {
	return &Service{
		repo:  repo,
		items: items,
		media: media,
		log:   log,
	}
}

func (s *Service) WithCache(cache Cache, ttl time.Duration) *Service {
	s.cache = cache
	s.cacheTTL = ttl
	return s
}

func (s *Service) WithMetrics(m *metrics.Metrics) *Service {
	s.metrics = m
	return s
}

// --------------------------------------------------
// Reads
// --------------------------------------------------

func (s *Service) List(ctx context.Context) ([]Category, error) {
	var categories []Category

	if s.cache != nil {
		hit, err := s.cache.GetJSON(ctx, listCacheKey, &categories)
		if err != nil {
			s.log.Warn("category cache read failed", zap.Error(err))
		} else if hit {
			return categories, nil
		}
	}

	categories, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, listCacheKey, categories, s.cacheTTL); err != nil {
			s.log.Warn("category cache write failed", zap.Error(err))
		}
	}
	return categories, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Category, error) {
	return s.repo.FindByID(ctx, id)
}

// FindRef implements core.CategoryReader.
func (s *Service) FindRef(ctx context.Context, id string) (*core.CategoryRef, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &core.CategoryRef{ID: c.ID.Hex(), Name: c.Name, Slug: c.Slug}, nil
}

// FindRefs implements core.CategoryReader. Unknown ids are absent from
// the result.
func (s *Service) FindRefs(ctx context.Context, ids []string) (map[string]core.CategoryRef, error) {
	refs := make(map[string]core.CategoryRef, len(ids))
	if len(ids) == 0 {
		return refs, nil
	}

	categories, err := s.repo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, c := range categories {
		refs[c.ID.Hex()] = core.CategoryRef{ID: c.ID.Hex(), Name: c.Name, Slug: c.Slug}
	}
	return refs, nil
}

// --------------------------------------------------
// Writes
// --------------------------------------------------

func (s *Service) Create(ctx context.Context, in Input) (*Category, error) {
	c := &Category{
		Icon:     DefaultIcon,
		Color:    DefaultColor,
		IsActive: true,
	}
	applyInput(c, in)
	c.Slug = Slugify(c.Name)

	if err := s.check(ctx, c); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return c, nil
}

// Update merges the supplied fields. A name change recomputes the slug
// and re-checks it for uniqueness.
func (s *Service) Update(ctx context.Context, id string, in Input) (*Category, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	oldName := c.Name
	applyInput(c, in)
	if c.Name != oldName {
		c.Slug = Slugify(c.Name)
	}

	if err := s.check(ctx, c); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return c, nil
}

func (s *Service) check(ctx context.Context, c *Category) error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	if c.Slug == "" {
		return apperr.Invalid("Category name must contain letters or digits")
	}

	existing, err := s.repo.FindBySlug(ctx, c.Slug)
	if err != nil && !apperr.IsNotFound(err) {
		return err
	}
	if existing != nil && existing.ID != c.ID {
		return ErrDuplicateSlug
	}
	return nil
}

func (s *Service) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, listCacheKey); err != nil {
		s.log.Warn("category cache invalidation failed", zap.Error(err))
	}
}

func applyInput(c *Category, in Input) {
	if in.Name != nil {
		c.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		c.Description = strings.TrimSpace(*in.Description)
	}
	if in.Icon != nil {
		c.Icon = *in.Icon
	}
	if in.Color != nil {
		c.Color = *in.Color
	}
	if in.IsActive != nil {
		c.IsActive = *in.IsActive
	}
	if in.SortOrder != nil {
		c.SortOrder = *in.SortOrder
	}
}
