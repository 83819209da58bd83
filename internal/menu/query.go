package menu

import (
	"context"
	"math"
	"strings"
)

// ListItems returns one page of items matching f, sorted by sortOrder then
// name, with each category expanded to name and slug.
func (s *Service) ListItems(ctx context.Context, f Filter, p Pagination) (*Page, error) {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultPageSize
	}
	if p.Limit > MaxPageSize {
		p.Limit = MaxPageSize
	}
	f.Search = strings.TrimSpace(f.Search)

	limit := int64(p.Limit)
	items := []MenuItem{}
	// A page past the int64 skip range is necessarily empty.
	if int64(p.Page-1) <= (math.MaxInt64-limit)/limit {
		var err error
		items, err = s.repo.Find(ctx, f, int64(p.Page-1)*limit, limit)
		if err != nil {
			return nil, err
		}
	}

	total, err := s.repo.Count(ctx, f)
	if err != nil {
		return nil, err
	}

	if err := s.expand(ctx, items); err != nil {
		return nil, err
	}

	return &Page{
		Items: items,
		Total: total,
		Page:  p.Page,
		Pages: pageCount(total, limit),
	}, nil
}

func pageCount(total, limit int64) int {
	pages := total / limit
	if total%limit != 0 {
		pages++
	}
	return int(pages)
}

// ListByCategory returns the available items of one category.
func (s *Service) ListByCategory(ctx context.Context, categoryID string) ([]MenuItem, error) {
	available := true
	items, err := s.repo.Find(ctx, Filter{Category: categoryID, IsAvailable: &available}, 0, 0)
	if err != nil {
		return nil, err
	}
	if err := s.expand(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Service) Get(ctx context.Context, id string) (*MenuItem, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	one := []MenuItem{*item}
	if err := s.expand(ctx, one); err != nil {
		return nil, err
	}
	return &one[0], nil
}

// expand fills CategoryRef on every item with one batched lookup. Items
// whose category no longer exists keep a nil reference.
func (s *Service) expand(ctx context.Context, items []MenuItem) error {
	if len(items) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(items))
	ids := make([]string, 0, len(items))
	for _, item := range items {
		id := item.Category.Hex()
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	refs, err := s.categories.FindRefs(ctx, ids)
	if err != nil {
		return err
	}

	for i := range items {
		if ref, ok := refs[items[i].Category.Hex()]; ok {
			items[i].CategoryRef = &ref
		}
	}
	return nil
}
