package category

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/sirajbinsyed/silverstar-server-local/internal/core"
	"github.com/sirajbinsyed/silverstar-server-local/internal/storage"
)

// --------------------------------------------------
// In-memory category repository
// --------------------------------------------------

type memoryRepo struct {
	mu         sync.Mutex
	categories map[string]Category
	deleteErr  error
	listCalls  int
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{categories: make(map[string]Category)}
}

func (r *memoryRepo) List(ctx context.Context) ([]Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listCalls++

	out := make([]Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (r *memoryRepo) FindByID(ctx context.Context, id string) (*Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.categories[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (r *memoryRepo) FindBySlug(ctx context.Context, slug string) (*Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.categories {
		if c.Slug == slug {
			found := c
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryRepo) FindByIDs(ctx context.Context, ids []string) ([]Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Category
	for _, id := range ids {
		if c, ok := r.categories[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *memoryRepo) Create(ctx context.Context, c *Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.categories {
		if existing.Slug == c.Slug {
			return ErrDuplicateSlug
		}
	}
	if c.ID.IsZero() {
		c.ID = bson.NewObjectID()
	}
	c.CreatedAt, c.UpdatedAt = time.Now(), time.Now()
	r.categories[c.ID.Hex()] = *c
	return nil
}

func (r *memoryRepo) Update(ctx context.Context, c *Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.categories[c.ID.Hex()]; !ok {
		return ErrNotFound
	}
	c.UpdatedAt = time.Now()
	r.categories[c.ID.Hex()] = *c
	return nil
}

func (r *memoryRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.deleteErr != nil {
		return r.deleteErr
	}
	if _, ok := r.categories[id]; !ok {
		return ErrNotFound
	}
	delete(r.categories, id)
	return nil
}

func (r *memoryRepo) DeleteAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.categories = make(map[string]Category)
	return nil
}

// --------------------------------------------------
// Menu item dependents
// --------------------------------------------------

type fakeItems struct {
	byCategory map[string][]core.DependentItem
	deleted    []string
	findErr    error
	deleteErr  error
}

func newFakeItems() *fakeItems {
	return &fakeItems{byCategory: make(map[string][]core.DependentItem)}
}

func (f *fakeItems) FindByCategory(ctx context.Context, categoryID string) ([]core.DependentItem, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.byCategory[categoryID], nil
}

func (f *fakeItems) DeleteByIDs(ctx context.Context, ids []string) (int64, error) {
	if f.deleteErr != nil {
		return 0, f.deleteErr
	}
	f.deleted = append(f.deleted, ids...)
	return int64(len(ids)), nil
}

// --------------------------------------------------
// Recording media store
// --------------------------------------------------

type recordingMedia struct {
	deleteManyCalls [][]string
	deleteManyErr   error
}

func (m *recordingMedia) Upload(ctx context.Context, data []byte, folder string, t storage.Transform) (*storage.Asset, error) {
	return nil, errors.New("not used")
}

func (m *recordingMedia) Delete(ctx context.Context, publicID string) error {
	return nil
}

func (m *recordingMedia) DeleteMany(ctx context.Context, publicIDs []string) error {
	m.deleteManyCalls = append(m.deleteManyCalls, publicIDs)
	return m.deleteManyErr
}

// --------------------------------------------------
// Cache
// --------------------------------------------------

type mapCache struct {
	entries map[string]any
	deletes int
}

func newMapCache() *mapCache {
	return &mapCache{entries: make(map[string]any)}
}

func (c *mapCache) GetJSON(ctx context.Context, key string, dst any) (bool, error) {
	v, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	*(dst.(*[]Category)) = v.([]Category)
	return true, nil
}

func (c *mapCache) SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error {
	c.entries[key] = v
	return nil
}

func (c *mapCache) Delete(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.entries, k)
	}
	c.deletes++
	return nil
}
