package menu

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/sirajbinsyed/silverstar-server-local/internal/apperr"
	"github.com/sirajbinsyed/silverstar-server-local/internal/core"
	"github.com/sirajbinsyed/silverstar-server-local/internal/storage"
)

// --------------------------------------------------
// In-memory menu repository
// --------------------------------------------------

type memoryRepo struct {
	mu      sync.Mutex
	items   map[string]MenuItem
	writes  int
	failOps map[string]error

	findCalls []findCall
}

type findCall struct{ skip, limit int64 }

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{items: make(map[string]MenuItem), failOps: make(map[string]error)}
}

func (r *memoryRepo) matches(item MenuItem, f Filter) bool {
	if f.Category != "" && item.Category.Hex() != f.Category {
		return false
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(item.Name), q) &&
			!strings.Contains(strings.ToLower(item.Description), q) {
			return false
		}
	}
	if f.IsAvailable != nil && item.IsAvailable != *f.IsAvailable {
		return false
	}
	return true
}

func (r *memoryRepo) filtered(f Filter) []MenuItem {
	var out []MenuItem
	for _, item := range r.items {
		if r.matches(item, f) {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func (r *memoryRepo) Find(ctx context.Context, f Filter, skip, limit int64) ([]MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.findCalls = append(r.findCalls, findCall{skip: skip, limit: limit})
	if skip < 0 {
		return nil, fmt.Errorf("negative skip %d", skip)
	}
	all := r.filtered(f)
	if skip >= int64(len(all)) {
		return []MenuItem{}, nil
	}
	all = all[skip:]
	if limit > 0 && limit < int64(len(all)) {
		all = all[:limit]
	}
	return all, nil
}

func (r *memoryRepo) Count(ctx context.Context, f Filter) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.filtered(f))), nil
}

func (r *memoryRepo) FindByID(ctx context.Context, id string) (*MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &item, nil
}

func (r *memoryRepo) Create(ctx context.Context, item *MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.failOps["create"]; err != nil {
		return apperr.Server(err)
	}
	if item.ID.IsZero() {
		item.ID = bson.NewObjectID()
	}
	item.CreatedAt, item.UpdatedAt = time.Now(), time.Now()
	stored := *item
	stored.CategoryRef = nil
	r.items[item.ID.Hex()] = stored
	r.writes++
	return nil
}

func (r *memoryRepo) Update(ctx context.Context, item *MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.failOps["update"]; err != nil {
		return apperr.Server(err)
	}
	if _, ok := r.items[item.ID.Hex()]; !ok {
		return ErrNotFound
	}
	item.UpdatedAt = time.Now()
	stored := *item
	stored.CategoryRef = nil
	r.items[item.ID.Hex()] = stored
	r.writes++
	return nil
}

func (r *memoryRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return ErrNotFound
	}
	delete(r.items, id)
	r.writes++
	return nil
}

func (r *memoryRepo) FindByCategory(ctx context.Context, categoryID string) ([]core.DependentItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []core.DependentItem
	for _, item := range r.items {
		if item.Category.Hex() == categoryID {
			out = append(out, core.DependentItem{ID: item.ID.Hex(), ImagePublicID: item.Image.PublicID})
		}
	}
	return out, nil
}

func (r *memoryRepo) DeleteByIDs(ctx context.Context, ids []string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, id := range ids {
		if _, ok := r.items[id]; ok {
			delete(r.items, id)
			n++
		}
	}
	return n, nil
}

// --------------------------------------------------
// Category reader
// --------------------------------------------------

type fakeCategories struct {
	refs map[string]core.CategoryRef
}

func newFakeCategories(names ...string) (*fakeCategories, []string) {
	f := &fakeCategories{refs: make(map[string]core.CategoryRef)}
	ids := make([]string, 0, len(names))
	for _, name := range names {
		id := bson.NewObjectID().Hex()
		f.refs[id] = core.CategoryRef{ID: id, Name: name, Slug: strings.ToLower(name)}
		ids = append(ids, id)
	}
	return f, ids
}

func (f *fakeCategories) FindRef(ctx context.Context, id string) (*core.CategoryRef, error) {
	ref, ok := f.refs[id]
	if !ok {
		return nil, apperr.NotFound("Category not found")
	}
	return &ref, nil
}

func (f *fakeCategories) FindRefs(ctx context.Context, ids []string) (map[string]core.CategoryRef, error) {
	out := make(map[string]core.CategoryRef)
	for _, id := range ids {
		if ref, ok := f.refs[id]; ok {
			out[id] = ref
		}
	}
	return out, nil
}

// --------------------------------------------------
// Recording media store
// --------------------------------------------------

type recordingMedia struct {
	mu        sync.Mutex
	uploads   int
	deletes   []string
	uploadErr error
	deleteErr error
}

func (m *recordingMedia) Upload(ctx context.Context, data []byte, folder string, t storage.Transform) (*storage.Asset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.uploads++
	if m.uploadErr != nil {
		return nil, m.uploadErr
	}
	id := fmt.Sprintf("%s/upload-%d.jpg", folder, m.uploads)
	return &storage.Asset{URL: "https://cdn.example.com/" + id, PublicID: id}, nil
}

func (m *recordingMedia) Delete(ctx context.Context, publicID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deletes = append(m.deletes, publicID)
	return m.deleteErr
}

func (m *recordingMedia) DeleteMany(ctx context.Context, publicIDs []string) error {
	return errors.New("not used")
}
