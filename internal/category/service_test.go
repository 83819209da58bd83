package category

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sirajbinsyed/silverstar-server-local/internal/apperr"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }

func newTestService() (*Service, *memoryRepo, *fakeItems, *recordingMedia) {
	repo := newMemoryRepo()
	items := newFakeItems()
	media := &recordingMedia{}
	return NewService(repo, items, media, zap.NewNop()), repo, items, media
}

func TestCreate_DefaultsAndSlug(t *testing.T) {
	service, _, _, _ := newTestService()

	c, err := service.Create(context.Background(), Input{Name: strPtr("  Beef & Grill!! ")})
	require.NoError(t, err)

	assert.Equal(t, "Beef & Grill!!", c.Name)
	assert.Equal(t, "beef-grill", c.Slug)
	assert.Equal(t, DefaultIcon, c.Icon)
	assert.Equal(t, DefaultColor, c.Color)
	assert.True(t, c.IsActive)
	assert.Equal(t, 0, c.SortOrder)
}

func TestCreate_SlugCollisionIsInvalidInput(t *testing.T) {
	service, _, _, _ := newTestService()
	ctx := context.Background()

	_, err := service.Create(ctx, Input{Name: strPtr("Beef Grill")})
	require.NoError(t, err)

	_, err = service.Create(ctx, Input{Name: strPtr("beef & grill")})
	require.Error(t, err)
	assert.Equal(t, apperr.KindInvalid, apperr.KindOf(err))
}

func TestCreate_Validation(t *testing.T) {
	service, _, _, _ := newTestService()
	ctx := context.Background()

	_, err := service.Create(ctx, Input{})
	assert.True(t, apperr.IsInvalid(err))
	assert.Contains(t, err.Error(), "Category name is required")

	_, err = service.Create(ctx, Input{
		Name:        strPtr(strings.Repeat("a", 51)),
		Description: strPtr(strings.Repeat("d", 201)),
	})
	require.Error(t, err)
	assert.Equal(t,
		"Category name cannot exceed 50 characters, Description cannot exceed 200 characters",
		err.Error(),
	)

	_, err = service.Create(ctx, Input{Name: strPtr("???")})
	assert.True(t, apperr.IsInvalid(err))
}

func TestUpdate_MergesAndRecomputesSlug(t *testing.T) {
	service, _, _, _ := newTestService()
	ctx := context.Background()

	c, err := service.Create(ctx, Input{Name: strPtr("Fish"), Description: strPtr("Fresh seafood"), SortOrder: intPtr(5)})
	require.NoError(t, err)

	updated, err := service.Update(ctx, c.ID.Hex(), Input{Name: strPtr("Sea Food"), IsActive: boolPtr(false)})
	require.NoError(t, err)

	assert.Equal(t, "sea-food", updated.Slug)
	assert.Equal(t, "Fresh seafood", updated.Description)
	assert.Equal(t, 5, updated.SortOrder)
	assert.False(t, updated.IsActive)
}

func TestUpdate_KeepsOwnSlug(t *testing.T) {
	service, _, _, _ := newTestService()
	ctx := context.Background()

	c, err := service.Create(ctx, Input{Name: strPtr("Fish")})
	require.NoError(t, err)

	_, err = service.Update(ctx, c.ID.Hex(), Input{Name: strPtr("Fish"), SortOrder: intPtr(2)})
	assert.NoError(t, err)
}

func TestUpdate_RenameIntoExistingSlug(t *testing.T) {
	service, _, _, _ := newTestService()
	ctx := context.Background()

	_, err := service.Create(ctx, Input{Name: strPtr("Fish")})
	require.NoError(t, err)
	grill, err := service.Create(ctx, Input{Name: strPtr("Grill")})
	require.NoError(t, err)

	_, err = service.Update(ctx, grill.ID.Hex(), Input{Name: strPtr("FISH!")})
	assert.True(t, apperr.IsInvalid(err))
}

func TestUpdate_NotFound(t *testing.T) {
	service, _, _, _ := newTestService()
	_, err := service.Update(context.Background(), "64f1c2a9e4b0a1b2c3d4e5f6", Input{Name: strPtr("x")})
	assert.True(t, apperr.IsNotFound(err))
}

func TestList_UsesCacheAndInvalidates(t *testing.T) {
	service, repo, _, _ := newTestService()
	cache := newMapCache()
	service.WithCache(cache, 0)
	ctx := context.Background()

	_, err := service.Create(ctx, Input{Name: strPtr("Grill"), SortOrder: intPtr(3)})
	require.NoError(t, err)
	_, err = service.Create(ctx, Input{Name: strPtr("Beef"), SortOrder: intPtr(1)})
	require.NoError(t, err)

	first, err := service.List(ctx)
	require.NoError(t, err)
	second, err := service.List(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, repo.listCalls)
	assert.Equal(t, first, second)
	assert.Equal(t, "Beef", first[0].Name)

	_, err = service.Create(ctx, Input{Name: strPtr("Fish")})
	require.NoError(t, err)

	third, err := service.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.listCalls)
	assert.Len(t, third, 3)
}

func TestFindRefs(t *testing.T) {
	service, _, _, _ := newTestService()
	ctx := context.Background()

	c, err := service.Create(ctx, Input{Name: strPtr("Biriyani")})
	require.NoError(t, err)

	refs, err := service.FindRefs(ctx, []string{c.ID.Hex(), "64f1c2a9e4b0a1b2c3d4e5f6"})
	require.NoError(t, err)
	require.Len(t, refs, 1)
	assert.Equal(t, "biriyani", refs[c.ID.Hex()].Slug)

	_, err = service.FindRef(ctx, "64f1c2a9e4b0a1b2c3d4e5f6")
	assert.True(t, apperr.IsNotFound(err))
}
