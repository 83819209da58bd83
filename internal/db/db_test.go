package db

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestConnect_MissingURI(t *testing.T) {
	_, err := Connect(context.Background(), "", "silverstar", time.Second, zap.NewNop())
	assert.Error(t, err)
}

func TestIndexModels(t *testing.T) {
	models := indexModels()

	require.Len(t, models[CategoriesCollection], 3)
	require.Len(t, models[MenuItemsCollection], 4)
	assert.NotNil(t, models[CategoriesCollection][0].Options, "slug index must be unique")
	assert.NotNil(t, models[UsersCollection][0].Options, "email index must be unique")
}

// Runs against a real server only when MONGO_URI is set.
func TestConnect_Integration(t *testing.T) {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		t.Skip("MONGO_URI not set, skipping integration test")
	}

	ctx := context.Background()
	store, err := Connect(ctx, uri, "silverstar_test", 5*time.Second, zap.NewNop())
	require.NoError(t, err)
	defer store.Close(ctx)

	require.NoError(t, store.EnsureIndexes(ctx))
	assert.NoError(t, store.Ping(ctx))
}
