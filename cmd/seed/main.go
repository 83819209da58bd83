package main

import (
	"context"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/sirajbinsyed/silverstar-server-local/internal/auth"
	"github.com/sirajbinsyed/silverstar-server-local/internal/category"
	"github.com/sirajbinsyed/silverstar-server-local/internal/config"
	"github.com/sirajbinsyed/silverstar-server-local/internal/db"
	"github.com/sirajbinsyed/silverstar-server-local/internal/logger"
)

const (
	adminEmail    = "admin@silverstar.com"
	adminPassword = "admin123"
)

type seedCategory struct {
	name, description, icon, color string
	sortOrder                      int
}

var defaultCategories = []seedCategory{
	{"Beef", "Delicious beef dishes", "UtensilsCrossed", "from-red-600 to-red-700", 1},
	{"Chicken", "Fresh chicken preparations", "UtensilsCrossed", "from-orange-500 to-red-600", 2},
	{"Grill", "Grilled specialties", "UtensilsCrossed", "from-orange-400 to-red-500", 3},
	{"Mandhi", "Traditional Mandhi dishes", "UtensilsCrossed", "from-yellow-500 to-orange-600", 4},
	{"Fish", "Fresh seafood dishes", "UtensilsCrossed", "from-blue-500 to-cyan-600", 5},
	{"Beverages", "Refreshing drinks and beverages", "Coffee", "from-purple-500 to-pink-600", 6},
	{"Breakfast", "Morning breakfast items", "UtensilsCrossed", "from-green-500 to-emerald-600", 7},
	{"Biriyani", "Aromatic biriyani varieties", "UtensilsCrossed", "from-indigo-500 to-purple-600", 8},
}

// seed clears users and categories, then creates the admin account and the
// default categories. Menu items and restaurants are left alone.
func main() {
	cfg, err := config.LoadDatabase(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zlog, err := logger.New(cfg.Log.Level, "console", "silverstar-seed")
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zlog.Sync()

	ctx := context.Background()

	store, err := db.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database, cfg.Mongo.ConnectTimeout, zlog)
	if err != nil {
		zlog.Fatal("database connection failed", zap.Error(err))
	}
	defer store.Close(ctx)

	if err := store.EnsureIndexes(ctx); err != nil {
		zlog.Fatal("index bootstrap failed", zap.Error(err))
	}

	users := auth.NewMongoUserRepository(store.Collection(db.UsersCollection))
	categories := category.NewMongoRepository(store.Collection(db.CategoriesCollection))

	if err := users.DeleteAll(ctx); err != nil {
		zlog.Fatal("clearing users failed", zap.Error(err))
	}
	if err := categories.DeleteAll(ctx); err != nil {
		zlog.Fatal("clearing categories failed", zap.Error(err))
	}
	zlog.Info("cleared existing users and categories")

	authService := auth.NewService(users, nil, zlog)
	admin, err := authService.CreateUser(ctx, adminEmail, adminPassword, auth.RoleAdmin)
	if err != nil {
		zlog.Fatal("creating admin failed", zap.Error(err))
	}
	zlog.Info("created admin user", zap.String("email", admin.Email))

	// Categories go through the service so slugs and validation match the API.
	categoryService := category.NewService(categories, nil, nil, zlog)
	for _, sc := range defaultCategories {
		in := category.Input{
			Name:        &sc.name,
			Description: &sc.description,
			Icon:        &sc.icon,
			Color:       &sc.color,
			SortOrder:   &sc.sortOrder,
		}
		if _, err := categoryService.Create(ctx, in); err != nil {
			zlog.Fatal("creating category failed", zap.String("name", sc.name), zap.Error(err))
		}
	}
	zlog.Info("created categories", zap.Int("count", len(defaultCategories)))
	logSeedComplete(zlog)
}

// logSeedComplete reports the seeded admin account. The password is never
// logged.
func logSeedComplete(zlog *zap.Logger) {
	zlog.Info("seed complete", zap.String("admin_email", adminEmail))
}
