package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/sirajbinsyed/silverstar-server-local/internal/auth"
	"github.com/sirajbinsyed/silverstar-server-local/internal/cache"
	"github.com/sirajbinsyed/silverstar-server-local/internal/category"
	"github.com/sirajbinsyed/silverstar-server-local/internal/config"
	"github.com/sirajbinsyed/silverstar-server-local/internal/db"
	"github.com/sirajbinsyed/silverstar-server-local/internal/logger"
	"github.com/sirajbinsyed/silverstar-server-local/internal/menu"
	"github.com/sirajbinsyed/silverstar-server-local/internal/metrics"
	"github.com/sirajbinsyed/silverstar-server-local/internal/restaurant"
	"github.com/sirajbinsyed/silverstar-server-local/internal/router"
	"github.com/sirajbinsyed/silverstar-server-local/internal/storage"
)

func main() {

	// ───────────────────────── CONFIG ─────────────────────────
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zlog, err := logger.New(cfg.Log.Level, cfg.Log.Format, "silverstar-api")
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zlog.Sync()

	ctx := context.Background()

	// ───────────────────────── DB ─────────────────────────
	store, err := db.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database, cfg.Mongo.ConnectTimeout, zlog)
	if err != nil {
		zlog.Fatal("database connection failed", zap.Error(err))
	}
	if err := store.EnsureIndexes(ctx); err != nil {
		zlog.Fatal("index bootstrap failed", zap.Error(err))
	}

	// ───────────────────────── CACHE ─────────────────────────
	var categoryCache category.Cache = cache.Noop{}
	if cfg.Redis.Addr != "" {
		rdb := cache.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		defer rdb.Close()

		if err := rdb.Ping(ctx).Err(); err != nil {
			zlog.Warn("redis unavailable, category cache disabled", zap.Error(err))
		} else {
			categoryCache = cache.NewRedisCache(rdb, "silverstar:")
			zlog.Info("redis connected", zap.String("addr", cfg.Redis.Addr))
		}
	}

	// ───────────────────────── STORAGE ─────────────────────────
	m := metrics.New()

	r2Client, err := storage.NewR2Client(ctx, storage.R2Options{
		Endpoint:      cfg.Media.Endpoint,
		AccessKey:     cfg.Media.AccessKey,
		SecretKey:     cfg.Media.SecretKey,
		Bucket:        cfg.Media.Bucket,
		PublicBaseURL: cfg.Media.PublicBaseURL,
	})
	if err != nil {
		zlog.Fatal("R2 init failed", zap.Error(err))
	}
	media := metrics.InstrumentMediaStore(r2Client, m)

	// ───────────────────────── SERVICES ─────────────────────────
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	authService := auth.NewService(
		auth.NewMongoUserRepository(store.Collection(db.UsersCollection)),
		tokens,
		zlog,
	)

	menuRepo := menu.NewMongoRepository(store.Collection(db.MenuItemsCollection))

	categoryService := category.NewService(
		category.NewMongoRepository(store.Collection(db.CategoriesCollection)),
		menuRepo,
		media,
		zlog,
	).WithCache(categoryCache, cfg.Redis.CategoryTTL).WithMetrics(m)

	menuService := menu.NewService(menuRepo, categoryService, media, cfg.Media.Folder, zlog)

	restaurantService := restaurant.NewService(
		restaurant.NewMongoRepository(store.Collection(db.RestaurantsCollection)),
		authService,
		restaurant.NewMongoPlanRepository(store.Collection(db.PlansCollection)),
		zlog,
	)

	// ───────────────────────── HTTP ─────────────────────────
	r := router.NewRouter(router.Deps{
		Log:            zlog,
		Metrics:        m,
		Tokens:         tokens,
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
		Store:          store,
		Auth:           auth.NewHandler(authService, zlog),
		Categories:     category.NewHandler(categoryService, zlog),
		Menu:           menu.NewHandler(menuService, zlog),
		Restaurants:    restaurant.NewHandler(restaurantService, zlog),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTP.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zlog.Info("API listening", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("server failed", zap.Error(err))
		}
	}()

	// ───────────────────────── SHUTDOWN ─────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Error("server shutdown failed", zap.Error(err))
	}
	if err := store.Close(shutdownCtx); err != nil {
		zlog.Error("database disconnect failed", zap.Error(err))
	}
}
