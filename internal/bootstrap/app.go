package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	adminimages "storefront-backend/internal/admin/images"
	googleauth "storefront-backend/internal/auth"
	"storefront-backend/internal/catalog"
	"storefront-backend/internal/checkout"
	"storefront-backend/internal/payments/stripe"
	"storefront-backend/internal/profiles"
	"storefront-backend/internal/recommend"
	"storefront-backend/internal/server"
	"storefront-backend/internal/services/health"
	"storefront-backend/internal/shared/cache"
	"storefront-backend/internal/shared/config"
	"storefront-backend/internal/shared/storage/db"
	"storefront-backend/internal/shared/storage/object"
	localstore "storefront-backend/internal/shared/storage/object/local"
	s3store "storefront-backend/internal/shared/storage/object/s3"
	"storefront-backend/internal/users"
	"storefront-backend/internal/vision"
	visionopenai "storefront-backend/internal/vision/openai"
	"storefront-backend/internal/visualsearch"
)

// App holds the wired application.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore
	Cache  cache.Cache

	CatalogRepo    catalog.Repo
	CatalogService *catalog.Service

	ProfilesRepo    profiles.Repo
	ProfilesService *profiles.Service

	UsersRepo    users.Repo
	UsersService *users.Service

	RecommendService    *recommend.Service
	VisualSearchService *visualsearch.Service
	CheckoutService     *checkout.Service
	AdminImagesService  *adminimages.Service
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, bucketOps, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	resultCache, err := buildCache(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
		Cache:  resultCache,
	}

	if sqlDB != nil {
		app.CatalogRepo = &catalog.PGRepo{DB: sqlDB}
		app.ProfilesRepo = &profiles.PGRepo{DB: sqlDB}
		app.UsersRepo = &users.PGRepo{DB: sqlDB}
	} else {
		app.CatalogRepo = catalog.NewMemoryRepo()
		app.ProfilesRepo = profiles.NewMemoryRepo()
		app.UsersRepo = users.NewMemoryRepo()
	}

	app.CatalogService = &catalog.Service{
		Repo:  app.CatalogRepo,
		Cache: resultCache,
	}
	app.ProfilesService = &profiles.Service{Repo: app.ProfilesRepo}
	app.UsersService = &users.Service{
		Repo:        app.UsersRepo,
		AdminEmails: splitList(os.Getenv("ADMIN_EMAILS")),
	}
	app.RecommendService = &recommend.Service{
		Catalog: app.CatalogService,
		Prefs:   app.ProfilesService,
	}

	var analyticsRepo visualsearch.Repo
	if sqlDB != nil {
		analyticsRepo = &visualsearch.PGRepo{DB: sqlDB}
	} else {
		analyticsRepo = visualsearch.NewMemoryRepo()
	}
	app.VisualSearchService = &visualsearch.Service{
		Vision:  buildVision(cfg),
		Catalog: app.CatalogService,
		Store:   store,
		Repo:    analyticsRepo,
	}

	app.CheckoutService = &checkout.Service{
		Gateway:    buildGateway(cfg),
		Catalog:    app.CatalogService,
		SuccessURL: cfg.SuccessURL,
		CancelURL:  cfg.CancelURL,
	}

	if bucketOps != nil {
		app.AdminImagesService = &adminimages.Service{Ops: bucketOps}
	}

	googleAuth := googleauth.NewGoogleService(
		cfg.GoogleClientID, cfg.GoogleClientSecret,
		cfg.GoogleRedirectURL, cfg.UIRedirectURL,
		app.UsersService,
	)

	deps := server.RouterDeps{
		Config:              cfg,
		CatalogHandler:      catalog.NewHandler(app.CatalogService),
		RecommendHandler:    recommend.NewHandler(app.RecommendService),
		VisualSearchHandler: visualsearch.NewHandler(app.VisualSearchService),
		CheckoutHandler:     checkout.NewHandler(app.CheckoutService),
		ProfilesHandler:     profiles.NewHandler(app.ProfilesService),
		UsersHandler:        users.NewHandler(app.UsersService),
		GoogleAuth:          googleAuth,
		Health:              health.NewService(sqlDB),
	}
	if app.AdminImagesService != nil {
		deps.AdminImagesHandler = adminimages.NewHandler(app.AdminImagesService)
	}
	app.Router = server.NewRouter(deps)

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, object.BucketOps, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		store, err := s3store.New(ctx, cfg.AWSRegion, cfg.ImagesBucket, cfg.ImagesPrefix, cfg.PublicAssetBase, cfg.SSEKMSKeyID)
		if err != nil {
			return nil, nil, err
		}
		return store, store, nil
	default:
		store := localstore.New(cfg.LocalStoreDir, cfg.PublicAssetBase)
		return store, store, nil
	}
}

func buildCache(ctx context.Context, cfg config.Config) (cache.Cache, error) {
	if strings.TrimSpace(cfg.RedisURL) == "" {
		return cache.NewMemory(), nil
	}
	redisCache, err := cache.NewRedis(ctx, cfg.RedisURL, "storefront")
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: redis connect failed; using in-memory cache: %v", err)
			return cache.NewMemory(), nil
		}
		return nil, err
	}
	return redisCache, nil
}

func buildVision(cfg config.Config) vision.Client {
	if strings.TrimSpace(cfg.OpenAIAPIKey) == "" {
		return vision.Placeholder{}
	}
	client, err := visionopenai.NewClient(cfg.OpenAIAPIKey, cfg.VisionModel)
	if err != nil {
		log.Printf("bootstrap: vision client unavailable: %v", err)
		return vision.Placeholder{}
	}
	return client
}

func buildGateway(cfg config.Config) checkout.SessionCreator {
	if strings.TrimSpace(cfg.StripeSecretKey) == "" {
		return nil
	}
	client, err := stripe.New(cfg.StripeSecretKey)
	if err != nil {
		log.Printf("bootstrap: payment gateway unavailable: %v", err)
		return nil
	}
	return client
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
