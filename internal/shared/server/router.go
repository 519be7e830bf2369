package server

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"adgm-backend/internal/documents"
	"adgm-backend/internal/reviews"
	"adgm-backend/internal/shared/config"
	"adgm-backend/internal/shared/metrics"
	"adgm-backend/internal/shared/server/middleware"
	"adgm-backend/internal/shared/server/respond"
	"adgm-backend/internal/shared/storage/db"
	"adgm-backend/internal/shared/storage/object"
	localstore "adgm-backend/internal/shared/storage/object/local"
	s3store "adgm-backend/internal/shared/storage/object/s3"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.Auth(cfg.APIKeys),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				"reviews": {Rate: 0.5, Burst: 5},
				"uploads": {Rate: 2, Burst: 10},
			},
			GroupFor: rateLimitGroup,
		}),
	)

	// Dependencies
	store := buildStore(cfg)
	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		dbConn, err := db.Connect(context.Background(), cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			log.Printf("failed to connect database, falling back to memory: %v", err)
		} else {
			if err := db.RunMigrations(context.Background(), dbConn); err != nil {
				log.Printf("failed to run migrations, falling back to memory: %v", err)
				dbConn = nil
			}
		}
		sqlDB = dbConn
	}

	var docRepo documents.Repo
	if sqlDB != nil {
		docRepo = &documents.PGRepo{DB: sqlDB}
	} else {
		docRepo = documents.NewMemoryRepo()
	}
	docSvc := &documents.Service{Store: store, Repo: docRepo, StorageProvider: cfg.ObjectStoreType}
	docHandler := documents.NewHandler(docSvc)

	reviewSvc := reviews.NewService()
	reviewHandler := reviews.NewHandler(reviewSvc)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	docHandler.RegisterRoutes(api)
	reviewHandler.RegisterRoutes(api)

	r.GET("/metrics", metrics.Handler())

	return r
}

func buildStore(cfg config.Config) object.ObjectStore {
	if cfg.ObjectStoreType == "s3" {
		store, err := s3store.New(context.Background(), cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
		if err != nil {
			log.Printf("failed to build s3 store, falling back to local: %v", err)
		} else {
			return store
		}
	}
	return localstore.New(cfg.LocalStoreDir)
}

func rateLimitGroup(c *gin.Context) string {
	path := c.FullPath()
	switch {
	case strings.HasSuffix(path, "/reviews"):
		return "reviews"
	case strings.HasSuffix(path, "/documents") && c.Request.Method == http.MethodPost:
		return "uploads"
	default:
		return ""
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
