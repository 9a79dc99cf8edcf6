package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/AnshRaj112/devconnector-backend/internal/config"
	"github.com/AnshRaj112/devconnector-backend/internal/database"
	"github.com/AnshRaj112/devconnector-backend/internal/handlers"
	"github.com/AnshRaj112/devconnector-backend/internal/middleware"
	"github.com/AnshRaj112/devconnector-backend/internal/routes"
	"github.com/AnshRaj112/devconnector-backend/internal/services"
	"github.com/AnshRaj112/devconnector-backend/internal/store/mongodb"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	if cfg.IsProduction() && cfg.JWTSecret == config.DefaultJWTSecret {
		log.Fatal("JWT_SECRET must be set in production")
	}

	ctx := context.Background()

	log.Printf("MongoDB URI: %s", database.MaskURI(cfg.MongoURI))
	client, db, err := database.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer database.Disconnect(client)

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("failed to ensure MongoDB indexes: %v", err)
	}
	log.Println("✅ MongoDB indexes ensured")

	var redisClient *redis.Client
	if cfg.RedisURI != "" {
		redisClient, err = database.ConnectRedis(ctx, cfg.RedisURI)
		if err != nil {
			log.Printf("⚠️  WARNING: Redis unavailable, caching and shared rate limits disabled: %v", err)
			redisClient = nil
		} else {
			defer redisClient.Close()
		}
	}

	stores := mongodb.NewStores(db)

	var profileCache services.ProfileCache
	if redisClient != nil {
		profileCache = services.NewRedisProfileCache(redisClient, cfg.ProfileCacheTTL)
	}

	authService := services.NewAuthService(stores.Users, cfg)
	profileService := services.NewProfileService(stores.Profiles, stores.Users, profileCache, cfg.ProfileRequiredFields)
	postService := services.NewPostService(stores.Posts, stores.Users)

	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.CORS(cfg.AllowedOrigins))

	// Production: SecurityHeaders → GlobalRateLimit → LoginRateLimit.
	// Redis counting, when configured, applies in every environment.
	if cfg.IsProduction() {
		for _, mw := range middleware.ProductionSecurity() {
			r.Use(mw)
		}
		log.Println("✅ Production security enabled (security headers, per-IP + login rate limiting)")
	}
	r.Use(middleware.RedisRateLimit(redisClient))

	routes.SetupRoutes(r, routes.Handlers{
		Auth:    handlers.NewAuthHandler(authService),
		Profile: handlers.NewProfileHandler(profileService),
		Posts:   handlers.NewPostHandler(postService),
	}, middleware.Auth(authService))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("🚀 DevConnector backend running on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
