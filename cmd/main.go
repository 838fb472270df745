package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rajit909/portfolio-api/config"
	"github.com/rajit909/portfolio-api/internal/aiclient"
	"github.com/rajit909/portfolio-api/internal/auth"
	"github.com/rajit909/portfolio-api/internal/handler"
	"github.com/rajit909/portfolio-api/internal/middleware"
	"github.com/rajit909/portfolio-api/internal/repository"
	"github.com/rajit909/portfolio-api/internal/router"
	"github.com/rajit909/portfolio-api/internal/service"
	"github.com/rajit909/portfolio-api/pkg/cache"
	"github.com/rajit909/portfolio-api/pkg/database"
	"github.com/rajit909/portfolio-api/pkg/logger"
	http_server "github.com/rajit909/portfolio-api/pkg/server/http"
	"go.uber.org/zap"

	_ "github.com/rajit909/portfolio-api/docs"
)

//	@title			PORTFOLIO SERVICE APIs
//	@version		1.0
//	@description	Portfolio content service Swagger APIs.
//	@contact.name	Rajit Paul

// @description	Cookie-based admin authentication (auth_token)
func main() {
	env := config.GetEnv()

	zapLogger := logger.GetLogger(env.LoggerConfig)
	zap.ReplaceGlobals(zapLogger)
	defer zapLogger.Sync()

	// Database.
	mongodb := database.NewMongoDB(&env.MongoConfig)
	if err := mongodb.Connect(); err != nil {
		zapLogger.Fatal("MongoDB connection failed", zap.Error(err))
	}
	defer mongodb.Close()
	db := mongodb.Database()

	// Content cache is optional; everything degrades to direct reads.
	var contentCache cache.Cache
	if env.RedisConfig.Enabled {
		if client := cache.NewRedisClient(env.RedisConfig); client != nil {
			contentCache = cache.NewRedisCache(client, env.RedisConfig.TTL)
		} else {
			zapLogger.Warn("Redis unavailable, serving without content cache")
		}
	}

	// Auth. A missing secret leaves the issuer nil and the gate locked
	// closed; the server still starts so the public site stays up.
	secret := []byte(env.JWTConfig.Secret)
	verifier := auth.NewVerifier(secret)
	var issuer *auth.Issuer
	if len(secret) > 0 {
		var err error
		issuer, err = auth.NewIssuer(secret, time.Duration(env.JWTConfig.ExpiryHours)*time.Hour)
		if err != nil {
			zapLogger.Fatal("Token issuer init failed", zap.Error(err))
		}
	} else {
		zapLogger.Error("JWT_SECRET is not set; admin login is disabled")
	}
	gate := auth.NewGate(verifier)

	// Repositories.
	users := repository.NewUserRepository(db)
	posts := repository.NewPostRepository(db)
	projects := repository.NewProjectRepository(db)
	achievements := repository.NewAchievementRepository(db)
	tech := repository.NewTechRepository(db)
	profile := repository.NewProfileRepository(db)

	// Services.
	authService := service.NewAuthService(users, issuer)
	contentService := service.NewContentService(posts, projects, achievements, tech, profile, contentCache)
	suggestService := service.NewSuggestService(aiclient.New(env.AIConfig))
	githubService := service.NewGithubService(env.GithubConfig, contentCache)

	secureCookies := env.AppConfig.Environment == "production"

	// Handlers and routes.
	handlers := router.Handlers{
		Auth:    handler.NewAuthHandler(authService, secureCookies),
		Content: handler.NewContentHandler(contentService, contentCache),
		Admin:   handler.NewAdminHandler(contentService, verifier),
		Suggest: handler.NewSuggestHandler(suggestService),
		Github:  handler.NewGithubHandler(githubService),
		Contact: handler.NewContactHandler(),
	}

	server := http_server.New(env,
		http_server.Port(fmt.Sprintf("%d", env.AppConfig.Port)),
		http_server.AuthGate(middleware.AuthGate(gate, secureCookies)),
	)
	router.Register(server.App, handlers)

	server.Start()
	zapLogger.Info("Server started", zap.Int("port", env.AppConfig.Port))

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		zapLogger.Info("Shutting down", zap.String("signal", s.String()))
	case err := <-server.Notify():
		zapLogger.Error("Server error", zap.Error(err))
	}

	if err := server.Shutdown(); err != nil {
		zapLogger.Error("Server shutdown error", zap.Error(err))
	}
}
