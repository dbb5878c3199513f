package main

import (
	"net/http"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"stockroom/internal/auth"
	"stockroom/internal/catalog"
	"stockroom/internal/config"
	api "stockroom/internal/http"
	"stockroom/internal/http/handlers"
	rl "stockroom/internal/http/rate_limiter"
	"stockroom/internal/logger"
	"stockroom/internal/models"
	"stockroom/internal/repo"
	"stockroom/internal/store"
)

// @title Stockroom API
// @version 1.0
// @description REST API for managing a small inventory catalog.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("could not load configuration")
	}

	logger.Setup(cfg.Env, cfg.LogLevel)
	auth.SetSecret(cfg.JWTSecret)
	rl.Configure(cfg.RateLimitRPS, cfg.RateLimitBurst)
	go rl.StartVisitorCleanupLoop()

	st, err := store.NewFileStore(cfg.DataFile)
	if err != nil {
		log.Fatal().Err(err).Msg("could not open item store")
	}

	// Malformed persisted data is repaired where possible and otherwise
	// discarded; a read failure means starting from an empty catalog.
	raw, err := st.Load()
	if err != nil {
		log.Warn().Err(err).Msg("stored data unreadable, starting empty")
		raw = nil
	}
	items := catalog.NewSanitizer().Sanitize(raw)

	itemRepo := repo.NewInMemoryItemRepository(st)
	itemRepo.Seed(items)
	handlers.SetItemRepo(itemRepo)
	handlers.SetMovementRepo(repo.NewInMemoryMovementRepository())

	userRepo := repo.NewInMemoryUserRepository()
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("could not hash admin password")
	}
	if _, err := userRepo.CreateUser(models.User{
		Username:     cfg.AdminUser,
		PasswordHash: string(hash),
		Role:         "admin",
	}); err != nil {
		log.Fatal().Err(err).Msg("could not seed admin user")
	}
	handlers.SetUserRepo(userRepo)

	r := api.NewRouter()
	log.Info().
		Str("addr", cfg.Addr).
		Int("items", len(items)).
		Msg("server running")
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
