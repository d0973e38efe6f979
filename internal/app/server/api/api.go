//POST /user/register                        # Registration (public)
//POST /user/login                           # Login (public)
//POST /user/reset-password                  # Password reset via security answers (public)
//GET  /api/babies                           # List baby profiles (auth)
//POST /api/babies                           # Create baby profile (auth)
//GET  /api/babies/default                   # Default baby profile (auth)
//GET  /api/babies/{babyId}                  # Get baby profile (auth)
//GET  /api/babies/{babyId}/{kind}           # List care entries (auth)
//POST /api/babies/{babyId}/{kind}           # Create care entry (auth)
//PUT  /api/babies/{babyId}/{kind}/{id}      # Update care entry (auth)
//DELETE /api/babies/{babyId}/{kind}/{id}    # Delete care entry (auth)

package api

import (
	babyAPI "nestlog/internal/app/server/api/http/baby"
	entryAPI "nestlog/internal/app/server/api/http/entry"
	healthAPI "nestlog/internal/app/server/api/http/health"
	"nestlog/internal/app/server/api/http/middleware"
	"nestlog/internal/app/server/api/http/middleware/auth"
	"nestlog/internal/app/server/api/http/middleware/logger"
	userAPI "nestlog/internal/app/server/api/http/user"
	"nestlog/internal/domain/baby"
	"nestlog/internal/domain/entry"
	"nestlog/internal/domain/session"
	"nestlog/internal/domain/user"
	"nestlog/internal/infrastructure/storage/postgres"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"
)

type Handlers struct {
	Health *healthAPI.Handler
	User   *userAPI.Handler
	Baby   *babyAPI.Handler
	Entry  *entryAPI.Handler
}

// New builds a *chi.Mux with every operation registered through huma.Register.
func New(storage *postgres.Storage, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	config := huma.DefaultConfig("Nestlog API", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
	}

	API := humachi.New(mux, config)

	h := handlers(storage, log)
	h.Health.SetupRoutes(API)
	h.User.SetupRoutes(API)
	h.Baby.SetupRoutes(API)
	h.Entry.SetupRoutes(API)

	return mux
}

func handlers(storage *postgres.Storage, log *slog.Logger) *Handlers {
	sessionRepo := postgres.NewSessionRepository(storage, log)
	sessionService := session.NewService(sessionRepo, log)
	authMW := auth.New(sessionService, log)
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear())

	userRepo := postgres.NewUserRepository(storage, log)
	userService := user.NewService(userRepo, user.NewValidator(), log)
	middlewares.Add(loggerMW.Middleware())
	userHandler := userAPI.NewHandler(userService, sessionService, log, middlewares.GetAllAndClear())

	babyRepo := postgres.NewBabyRepository(storage, log)
	babyService := baby.NewService(babyRepo, log)
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	babyHandler := babyAPI.NewHandler(babyService, log, middlewares.GetAllAndClear())

	entryRepo := postgres.NewEntryRepository(storage, log)
	entryService := entry.NewService(entryRepo, log)
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	entryHandler := entryAPI.NewHandler(entryService, babyService, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health: healthHandler,
		User:   userHandler,
		Baby:   babyHandler,
		Entry:  entryHandler,
	}
}
