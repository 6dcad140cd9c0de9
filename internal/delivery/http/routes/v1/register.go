package v1

import (
	"log"

	"jobmatch/internal/config"
	"jobmatch/internal/database"
	"jobmatch/internal/delivery/http/handler"
	"jobmatch/internal/delivery/http/middleware"
	"jobmatch/internal/infrastructure/cache"
	"jobmatch/internal/infrastructure/persistence/postgres"
	"jobmatch/internal/infrastructure/storage"
	"jobmatch/internal/pkg/jwt"
	"jobmatch/internal/usecase"
	ucchat "jobmatch/internal/usecase/chat"
	ucdeck "jobmatch/internal/usecase/deck"
	ucmatch "jobmatch/internal/usecase/match"
	ucprofile "jobmatch/internal/usecase/profile"
	ucswipe "jobmatch/internal/usecase/swipe"
	"jobmatch/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Deps struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Store  *storage.S3Store
	Hub    *ws.Hub
	Logger *log.Logger
}

func Register(r fiber.Router, d Deps) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(
		d.Config.JWT.AccessSecret,
		d.Config.JWT.RefreshSecret,
		d.Config.JWT.AccessExpiresIn,
		d.Config.JWT.RefreshExpiresIn,
	)

	authMw := middleware.NewAuthMiddleware(jwtSvc)

	userRepo := postgres.NewUserRepository(d.DB)
	profileRepo := postgres.NewProfileRepository(d.DB)
	swipeRepo := postgres.NewSwipeRepository(d.DB)
	matchRepo := postgres.NewMatchRepository(d.DB)
	messageRepo := postgres.NewMessageRepository(d.DB)

	deckUC := ucdeck.NewService(profileRepo, d.Cache, d.Logger)
	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	profileUC := ucprofile.NewService(profileRepo, deckUC)
	swipeUC := ucswipe.NewService(swipeRepo, matchRepo, profileRepo, deckUC, d.Logger)
	matchUC := ucmatch.NewService(matchRepo, profileRepo)
	chatUC := ucchat.NewService(matchRepo, messageRepo, d.Hub)

	authGroup := r.Group("/auth")
	handler.NewAuthHandler(authUC).RegisterRoutes(authGroup)

	protected := r.Group("", authMw.Middleware())

	handler.NewProfileHandler(profileUC).RegisterRoutes(protected.Group("/profiles"))
	handler.NewDeckHandler(deckUC).RegisterRoutes(protected)
	handler.NewSwipeHandler(swipeUC).RegisterRoutes(protected)
	handler.NewMatchHandler(matchUC).RegisterRoutes(protected)
	handler.NewChatHandler(chatUC).RegisterRoutes(protected)
	handler.NewUploadHandler(d.Store).RegisterRoutes(protected)

	// The websocket feed authenticates via query token, not the auth header,
	// so it registers outside the protected group.
	wsHandler := ws.NewHandler(d.Hub, jwtSvc, matchRepo, d.Logger)
	r.Get("/ws/matches/:id", wsHandler.HandleMatchWS)
}
