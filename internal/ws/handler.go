package ws

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"jobmatch/internal/domain/match"
	"jobmatch/internal/pkg/jwt"
)

type Handler struct {
	hub     *Hub
	jwt     jwt.Service
	matches match.Repository
	logger  *log.Logger
}

func NewHandler(hub *Hub, jwtSvc jwt.Service, matches match.Repository, logger *log.Logger) *Handler {
	return &Handler{hub: hub, jwt: jwtSvc, matches: matches, logger: logger}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleMatchWS upgrades an authorized participant to a live subscription on
// one match. Browsers cannot set headers on websocket dials, so the access
// token rides in the token query parameter.
func (h *Handler) HandleMatchWS(c fiber.Ctx) error {
	if h == nil || h.hub == nil {
		return fiber.ErrServiceUnavailable
	}

	matchID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid match id")
	}

	token := strings.TrimSpace(c.Query("token"))
	if token == "" {
		return fiber.ErrUnauthorized
	}
	claims, err := h.jwt.ValidateToken(token)
	if err != nil || claims.TokenType != jwt.TokenTypeAccess {
		return fiber.ErrUnauthorized
	}
	userID := claims.UserID

	m, err := h.matches.GetByID(c.Context(), matchID)
	if err != nil {
		if errors.Is(err, match.ErrNotFound) {
			return fiber.ErrNotFound
		}
		return fiber.ErrInternalServerError
	}
	if !m.Involves(userID) {
		return fiber.ErrForbidden
	}

	fiberHandler := adaptor.HTTPHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			if h.logger != nil {
				h.logger.Printf("WS upgrade error | match=%s error=%v", matchID, err)
			}
			return
		}

		client := NewClient(h.hub, conn, matchID, userID)
		h.hub.Register(client)
		go client.WritePump()
		go client.ReadPump()
	})

	return fiberHandler(c)
}
