package handler

import (
	"errors"

	"jobmatch/internal/delivery/http/dto"
	"jobmatch/internal/delivery/http/middleware"
	"jobmatch/internal/pkg/response"
	ucdeck "jobmatch/internal/usecase/deck"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type DeckHandler struct {
	uc *ucdeck.Service
}

func NewDeckHandler(uc *ucdeck.Service) *DeckHandler {
	return &DeckHandler{uc: uc}
}

func (h *DeckHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/deck", h.GetDeck)
}

func (h *DeckHandler) GetDeck(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	deck, err := h.uc.Deck(c.Context(), userID)
	if err != nil {
		if errors.Is(err, ucdeck.ErrProfileMissing) {
			// The client redirects to onboarding on this distinct message.
			return middleware.NewAppError(fiber.StatusNotFound, "Profile not found", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProfileListResponse(deck))
}
