package handler

import (
	"errors"

	"jobmatch/internal/delivery/http/dto"
	"jobmatch/internal/delivery/http/middleware"
	"jobmatch/internal/pkg/response"
	ucchat "jobmatch/internal/usecase/chat"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ChatHandler struct {
	uc *ucchat.Service
}

type sendMessageRequest struct {
	Content string `json:"content"`
}

func NewChatHandler(uc *ucchat.Service) *ChatHandler {
	return &ChatHandler{uc: uc}
}

func (h *ChatHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/matches/:id/messages", h.History)
	r.Post("/matches/:id/messages", h.Send)
}

func (h *ChatHandler) History(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	matchID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid match id", nil, err)
	}

	msgs, err := h.uc.History(c.Context(), userID, matchID)
	if err != nil {
		return mapChatUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewMessageListResponse(msgs))
}

func (h *ChatHandler) Send(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	matchID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid match id", nil, err)
	}

	var req sendMessageRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	msg, err := h.uc.Send(c.Context(), userID, matchID, req.Content)
	if err != nil {
		return mapChatUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewMessageResponse(msg))
}

func mapChatUsecaseError(err error) error {
	switch {
	case errors.Is(err, ucchat.ErrEmptyMessage):
		return middleware.NewAppError(fiber.StatusBadRequest, "Message content is empty", nil, err)
	case errors.Is(err, ucchat.ErrMatchNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Match not found", nil, err)
	case errors.Is(err, ucchat.ErrNotAuthorized):
		return middleware.NewAppError(fiber.StatusForbidden, "Not a participant of this match", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
