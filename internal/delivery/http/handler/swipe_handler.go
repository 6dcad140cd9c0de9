package handler

import (
	"errors"

	"jobmatch/internal/delivery/http/dto"
	"jobmatch/internal/delivery/http/middleware"
	"jobmatch/internal/pkg/response"
	ucswipe "jobmatch/internal/usecase/swipe"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type SwipeHandler struct {
	uc *ucswipe.Service
}

type swipeRequest struct {
	TargetID uuid.UUID `json:"target_id"`
	Liked    bool      `json:"liked"`
}

func NewSwipeHandler(uc *ucswipe.Service) *SwipeHandler {
	return &SwipeHandler{uc: uc}
}

func (h *SwipeHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/swipes", h.Record)
}

func (h *SwipeHandler) Record(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req swipeRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}
	if req.TargetID == uuid.Nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, nil)
	}

	res, err := h.uc.Record(c.Context(), userID, req.TargetID, req.Liked)
	if err != nil {
		switch {
		case errors.Is(err, ucswipe.ErrSelfSwipe):
			return middleware.NewAppError(fiber.StatusBadRequest, "Cannot swipe on yourself", nil, err)
		case errors.Is(err, ucswipe.ErrProfileMissing):
			return middleware.NewAppError(fiber.StatusNotFound, "Profile not found", nil, err)
		case errors.Is(err, ucswipe.ErrTargetNotFound):
			return middleware.NewAppError(fiber.StatusNotFound, "Target profile not found", nil, err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
		}
	}

	data := dto.SwipeResponse{Recorded: res.Recorded, Matched: res.Matched}
	if res.Matched {
		id := res.MatchID
		data.MatchID = &id
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}
