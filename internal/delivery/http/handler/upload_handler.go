package handler

import (
	"strings"

	"jobmatch/internal/delivery/http/dto"
	"jobmatch/internal/delivery/http/middleware"
	"jobmatch/internal/infrastructure/storage"
	"jobmatch/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type UploadHandler struct {
	store *storage.S3Store
}

type uploadRequest struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
}

func NewUploadHandler(store *storage.S3Store) *UploadHandler {
	return &UploadHandler{store: store}
}

func (h *UploadHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/uploads", h.PresignUpload)
}

func (h *UploadHandler) PresignUpload(c fiber.Ctx) error {
	if h.store == nil {
		return middleware.NewAppError(fiber.StatusServiceUnavailable, "File storage is not configured", nil, nil)
	}

	var req uploadRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}
	if strings.TrimSpace(req.FileName) == "" || strings.TrimSpace(req.ContentType) == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "file_name and content_type are required", nil, nil)
	}

	uploadURL, key, err := h.store.PresignUpload(c.Context(), req.FileName, req.ContentType)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	data := dto.UploadResponse{
		UploadURL: uploadURL,
		Key:       key,
		PublicURL: h.store.PublicURL(key),
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}
