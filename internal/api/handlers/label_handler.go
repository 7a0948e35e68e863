package handlers

import (
	"Nutrition-Density-Backend/domain"
	"Nutrition-Density-Backend/internal/api/presenters"
	"Nutrition-Density-Backend/pkg/label"
	"errors"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var allowImage = []string{"image/jpeg", "image/png", "image/gif", "image/webp", "image/bmp"}

type (
	LabelHandler interface {
		ImageToText(c *fiber.Ctx) error
	}

	labelHandler struct {
		labelService   label.LabelService
		maxUploadBytes int64
	}
)

func NewLabelHandler(labelService label.LabelService, maxUploadBytes int64) LabelHandler {
	return &labelHandler{
		labelService:   labelService,
		maxUploadBytes: maxUploadBytes,
	}
}

func imageMimeType(file *multipart.FileHeader) string {
	mimeType := strings.ToLower(file.Header.Get("Content-Type"))
	if mimeType != "" && mimeType != "application/octet-stream" {
		return mimeType
	}

	switch strings.ToLower(filepath.Ext(file.Filename)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	case ".bmp":
		return "image/bmp"
	}
	return mimeType
}

func isAllowedImage(mimeType string) bool {
	for _, allowed := range allowImage {
		if mimeType == allowed {
			return true
		}
	}
	return false
}

func (h *labelHandler) readImage(file *multipart.FileHeader) ([]byte, error) {
	if !isAllowedImage(imageMimeType(file)) {
		return nil, domain.ErrInvalidImage
	}
	if h.maxUploadBytes > 0 && file.Size > h.maxUploadBytes {
		return nil, domain.ErrImageTooLarge
	}

	f, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}

func (h *labelHandler) ImageToText(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		file, err = c.FormFile("image")
	}
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	image, err := h.readImage(file)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadLabel, err)
	}

	res, err := h.labelService.ExtractFromImage(c.Context(), image)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidImage):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadLabel, err)
		case errors.Is(err, domain.ErrOCRFailed):
			return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedOCR, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedExtractLabel, err)
		}
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}
