package server

import (
	"inkwell/internal/models"
	"inkwell/internal/storage"

	"github.com/gofiber/fiber/v2"
)

// GetUploadURL handles GET /get-upload-url: a fresh random object key and a
// time-limited write-only URL scoped to image/jpeg. Whether the client ever
// uploads to it is not this layer's concern.
func (s *Server) GetUploadURL(c *fiber.Ctx) error {
	uploadURL, err := s.signer.SignUpload(c.Context(), storage.UploadKey(), "image/jpeg")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.JSON(fiber.Map{
		"uploadURL": uploadURL,
	})
}
