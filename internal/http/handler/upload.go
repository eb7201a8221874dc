package handler

import (
	"github.com/gofiber/fiber/v2"

	"zoomboom/internal/service"
)

// UploadImage godoc
//
//	@Summary	Host an image
//	@Tags		uploads
//	@Security	BearerAuth
//	@Accept		multipart/form-data
//	@Produce	json
//	@Param		image	formData	file	true	"image file"
//	@Success	201		{object}	model.Image
//	@Failure	400		{object}	errorPayload
//	@Failure	413		{object}	errorPayload
//	@Failure	415		{object}	errorPayload
//	@Router		/uploads/images [post]
func UploadImage(svc service.ImageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("image")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "IMAGE_REQUIRED", "image is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		img, err := svc.Upload(c.UserContext(), f, fh.Filename, ct, fh.Size)
		if err != nil {
			return mapServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(img)
	}
}
