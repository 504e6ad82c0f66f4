package handler

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"signage/internal/service"
)

// Index returns the home listing: all content newest-first plus every
// screen joined against the content registry.
func Index(contentSvc service.ContentService, screenSvc service.ScreenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		content, err := contentSvc.List(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		screens, err := screenSvc.ListResolved(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{
			"content": content,
			"screens": screens,
		})
	}
}

// UploadContent handles media upload (multipart/form-data, field name: file).
// Disallowed extensions and oversized files are rejected before anything
// is persisted.
func UploadContent(contentSvc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
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

		item, err := contentSvc.Upload(c.UserContext(), f, fh.Filename, ct, fh.Size)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrFilenameRequired), errors.Is(err, service.ErrReaderNil):
				return writeError(c, fiber.StatusBadRequest, "INVALID_FILENAME", "filename is not usable")
			case errors.Is(err, service.ErrExtensionNotAllowed):
				return writeError(c, fiber.StatusBadRequest, "EXTENSION_NOT_ALLOWED", "file type is not allowed")
			case errors.Is(err, service.ErrFileTooLarge):
				return writeError(c, fiber.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file exceeds the maximum upload size")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(item)
	}
}

// DeleteContent removes a content item unless screens still point at it.
// A malformed id is rejected before any mutation.
func DeleteContent(contentSvc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid content id")
		}
		if err := contentSvc.Delete(c.UserContext(), id); err != nil {
			var inUse *service.ContentInUseError
			switch {
			case errors.As(err, &inUse):
				return writeError(c, fiber.StatusConflict, "CONTENT_IN_USE",
					fmt.Sprintf("cannot delete content: it is currently assigned to %d screen(s)", inUse.Count))
			case errors.Is(err, service.ErrContentNotFound):
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "content not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{"message": "Content deleted successfully."})
	}
}
